package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewSLOsCommand creates the slos command group
func NewSLOsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "slos",
		Aliases: []string{"slo"},
		Short:   "Manage SLOs",
		Long:    "List and inspect Honeycomb service level objectives",
	}

	cmd.AddCommand(newSLOsListCommand())

	return cmd
}

func newSLOsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list DATASET_SLUG",
		Short: "List SLOs",
		Long:  "List all SLOs in a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			slos, err := client.SLOs().List(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list SLOs: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(slos)
			case OutputFormatYAML:
				return renderYAML(slos)
			default:
				if len(slos) == 0 {
					fmt.Println("No SLOs found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "SLI", "Target", "Period")

				for _, slo := range slos {
					target := strconv.FormatFloat(float64(slo.TargetPerMillion)/10_000, 'g', -1, 64) + "%"

					_ = table.Append(
						slo.ID,
						slo.Name,
						slo.SLI.Alias,
						target,
						fmt.Sprintf("%dd", slo.TimePeriodDays),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
