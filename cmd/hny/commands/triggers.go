package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTriggersCommand creates the triggers command group
func NewTriggersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "triggers",
		Aliases: []string{"trigger"},
		Short:   "Manage triggers",
		Long:    "List and inspect Honeycomb triggers",
	}

	cmd.AddCommand(newTriggersListCommand())

	return cmd
}

func newTriggersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list DATASET_SLUG",
		Short: "List triggers",
		Long:  "List all triggers in a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			triggers, err := client.Triggers().List(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list triggers: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(triggers)
			case OutputFormatYAML:
				return renderYAML(triggers)
			default:
				if len(triggers) == 0 {
					fmt.Println("No triggers found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Threshold", "Frequency", "Disabled", "Triggered")

				for _, trigger := range triggers {
					threshold := ""
					if trigger.Threshold != nil {
						threshold = fmt.Sprintf("%s %g", trigger.Threshold.Op, trigger.Threshold.Value)
					}

					_ = table.Append(
						trigger.ID,
						trigger.Name,
						threshold,
						fmt.Sprintf("%ds", trigger.Frequency),
						yesNo(trigger.Disabled),
						yesNo(trigger.Triggered),
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
