package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewDatasetsCommand creates the datasets command group
func NewDatasetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "datasets",
		Aliases: []string{"dataset"},
		Short:   "Manage datasets",
		Long:    "List and inspect Honeycomb datasets",
	}

	cmd.AddCommand(newDatasetsListCommand())
	cmd.AddCommand(newDatasetsGetCommand())

	return cmd
}

func newDatasetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List datasets",
		Long:  "List all datasets in the environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			datasets, err := client.Datasets().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list datasets: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(datasets)
			case OutputFormatYAML:
				return renderYAML(datasets)
			default:
				if len(datasets) == 0 {
					fmt.Println("No datasets found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Slug", "Description", "Created")

				for _, ds := range datasets {
					created := ""
					if ds.CreatedAt != nil {
						created = ds.CreatedAt.Format("2006-01-02")
					}

					_ = table.Append(ds.Name, ds.Slug, ds.Description, created)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newDatasetsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DATASET_SLUG",
		Short: "Get dataset details",
		Long:  "Display detailed information about a specific dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ds, err := client.Datasets().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get dataset: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(ds)
			case OutputFormatYAML:
				return renderYAML(ds)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Name", ds.Name)
				_ = table.Append("Slug", ds.Slug)
				_ = table.Append("Description", ds.Description)

				if ds.Settings != nil && ds.Settings.DeleteProtected != nil {
					_ = table.Append("Delete Protected", yesNo(*ds.Settings.DeleteProtected))
				}

				if ds.LastWrittenAt != nil {
					_ = table.Append("Last Written", ds.LastWrittenAt.Format("2006-01-02 15:04:05"))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
