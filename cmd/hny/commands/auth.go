package commands

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/irvingpop/honeycomb-go/pkg/hnyclient"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// NewAuthCommand creates the auth command
func NewAuthCommand() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Verify an API key",
		Long: `Verify an API key against the auth introspection endpoint and show
the team and environment it is scoped to. Prompts for the key when not
provided via flag, config, or environment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				apiKey = viper.GetString("api_key")
			}

			if apiKey == "" {
				fmt.Print("API key: ")

				keyBytes, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				fmt.Println()

				apiKey = strings.TrimSpace(string(keyBytes))
			}

			client, err := hnyclient.New(&honeycomb.Config{
				APIEndpoint: viper.GetString("api"),
				APIKey:      apiKey,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			info, err := client.GetAuthInfo(context.Background())
			if err != nil {
				return fmt.Errorf("failed to verify API key: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(info)
			case OutputFormatYAML:
				return renderYAML(info)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Team", info.Team.Name)
				_ = table.Append("Environment", info.Environment.Name)

				var scopes []string
				for scope, allowed := range info.APIKeyAccess {
					if allowed {
						scopes = append(scopes, scope)
					}
				}

				sort.Strings(scopes)
				_ = table.Append("Access", strings.Join(scopes, ", "))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "key", "", "API key to verify")

	return cmd
}
