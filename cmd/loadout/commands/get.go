package commands

import (
	"github.com/spf13/cobra"
	"go.loadout.dev/loadout/internal/app"
	"go.loadout.dev/loadout/internal/core/domain"
)

func (c *CLI) newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [addon-ids...]",
		Short: "Select packages, resolve their dependencies and download them",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			rawType, _ := cmd.Flags().GetString("type")
			resourceType, err := domain.ParseResourceType(rawType)
			if err != nil {
				return err
			}

			provider, _ := cmd.Flags().GetString("provider")
			planOnly, _ := cmd.Flags().GetBool("plan-only")
			parallelism, _ := cmd.Flags().GetInt("parallelism")

			return c.app.Get(cmd.Context(), app.GetOptions{
				Provider: domain.Provider(provider),
				Type:     resourceType,
				AddonIDs: args,
				RunOptions: app.RunOptions{
					PlanOnly:    planOnly,
					Parallelism: parallelism,
				},
			})
		},
	}
	cmd.Flags().StringP("provider", "p", string(domain.ProviderModrinth), "Provider to fetch packages from")
	cmd.Flags().StringP("type", "t", string(domain.ResourceTypeMod), "Resource type to install")
	cmd.Flags().Bool("plan-only", false, "Stop after the plan is confirmed, do not download")
	cmd.Flags().Int("parallelism", 0, "Maximum concurrent downloads (0 for default)")
	return cmd
}
