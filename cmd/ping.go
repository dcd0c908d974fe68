package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vivek888gaya/portfolio/pkg/statusapi"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the status-check API is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := statusapi.New(apiBaseURL())

		message, err := client.HealthCheck(cmd.Context())
		if err != nil {
			return fmt.Errorf("status-check API at %s is unreachable: %w", client.BaseURL(), err)
		}

		if message == "" {
			message = "ok"
		}
		fmt.Printf("%s: %s\n", client.BaseURL(), message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
