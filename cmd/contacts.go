package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/vivek888gaya/portfolio/pkg/statusapi"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "List contact form submissions recorded by the status-check API",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := statusapi.New(apiBaseURL())

		records, err := client.FetchContacts(cmd.Context())
		if err != nil {
			return err
		}

		rawOutput, _ := cmd.Flags().GetBool("raw")
		for _, record := range records {
			if rawOutput {
				fmt.Println(string(record))
				continue
			}
			parsed := gjson.ParseBytes(record)
			fmt.Printf("%s\t%s\t%s\n",
				parsed.Get("id").String(),
				parsed.Get("client_name").String(),
				parsed.Get("timestamp").String(),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(contactsCmd)
	contactsCmd.Flags().Bool("raw", false, "Print each record as raw JSON")
}
