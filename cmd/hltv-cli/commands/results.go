package commands

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var resultsOffset *int
var resultsDebugHttp *string

func init() {
	resultsOffset = resultsCmd.Flags().Int("offset", 0, "The pagination offset of the listing page.")
	resultsDebugHttp = resultsCmd.Flags().String("debug-http", "", "Dump every http exchange into this directory.")
	rootCmd.AddCommand(resultsCmd)
}

var resultsCmd = &cobra.Command{
	Use:   "results [--offset <n>]",
	Short: "Prints the match urls found on one results listing page.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := createClient(cfg, *resultsDebugHttp)

		urls, err := client.FetchResultsPage(cmd.Context(), *resultsOffset)
		if err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Match"})
		for i, u := range urls {
			t.AppendRow(table.Row{i + 1, u})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
