package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var matchDebugHttp *string

func init() {
	matchDebugHttp = matchCmd.Flags().String("debug-http", "", "Dump every http exchange into this directory.")
	rootCmd.AddCommand(matchCmd)
}

var matchCmd = &cobra.Command{
	Use:   "match <url>",
	Short: "Scrapes one match page and renders its all-maps statistics tables.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := createClient(cfg, *matchDebugHttp)

		stats, err := client.FetchMatchStats(cmd.Context(), args[0])
		if err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}
		if len(stats.Teams) == 0 {
			fmt.Println("no statistics tables on this match page")
			return
		}

		for _, team := range stats.Teams {
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetTitle(fmt.Sprintf("%s (%s)", team.TeamName, team.TableType))
			t.AppendHeader(table.Row{"Player", "K-D", "+/-", "ADR", "KAST", "Rating"})
			for _, p := range team.Players {
				t.AppendRow(table.Row{p.Player, p.KD, p.PlusMinus, p.ADR, p.KAST, p.Rating})
			}
			t.SetStyle(table.StyleRounded)
			t.Render()
		}
	},
}
