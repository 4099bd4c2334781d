package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jsphweid/chapette/annotate"
	"github.com/jsphweid/chapette/fingering"
	"github.com/jsphweid/chapette/model"
	"github.com/jsphweid/chapette/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(fingeringsCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <score>",
	Short: "Shows the fingering each event would get",
	Long:  `Shows the fingering each note and chord of a score would get, without changing the score.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}
		score, err := readScore(args[0])
		if err != nil {
			return err
		}
		inspect(os.Stdout, score, table)
		return nil
	},
}

var fingeringsCmd = &cobra.Command{
	Use:   "fingerings",
	Short: "Prints the fingering table",
	Long:  `Prints the fingering table in use, sorted by pitch key.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}
		printTable(os.Stdout, table)
		return nil
	},
}

func inspect(w io.Writer, score *model.Score, table *fingering.Table) {
	var n int
	annotate.Walk(score, func(kind model.Kind, ev *model.Event) {
		n += 1
		keys := make([]string, 0, len(ev.Pitches))
		for _, p := range ev.Pitches {
			keys = append(keys, pitch.Key(p))
		}
		text, ok := annotate.Resolve(kind, ev, table)
		if !ok {
			fmt.Fprintf(w, "%d\t%v\t%v\t-\n", n, kind, strings.Join(keys, " "))
			return
		}
		fmt.Fprintf(w, "%d\t%v\t%v\t%q\n", n, kind, strings.Join(keys, " "), text)
	})
}

func printTable(w io.Writer, table *fingering.Table) {
	for _, key := range table.Keys() {
		f, _ := table.Lookup(key)
		fmt.Fprintf(w, "%v\t%v\n", key, f)
	}
}
