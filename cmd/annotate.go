package cmd

import (
	"github.com/jsphweid/chapette/annotate"
	"github.com/jsphweid/chapette/midi"
	"github.com/jsphweid/chapette/model"
	"github.com/jsphweid/chapette/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var outputPath string

func init() {
	annotateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "where to write the annotated score (default <input>_with_fingerings.json)")
	rootCmd.AddCommand(annotateCmd)
}

var annotateCmd = &cobra.Command{
	Use:   "annotate <score.json|score.mid>",
	Short: "Adds fingerings to a score",
	Long:  `Adds fingerings to a score and writes the result as JSON next to the input.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := outputPath
		if out == "" {
			out = defaultOutputPath(args[0])
		}
		return run(args[0], out)
	},
}

func defaultOutputPath(input string) string {
	out := util.OutputPath(input)
	// annotated midi input is written as a JSON score
	if util.IsMidiPath(input) {
		out += ".json"
	}
	return out
}

func readScore(path string) (*model.Score, error) {
	if util.IsMidiPath(path) {
		return midi.ReadScore(path)
	}
	return util.ReadScore(path)
}

func run(input string, output string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	score, err := readScore(input)
	if err != nil {
		return err
	}

	report := annotate.Annotate(score, table)
	logrus.WithFields(logrus.Fields{
		"notes":     report.Notes,
		"chords":    report.Chords,
		"attached":  report.Attached,
		"unmatched": report.Unmatched,
	}).Info("annotated " + input)

	if err := util.WriteScore(output, score); err != nil {
		return err
	}
	logrus.Infof("Processed file saved at: %v", output)
	return nil
}
