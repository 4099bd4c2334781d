package cmd

import (
	"github.com/jsphweid/chapette/constants"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	fingeringsPath string
	dynamoTable    string
	instrument     string
	logLevel       string
)

var rootCmd = &cobra.Command{
	Use:   "chapette",
	Short: "Adds valve fingerings to scores",
	Long:  `Adds valve fingerings to the notes and chords of a score, as lyrics under each event.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&fingeringsPath, "fingerings", constants.GetFingeringsPath(), "JSON fingering table (defaults to the built-in trumpet table)")
	flags.StringVar(&dynamoTable, "dynamo-table", constants.GetDynamoTable(), "DynamoDB table to read fingerings from")
	flags.StringVar(&instrument, "instrument", constants.GetInstrument(), "instrument whose fingerings are read from DynamoDB")
	flags.StringVar(&logLevel, "log-level", constants.GetLogLevel(), "logrus level")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
