package cmd

import (
	"fmt"
	"os"

	"github.com/fkleist/pinpoint/pkg/pinpoint"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runTestCommand string
var runStateCommand string
var runPlaceholder string
var runScript string

var runCmd = &cobra.Command{
	Use:   "run items.txt",
	Short: "Bisect the items listed in a file, asking for a verdict after each test",
	Long: `Bisect the items listed in a file, asking for a verdict after each test.

The file holds one item per line, ordered from the known-good end to the
known-bad end. Blank lines are skipped. For every candidate item, the optional
state command and then the test command are run with every occurrence of the
placeholder token replaced by the item's value, after which you are prompted
for a verdict of good, bad or skip. A non-zero exit of either command is only
a warning, the verdict is yours.

The run ends with a report naming the last good and first bad item, together
with any skipped or untested items the boundary could not be narrowed past.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		items, err := pinpoint.LoadSequenceFile(args[0])
		if err != nil {
			logrus.Fatalf("Failed to read item list - %v", err)
		}

		session := pinpoint.Session{
			Items: items,

			TestCommand:  runTestCommand,
			StateCommand: runStateCommand,

			Placeholder: runPlaceholder,

			Log: newLogger(),
		}

		if runScript != "" {
			script, err := os.Open(runScript)
			if err != nil {
				logrus.Fatalf("Failed to open verdict script - %v", err)
			}
			defer script.Close()
			oracle := pinpoint.NewScriptOracle(script)
			oracle.Log = session.Log
			session.Oracle = oracle
		}

		report, err := session.Run()
		if err != nil {
			logrus.Fatalf("Bisection failed - %v", err)
		}

		printReport(report)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runTestCommand, "test", "t", "", "The command which tests one item")
	runCmd.Flags().StringVarP(&runStateCommand, "state", "s", "", "An optional command run before each test to switch the system under test to the item")
	runCmd.Flags().StringVar(&runPlaceholder, "placeholder", pinpoint.DefaultPlaceholder, "The token in the commands which gets replaced by the item's value")
	runCmd.Flags().StringVar(&runScript, "script", "", "Read verdicts from this file instead of prompting")

	runCmd.MarkFlagRequired("test")
}

// printReport renders the final report for humans.
func printReport(report *pinpoint.Report) {
	switch {
	case report.Conclusive():
		fmt.Printf("Last good item: %s (index %d)\n", report.LastGoodItem, report.LastGood)
		fmt.Printf("First bad item: %s (index %d)\n", report.FirstBadItem, report.FirstBad)
		if report.Pinpointed() {
			fmt.Println("The transition is pinpointed to this adjacent pair.")
		} else {
			fmt.Println("The transition lies somewhere between them, the following items remain unresolved:")
			for _, item := range report.Boundary {
				fmt.Printf("  %d: %s (%s)\n", item.Index, item.Item, item.Status)
			}
		}
	case report.LastGood != pinpoint.None:
		fmt.Printf("Last good item: %s (index %d)\n", report.LastGoodItem, report.LastGood)
		fmt.Println("No bad item was found, everything after it was skipped or untested.")
	case report.FirstBad != pinpoint.None:
		fmt.Printf("First bad item: %s (index %d)\n", report.FirstBadItem, report.FirstBad)
		fmt.Println("No good item was found, everything before it was skipped or untested.")
	default:
		fmt.Println("No conclusive result, every tested item was skipped.")
	}

	if len(report.Ignored) > 0 {
		fmt.Printf("Skipped %d items in total.\n", len(report.Ignored))
	}
}
