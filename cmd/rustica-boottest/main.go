// rustica-boottest - Boot Smoke-Test Verdict Tool for Rustica OS Images
//
// The QEMU harness boots an installer image per architecture and captures
// the serial console to boot-<target>.log. This tool scores those
// transcripts against a fixed set of boot checks and reports pass/fail per
// target.
//
// Usage:
//   rustica-boottest classify x86_64          - Classify one target's transcript
//   rustica-boottest report                   - Classify all targets, print summary
//   rustica-boottest history                  - List recorded runs
//
// Build:
//   go build -o rustica-boottest ./cmd/rustica-boottest
//
// Exit codes:
//   0 - All classified targets passed
//   1 - At least one target failed its checks
//   2 - Transcript missing (classify only): result is indeterminate
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustica-os/boottest/pkg/boottest"
	"github.com/rustica-os/boottest/pkg/history"
	"github.com/rustica-os/boottest/pkg/logging"
	"github.com/rustica-os/boottest/pkg/report"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	flagDebug       bool
	flagTranscripts string
	flagJSON        string
	flagRecord      bool
	flagDBPath      string
	flagLimit       int
)

var rootCmd = &cobra.Command{
	Use:   "rustica-boottest",
	Short: "Boot smoke-test verdicts for Rustica OS installer images",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(flagDebug)
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify <target>",
	Short: "Classify one target's boot transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := boottest.ParseTarget(args[0])
		if err != nil {
			return err
		}

		path := target.TranscriptPath(flagTranscripts)
		logging.Logger.Debugw("classifying transcript", "target", target, "path", path)

		out := boottest.ClassifyFile(target, path)
		report.WriteTarget(os.Stdout, out)

		if flagRecord {
			if err := recordOutcomes([]boottest.Outcome{out}); err != nil {
				return err
			}
		}

		// Distinct exit code for "no transcript captured" so CI can tell
		// a broken harness apart from a failed boot.
		if out.Indeterminate {
			os.Exit(2)
		}
		if !out.Verdict.Success {
			os.Exit(1)
		}
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Classify every target and print the aggregate summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.Logger.Debugw("classifying all targets", "dir", flagTranscripts)

		outcomes := boottest.ClassifyDir(flagTranscripts)
		report.Write(os.Stdout, outcomes)

		if flagJSON != "" {
			f, err := os.Create(flagJSON)
			if err != nil {
				return fmt.Errorf("failed to create JSON report: %w", err)
			}
			defer f.Close()
			if err := report.WriteJSON(f, outcomes); err != nil {
				return fmt.Errorf("failed to write JSON report: %w", err)
			}
			logging.Logger.Debugw("wrote JSON report", "path", flagJSON)
		}

		if flagRecord {
			if err := recordOutcomes(outcomes); err != nil {
				return err
			}
		}

		if !report.AllPassed(outcomes) {
			os.Exit(1)
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded boot-test runs, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := history.Open(dbPath())
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer db.Close()

		runs, err := history.List(db, flagLimit)
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No recorded runs. Use 'report --record' to start recording.")
			return nil
		}

		fmt.Printf("%-5s %-20s %-10s %s\n", "ID", "RECORDED", "TARGET", "RESULT")
		for _, run := range runs {
			result := fmt.Sprintf("%d/%d FAIL", run.Passed, run.Total)
			if run.Indeterminate {
				result = "NO DATA"
			} else if run.Success {
				result = fmt.Sprintf("%d/%d PASS", run.Passed, run.Total)
			}
			fmt.Printf("%-5d %-20s %-10s %s\n",
				run.ID, run.RecordedAt.Format("2006-01-02 15:04:05"), run.Target, result)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rustica-boottest version %s (built %s, commit %s)\n",
			Version, BuildTime, GitCommit)
	},
}

func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return history.DefaultPath()
}

func recordOutcomes(outcomes []boottest.Outcome) error {
	db, err := history.Open(dbPath())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	if err := history.RecordAll(db, outcomes); err != nil {
		return fmt.Errorf("failed to record outcomes: %w", err)
	}
	logging.Logger.Debugw("recorded outcomes", "count", len(outcomes), "db", dbPath())
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagTranscripts, "transcripts", "./boot-logs",
		"directory containing boot-<target>.log transcripts")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "",
		"history database path (default $HOME/.rustica/boottest.db, or RUSTICA_BOOTTEST_DB)")

	classifyCmd.Flags().BoolVar(&flagRecord, "record", false, "record the outcome in the history database")
	reportCmd.Flags().BoolVar(&flagRecord, "record", false, "record all outcomes in the history database")
	reportCmd.Flags().StringVar(&flagJSON, "json", "", "also write the report as JSON to this file")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "maximum number of runs to list")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}
