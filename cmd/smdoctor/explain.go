package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"smdoctor/internal/debugger"
	"smdoctor/internal/driver"
	"smdoctor/internal/history"
	"smdoctor/internal/report"
)

var explainCmd = &cobra.Command{
	Use:   "explain [flags] <facts.json|facts.toml>",
	Short: "Explain why a stack frame could not be un-minified",
	Long:  `Diagnose the collected facts about a minified stack frame, walk the three remediation pathways and point at the first broken step of each`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

// init registers CLI flags for the explain command used by runExplain.
func init() {
	explainCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	explainCmd.Flags().String("ui", "auto", "interactive checklist (auto|on|off)")
	explainCmd.Flags().Bool("with-notes", false, "include check notes in output")
	explainCmd.Flags().Bool("compact", false, "emit compact JSON (no indentation)")
	explainCmd.Flags().Bool("event", false, "treat input as a full event export with multiple frames")
	explainCmd.Flags().Int("jobs", 0, "max parallel workers for event frames (0=auto)")
	explainCmd.Flags().Bool("save-baseline", false, "record current progress as the baseline for this facts file")
	explainCmd.Flags().Bool("compare-baseline", false, "compare current progress against the recorded baseline")
	explainCmd.Flags().String("baseline-dir", "", "override the baseline cache directory")
}

// runExplain executes the "explain" command: it loads the facts file (single
// frame or event export), derives the checklist report for every frame,
// renders it in the chosen format or in the interactive UI, optionally
// saves/compares a progress baseline, and exits with a non-zero status when
// the selected pathway still has alerts.
func runExplain(cmd *cobra.Command, args []string) error {
	factsPath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}

	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}

	compact, err := cmd.Flags().GetBool("compact")
	if err != nil {
		return fmt.Errorf("failed to get compact flag: %w", err)
	}

	asEvent, err := cmd.Flags().GetBool("event")
	if err != nil {
		return fmt.Errorf("failed to get event flag: %w", err)
	}

	saveBaseline, err := cmd.Flags().GetBool("save-baseline")
	if err != nil {
		return fmt.Errorf("failed to get save-baseline flag: %w", err)
	}

	compareBaseline, err := cmd.Flags().GetBool("compare-baseline")
	if err != nil {
		return fmt.Errorf("failed to get compare-baseline flag: %w", err)
	}

	baselineDir, err := cmd.Flags().GetString("baseline-dir")
	if err != nil {
		return fmt.Errorf("failed to get baseline-dir flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}

	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	switch format {
	case "pretty", "json", "short":
		// supported
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if (saveBaseline || compareBaseline) && asEvent {
		return fmt.Errorf("baselines are tracked per frame; --event cannot be combined with baseline flags")
	}

	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	if asEvent {
		return runExplainEvent(cmd, factsPath, format, withNotes, compact, useColor)
	}

	res, err := driver.Explain(factsPath)
	if err != nil {
		return fmt.Errorf("diagnosis failed: %w", err)
	}

	if format == "pretty" && shouldUseTUI(mode) {
		if err := runExplainUI(res.Report); err != nil {
			return err
		}
	} else if err := renderReport(os.Stdout, res.Report, format, withNotes, compact, useColor); err != nil {
		return err
	}

	if saveBaseline || compareBaseline {
		store, err := openBaselineStore(baselineDir)
		if err != nil {
			return err
		}
		if compareBaseline {
			if err := compareAgainstBaseline(os.Stdout, store, res, quiet); err != nil {
				return err
			}
		}
		if saveBaseline {
			if err := store.Put(res.Digest, history.Snapshot(res.Report)); err != nil {
				return fmt.Errorf("failed to save baseline: %w", err)
			}
			if !quiet {
				fmt.Fprintln(os.Stdout, "baseline saved")
			}
		}
	}

	if res.Report.ByPathway(res.Report.Default).Alerts() > 0 {
		// Suppress cobra usage output; the checklist already explains the failure
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

// runExplainEvent diagnoses every frame of an event export and renders the
// frames in order.
func runExplainEvent(cmd *cobra.Command, path, format string, withNotes, compact, useColor bool) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	ev, results, err := driver.ExplainEvent(cmd.Context(), path, jobs)
	if err != nil {
		return fmt.Errorf("diagnosis failed: %w", err)
	}

	exit := 0
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		label := fmt.Sprintf("frame %d", r.Index)
		if ev.EventID != "" {
			label = fmt.Sprintf("%s frame %d", ev.EventID, r.Index)
		}
		fmt.Fprintf(os.Stdout, "== %s ==\n", label)
		if err := renderReport(os.Stdout, r.Report, format, withNotes, compact, useColor); err != nil {
			return err
		}
		if r.Report.ByPathway(r.Report.Default).Alerts() > 0 {
			exit = 1
		}
	}

	if exit != 0 {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

func renderReport(w io.Writer, rep *debugger.Report, format string, withNotes, compact, useColor bool) error {
	switch format {
	case "pretty":
		report.Pretty(w, rep, report.PrettyOpts{
			Color:     useColor,
			ShowNotes: withNotes,
		})
	case "short":
		output := debugger.FormatGolden(rep, withNotes)
		if output != "" {
			fmt.Fprintln(w, output)
		}
	case "json":
		opts := report.JSONOpts{
			IncludeNotes: withNotes,
			Compact:      compact,
		}
		if err := report.JSON(w, rep, opts); err != nil {
			return fmt.Errorf("failed to format report: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}

func openBaselineStore(dir string) (*history.Store, error) {
	if dir != "" {
		return history.OpenAt(dir)
	}
	return history.Open("smdoctor")
}

func compareAgainstBaseline(w io.Writer, store *history.Store, res *driver.ExplainResult, quiet bool) error {
	prev, ok, err := store.Get(res.Digest)
	if err != nil {
		return fmt.Errorf("failed to load baseline: %w", err)
	}
	if !ok {
		if !quiet {
			fmt.Fprintln(w, "no baseline recorded for this facts file")
		}
		return nil
	}
	printBaselineDiff(w, history.Diff(prev, res.Report))
	return nil
}

func printBaselineDiff(w io.Writer, diff history.Compare) {
	fmt.Fprintf(w, "baseline: debug-ids %+d, releases %+d, scraping %+d, alerts %+d\n",
		diff.DebugIDDelta, diff.ReleaseDelta, diff.ScrapingDelta, diff.AlertsDelta)
	if diff.Improved() {
		fmt.Fprintln(w, "baseline: progress improved")
	}
}
