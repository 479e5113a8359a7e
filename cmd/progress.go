package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/smarted/studykit/internal/progress"
	"github.com/smarted/studykit/internal/report"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show, export and import study progress",
}

var progressShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the progress dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		data, err := e.store.ProgressRepo().Snapshot(cmd.Context())
		if err != nil {
			return err
		}
		s := progress.Summarize(data, time.Now(), e.cfg.Progress.TrendWindow)
		fmt.Println(report.Dashboard(s, width))
		return nil
	},
}

var progressExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export progress as CSV, PDF or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		table, _ := cmd.Flags().GetString("table")
		out, _ := cmd.Flags().GetString("out")

		if format == "" {
			format = strings.TrimPrefix(filepath.Ext(out), ".")
		}
		if format == "" {
			format = "csv"
		}
		if err := checkExportFormat(format, out); err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		data, err := e.store.ProgressRepo().Snapshot(cmd.Context())
		if err != nil {
			return err
		}
		s := progress.Summarize(data, time.Now(), e.cfg.Progress.TrendWindow)

		if out == "" {
			return writeExport(os.Stdout, format, table, s, data)
		}
		if err := exportToFile(out, format, table, s, data); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", out)
		return nil
	},
}

// checkExportFormat rejects an export before anything is created on disk.
func checkExportFormat(format, out string) error {
	switch format {
	case "csv", "json":
	case "pdf":
		if out == "" {
			return fmt.Errorf("PDF export needs --out")
		}
	default:
		return fmt.Errorf("unknown format %q (want csv, pdf or json)", format)
	}
	return nil
}

// exportToFile writes the export to path. The dataset is resolved first so
// a bad --table leaves no file behind, and a failed close is reported.
func exportToFile(path, format, table string, s progress.Summary, data progress.Data) (err error) {
	if format == "csv" {
		if _, err := report.DatasetByName(table, s, data); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return writeExport(f, format, table, s, data)
}

func writeExport(w io.Writer, format, table string, s progress.Summary, data progress.Data) error {
	var err error
	switch format {
	case "csv":
		ds, derr := report.DatasetByName(table, s, data)
		if derr != nil {
			return derr
		}
		err = report.WriteCSV(w, ds)
	case "pdf":
		err = report.WritePDF(w, s)
	case "json":
		err = report.WriteJSON(w, s)
	default:
		return fmt.Errorf("unknown format %q (want csv, pdf or json)", format)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	return nil
}

var progressImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Replace all progress with a JSON history",
	Long: "Replace all progress with a JSON history of the form\n" +
		`{"studyHistory": [...], "quizHistory": [...]}` + ".\nThe file is validated before anything is changed.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		var data progress.Data
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}
		if err := progress.ValidateData(data); err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.store.ProgressRepo().Replace(cmd.Context(), data); err != nil {
			return err
		}
		fmt.Printf("Imported %d sessions and %d quizzes.\n", len(data.StudyHistory), len(data.QuizHistory))
		return nil
	},
}

var progressSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty history with a week of sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		ctx := cmd.Context()

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		repo := e.store.ProgressRepo()
		current, err := repo.Snapshot(ctx)
		if err != nil {
			return err
		}
		if !force && (len(current.StudyHistory) > 0 || len(current.QuizHistory) > 0) {
			return fmt.Errorf("progress already recorded; use --force to replace it with sample data")
		}

		if err := repo.Replace(ctx, progress.SampleData(time.Now())); err != nil {
			return err
		}
		fmt.Println("Seeded sample progress.")
		return nil
	},
}

func init() {
	progressShowCmd.Flags().Int("width", 80, "Dashboard width in columns")

	progressExportCmd.Flags().StringP("format", "f", "", "csv, pdf or json (default from --out extension, else csv)")
	progressExportCmd.Flags().StringP("table", "t", report.TableDaily,
		"CSV table: "+strings.Join(report.TableNames, ", "))
	progressExportCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")

	progressSeedCmd.Flags().Bool("force", false, "Replace existing progress")

	progressCmd.AddCommand(progressShowCmd)
	progressCmd.AddCommand(progressExportCmd)
	progressCmd.AddCommand(progressImportCmd)
	progressCmd.AddCommand(progressSeedCmd)
}
