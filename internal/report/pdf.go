package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/smarted/studykit/internal/progress"
)

const pdfContentWidth = 190.0

// WritePDF renders a one-page progress report.
func WritePDF(w io.Writer, s progress.Summary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetTitle("Study Progress Report", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Study Progress Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, "Generated "+s.GeneratedAt.Format("2 January 2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdfHeading(pdf, "Overview")
	pdf.SetFont("Arial", "", 10)
	pdfLine(pdf, "Total study time", progress.FormatMinutes(s.Totals.TotalStudyMinutes))
	pdfLine(pdf, "Quizzes taken", fmt.Sprintf("%d", s.Totals.TotalQuizzes))
	pdfLine(pdf, "Average score", fmt.Sprintf("%.0f%%", s.Totals.AverageScorePercent))
	if s.Focus.IsEmpty() {
		pdfLine(pdf, "Focus quality", "no sessions yet")
	} else {
		deep, distracted := focusShares(s.Focus)
		pdfLine(pdf, "Focus quality", fmt.Sprintf("%.0f%% deep, %.0f%% distracted", deep, distracted))
	}
	pdf.Ln(4)

	pdfTable(pdf, DailyDataset(s))
	pdf.Ln(4)
	if len(s.Subjects) > 0 {
		pdfTable(pdf, SubjectDataset(s))
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func pdfHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, text, "B", 1, "", false, 0, "")
	pdf.Ln(2)
}

func pdfLine(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(50, 6, label, "", 0, "", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "", false, 0, "")
}

func pdfTable(pdf *gofpdf.Fpdf, data Dataset) {
	pdfHeading(pdf, data.Title)

	pdf.SetFont("Arial", "B", 10)
	colWidth := pdfContentWidth / float64(len(data.Headers))
	for _, header := range data.Headers {
		pdf.CellFormat(colWidth, 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range data.Rows {
		for _, header := range data.Headers {
			pdf.CellFormat(colWidth, 7, row[header], "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// focusShares returns the deep and distracted shares of a non-empty
// breakdown as percentages.
func focusShares(f progress.FocusBreakdown) (deep, distracted float64) {
	total := float64(f.DeepMinutes + f.DistractedMinutes)
	if total == 0 {
		return 0, 0
	}
	deep = float64(f.DeepMinutes) / total * 100
	return deep, 100 - deep
}
