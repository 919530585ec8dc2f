package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/hortiexam/hortiexam/internal/model"
	"github.com/xuri/excelize/v2"
)

// Encoder renders an exam and its ordered items into a binary
// document with a questions section and a separate answers section.
type Encoder interface {
	Encode(exam *model.Exam, items []model.ExamItem, w io.Writer) error
}

const (
	questionsSheet = "Fragen"
	answersSheet   = "Lösungen"
)

// XLSXEncoder writes a workbook: one sheet with the numbered questions
// and their points, one sheet with the numbered answers. All fields
// are sanitized exactly once on the way out.
type XLSXEncoder struct{}

func NewXLSXEncoder() Encoder {
	return XLSXEncoder{}
}

func (XLSXEncoder) Encode(exam *model.Exam, items []model.ExamItem, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, questionsSheet); err != nil {
		return fmt.Errorf("failed to name questions sheet: %w", err)
	}
	if _, err := f.NewSheet(answersSheet); err != nil {
		return fmt.Errorf("failed to create answers sheet: %w", err)
	}

	f.SetCellValue(questionsSheet, "A1", exam.Title)
	f.SetCellValue(questionsSheet, "A2", "Erstellt am: "+exam.CreatedAt.Format("02.01.2006"))
	f.SetCellValue(questionsSheet, "A4", "Nr.")
	f.SetCellValue(questionsSheet, "B4", "Frage")
	f.SetCellValue(questionsSheet, "C4", "Punkte")

	f.SetCellValue(answersSheet, "A1", exam.Title+" – "+answersSheet)
	f.SetCellValue(answersSheet, "A3", "Nr.")
	f.SetCellValue(answersSheet, "B3", "Lösung")

	for idx, item := range items {
		qRow := idx + 5
		f.SetCellValue(questionsSheet, fmt.Sprintf("A%d", qRow), idx+1)
		f.SetCellValue(questionsSheet, fmt.Sprintf("B%d", qRow), Sanitize(item.SnapshotContent))
		f.SetCellValue(questionsSheet, fmt.Sprintf("C%d", qRow), item.Points)

		aRow := idx + 4
		f.SetCellValue(answersSheet, fmt.Sprintf("A%d", aRow), idx+1)
		f.SetCellValue(answersSheet, fmt.Sprintf("B%d", aRow), Sanitize(item.SnapshotAnswer))
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// ExportFilename mirrors the download name scheme of the exam export.
func ExportFilename(exam *model.Exam) string {
	return fmt.Sprintf("exam_%d_%s.xlsx", exam.ID, strings.ReplaceAll(exam.Title, " ", "_"))
}
