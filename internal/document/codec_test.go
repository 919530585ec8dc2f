package document

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hortiexam/hortiexam/internal/model"
	"github.com/xuri/excelize/v2"
)

func TestTextDecoderParagraphs(t *testing.T) {
	input := "Frage: Was ist X?\n\n   Lösung: X ist Y.   \n\nplain\n"
	lines, err := TextDecoder{}.Paragraphs(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{"Frage: Was ist X?", "Lösung: X ist Y.", "plain"}
	if len(lines) != len(want) {
		t.Fatalf("len(lines) = %d, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestDecoderForFile(t *testing.T) {
	if _, err := DecoderForFile("fragen.txt"); err != nil {
		t.Fatalf("txt: %v", err)
	}
	if _, err := DecoderForFile("Fragen.XLSX"); err != nil {
		t.Fatalf("xlsx: %v", err)
	}
	if _, err := DecoderForFile("fragen.docx"); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}

func TestXLSXEncodeDecodeRoundtrip(t *testing.T) {
	exam := &model.Exam{
		ID:        7,
		Title:     "Sommerprüfung",
		Status:    model.StatusFinal,
		CreatedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	items := []model.ExamItem{
		{ExamID: 7, SnapshotContent: "Zeile1<br>Zeile2<b>fett</b>", SnapshotAnswer: "Antwort<br>zweite", Points: 3, Position: 0},
		{ExamID: 7, SnapshotContent: "Frage zwei", SnapshotAnswer: "Antwort zwei", Points: 1, Position: 1},
	}

	var buf bytes.Buffer
	if err := NewXLSXEncoder().Encode(exam, items, &buf); err != nil {
		t.Fatalf("encode: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("sheets = %v, want questions and answers", sheets)
	}

	title, err := f.GetCellValue(sheets[0], "A1")
	if err != nil || title != "Sommerprüfung" {
		t.Fatalf("title cell = %q (err %v), want Sommerprüfung", title, err)
	}

	// Markup is sanitized exactly once on export.
	content, _ := f.GetCellValue(sheets[0], "B5")
	if content != "Zeile1\nZeile2fett" {
		t.Fatalf("question cell = %q, want sanitized content", content)
	}
	answer, _ := f.GetCellValue(sheets[1], "B4")
	if answer != "Antwort\nzweite" {
		t.Fatalf("answer cell = %q, want sanitized answer", answer)
	}

	points, _ := f.GetCellValue(sheets[0], "C5")
	if points != "3" {
		t.Fatalf("points cell = %q, want 3", points)
	}
}

func TestExportFilename(t *testing.T) {
	exam := &model.Exam{ID: 12, Title: "Abschluss Prüfung 2026"}
	got := ExportFilename(exam)
	want := "exam_12_Abschluss_Prüfung_2026.xlsx"
	if got != want {
		t.Fatalf("ExportFilename() = %q, want %q", got, want)
	}
}
