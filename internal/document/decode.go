package document

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Decoder extracts an ordered sequence of trimmed, non-empty paragraph
// lines from an uploaded document.
type Decoder interface {
	Paragraphs(r io.Reader) ([]string, error)
}

// DecoderForFile picks a decoder by file extension.
func DecoderForFile(filename string) (Decoder, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return TextDecoder{}, nil
	case ".xlsx":
		return XLSXDecoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported document type %q", filepath.Ext(filename))
	}
}

// TextDecoder treats each line of a plain-text file as one paragraph.
type TextDecoder struct{}

func (TextDecoder) Paragraphs(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if text := strings.TrimSpace(scanner.Text()); text != "" {
			lines = append(lines, text)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read text document: %w", err)
	}
	return lines, nil
}

// XLSXDecoder reads the first sheet of a workbook, joining the cells
// of each row into one paragraph.
type XLSXDecoder struct{}

func (XLSXDecoder) Paragraphs(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	var lines []string
	for _, row := range rows {
		var cells []string
		for _, cell := range row {
			if c := strings.TrimSpace(cell); c != "" {
				cells = append(cells, c)
			}
		}
		if len(cells) > 0 {
			lines = append(lines, strings.Join(cells, " "))
		}
	}
	return lines, nil
}
