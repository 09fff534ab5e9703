// Package spreadsheet строит xlsx-книги из записей доменных данных.
package spreadsheet

import (
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"event-management-service/internal/model"
)

const (
	titleRow  = 1
	headerRow = 2
	firstData = 3
)

// Column описывает колонку листа: заголовок, поле записи, ширину и форматтер.
type Column struct {
	Header string
	Field  string
	Width  float64
	Format Formatter
}

// Schema задаёт фиксированную схему листа для одного домена.
type Schema struct {
	Item    model.ExportItemID
	Title   string
	Sheet   string
	File    string
	Columns []Column
}

// ErrEmptySchema возвращается, если у схемы нет колонок.
var ErrEmptySchema = errors.New("schema has no columns")

// Build формирует книгу по схеме и возвращает её содержимое.
// В первой строке объединённый заголовок, во второй шапка колонок, далее данные
// в порядке входных записей. Пустой набор записей даёт книгу только с шапкой.
// Значения time.Time переводятся в loc до форматирования; nil оставляет их как есть.
func Build(schema Schema, records []model.Record, loc *time.Location) ([]byte, error) {
	if len(schema.Columns) == 0 {
		return nil, ErrEmptySchema
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := schema.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	lastCol, err := excelize.ColumnNumberToName(len(schema.Columns))
	if err != nil {
		return nil, fmt.Errorf("column name: %w", err)
	}

	if err := writeTitle(f, sheet, schema.Title, lastCol, styles.title); err != nil {
		return nil, err
	}

	for i, col := range schema.Columns {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetCellStr(sheet, fmt.Sprintf("%s%d", name, headerRow), col.Header); err != nil {
			return nil, fmt.Errorf("set header %q: %w", col.Header, err)
		}
		if col.Width > 0 {
			if err := f.SetColWidth(sheet, name, name, col.Width); err != nil {
				return nil, fmt.Errorf("set width %s: %w", name, err)
			}
		}
	}
	headerStart := fmt.Sprintf("A%d", headerRow)
	headerEnd := fmt.Sprintf("%s%d", lastCol, headerRow)
	if err := f.SetCellStyle(sheet, headerStart, headerEnd, styles.header); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for r, rec := range records {
		row := firstData + r
		for c, col := range schema.Columns {
			name, _ := excelize.ColumnNumberToName(c + 1)
			cell := fmt.Sprintf("%s%d", name, row)
			if err := f.SetCellStr(sheet, cell, formatCell(col, rec, loc)); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}
	if len(records) > 0 {
		end := fmt.Sprintf("%s%d", lastCol, firstData+len(records)-1)
		if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", firstData), end, styles.data); err != nil {
			return nil, fmt.Errorf("style data: %w", err)
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: fmt.Sprintf("A%d", firstData),
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func formatCell(col Column, rec model.Record, loc *time.Location) string {
	v, ok := rec[col.Field]
	if !ok || v == nil {
		return ""
	}
	if loc != nil {
		switch t := v.(type) {
		case time.Time:
			v = t.In(loc)
		case *time.Time:
			if t != nil {
				v = t.In(loc)
			}
		}
	}
	format := col.Format
	if format == nil {
		format = Text
	}
	return format(v)
}

func writeTitle(f *excelize.File, sheet, title, lastCol string, style int) error {
	if err := f.SetCellStr(sheet, "A1", title); err != nil {
		return fmt.Errorf("set title: %w", err)
	}
	end := fmt.Sprintf("%s%d", lastCol, titleRow)
	if lastCol != "A" {
		if err := f.MergeCell(sheet, "A1", end); err != nil {
			return fmt.Errorf("merge title: %w", err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", end, style); err != nil {
		return fmt.Errorf("style title: %w", err)
	}
	return f.SetRowHeight(sheet, titleRow, 24)
}

type sheetStyles struct {
	title  int
	header int
	data   int
}

func newStyles(f *excelize.File) (sheetStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	title, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("title style: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("header style: %w", err)
	}

	data, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("data style: %w", err)
	}

	return sheetStyles{title: title, header: header, data: data}, nil
}
