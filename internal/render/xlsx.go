package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const maxSheetName = 31

// NamedTable is a table destined for its own worksheet.
type NamedTable struct {
	Name  string
	Table Table
}

type sheetStyles struct {
	header      int
	headerAlert int
	number      int
	center      int
}

// WriteXLSX writes one worksheet per table. Spanned cells are merged, header
// rows are bold, and headers of unbalanced journals are red.
func WriteXLSX(w io.Writer, tables []NamedTable) error {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newSheetStyles(f)
	if err != nil {
		return err
	}

	first := f.GetSheetName(0)
	used := make(map[string]bool)
	for i, nt := range tables {
		name := sheetName(nt.Name, i, used)
		if i == 0 {
			if err := f.SetSheetName(first, name); err != nil {
				return fmt.Errorf("renaming sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
		if err := writeSheet(f, name, nt.Table, styles); err != nil {
			return fmt.Errorf("writing sheet %s: %w", name, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var s sheetStyles
	var err error
	center := &excelize.Alignment{Horizontal: "center"}

	if s.header, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, Alignment: center}); err != nil {
		return s, fmt.Errorf("creating header style: %w", err)
	}
	if s.headerAlert, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: "FF0000"}, Alignment: center}); err != nil {
		return s, fmt.Errorf("creating alert style: %w", err)
	}
	if s.number, err = f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{Horizontal: "right"}}); err != nil {
		return s, fmt.Errorf("creating number style: %w", err)
	}
	if s.center, err = f.NewStyle(&excelize.Style{Alignment: center}); err != nil {
		return s, fmt.Errorf("creating center style: %w", err)
	}
	return s, nil
}

func writeSheet(f *excelize.File, sheet string, t Table, styles sheetStyles) error {
	for r, row := range t.Rows {
		col := 1
		for _, c := range row.Cells {
			start, err := excelize.CoordinatesToCellName(col, r+1)
			if err != nil {
				return err
			}
			end, err := excelize.CoordinatesToCellName(col+c.Span-1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, start, c.Text); err != nil {
				return err
			}
			if c.Span > 1 {
				if err := f.MergeCell(sheet, start, end); err != nil {
					return err
				}
			}
			if style, ok := cellStyle(t, row, c, styles); ok {
				if err := f.SetCellStyle(sheet, start, end, style); err != nil {
					return err
				}
			}
			col += c.Span
		}
	}
	return nil
}

func cellStyle(t Table, row Row, c Cell, styles sheetStyles) (int, bool) {
	switch {
	case row.Header && t.HasTag(TagNotBalanced):
		return styles.headerAlert, true
	case row.Header:
		return styles.header, true
	case c.HasTag(TagNumber):
		return styles.number, true
	case c.HasTag(TagCenter):
		return styles.center, true
	}
	return 0, false
}

var sheetNameEscaper = strings.NewReplacer(
	":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "(", "]", ")",
)

// sheetName makes a valid, unique worksheet name.
func sheetName(name string, i int, used map[string]bool) string {
	name = strings.TrimSpace(sheetNameEscaper.Replace(name))
	name = strings.Trim(name, "'")
	if name == "" {
		name = fmt.Sprintf("Block %d", i+1)
	}
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	base := name
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		r := []rune(base)
		if len(r)+len(suffix) > maxSheetName {
			r = r[:maxSheetName-len(suffix)]
		}
		name = string(r) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}
