package sheets

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXSource serves grids from .xlsx workbooks under a base directory.
// The spreadsheet id is the workbook file name (".xlsx" optional).
type XLSXSource struct {
	dir string
}

func NewXLSX(dir string) *XLSXSource { return &XLSXSource{dir: dir} }

func (s *XLSXSource) path(spreadsheetID string) string {
	name := spreadsheetID
	if !strings.HasSuffix(strings.ToLower(name), ".xlsx") {
		name += ".xlsx"
	}
	return filepath.Join(s.dir, name)
}

func (s *XLSXSource) FetchGrid(spreadsheetID, tab string) ([][]string, error) {
	x, err := excelize.OpenFile(s.path(spreadsheetID))
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", spreadsheetID, err)
	}
	defer x.Close()

	idx, err := x.GetSheetIndex(tab)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, tab)
	}
	rows, err := x.GetRows(tab)
	if err != nil {
		return nil, fmt.Errorf("read tab %s: %w", tab, err)
	}
	return rows, nil
}

func (s *XLSXSource) Tabs(spreadsheetID string) ([]string, error) {
	x, err := excelize.OpenFile(s.path(spreadsheetID))
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", spreadsheetID, err)
	}
	defer x.Close()
	return x.GetSheetList(), nil
}
