package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"

	"github.com/xuri/excelize/v2"
)

// Format selects the export encoding. Each format has its own renderer over
// the shared Table abstraction.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a request parameter onto a Format; an empty value means
// CSV, matching the default of the export endpoints.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

func (f Format) Ext() string {
	return string(f)
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// Table is one logical grid: a sheet in a workbook, or a header plus rows in
// delimited text. All cells are pre-stringified.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// RenderAnalytics renders an analytics report. The CSV form carries only the
// summary metrics; the XLSX form gets one sheet per section.
func RenderAnalytics(rep *domain.AnalyticsReport, f Format) ([]byte, error) {
	tables := analyticsTables(rep)
	if f == FormatCSV {
		return renderCSV(tables[0]), nil
	}
	return renderXLSX(tables)
}

// RenderLoans renders a flat loan-record export as a single table.
func RenderLoans(name string, rows []domain.LoanRow, f Format) ([]byte, error) {
	t := loanTable(name, rows)
	if f == FormatCSV {
		return renderCSV(t), nil
	}
	return renderXLSX([]Table{t})
}

func analyticsTables(rep *domain.AnalyticsReport) []Table {
	summary := Table{
		Name:   "Summary",
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Borrowed", strconv.Itoa(rep.TotalBorrowed)},
			{"Total Returned", strconv.Itoa(rep.TotalReturned)},
			{"Total Overdue", strconv.Itoa(rep.TotalOverdue)},
		},
	}
	daily := Table{Name: "Daily", Header: []string{"Date", "Borrow Count"}}
	for _, d := range rep.Daily {
		daily.Rows = append(daily.Rows, []string{d.Date, strconv.Itoa(d.Count)})
	}
	books := Table{Name: "Top Books", Header: []string{"Book Title", "Count"}}
	for _, b := range rep.TopBooks {
		books.Rows = append(books.Rows, []string{b.Title, strconv.Itoa(b.Count)})
	}
	borrowers := Table{Name: "Top Borrowers", Header: []string{"Borrower", "Count"}}
	for _, b := range rep.TopBorrowers {
		borrowers.Rows = append(borrowers.Rows, []string{b.Name, strconv.Itoa(b.Count)})
	}
	return []Table{summary, daily, books, borrowers}
}

func loanTable(name string, rows []domain.LoanRow) Table {
	t := Table{
		Name:   name,
		Header: []string{"ID", "Book Title", "Borrower", "Borrow Date", "Due Date", "Return Date"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(int(r.ID)), r.BookTitle, r.BorrowerName,
			r.BorrowDate, r.DueDate, r.ReturnDate,
		})
	}
	return t
}

// renderCSV joins fields with plain commas. Embedded commas are not escaped;
// the upstream system behaved the same way.
func renderCSV(t Table) []byte {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.Header, ","))
	sb.WriteByte('\n')
	for _, row := range t.Rows {
		sb.WriteString(strings.Join(row, ","))
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// renderXLSX writes one sheet per table and buffers the whole workbook in
// memory. Column widths follow the longest stringified cell value, floored
// at 10 and padded by 2.
func renderXLSX(tables []Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", t.Name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return nil, err
		}

		if err := writeRow(f, t.Name, 1, t.Header); err != nil {
			return nil, err
		}
		for rowIdx, row := range t.Rows {
			if err := writeRow(f, t.Name, rowIdx+2, row); err != nil {
				return nil, err
			}
		}

		for col := range t.Header {
			width := len(t.Header[col])
			for _, row := range t.Rows {
				if col < len(row) && len(row[col]) > width {
					width = len(row[col])
				}
			}
			if width < 10 {
				width = 10
			}
			name, err := excelize.ColumnNumberToName(col + 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetColWidth(t.Name, name, name, float64(width+2)); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
