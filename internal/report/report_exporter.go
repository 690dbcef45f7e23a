package report

import (
	"bytes"
	"fmt"
	"time"

	reporterrors "aparthotel/internal/report/errors"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const (
	FormatPDF   = "pdf"
	FormatExcel = "xlsx"

	contentTypePDF   = "application/pdf"
	contentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Export is a rendered report file.
type Export struct {
	Data        []byte
	Filename    string
	ContentType string
}

//go:generate mockgen -source=report_exporter.go -destination=mock/report_exporter_mock.go -package=mock
type Exporter interface {
	General(rep GeneralReport, format string) (Export, error)
	Financial(rep FinancialReportResponse, format string) (Export, error)
}

type exporter struct {
	now func() time.Time
}

func NewExporter() Exporter {
	return &exporter{now: time.Now}
}

func (e *exporter) General(rep GeneralReport, format string) (Export, error) {
	stamp := e.now().Format("20060102_150405")

	headers := []string{"Year", "Month", "Bookings", "Income"}
	rows := make([][]any, 0, len(rep.ByMonth))
	for _, m := range rep.ByMonth {
		rows = append(rows, []any{m.Year, m.Month, m.Bookings, m.Income})
	}

	propHeaders := []string{"Property", "Bookings", "Income"}
	propRows := make([][]any, 0, len(rep.ByProperty))
	for _, p := range rep.ByProperty {
		propRows = append(propRows, []any{p.Name, p.Bookings, p.Income})
	}

	summary := [][2]string{
		{"Total income", fmt.Sprintf("%.2f", rep.TotalIncome)},
		{"Bookings", fmt.Sprint(rep.BookingCount)},
		{"Guest nights", fmt.Sprint(rep.GuestNights)},
	}
	if rep.From != "" {
		summary = append(summary, [2]string{"Period", rep.From + " - " + rep.To})
	}

	switch format {
	case FormatExcel:
		f := excelize.NewFile()
		defer f.Close()

		if err := writeSheet(f, "Summary", []string{"Metric", "Value"}, pairsToRows(summary)); err != nil {
			return Export{}, err
		}
		if err := writeSheet(f, "By month", headers, rows); err != nil {
			return Export{}, err
		}
		if err := writeSheet(f, "By property", propHeaders, propRows); err != nil {
			return Export{}, err
		}
		return e.excel(f, fmt.Sprintf("general_report_%s.xlsx", stamp))

	case FormatPDF:
		pdf := newPDF("General Report")
		pdfPairs(pdf, summary)
		pdfTable(pdf, "By month", headers, rows)
		pdfTable(pdf, "By property", propHeaders, propRows)
		return e.pdf(pdf, fmt.Sprintf("general_report_%s.pdf", stamp))

	default:
		return Export{}, reporterrors.ErrUnsupportedFormat
	}
}

func (e *exporter) Financial(rep FinancialReportResponse, format string) (Export, error) {
	name := fmt.Sprintf("financial_report_%04d_%02d", rep.Year, rep.Month)
	pairs := [][2]string{
		{"Property", rep.PropertyGroupName},
		{"Period", fmt.Sprintf("%04d-%02d", rep.Year, rep.Month)},
		{"Bookings", fmt.Sprint(rep.BookingCount)},
		{"Rental income", fmt.Sprintf("%.2f", rep.RentalIncome)},
		{"Total expenses", fmt.Sprintf("%.2f", rep.TotalExpenses)},
		{"Net income", fmt.Sprintf("%.2f", rep.NetIncome)},
		{"Company share", fmt.Sprintf("%.2f", rep.CompanyShare)},
		{"Owner share", fmt.Sprintf("%.2f", rep.OwnerShare)},
		{"Generated", rep.DateGenerated},
	}

	switch format {
	case FormatExcel:
		f := excelize.NewFile()
		defer f.Close()

		if err := writeSheet(f, "Financial", []string{"Item", "Value"}, pairsToRows(pairs)); err != nil {
			return Export{}, err
		}
		return e.excel(f, name+".xlsx")

	case FormatPDF:
		pdf := newPDF("Financial Report")
		pdfPairs(pdf, pairs)
		return e.pdf(pdf, name+".pdf")

	default:
		return Export{}, reporterrors.ErrUnsupportedFormat
	}
}

func (e *exporter) excel(f *excelize.File, filename string) (Export, error) {
	_ = f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return Export{}, err
	}
	return Export{Data: buf.Bytes(), Filename: filename, ContentType: contentTypeExcel}, nil
}

func (e *exporter) pdf(pdf *gofpdf.Fpdf, filename string) (Export, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Export{}, err
	}
	return Export{Data: buf.Bytes(), Filename: filename, ContentType: contentTypePDF}, nil
}

func pairsToRows(pairs [][2]string) [][]any {
	rows := make([][]any, len(pairs))
	for i, p := range pairs {
		rows[i] = []any{p[0], p[1]}
	}
	return rows
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func newPDF(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(14)
	return pdf
}

func pdfPairs(pdf *gofpdf.Fpdf, pairs [][2]string) {
	for _, p := range pairs {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(50, 7, p[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(80, 7, p[1], "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

func pdfTable(pdf *gofpdf.Fpdf, title string, headers []string, rows [][]any) {
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)

	width := 180 / float64(len(headers))
	pdf.SetFont("Arial", "B", 9)
	for _, h := range headers {
		pdf.CellFormat(width, 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		for _, v := range row {
			text := fmt.Sprint(v)
			if f, ok := v.(float64); ok {
				text = fmt.Sprintf("%.2f", f)
			}
			pdf.CellFormat(width, 6, text, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}
