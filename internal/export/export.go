// Package export renders the payment recap as CSV and XLSX files
package export

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"kas-dashboard-svc/internal/aggregate"
	"kas-dashboard-svc/internal/models"
)

// Format is an export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const (
	FileNamePrefix = "Rekapan_Uang_Kas_"
	SheetName      = "Rekapan Pembayaran"

	cellPaid   = "LUNAS"
	cellUnpaid = "BELUM"
)

// ParseFormat parses a format query value. Empty means CSV.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX, "excel":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unsupported export format %q", raw)
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// FileName returns Rekapan_Uang_Kas_YYYY-MM-DD.<ext> for the date of now
func FileName(now time.Time, f Format) string {
	return FileNamePrefix + now.Format("2006-01-02") + "." + string(f)
}

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah formats an amount with Indonesian digit grouping, e.g. "Rp 50.000"
func FormatRupiah(amount int64) string {
	return "Rp " + rupiahPrinter.Sprintf("%d", amount)
}

// Header returns the column titles for periodes
func Header(periodes []models.Periode) []string {
	header := make([]string, 0, len(periodes)+4)
	header = append(header, "Nama Member")
	for _, p := range periodes {
		header = append(header, string(p))
	}
	return append(header, "Total Lunas", "Total Belum", "Total Bayar")
}

// row is one exported line, shared by both formats
type row struct {
	name      string
	cells     []string
	paidCount int
	unpaid    int
	totalPaid string
}

func rows(r aggregate.Rekapan) []row {
	out := make([]row, 0, len(r.Rows))
	for _, rr := range r.Rows {
		cells := make([]string, len(r.Periodes))
		for i, p := range r.Periodes {
			cells[i] = cellUnpaid
			if rr.Payments[p].Status == models.InvoicePaid {
				cells[i] = cellPaid
			}
		}
		out = append(out, row{
			name:      rr.MemberName,
			cells:     cells,
			paidCount: rr.PaidPeriods(r.Periodes),
			unpaid:    rr.TotalUnpaid,
			totalPaid: FormatRupiah(rr.TotalPaid),
		})
	}
	return out
}
