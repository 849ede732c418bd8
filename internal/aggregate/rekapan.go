package aggregate

import (
	"sort"

	"kas-dashboard-svc/internal/models"
)

// Cell is the payment state of one member for one period
type Cell struct {
	Status   models.InvoiceStatus `json:"status" swaggertype:"string" example:"paid"`
	Amount   int64                `json:"amount" example:"50000"`
	PaidDate *models.Timestamp    `json:"paidDate,omitempty" swaggertype:"string"`
}

// RekapanRow is one member's line of the payment recap
type RekapanRow struct {
	MemberID    string                  `json:"memberId" example:"m1"`
	MemberName  string                  `json:"memberName" example:"Budi Santoso"`
	Payments    map[models.Periode]Cell `json:"payments"`
	TotalPaid   int64                   `json:"totalPaid" example:"50000"`
	TotalUnpaid int                     `json:"totalUnpaid" example:"1"`
}

// PaidPeriods counts the periods of periodes whose cell is paid
func (r RekapanRow) PaidPeriods(periodes []models.Periode) int {
	n := 0
	for _, p := range periodes {
		if r.Payments[p].Status == models.InvoicePaid {
			n++
		}
	}
	return n
}

// Rekapan is the member-by-period payment matrix
type Rekapan struct {
	Periodes []models.Periode `json:"periodes" swaggertype:"array,string"`
	Rows     []RekapanRow     `json:"rows"`
}

type cellKey struct {
	memberID string
	periode  models.Periode
}

// BuildRekapan builds one row per member over the sorted set of every period that has
// an invoice. A period without an invoice for the member is an unpaid cell with amount 0.
// When a member has several invoices for one period the first one fills the cell.
func BuildRekapan(members []models.Member, invoices []models.Invoice) Rekapan {
	seen := make(map[models.Periode]struct{})
	byCell := make(map[cellKey]models.Invoice, len(invoices))
	paidCells := make(map[cellKey]bool)
	paidTotals := make(map[string]int64)

	for _, inv := range invoices {
		seen[inv.Periode] = struct{}{}
		k := cellKey{memberID: inv.MemberID, periode: inv.Periode}
		if _, ok := byCell[k]; !ok {
			byCell[k] = inv
		}
		if inv.IsPaid() {
			paidCells[k] = true
			paidTotals[inv.MemberID] += inv.Amount
		}
	}

	periodes := make([]models.Periode, 0, len(seen))
	for p := range seen {
		periodes = append(periodes, p)
	}
	sort.Slice(periodes, func(i, j int) bool { return periodes[i] < periodes[j] })

	rows := make([]RekapanRow, 0, len(members))
	for _, m := range members {
		row := RekapanRow{
			MemberID:   m.ID,
			MemberName: m.Nama,
			Payments:   make(map[models.Periode]Cell, len(periodes)),
			TotalPaid:  paidTotals[m.ID],
		}
		for _, p := range periodes {
			k := cellKey{memberID: m.ID, periode: p}
			inv, ok := byCell[k]
			if !ok {
				row.Payments[p] = Cell{Status: models.InvoiceUnpaid, Amount: 0}
				row.TotalUnpaid++
				continue
			}
			cell := Cell{Status: inv.Status, Amount: inv.Amount}
			if inv.IsPaid() {
				cell.PaidDate = inv.PaidAt
			}
			row.Payments[p] = cell
			if !paidCells[k] {
				row.TotalUnpaid++
			}
		}
		rows = append(rows, row)
	}

	return Rekapan{Periodes: periodes, Rows: rows}
}
