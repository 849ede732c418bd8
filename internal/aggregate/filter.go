package aggregate

import (
	"strings"

	"kas-dashboard-svc/internal/models"
)

// FilterMembers keeps members whose name or phone contains query, case-insensitively.
// An empty query keeps everything.
func FilterMembers(members []models.Member, query string) []models.Member {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return members
	}
	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		if strings.Contains(strings.ToLower(m.Nama), q) || strings.Contains(strings.ToLower(m.NoHp), q) {
			out = append(out, m)
		}
	}
	return out
}

// ActiveMembers keeps the members that may receive new invoices
func ActiveMembers(members []models.Member) []models.Member {
	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		if m.IsActive() {
			out = append(out, m)
		}
	}
	return out
}

// FilterInvoices keeps invoices whose member name or periode contains query,
// case-insensitively. The periode also matches in its "Januari 2025" form.
func FilterInvoices(invoices []models.Invoice, query string) []models.Invoice {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return invoices
	}
	out := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if strings.Contains(strings.ToLower(inv.MemberName), q) ||
			strings.Contains(string(inv.Periode), q) ||
			strings.Contains(strings.ToLower(inv.Periode.Label()), q) {
			out = append(out, inv)
		}
	}
	return out
}

// MemberCounts are the member totals shown above the member table
type MemberCounts struct {
	Total    int `json:"total" example:"12"`
	Active   int `json:"active" example:"10"`
	Inactive int `json:"inactive" example:"2"`
}

// CountMembers counts members per status
func CountMembers(members []models.Member) MemberCounts {
	c := MemberCounts{Total: len(members)}
	for _, m := range members {
		if m.IsActive() {
			c.Active++
		} else {
			c.Inactive++
		}
	}
	return c
}

// InvoiceCounts are the invoice totals shown above the invoice table
type InvoiceCounts struct {
	Total  int `json:"total" example:"24"`
	Paid   int `json:"paid" example:"20"`
	Unpaid int `json:"unpaid" example:"4"`
}

// CountInvoices counts invoices per status
func CountInvoices(invoices []models.Invoice) InvoiceCounts {
	c := InvoiceCounts{Total: len(invoices)}
	for _, inv := range invoices {
		if inv.IsPaid() {
			c.Paid++
		} else {
			c.Unpaid++
		}
	}
	return c
}
