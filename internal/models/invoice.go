package models

import (
	"fmt"
	"strconv"
	"strings"
)

// InvoiceStatus is the payment state of an invoice. unpaid -> paid is one-way.
type InvoiceStatus string

const (
	InvoiceUnpaid InvoiceStatus = "unpaid"
	InvoicePaid   InvoiceStatus = "paid"
)

// DefaultInvoiceAmount is the amount proposed for a new invoice
const DefaultInvoiceAmount int64 = 50000

// monthNames maps month numbers to Indonesian month names
var monthNames = map[int]string{
	1: "Januari", 2: "Februari", 3: "Maret", 4: "April",
	5: "Mei", 6: "Juni", 7: "Juli", 8: "Agustus",
	9: "September", 10: "Oktober", 11: "November", 12: "Desember",
}

// Periode is a billing period key encoded as MMYYYY
type Periode string

// ParsePeriode accepts MMYYYY or the YYYY-MM form value and returns the MMYYYY key
func ParsePeriode(raw string) (Periode, error) {
	raw = strings.TrimSpace(raw)
	if year, month, ok := strings.Cut(raw, "-"); ok {
		raw = month + year
	}
	p := Periode(raw)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate checks the fixed 6-digit MMYYYY encoding
func (p Periode) Validate() error {
	if len(p) != 6 {
		return fmt.Errorf("periode %q must be 6 characters (MMYYYY)", string(p))
	}
	month, err := strconv.Atoi(string(p[:2]))
	if err != nil || month < 1 || month > 12 {
		return fmt.Errorf("periode %q has an invalid month", string(p))
	}
	if _, err := strconv.Atoi(string(p[2:])); err != nil {
		return fmt.Errorf("periode %q has an invalid year", string(p))
	}
	return nil
}

// Month returns the month number, 0 when malformed
func (p Periode) Month() int {
	if len(p) != 6 {
		return 0
	}
	m, _ := strconv.Atoi(string(p[:2]))
	return m
}

// Year returns the year, 0 when malformed
func (p Periode) Year() int {
	if len(p) != 6 {
		return 0
	}
	y, _ := strconv.Atoi(string(p[2:]))
	return y
}

// Label renders the period as "Januari 2024"
func (p Periode) Label() string {
	name, ok := monthNames[p.Month()]
	if !ok {
		return string(p)
	}
	return fmt.Sprintf("%s %d", name, p.Year())
}

// Invoice is a dues invoice as returned by the kas API
type Invoice struct {
	ID              string        `json:"id" example:"inv-1"`
	MemberID        string        `json:"memberId" example:"m1"`
	MemberName      string        `json:"memberName" example:"Budi Santoso"`
	Periode         Periode       `json:"periode" swaggertype:"string" example:"012025"`
	Amount          int64         `json:"amount" example:"50000"`
	Status          InvoiceStatus `json:"status" example:"unpaid"`
	BuktiPembayaran string        `json:"buktiPembayaran,omitempty" example:"https://cdn.example.com/proof.jpg"`
	CreatedAt       Timestamp     `json:"createdAt" swaggertype:"string" example:"2025-01-02T10:00:00Z"`
	PaidAt          *Timestamp    `json:"paidAt,omitempty" swaggertype:"string" example:"2025-01-05T08:30:00Z"`
}

// IsPaid reports whether the invoice has been approved
func (i Invoice) IsPaid() bool {
	return i.Status == InvoicePaid
}

// InvoiceInput is the body of the invoice create call
type InvoiceInput struct {
	MemberID   string        `json:"memberId"`
	MemberName string        `json:"memberName"`
	Periode    Periode       `json:"periode"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
}
