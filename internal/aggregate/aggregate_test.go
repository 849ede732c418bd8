package aggregate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kas-dashboard-svc/internal/models"
)

func ts(s string) models.Timestamp {
	t, err := models.ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestGroupByDateKeepsOrder(t *testing.T) {
	notifs := []models.Notification{
		{ID: 5, Time: ts("2025-01-03T09:00:00Z"), Status: models.NotificationSent},
		{ID: 4, Time: ts("2025-01-02T18:00:00Z"), Status: models.NotificationFailed},
		{ID: 3, Time: ts("2025-01-03T07:00:00Z"), Status: models.NotificationPending},
		{ID: 2, Time: ts("2025-08-17T07:00:00Z"), Status: models.NotificationSent},
	}

	groups := GroupByDate(notifs, time.UTC)

	require.Len(t, groups, 3)
	assert.Equal(t, "3 Jan 2025", groups[0].Date)
	assert.Equal(t, []int64{5, 3}, ids(groups[0].Notifications))
	assert.Equal(t, "2 Jan 2025", groups[1].Date)
	assert.Equal(t, "17 Agu 2025", groups[2].Date)
}

func TestGroupByDateUsesLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	notifs := []models.Notification{{ID: 1, Time: ts("2025-01-02T18:00:00Z")}}

	groups := GroupByDate(notifs, jakarta)
	require.Len(t, groups, 1)
	assert.Equal(t, "3 Jan 2025", groups[0].Date)

	assert.Empty(t, GroupByDate(nil, time.UTC))
}

func ids(notifs []models.Notification) []int64 {
	out := make([]int64, 0, len(notifs))
	for _, n := range notifs {
		out = append(out, n.ID)
	}
	return out
}

func TestCountByStatus(t *testing.T) {
	notifs := []models.Notification{
		{Status: models.NormalizeNotificationStatus("success")},
		{Status: models.NormalizeNotificationStatus("Sent")},
		{Status: models.NormalizeNotificationStatus("failed")},
		{Status: models.NormalizeNotificationStatus("queued")},
	}
	assert.Equal(t, StatusCounts{Total: 4, Sent: 2, Failed: 1, Pending: 1}, CountByStatus(notifs))
}

func TestNotificationRows(t *testing.T) {
	rows := NotificationRows([]models.Notification{
		{ID: 1, Receiver: "0812", Time: ts("2025-01-02T14:05:00Z"), Status: models.NotificationSent},
		{ID: 2, Receiver: "0813", Status: models.NotificationFailed, Channel: "email", Message: "hi"},
	}, time.UTC)

	require.Len(t, rows, 2)
	assert.Equal(t, "2 Jan 2025 14.05", rows[0].Time)
	assert.Equal(t, "Sent", rows[0].StatusLabel)
	assert.Equal(t, "-", rows[0].Channel)
	assert.Equal(t, "-", rows[0].Message)
	assert.Equal(t, "-", rows[1].Time)
	assert.Equal(t, "Failed", rows[1].StatusLabel)
	assert.Equal(t, "email", rows[1].Channel)
}

func TestRekapanExample(t *testing.T) {
	paidAt := ts("2024-01-10T08:00:00Z")
	members := []models.Member{{ID: "m1", Nama: "Budi"}}
	invoices := []models.Invoice{
		{MemberID: "m1", Periode: "012024", Status: models.InvoicePaid, Amount: 50000, PaidAt: &paidAt},
		{MemberID: "m1", Periode: "022024", Status: models.InvoiceUnpaid, Amount: 0},
	}

	r := BuildRekapan(members, invoices)

	assert.Equal(t, []models.Periode{"012024", "022024"}, r.Periodes)
	require.Len(t, r.Rows, 1)
	row := r.Rows[0]
	assert.Equal(t, int64(50000), row.TotalPaid)
	assert.Equal(t, 1, row.TotalUnpaid)
	assert.Equal(t, Cell{Status: models.InvoicePaid, Amount: 50000, PaidDate: &paidAt}, row.Payments["012024"])
	assert.Equal(t, 1, row.PaidPeriods(r.Periodes))
}

func TestRekapanMemberWithoutInvoices(t *testing.T) {
	members := []models.Member{{ID: "m1", Nama: "Budi"}, {ID: "m2", Nama: "Sari"}}
	invoices := []models.Invoice{
		{MemberID: "m1", Periode: "032024", Status: models.InvoicePaid, Amount: 50000},
		{MemberID: "m1", Periode: "012024", Status: models.InvoicePaid, Amount: 40000},
		{MemberID: "m1", Periode: "022024", Status: models.InvoicePaid, Amount: 30000},
	}

	r := BuildRekapan(members, invoices)

	require.Len(t, r.Rows, 2)
	assert.Equal(t, []models.Periode{"012024", "022024", "032024"}, r.Periodes)

	sari := r.Rows[1]
	assert.Equal(t, "m2", sari.MemberID)
	assert.Equal(t, len(r.Periodes), sari.TotalUnpaid)
	assert.Equal(t, int64(0), sari.TotalPaid)
	for _, p := range r.Periodes {
		assert.Equal(t, Cell{Status: models.InvoiceUnpaid, Amount: 0}, sari.Payments[p])
	}

	budi := r.Rows[0]
	assert.Equal(t, int64(120000), budi.TotalPaid)
	assert.Equal(t, 0, budi.TotalUnpaid)
}

func TestRekapanPeriodsSortLexicographically(t *testing.T) {
	invoices := []models.Invoice{
		{MemberID: "m1", Periode: "022024"},
		{MemberID: "m1", Periode: "012025"},
		{MemberID: "m1", Periode: "122023"},
	}
	r := BuildRekapan(nil, invoices)
	assert.Equal(t, []models.Periode{"012025", "022024", "122023"}, r.Periodes)
	assert.Empty(t, r.Rows)
}

func TestRekapanDuplicatePeriodInvoices(t *testing.T) {
	members := []models.Member{{ID: "m1"}}
	invoices := []models.Invoice{
		{MemberID: "m1", Periode: "012024", Status: models.InvoiceUnpaid, Amount: 50000},
		{MemberID: "m1", Periode: "012024", Status: models.InvoicePaid, Amount: 50000},
	}

	row := BuildRekapan(members, invoices).Rows[0]
	assert.Equal(t, models.InvoiceUnpaid, row.Payments["012024"].Status)
	assert.Equal(t, 0, row.TotalUnpaid)
	assert.Equal(t, int64(50000), row.TotalPaid)
}

func TestCountUpValue(t *testing.T) {
	d := 800 * time.Millisecond
	assert.Equal(t, 0, CountUpValue(100, 0, d))
	assert.Equal(t, 50, CountUpValue(100, 400*time.Millisecond, d))
	assert.Equal(t, 100, CountUpValue(100, d, d))
	assert.Equal(t, 100, CountUpValue(100, 2*d, d))
	assert.Equal(t, 7, CountUpValue(7, time.Millisecond, 0))

	prev := 0
	for ms := 0; ms <= 900; ms += 16 {
		v := CountUpValue(37, time.Duration(ms)*time.Millisecond, d)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
	assert.Equal(t, 37, prev)
}

func TestCountUpSettlesAtTarget(t *testing.T) {
	frames := make(chan time.Time, 64)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i <= 60; i++ {
		frames <- start.Add(time.Duration(i) * 16 * time.Millisecond)
	}

	var values []int
	err := CountUp(context.Background(), 25, 800*time.Millisecond, frames, func(v int) { values = append(values, v) })
	require.NoError(t, err)

	require.NotEmpty(t, values)
	assert.Equal(t, 0, values[0])
	assert.Equal(t, 25, values[len(values)-1])
	for i := 1; i < len(values); i++ {
		assert.Greater(t, values[i], values[i-1])
	}
}

func TestCountUpStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := CountUp(ctx, 10, time.Second, make(chan time.Time), func(int) {})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilters(t *testing.T) {
	members := []models.Member{
		{ID: "1", Nama: "Budi Santoso", NoHp: "0812", Status: models.MemberActive},
		{ID: "2", Nama: "Sari", NoHp: "0813", Status: models.MemberInactive},
	}
	assert.Len(t, FilterMembers(members, "budi"), 1)
	assert.Len(t, FilterMembers(members, "081"), 2)
	assert.Len(t, FilterMembers(members, "  "), 2)
	assert.Equal(t, "1", ActiveMembers(members)[0].ID)
	assert.Equal(t, MemberCounts{Total: 2, Active: 1, Inactive: 1}, CountMembers(members))

	invoices := []models.Invoice{
		{MemberName: "Budi", Periode: "012025", Status: models.InvoicePaid},
		{MemberName: "Sari", Periode: "022025", Status: models.InvoiceUnpaid},
	}
	assert.Len(t, FilterInvoices(invoices, "sari"), 1)
	assert.Len(t, FilterInvoices(invoices, "012025"), 1)
	assert.Len(t, FilterInvoices(invoices, "februari"), 1)
	assert.Equal(t, InvoiceCounts{Total: 2, Paid: 1, Unpaid: 1}, CountInvoices(invoices))
}
