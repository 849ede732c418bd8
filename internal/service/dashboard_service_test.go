package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kas-dashboard-svc/internal/models"
	"kas-dashboard-svc/pkg/logger"
)

func TestDashboardStats(t *testing.T) {
	api := &fakeKasAPI{
		members: sampleMembers(),
		invoices: []models.Invoice{
			{ID: "i1", Status: models.InvoicePaid},
			{ID: "i2", Status: models.InvoiceUnpaid},
		},
		stats: models.NotificationStats{TotalNotif: 99, NotifTerkirim: 5, NotifGagal: 2, NotifPending: 1},
	}
	svc := NewDashboardService(api, api, api, logger.NewNop())
	ctx := context.Background()

	stats, err := svc.GetStats(ctx, false)
	require.NoError(t, err)
	assert.Nil(t, stats.Members)
	assert.Nil(t, stats.Invoices)
	assert.Equal(t, 8, stats.Cards()[CardTotalNotif])

	stats, err = svc.GetStats(ctx, true)
	require.NoError(t, err)
	require.NotNil(t, stats.Members)
	require.NotNil(t, stats.Invoices)

	cards := stats.Cards()
	assert.Equal(t, 2, cards[CardTotalMember])
	assert.Equal(t, 2, cards[CardTotalInvoice])
	assert.Equal(t, 1, cards[CardSudahLunas])
	assert.Equal(t, 1, cards[CardBelumLunas])
}

func TestDashboardStatsFailure(t *testing.T) {
	api := &fakeKasAPI{listErr: errors.New("down")}
	svc := NewDashboardService(api, api, api, logger.NewNop())

	_, err := svc.GetStats(context.Background(), true)
	assert.Error(t, err)
}

func TestDashboardAnimateSettlesOnTargets(t *testing.T) {
	svc := NewDashboardService(&fakeKasAPI{}, nil, nil, logger.NewNop())
	stats := DashboardStats{Notifications: models.NotificationStats{NotifTerkirim: 40, NotifGagal: 3, NotifPending: 7}}

	frames := make(chan time.Time, 61)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i <= 60; i++ {
		frames <- start.Add(time.Duration(i) * 16 * time.Millisecond)
	}

	var got []StatFrame
	err := svc.Animate(context.Background(), stats, 800*time.Millisecond, frames, func(f StatFrame) {
		got = append(got, f)
	})
	require.NoError(t, err)
	require.NotEmpty(t, got)

	last := got[len(got)-1]
	assert.Equal(t, StatFrame(stats.Cards()), last)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i][CardNotifTerkirim], got[i-1][CardNotifTerkirim])
	}
}

func TestDashboardAnimateStopsOnCancel(t *testing.T) {
	svc := NewDashboardService(&fakeKasAPI{}, nil, nil, logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Animate(ctx, DashboardStats{}, time.Second, make(chan time.Time), func(StatFrame) {})
	assert.ErrorIs(t, err, context.Canceled)
}
