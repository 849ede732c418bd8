package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kas-dashboard-svc/internal/models"
	"kas-dashboard-svc/internal/resource"
	"kas-dashboard-svc/pkg/logger"
)

func sampleNotifications(n int) []models.Notification {
	base := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	statuses := []models.NotificationStatus{models.NotificationSent, models.NotificationFailed, models.NotificationPending}
	out := make([]models.Notification, n)
	for i := range out {
		out[i] = models.Notification{
			ID:       int64(i + 1),
			Receiver: fmt.Sprintf("08%02d", i),
			Time:     models.NewTimestamp(base.Add(time.Duration(i) * 12 * time.Hour)),
			Status:   statuses[i%3],
		}
	}
	return out
}

func TestNotificationViewMountsOnce(t *testing.T) {
	api := &fakeKasAPI{notifications: sampleNotifications(25)}
	svc := NewNotificationService(api, time.UTC, logger.NewNop())
	ctx := context.Background()

	v, err := svc.View(ctx, FeedDashboard)
	require.NoError(t, err)
	assert.Len(t, v.Items, 10)
	assert.EqualValues(t, 25, v.Pagination.TotalItems)
	assert.Equal(t, 3, v.Pagination.TotalPages)
	require.NotEmpty(t, v.Groups)
	assert.Equal(t, "2 Jan 2025", v.Groups[0].Date)
	assert.Empty(t, v.Rows)

	_, err = svc.View(ctx, FeedDashboard)
	require.NoError(t, err)
	assert.EqualValues(t, 1, api.calls.Load())
}

func TestNotificationLogRows(t *testing.T) {
	api := &fakeKasAPI{notifications: sampleNotifications(4)}
	svc := NewNotificationService(api, time.UTC, logger.NewNop())

	v, err := svc.View(context.Background(), FeedLog)
	require.NoError(t, err)
	require.Len(t, v.Rows, 4)
	assert.Equal(t, "2 Jan 2025 09.00", v.Rows[0].Time)
	assert.Equal(t, "Failed", v.Rows[1].StatusLabel)
	assert.Equal(t, "-", v.Rows[0].Channel)
	assert.Equal(t, 2, v.Counts.Sent)
	assert.Nil(t, v.Groups)
}

func TestNotificationFeedsAreIndependent(t *testing.T) {
	api := &fakeKasAPI{notifications: sampleNotifications(25)}
	svc := NewNotificationService(api, time.UTC, logger.NewNop())
	ctx := context.Background()

	_, err := svc.View(ctx, FeedDashboard)
	require.NoError(t, err)
	v, err := svc.SetPage(ctx, FeedDashboard, 2)
	require.NoError(t, err)
	assert.Len(t, v.Items, 5)
	assert.True(t, v.Pagination.HasPrevious)

	logView, err := svc.View(ctx, FeedLog)
	require.NoError(t, err)
	assert.Equal(t, 0, logView.Pagination.Page)
}

func TestNotificationSetSize(t *testing.T) {
	api := &fakeKasAPI{notifications: sampleNotifications(25)}
	svc := NewNotificationService(api, time.UTC, logger.NewNop())
	ctx := context.Background()

	_, err := svc.SetSize(ctx, FeedLog, 7)
	assert.True(t, IsValidationError(err))

	_, err = svc.View(ctx, FeedLog)
	require.NoError(t, err)
	_, err = svc.SetPage(ctx, FeedLog, 1)
	require.NoError(t, err)

	v, err := svc.SetSize(ctx, FeedLog, 20)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Pagination.Page)
	assert.Equal(t, 20, v.Pagination.Size)
	assert.Len(t, v.Items, 20)
}

func TestNotificationFailedRefreshKeepsPage(t *testing.T) {
	api := &fakeKasAPI{notifications: sampleNotifications(12)}
	svc := NewNotificationService(api, time.UTC, logger.NewNop())
	ctx := context.Background()

	_, err := svc.View(ctx, FeedLog)
	require.NoError(t, err)

	api.listErr = errors.New("boom")
	v, err := svc.Refresh(ctx, FeedLog)
	assert.Error(t, err)
	assert.Len(t, v.Items, 10)
	assert.Equal(t, "boom", v.LastError)
}

func TestNotificationConcurrentRefreshIsDropped(t *testing.T) {
	api := &fakeKasAPI{notifications: sampleNotifications(3), block: make(chan struct{})}
	svc := NewNotificationService(api, time.UTC, logger.NewNop())
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := svc.View(ctx, FeedDashboard)
		done <- err
	}()
	require.Eventually(t, func() bool { return api.calls.Load() == 1 }, time.Second, time.Millisecond)

	_, err := svc.Refresh(ctx, FeedDashboard)
	assert.ErrorIs(t, err, resource.ErrLoadInFlight)

	close(api.block)
	require.NoError(t, <-done)
	assert.EqualValues(t, 1, api.calls.Load())
}

func TestParseNotificationFeed(t *testing.T) {
	f, err := ParseNotificationFeed("log")
	require.NoError(t, err)
	assert.Equal(t, FeedLog, f)

	_, err = ParseNotificationFeed("inbox")
	assert.True(t, IsValidationError(err))
}
