package service

import (
	"context"
	"fmt"
	"time"

	"kas-dashboard-svc/internal/aggregate"
	"kas-dashboard-svc/internal/models"
	"kas-dashboard-svc/internal/pagination"
	"kas-dashboard-svc/internal/resource"
	"kas-dashboard-svc/pkg/logger"
)

// NotificationFeed names one of the two paginated notification screens
type NotificationFeed string

const (
	// FeedDashboard is the notification list of the dashboard, grouped by date
	FeedDashboard NotificationFeed = "dashboard"
	// FeedLog is the notification log table
	FeedLog NotificationFeed = "log"
)

// NotificationView is the current page of a feed with its derived views.
// Groups is filled for the dashboard feed and Rows for the log feed.
type NotificationView struct {
	Feed       NotificationFeed            `json:"feed" example:"dashboard"`
	Items      []models.Notification       `json:"items"`
	Groups     []aggregate.DateGroup       `json:"groups,omitempty"`
	Rows       []aggregate.NotificationRow `json:"rows,omitempty"`
	Counts     aggregate.StatusCounts      `json:"counts"`
	Pagination pagination.State            `json:"pagination"`
	Loading    bool                        `json:"loading"`
	LastError  string                      `json:"lastError,omitempty"`
	LoadedAt   *time.Time                  `json:"loadedAt,omitempty"`
}

// NotificationService interface defines the notification screen methods.
// Every method returns the resulting view, also alongside resource.ErrLoadInFlight
// or a failed load, in which case the view holds the previous page.
type NotificationService interface {
	View(ctx context.Context, feed NotificationFeed) (*NotificationView, error)
	Refresh(ctx context.Context, feed NotificationFeed) (*NotificationView, error)
	SetPage(ctx context.Context, feed NotificationFeed, page int) (*NotificationView, error)
	SetSize(ctx context.Context, feed NotificationFeed, size int) (*NotificationView, error)
	Stats(ctx context.Context) (*models.NotificationStats, error)
}

// notificationService implements NotificationService interface
type notificationService struct {
	api      NotificationAPI
	feeds    map[NotificationFeed]*resource.Controller[models.Notification]
	location *time.Location
	logger   *logger.Logger
}

// NewNotificationService creates a notification service with one controller per feed
func NewNotificationService(api NotificationAPI, location *time.Location, logger *logger.Logger) NotificationService {
	if location == nil {
		location = time.Local
	}
	s := &notificationService{
		api:      api,
		feeds:    make(map[NotificationFeed]*resource.Controller[models.Notification], 2),
		location: location,
		logger:   logger,
	}
	for _, feed := range []NotificationFeed{FeedDashboard, FeedLog} {
		ctrl := resource.NewController[models.Notification]("notifications:"+string(feed), api.ListNotifications, pagination.DefaultSize, logger)
		ctrl.OnLoaded(s.logLoaded(feed))
		s.feeds[feed] = ctrl
	}
	return s
}

// ParseNotificationFeed validates a feed name
func ParseNotificationFeed(raw string) (NotificationFeed, error) {
	switch NotificationFeed(raw) {
	case FeedDashboard, FeedLog:
		return NotificationFeed(raw), nil
	}
	return "", newValidationError("feed", fmt.Sprintf("unknown notification feed %q", raw))
}

// View returns the feed, loading its first page on the first call
func (s *notificationService) View(ctx context.Context, feed NotificationFeed) (*NotificationView, error) {
	ctrl, err := s.controller(feed)
	if err != nil {
		return nil, err
	}
	snap, err := ctrl.Mount(ctx)
	return s.view(feed, snap), err
}

// Refresh reloads the current page of the feed
func (s *notificationService) Refresh(ctx context.Context, feed NotificationFeed) (*NotificationView, error) {
	ctrl, err := s.controller(feed)
	if err != nil {
		return nil, err
	}
	if !ctrl.Mounted() {
		snap, err := ctrl.Mount(ctx)
		return s.view(feed, snap), err
	}
	snap, err := ctrl.Refresh(ctx)
	return s.view(feed, snap), err
}

// SetPage moves the feed to a 0-indexed page
func (s *notificationService) SetPage(ctx context.Context, feed NotificationFeed, page int) (*NotificationView, error) {
	ctrl, err := s.controller(feed)
	if err != nil {
		return nil, err
	}
	snap, err := ctrl.SetPage(ctx, page)
	return s.view(feed, snap), err
}

// SetSize changes the page size of the feed and goes back to the first page
func (s *notificationService) SetSize(ctx context.Context, feed NotificationFeed, size int) (*NotificationView, error) {
	if !pagination.ValidSize(size) {
		return nil, newValidationError("size", fmt.Sprintf("size must be one of %v", pagination.SizeOptions))
	}
	ctrl, err := s.controller(feed)
	if err != nil {
		return nil, err
	}
	snap, err := ctrl.SetSize(ctx, size)
	return s.view(feed, snap), err
}

// Stats returns the delivery counters
func (s *notificationService) Stats(ctx context.Context) (*models.NotificationStats, error) {
	stats, err := s.api.NotificationStats(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get notification stats")
		return nil, err
	}
	return stats, nil
}

func (s *notificationService) controller(feed NotificationFeed) (*resource.Controller[models.Notification], error) {
	ctrl, ok := s.feeds[feed]
	if !ok {
		return nil, newValidationError("feed", fmt.Sprintf("unknown notification feed %q", feed))
	}
	return ctrl, nil
}

func (s *notificationService) view(feed NotificationFeed, snap resource.Snapshot[models.Notification]) *NotificationView {
	v := &NotificationView{
		Feed:       feed,
		Items:      snap.Items,
		Counts:     aggregate.CountByStatus(snap.Items),
		Pagination: snap.Pagination,
		Loading:    snap.Loading,
		LastError:  snap.LastError,
		LoadedAt:   snap.LoadedAt,
	}
	switch feed {
	case FeedDashboard:
		v.Groups = aggregate.GroupByDate(snap.Items, s.location)
	case FeedLog:
		v.Rows = aggregate.NotificationRows(snap.Items, s.location)
	}
	return v
}

func (s *notificationService) logLoaded(feed NotificationFeed) func(resource.Snapshot[models.Notification]) {
	return func(snap resource.Snapshot[models.Notification]) {
		counts := aggregate.CountByStatus(snap.Items)
		s.logger.WithFields(map[string]interface{}{
			"feed":    feed,
			"page":    snap.Pagination.Page,
			"sent":    counts.Sent,
			"failed":  counts.Failed,
			"pending": counts.Pending,
		}).Info("Notifications loaded")
	}
}
