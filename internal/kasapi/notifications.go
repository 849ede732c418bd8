package kasapi

import (
	"context"
	"fmt"
	"net/http"

	"kas-dashboard-svc/internal/models"
)

// ListNotifications returns one page of the notification log. page is 0-indexed.
func (c *Client) ListNotifications(ctx context.Context, page, size int) (*models.PaginatedResponse[models.Notification], error) {
	var out models.PaginatedResponse[models.Notification]
	path := fmt.Sprintf("/notifications?page=%d&size=%d", page, size)
	if err := c.do(ctx, request{op: "list notifications", method: http.MethodGet, path: path, auth: true}, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		out.Data = []models.Notification{}
	}
	return &out, nil
}

// NotificationStats returns the delivery counters
func (c *Client) NotificationStats(ctx context.Context) (*models.NotificationStats, error) {
	var out models.NotificationStats
	if err := c.do(ctx, request{op: "notification stats", method: http.MethodGet, path: "/notifications/stats", auth: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
