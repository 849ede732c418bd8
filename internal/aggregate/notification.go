// Package aggregate derives the grouped and summed views shown by the dashboard from
// already-fetched records. Nothing here performs I/O.
package aggregate

import (
	"fmt"
	"time"

	"kas-dashboard-svc/internal/models"
)

// shortMonths are the id-ID abbreviated month names
var shortMonths = [...]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// FormatDate renders t in loc as the id-ID short date, e.g. "2 Jan 2025"
func FormatDate(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%d %s %d", t.Day(), shortMonths[t.Month()-1], t.Year())
}

// FormatDateTime renders t in loc as the id-ID short date with time, e.g. "2 Jan 2025 14.05"
func FormatDateTime(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%s %02d.%02d", FormatDate(t, nil), t.Hour(), t.Minute())
}

// DateGroup is the notifications sent on one calendar date
type DateGroup struct {
	Date          string                `json:"date" example:"2 Jan 2025"`
	Notifications []models.Notification `json:"notifications"`
}

// GroupByDate partitions notifications by their date in loc. Groups keep the order in
// which their date first appears and notifications keep their original order.
func GroupByDate(notifs []models.Notification, loc *time.Location) []DateGroup {
	groups := make([]DateGroup, 0)
	index := make(map[string]int)

	for _, n := range notifs {
		key := FormatDate(n.Time.Time, loc)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DateGroup{Date: key})
		}
		groups[i].Notifications = append(groups[i].Notifications, n)
	}
	return groups
}

// StatusCounts are notification counts per normalized status
type StatusCounts struct {
	Total   int `json:"total" example:"30"`
	Sent    int `json:"sent" example:"25"`
	Failed  int `json:"failed" example:"3"`
	Pending int `json:"pending" example:"2"`
}

// CountByStatus counts notifications per status
func CountByStatus(notifs []models.Notification) StatusCounts {
	var c StatusCounts
	for _, n := range notifs {
		c.Total++
		switch n.Status {
		case models.NotificationSent:
			c.Sent++
		case models.NotificationFailed:
			c.Failed++
		default:
			c.Pending++
		}
	}
	return c
}

// NotificationRow is one line of the notification log table
type NotificationRow struct {
	ID          int64                     `json:"id" example:"17"`
	Receiver    string                    `json:"receiver" example:"081234567890"`
	Time        string                    `json:"time" example:"2 Jan 2025 14.05"`
	Status      models.NotificationStatus `json:"status" swaggertype:"string" example:"sent"`
	StatusLabel string                    `json:"statusLabel" example:"Sent"`
	Channel     string                    `json:"channel" example:"whatsapp"`
	Message     string                    `json:"message" example:"Tagihan kas Januari 2025"`
}

// NotificationRows renders notifications for the log table, "-" for missing fields
func NotificationRows(notifs []models.Notification, loc *time.Location) []NotificationRow {
	rows := make([]NotificationRow, 0, len(notifs))
	for _, n := range notifs {
		row := NotificationRow{
			ID:          n.ID,
			Receiver:    n.Receiver,
			Status:      n.Status,
			StatusLabel: n.Status.Label(),
			Channel:     orDash(n.Channel),
			Message:     orDash(n.Message),
			Time:        "-",
		}
		if !n.Time.IsZero() {
			row.Time = FormatDateTime(n.Time.Time, loc)
		}
		rows = append(rows, row)
	}
	return rows
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
