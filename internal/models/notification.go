package models

import "encoding/json"

// NotificationStatus is the normalized delivery outcome
type NotificationStatus string

const (
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
	NotificationPending NotificationStatus = "pending"
)

// NormalizeNotificationStatus maps every raw spelling the kas API emits onto one of the
// three statuses. Unknown values are pending.
func NormalizeNotificationStatus(raw string) NotificationStatus {
	switch raw {
	case "Sent", "sent", "success":
		return NotificationSent
	case "Failed", "failed":
		return NotificationFailed
	default:
		return NotificationPending
	}
}

// Label is the badge text shown in the notification log
func (s NotificationStatus) Label() string {
	switch s {
	case NotificationSent:
		return "Sent"
	case NotificationFailed:
		return "Failed"
	default:
		return "Pending"
	}
}

// UnmarshalJSON normalizes the raw status while decoding
func (s *NotificationStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NormalizeNotificationStatus(raw)
	return nil
}

// Notification is one delivery attempt from the notification log
type Notification struct {
	ID       int64              `json:"id" example:"17"`
	Receiver string             `json:"receiver" example:"081234567890"`
	Time     Timestamp          `json:"time" swaggertype:"string" example:"2025-01-02T10:00:00Z"`
	Status   NotificationStatus `json:"status" swaggertype:"string" enums:"sent,failed,pending"`
	Channel  string             `json:"channel,omitempty" example:"whatsapp"`
	Message  string             `json:"message,omitempty" example:"Tagihan kas Januari 2025"`
}

// NotificationStats are the delivery counters computed by the kas API
type NotificationStats struct {
	TotalNotif    int `json:"totalNotif" example:"30"`
	NotifTerkirim int `json:"notifTerkirim" example:"25"`
	NotifGagal    int `json:"notifGagal" example:"3"`
	NotifPending  int `json:"notifPending" example:"2"`
}
