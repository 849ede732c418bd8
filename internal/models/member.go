package models

import "fmt"

// MemberStatus is the binary member state
type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberInactive MemberStatus = "inactive"
)

// Valid reports whether s is one of the two known states
func (s MemberStatus) Valid() bool {
	return s == MemberActive || s == MemberInactive
}

// ParseMemberStatus validates raw, defaulting an empty value to active
func ParseMemberStatus(raw string) (MemberStatus, error) {
	if raw == "" {
		return MemberActive, nil
	}
	s := MemberStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown member status %q", raw)
	}
	return s, nil
}

// Member is a dues-paying member as returned by the kas API
type Member struct {
	ID        string       `json:"id" example:"m1"`
	Nama      string       `json:"nama" example:"Budi Santoso"`
	NoHp      string       `json:"noHp" example:"081234567890"`
	Status    MemberStatus `json:"status" example:"active"`
	CreatedAt Timestamp    `json:"createdAt" swaggertype:"string" example:"2025-01-02T10:00:00Z"`
}

// IsActive reports whether the member may receive new invoices
func (m Member) IsActive() bool {
	return m.Status == MemberActive
}

// MemberInput is the body of member create/update calls
type MemberInput struct {
	Nama   string       `json:"nama" example:"Budi Santoso"`
	NoHp   string       `json:"noHp" example:"081234567890"`
	Status MemberStatus `json:"status" example:"active"`
}
