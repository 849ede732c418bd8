package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNotificationStatus(t *testing.T) {
	cases := map[string]NotificationStatus{
		"Sent":      NotificationSent,
		"sent":      NotificationSent,
		"success":   NotificationSent,
		"Failed":    NotificationFailed,
		"failed":    NotificationFailed,
		"Pending":   NotificationPending,
		"pending":   NotificationPending,
		"":          NotificationPending,
		"delivered": NotificationPending,
	}
	for raw, want := range cases {
		got := NormalizeNotificationStatus(raw)
		assert.Equal(t, want, got, raw)
		// normalizing a canonical value gives it back
		assert.Equal(t, got, NormalizeNotificationStatus(string(got)), raw)
	}
}

func TestNotificationDecodeNormalizesStatus(t *testing.T) {
	body := `{"id":7,"receiver":"0812","time":"2025-01-02T10:11:12","status":"success","channel":"whatsapp"}`

	var n Notification
	require.NoError(t, json.Unmarshal([]byte(body), &n))

	assert.Equal(t, NotificationSent, n.Status)
	assert.Equal(t, "Sent", n.Status.Label())
	assert.Equal(t, time.Date(2025, 1, 2, 10, 11, 12, 0, time.UTC), n.Time.Time)
}

func TestTimestampLayouts(t *testing.T) {
	for _, s := range []string{
		"2025-03-04T05:06:07Z",
		"2025-03-04T05:06:07.123456",
		"2025-03-04 05:06:07",
		"2025-03-04",
	} {
		ts, err := ParseTimestamp(s)
		require.NoError(t, err, s)
		assert.Equal(t, 2025, ts.Year())
		assert.Equal(t, time.March, ts.Month())
	}

	_, err := ParseTimestamp("04/03/2025")
	assert.Error(t, err)
}

func TestTimestampNullRoundTrip(t *testing.T) {
	var inv Invoice
	require.NoError(t, json.Unmarshal([]byte(`{"id":"i1","createdAt":null,"paidAt":null}`), &inv))
	assert.True(t, inv.CreatedAt.IsZero())
	assert.Nil(t, inv.PaidAt)

	out, err := json.Marshal(inv.CreatedAt)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestParsePeriode(t *testing.T) {
	p, err := ParsePeriode("2024-01")
	require.NoError(t, err)
	assert.Equal(t, Periode("012024"), p)
	assert.Equal(t, 1, p.Month())
	assert.Equal(t, 2024, p.Year())
	assert.Equal(t, "Januari 2024", p.Label())

	p, err = ParsePeriode("122025")
	require.NoError(t, err)
	assert.Equal(t, "Desember 2025", p.Label())

	for _, bad := range []string{"", "2024-13", "13202", "ab2024", "01abcd"} {
		_, err := ParsePeriode(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseMemberStatus(t *testing.T) {
	s, err := ParseMemberStatus("")
	require.NoError(t, err)
	assert.Equal(t, MemberActive, s)

	s, err = ParseMemberStatus("inactive")
	require.NoError(t, err)
	assert.Equal(t, MemberInactive, s)

	_, err = ParseMemberStatus("banned")
	assert.Error(t, err)
}

func TestPaginatedResponseDecode(t *testing.T) {
	body := `{"data":[{"id":1,"status":"Failed"}],"page":2,"size":10,"totalItems":50,"totalPages":5,"hasNext":true,"hasPrevious":true}`

	var resp PaginatedResponse[Notification]
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	require.Len(t, resp.Data, 1)
	assert.Equal(t, NotificationFailed, resp.Data[0].Status)
	assert.Equal(t, PageMeta{Page: 2, Size: 10, TotalItems: 50, TotalPages: 5, HasNext: true, HasPrevious: true}, resp.Meta())
}
