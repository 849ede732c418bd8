package service

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"kas-dashboard-svc/internal/aggregate"
	"kas-dashboard-svc/internal/models"
	"kas-dashboard-svc/pkg/logger"
)

// Stat card keys
const (
	CardTotalNotif    = "totalNotif"
	CardNotifTerkirim = "notifTerkirim"
	CardNotifGagal    = "notifGagal"
	CardNotifPending  = "notifPending"
	CardTotalMember   = "totalMember"
	CardTotalInvoice  = "totalInvoice"
	CardSudahLunas    = "sudahLunas"
	CardBelumLunas    = "belumLunas"
)

// DashboardStats are the stat card values. Member and invoice counters are only
// present when requested.
type DashboardStats struct {
	Notifications models.NotificationStats `json:"notifications"`
	Members       *aggregate.MemberCounts   `json:"members,omitempty"`
	Invoices      *aggregate.InvoiceCounts  `json:"invoices,omitempty"`
}

// Cards returns the target value of every stat card. The total notification card
// is the sum of the three status cards.
func (d DashboardStats) Cards() map[string]int {
	n := d.Notifications
	cards := map[string]int{
		CardTotalNotif:    n.NotifTerkirim + n.NotifGagal + n.NotifPending,
		CardNotifTerkirim: n.NotifTerkirim,
		CardNotifGagal:    n.NotifGagal,
		CardNotifPending:  n.NotifPending,
	}
	if d.Members != nil {
		cards[CardTotalMember] = d.Members.Active
	}
	if d.Invoices != nil {
		cards[CardTotalInvoice] = d.Invoices.Total
		cards[CardSudahLunas] = d.Invoices.Paid
		cards[CardBelumLunas] = d.Invoices.Unpaid
	}
	return cards
}

// StatFrame is one animation frame: the value currently shown on every card
type StatFrame map[string]int

// DashboardService interface defines dashboard service methods
type DashboardService interface {
	GetStats(ctx context.Context, includeCounts bool) (*DashboardStats, error)
	Animate(ctx context.Context, stats DashboardStats, duration time.Duration, frames <-chan time.Time, emit func(StatFrame)) error
}

// dashboardService implements DashboardService interface
type dashboardService struct {
	notifications NotificationAPI
	members       MemberAPI
	invoices      InvoiceAPI
	logger        *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(notifications NotificationAPI, members MemberAPI, invoices InvoiceAPI, logger *logger.Logger) DashboardService {
	return &dashboardService{
		notifications: notifications,
		members:       members,
		invoices:      invoices,
		logger:        logger,
	}
}

// GetStats fetches the notification counters and, with includeCounts, the member and
// invoice counters. The fetches run concurrently; the first failure fails the call.
func (s *dashboardService) GetStats(ctx context.Context, includeCounts bool) (*DashboardStats, error) {
	var stats DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.notifications.NotificationStats(gctx)
		if err != nil {
			return err
		}
		stats.Notifications = *n
		return nil
	})

	if includeCounts {
		g.Go(func() error {
			members, err := s.members.ListMembers(gctx)
			if err != nil {
				return err
			}
			counts := aggregate.CountMembers(members)
			stats.Members = &counts
			return nil
		})
		g.Go(func() error {
			invoices, err := s.invoices.ListInvoices(gctx)
			if err != nil {
				return err
			}
			counts := aggregate.CountInvoices(invoices)
			stats.Invoices = &counts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.WithError(err).WithField("include_counts", includeCounts).Error("Failed to get dashboard statistics")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"include_counts": includeCounts,
		"notif_sent":     stats.Notifications.NotifTerkirim,
		"notif_failed":   stats.Notifications.NotifGagal,
		"notif_pending":  stats.Notifications.NotifPending,
	}).Info("Dashboard statistics retrieved successfully")
	return &stats, nil
}

// Animate counts every card up from 0 to its value, one count-up per card, all driven
// by the same frame clock. emit receives the full set of card values whenever one changes.
func (s *dashboardService) Animate(ctx context.Context, stats DashboardStats, duration time.Duration, frames <-chan time.Time, emit func(StatFrame)) error {
	cards := stats.Cards()

	var mu sync.Mutex
	current := make(StatFrame, len(cards))
	for key := range cards {
		current[key] = 0
	}
	publish := func(key string, v int) {
		mu.Lock()
		defer mu.Unlock()
		current[key] = v
		frame := make(StatFrame, len(current))
		for k, val := range current {
			frame[k] = val
		}
		emit(frame)
	}

	g, gctx := errgroup.WithContext(ctx)
	feeds := make([]chan time.Time, 0, len(cards))
	for key, target := range cards {
		key, target := key, target
		feed := make(chan time.Time, 1)
		feeds = append(feeds, feed)
		g.Go(func() error {
			return aggregate.CountUp(gctx, target, duration, feed, func(v int) {
				publish(key, v)
			})
		})
	}

	// fan the shared clock out to every card until all of them have settled
	done := make(chan struct{})
	go func() {
		defer func() {
			for _, feed := range feeds {
				close(feed)
			}
		}()
		for {
			select {
			case <-done:
				return
			case <-gctx.Done():
				return
			case ts, ok := <-frames:
				if !ok {
					return
				}
				for _, feed := range feeds {
					select {
					case feed <- ts:
					case <-done:
						return
					case <-gctx.Done():
						return
					}
				}
			}
		}
	}()

	err := g.Wait()
	close(done)
	return err
}
