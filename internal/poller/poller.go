// Package poller keeps the checks dashboard fresh: every interval it pulls
// the pending/processing/completed boards, the summary and the per-staff
// workload in one sweep and hands the result to the view. The loop is the
// module's only long-lived resource and stops with its context.
package poller

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/checkturnitin/adminctl/internal/api"
	"github.com/checkturnitin/adminctl/internal/models"
)

// Snapshot is one complete refresh of the checks dashboard.
type Snapshot struct {
	Page       int
	Pending    *api.CheckList
	Processing *api.CheckList
	Completed  *api.CheckList
	Summary    *models.CheckSummary
	Staff      []models.StaffCheckDetail
}

// TotalPages follows the pending board; the dashboard paginates all three
// boards with one cursor.
func (s *Snapshot) TotalPages() int {
	if s.Pending == nil || s.Pending.TotalPages < 1 {
		return 1
	}
	return s.Pending.TotalPages
}

type Poller struct {
	client   *api.Client
	log      *logrus.Logger
	interval time.Duration
	limit    int
	page     atomic.Int64
}

func New(client *api.Client, log *logrus.Logger, interval time.Duration, limit int) *Poller {
	p := &Poller{
		client:   client,
		log:      log,
		interval: interval,
		limit:    limit,
	}
	p.page.Store(1)
	return p
}

// SetPage moves the shared cursor; the next sweep picks it up.
func (p *Poller) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	p.page.Store(int64(page))
}

func (p *Poller) Page() int {
	return int(p.page.Load())
}

// Run fetches once immediately, then on every tick until ctx is cancelled.
// Each sweep ends in exactly one callback: update on success, fail on the
// first error (one transient notice per tick, never a half-applied view).
func (p *Poller) Run(ctx context.Context, update func(*Snapshot), fail func(error)) {
	p.log.Info("checks poller started")
	defer p.log.Info("checks poller stopped")

	p.sweep(ctx, update, fail)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.sweep(ctx, update, fail)
		}
	}
}

func (p *Poller) sweep(ctx context.Context, update func(*Snapshot), fail func(error)) {
	snap, err := p.Fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.log.Errorf("dashboard sweep failed: %v", err)
		fail(err)
		return
	}
	update(snap)
}

// Fetch pulls all five dashboard endpoints concurrently and returns the
// assembled snapshot, or the first error encountered.
func (p *Poller) Fetch(ctx context.Context) (*Snapshot, error) {
	page := p.Page()
	snap := &Snapshot{Page: page}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	keep := func(err error) {
		if err == nil {
			return
		}
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	wg.Add(5)
	go func() {
		defer wg.Done()
		list, err := p.client.ListPendingChecks(ctx, page, p.limit)
		snap.Pending = list
		keep(err)
	}()
	go func() {
		defer wg.Done()
		list, err := p.client.ListProcessingChecks(ctx, page, p.limit)
		snap.Processing = list
		keep(err)
	}()
	go func() {
		defer wg.Done()
		list, err := p.client.ListCompletedChecks(ctx, page, p.limit)
		snap.Completed = list
		keep(err)
	}()
	go func() {
		defer wg.Done()
		summary, err := p.client.GetChecksSummary(ctx)
		snap.Summary = summary
		keep(err)
	}()
	go func() {
		defer wg.Done()
		staff, err := p.client.ListStaffCheckDetails(ctx)
		snap.Staff = staff
		keep(err)
	}()
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return snap, nil
}
