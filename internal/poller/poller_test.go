package poller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/checkturnitin/adminctl/internal/api"
	"github.com/checkturnitin/adminctl/internal/auth"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newDashboardServer(t *testing.T, failSummary *atomic.Bool) (*httptest.Server, *atomic.Int64) {
	t.Helper()

	var requests atomic.Int64
	list := func(w http.ResponseWriter, req *http.Request) {
		requests.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"_id": "65a1b2c3d4e5f60718293a4b", "userId": map[string]string{"email": "u@example.com"}, "priority": "high"},
			},
			"totalPages": 4,
		})
	}

	r := chi.NewRouter()
	r.Get("/admin/pending-checks", list)
	r.Get("/admin/processing-checks", list)
	r.Get("/admin/completed-checks", list)
	r.Get("/admin/checks-summary", func(w http.ResponseWriter, req *http.Request) {
		if failSummary != nil && failSummary.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]int{"pending": 3, "processing": 2, "completed": 10, "failed": 1},
		})
	})
	r.Get("/admin/staff-each-detail", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"_id": "s1", "name": "Asha", "onlineStatus": true}},
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, &requests
}

func newTestPoller(t *testing.T, serverURL string, interval time.Duration) *Poller {
	t.Helper()
	authCtx := auth.NewContext(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, authCtx.SetToken("tok"))
	client := api.NewClient(serverURL, authCtx, testLogger())
	return New(client, testLogger(), interval, 10)
}

func TestFetchAssemblesSnapshot(t *testing.T) {
	srv, _ := newDashboardServer(t, nil)
	p := newTestPoller(t, srv.URL, time.Second)

	snap, err := p.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Pending.Checks, 1)
	require.Len(t, snap.Processing.Checks, 1)
	require.Len(t, snap.Completed.Checks, 1)
	require.Equal(t, 3, snap.Summary.Pending)
	require.Len(t, snap.Staff, 1)
	require.Equal(t, 4, snap.TotalPages())
}

func TestRunPollsUntilCancelled(t *testing.T) {
	srv, requests := newDashboardServer(t, nil)
	p := newTestPoller(t, srv.URL, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	var updates atomic.Int64
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx, func(*Snapshot) { updates.Add(1) }, func(error) {})
	}()

	require.Eventually(t, func() bool { return updates.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancel")
	}

	// no background fetch cycles leak after teardown
	settled := requests.Load()
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, settled, requests.Load())
}

func TestSweepFailureReportsOnce(t *testing.T) {
	var failSummary atomic.Bool
	failSummary.Store(true)
	srv, _ := newDashboardServer(t, &failSummary)
	p := newTestPoller(t, srv.URL, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var updates, failures atomic.Int64
	go p.Run(ctx, func(*Snapshot) { updates.Add(1) }, func(err error) {
		require.Error(t, err)
		failures.Add(1)
	})

	require.Eventually(t, func() bool { return failures.Load() >= 2 }, time.Second, 5*time.Millisecond)
	require.Zero(t, updates.Load())

	// recovery on the next tick once the backend is healthy again
	failSummary.Store(false)
	require.Eventually(t, func() bool { return updates.Load() >= 1 }, time.Second, 5*time.Millisecond)
}

func TestSetPageClamps(t *testing.T) {
	p := New(nil, testLogger(), time.Second, 10)
	p.SetPage(0)
	require.Equal(t, 1, p.Page())
	p.SetPage(3)
	require.Equal(t, 3, p.Page())
}
