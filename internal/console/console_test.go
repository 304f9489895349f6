package console

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/checkturnitin/adminctl/internal/api"
	"github.com/checkturnitin/adminctl/internal/auth"
	"github.com/checkturnitin/adminctl/internal/export"
)

const testToken = "test-token"

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// syncBuffer captures console output; the suggest session writes from a
// timer goroutine, so access is locked.
type syncBuffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

// newConsole wires a Console against the given server with scripted input
// and a captured output buffer.
func newConsole(t *testing.T, serverURL, input string) (*Console, *syncBuffer) {
	return newConsoleReader(t, serverURL, strings.NewReader(input))
}

func newConsoleReader(t *testing.T, serverURL string, in io.Reader) (*Console, *syncBuffer) {
	t.Helper()

	authCtx := auth.NewContext(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, authCtx.SetToken(testToken))

	client := api.NewClient(serverURL, authCtx, testLogger())
	saver := export.NewSaver(t.TempDir())

	out := &syncBuffer{}
	c := New(client, authCtx, saver, testLogger(), in, out, 10, 50*time.Millisecond)
	return c, out
}

func newTestServer(t *testing.T, routes func(chi.Router)) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				if req.Header.Get("Authorization") != "Bearer "+testToken {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, req)
			})
		})
		routes(r)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestPurchasesEmptyStateHidesPagination(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/admin/purchases", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, map[string]any{
				"purchasesData": []any{}, "totalPages": 1, "totalPurchases": 0,
			})
		})
	})
	c, out := newConsole(t, srv.URL, "")

	require.NoError(t, c.Purchases(context.Background(), 1, api.DateRangeFilter{}))
	require.Contains(t, out.String(), "No purchases found")
	require.NotContains(t, out.String(), "Page 1")
}

func TestToggleUserStatusRoundTrip(t *testing.T) {
	var status atomic.Value
	status.Store("active")
	userBody := func() map[string]any {
		return map[string]any{
			"user": map[string]any{"_id": "u1", "email": "a@example.com", "status": status.Load()},
		}
	}
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/admin/user-search", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, userBody())
		})
		r.Get("/admin/user/u1", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, userBody())
		})
		r.Put("/admin/user/u1/status", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Status string `json:"status"`
			}
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			status.Store(body.Status)
			w.WriteHeader(http.StatusOK)
		})
	})
	c, out := newConsole(t, srv.URL, "")

	require.NoError(t, c.ToggleUserStatus(context.Background(), "a@example.com"))
	require.Contains(t, out.String(), "a@example.com is now inactive")

	require.NoError(t, c.ToggleUserStatus(context.Background(), "a@example.com"))
	require.Contains(t, out.String(), "a@example.com is now active")
}

func TestUserSearchMissShowsPlaceholder(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/admin/user-search", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, map[string]any{"user": nil})
		})
	})
	c, out := newConsole(t, srv.URL, "")

	require.Error(t, c.UserPage(context.Background(), "ghost@example.com"))
	require.Contains(t, out.String(), "No user found")
}

func TestUserPageSortToggle(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/admin/user-search", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, map[string]any{
				"user": map[string]any{"_id": "u1", "email": "a@example.com", "status": "active"},
			})
		})
		r.Get("/admin/user/u1", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, map[string]any{
				"user": map[string]any{"_id": "u1", "email": "a@example.com", "status": "active"},
				"transactions": map[string]any{
					"all": []map[string]any{
						{"_id": "t1", "amount": 10, "date": "2024-01-01", "type": "imePay", "status": "success"},
						{"_id": "t2", "amount": 99, "date": "2024-02-01", "type": "paddle", "status": "success"},
					},
				},
				"creditTransactions": []any{},
			})
		})
	})
	// toggle amount sort in the transactions list, then leave both lists
	c, out := newConsole(t, srv.URL, "a\nq\n")

	require.NoError(t, c.UserPage(context.Background(), "a@example.com"))
	require.Contains(t, out.String(), "sort: date desc")
	require.Contains(t, out.String(), "sort: amount desc")
	require.Contains(t, out.String(), "No credit transactions found")
}

func TestSuggestSessionIgnoresPartialIDs(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/admin/staff-pending-checks/{id}", func(w http.ResponseWriter, req *http.Request) {
			calls.Add(1)
			writeJSON(t, w, map[string]any{"data": []any{}})
		})
	})
	c, _ := newConsole(t, srv.URL, "")

	session := c.NewSuggestSession("s1")
	defer session.Close()

	ctx := context.Background()
	session.Type(ctx, "507f1f77")
	session.Type(ctx, "507f1f77bcf86cd79943901")  // 23 chars
	session.Type(ctx, "507f1f77bcf86cd7994390zz") // 24 but not hex

	time.Sleep(suggestQuiet + 100*time.Millisecond)
	require.Zero(t, calls.Load())
}

func TestSuggestSessionCoalescesKeystrokes(t *testing.T) {
	var calls atomic.Int32
	var lastQuery atomic.Value
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/admin/staff-pending-checks/{id}", func(w http.ResponseWriter, req *http.Request) {
			calls.Add(1)
			lastQuery.Store(req.URL.Query().Get("search"))
			writeJSON(t, w, map[string]any{"data": []map[string]any{
				{"_id": req.URL.Query().Get("search"), "userId": map[string]any{"email": "a@example.com"}},
			}})
		})
	})
	c, out := newConsole(t, srv.URL, "")

	session := c.NewSuggestSession("s1")
	defer session.Close()

	// three full IDs inside one quiet window: only the last survives
	ctx := context.Background()
	session.Type(ctx, "507f1f77bcf86cd799439011")
	session.Type(ctx, "507f1f77bcf86cd799439012")
	session.Type(ctx, "507f1f77bcf86cd799439013")

	require.Eventually(t, func() bool {
		return calls.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)
	time.Sleep(suggestQuiet + 100*time.Millisecond)

	require.Equal(t, int32(1), calls.Load())
	require.Equal(t, "507f1f77bcf86cd799439013", lastQuery.Load())
	require.Len(t, session.Suggestions(), 1)
	require.Contains(t, out.String(), "507f1f77bcf86cd799439013")
}

func TestUnreachableServerShowsFallbackMessage(t *testing.T) {
	c, out := newConsole(t, "http://127.0.0.1:1", "")

	require.Error(t, c.Purchases(context.Background(), 1, api.DateRangeFilter{}))
	require.Contains(t, out.String(), "error: ")
	// the fallback line carries a real message, never a bare prefix
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if strings.HasPrefix(line, "error: ") {
			require.NotEmpty(t, strings.TrimPrefix(line, "error: "))
		}
	}
}

func TestShopItemValidation(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {})
	c, out := newConsole(t, srv.URL, "")

	err := c.CreateShopItem(context.Background(), api.ShopItemRequest{Title: " "})
	require.Error(t, err)
	require.Contains(t, out.String(), "title is required")

	err = c.CreateShopItem(context.Background(), api.ShopItemRequest{
		Title: "Basic", CreditLimit: 10, Currency: "USD",
		Price: decimal.NewFromInt(5),
	})
	require.Error(t, err)
	require.Contains(t, out.String(), "Paddle product ID")
}

func TestTransferRequiresAllFields(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {})
	c, out := newConsole(t, srv.URL, "")

	err := c.Transfer(context.Background(), "c1", "s1", "", "workload")
	require.Error(t, err)
	require.Contains(t, out.String(), "required")
}

func TestSuggestSessionRequiresStaffID(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/admin/staff-pending-checks/{id}", func(w http.ResponseWriter, req *http.Request) {
			calls.Add(1)
			writeJSON(t, w, map[string]any{"data": []any{}})
		})
	})
	c, _ := newConsole(t, srv.URL, "")

	session := c.NewSuggestSession("")
	defer session.Close()

	session.Type(context.Background(), "507f1f77bcf86cd799439011")

	time.Sleep(suggestQuiet + 100*time.Millisecond)
	require.Zero(t, calls.Load())
}

func TestTransferInteractiveFlow(t *testing.T) {
	const checkID = "507f1f77bcf86cd799439011"
	var transferred atomic.Value
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/admin/staff-pending-checks/{id}", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, map[string]any{"data": []map[string]any{
				{"_id": req.URL.Query().Get("search"), "userId": map[string]any{"email": "a@example.com"}},
			}})
		})
		r.Post("/admin/transfer-check", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				CheckID string `json:"checkId"`
			}
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			transferred.Store(body.CheckID)
			w.WriteHeader(http.StatusOK)
		})
		r.Get("/admin/staff-status-transferhistory", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, map[string]any{"data": map[string]any{
				"transferHistory": []any{}, "onlineStaff": []any{}, "offlineStaff": []any{},
			}})
		})
	})

	pr, pw := io.Pipe()
	c, out := newConsoleReader(t, srv.URL, pr)

	done := make(chan error, 1)
	go func() {
		done <- c.TransferInteractive(context.Background(), "s1", "s2", "load balancing")
	}()

	_, err := pw.Write([]byte(checkID + "\n"))
	require.NoError(t, err)

	// the debounced lookup must land before the empty line accepts it
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), checkID)
	}, 2*time.Second, 10*time.Millisecond)

	_, err = pw.Write([]byte("\n"))
	require.NoError(t, err)

	require.NoError(t, <-done)
	require.Equal(t, checkID, transferred.Load())
	require.Contains(t, out.String(), "Check transferred successfully.")
}

func TestTogglePaymentMethodSavesWholeSet(t *testing.T) {
	var saved atomic.Value
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/admin/payment-methods", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, map[string]any{
				"stripe":  map[string]any{"enabled": true, "currencies": []string{"USD"}},
				"fonepay": map[string]any{"enabled": false, "currencies": []string{"NPR"}},
			})
		})
		r.Post("/admin/payment-methods", func(w http.ResponseWriter, req *http.Request) {
			var body map[string]struct {
				Enabled    bool     `json:"enabled"`
				Currencies []string `json:"currencies"`
			}
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			saved.Store(body)
			writeJSON(t, w, body)
		})
	})
	c, out := newConsole(t, srv.URL, "")

	require.NoError(t, c.TogglePaymentMethod(context.Background(), "stripe"))

	body := saved.Load().(map[string]struct {
		Enabled    bool     `json:"enabled"`
		Currencies []string `json:"currencies"`
	})
	// the toggled gateway flips, untouched ones ride along unchanged
	require.False(t, body["stripe"].Enabled)
	require.False(t, body["fonepay"].Enabled)
	require.Equal(t, []string{"NPR"}, body["fonepay"].Currencies)
	require.Contains(t, out.String(), "Payment method updated successfully")

	err := c.TogglePaymentMethod(context.Background(), "venmo")
	require.Error(t, err)
	require.Contains(t, out.String(), "unknown payment gateway")
}

func TestLoginUsageHintIsNotAToast(t *testing.T) {
	c, out := newConsole(t, "http://127.0.0.1:1", "")

	require.NoError(t, c.Login(context.Background(), "", ""))
	require.Contains(t, out.String(), "usage: adminctl login")
	require.NotContains(t, out.String(), "ok:")
}
