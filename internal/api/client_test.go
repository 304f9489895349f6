package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/checkturnitin/adminctl/internal/auth"
)

const testToken = "test-token"

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newFakeAdminAPI serves the subset of admin endpoints the tests exercise,
// enforcing the bearer token the way the real backend does.
func newFakeAdminAPI(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()

	r.Post("/users/admin-login", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		if body.Password != "correct" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(t, w, map[string]string{"token": testToken})
	})

	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				if req.Header.Get("Authorization") != "Bearer "+testToken {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				if req.Header.Get("X-Request-ID") == "" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				next.ServeHTTP(w, req)
			})
		})

		r.Get("/admin/purchases", func(w http.ResponseWriter, req *http.Request) {
			if req.URL.Query().Get("email") == "none@example.com" {
				writeJSON(t, w, map[string]any{
					"purchasesData": []any{}, "totalPages": 1, "totalPurchases": 0,
				})
				return
			}
			require.Equal(t, "2", req.URL.Query().Get("page"))
			require.Equal(t, "10", req.URL.Query().Get("limit"))
			writeJSON(t, w, map[string]any{
				"purchasesData": []map[string]any{
					{"_id": "p1", "email": "a@example.com", "amount": 100, "currency": "NPR", "date": "2024-01-01"},
					{"_id": "p2", "email": "b@example.com", "amount": "49.99", "currency": "USD", "date": "2024-02-01"},
				},
				"totalPages":     3,
				"totalPurchases": 25,
			})
		})

		r.Put("/admin/user/{id}/status", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Status string `json:"status"`
			}
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			if body.Status != "active" && body.Status != "inactive" {
				w.WriteHeader(http.StatusBadRequest)
				writeJSON(t, w, map[string]string{"message": "unknown status"})
				return
			}
			w.WriteHeader(http.StatusOK)
		})

		r.Post("/admin/user/{id}/add-credits", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Credits  decimal.Decimal `json:"credits"`
				AdminPin string          `json:"adminPin"`
			}
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			if body.AdminPin != "1234" {
				w.WriteHeader(http.StatusForbidden)
				writeJSON(t, w, map[string]string{"message": "Invalid admin PIN"})
				return
			}
			w.WriteHeader(http.StatusOK)
		})

		r.Post("/admin/fonepay-recheck-transaction", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, map[string]string{"message": "Transaction verified"})
		})

		r.Post("/admin/giftcards/generate", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			writeJSON(t, w, map[string]string{"error": "Batch limit exceeded"})
		})

		r.Get("/admin/giftcards/batch/{n}/export", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte("code,amount\nGC-1,10\n"))
		})

		r.Get("/admin/boom", func(w http.ResponseWriter, req *http.Request) {
			// failure with no body at all
			w.WriteHeader(http.StatusInternalServerError)
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func newTestClient(t *testing.T, serverURL string, loggedIn bool) (*Client, *auth.Context) {
	t.Helper()
	authCtx := auth.NewContext(filepath.Join(t.TempDir(), "token"))
	if loggedIn {
		require.NoError(t, authCtx.SetToken(testToken))
	}
	return NewClient(serverURL, authCtx, testLogger()), authCtx
}

func TestLoginStoresToken(t *testing.T) {
	srv := newFakeAdminAPI(t)
	client, authCtx := newTestClient(t, srv.URL, false)

	require.NoError(t, client.Login(context.Background(), "admin@example.com", "correct"))
	require.Equal(t, testToken, authCtx.Token())
}

func TestLoginFailureUsesFallback(t *testing.T) {
	srv := newFakeAdminAPI(t)
	client, authCtx := newTestClient(t, srv.URL, false)

	err := client.Login(context.Background(), "admin@example.com", "wrong")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Email or Password is wrong", apiErr.Message)
	require.False(t, authCtx.LoggedIn())
}

func TestAuthenticatedCallWithoutToken(t *testing.T) {
	srv := newFakeAdminAPI(t)
	client, _ := newTestClient(t, srv.URL, false)

	_, err := client.ListPurchases(context.Background(), 1, 10, DateRangeFilter{})
	require.ErrorIs(t, err, auth.ErrNotLoggedIn)
}

func TestListPurchasesDecodesEnvelope(t *testing.T) {
	srv := newFakeAdminAPI(t)
	client, _ := newTestClient(t, srv.URL, true)

	list, err := client.ListPurchases(context.Background(), 2, 10, DateRangeFilter{Email: "a@example.com"})
	require.NoError(t, err)
	require.Equal(t, 3, list.TotalPages)
	require.Equal(t, 25, list.TotalPurchases)
	require.Len(t, list.Purchases, 2)
	require.True(t, list.Purchases[0].Amount.Equal(decimal.NewFromInt(100)))
	// quoted amounts decode the same way
	require.True(t, list.Purchases[1].Amount.Equal(decimal.RequireFromString("49.99")))
}

func TestEmptyListDecodes(t *testing.T) {
	srv := newFakeAdminAPI(t)
	client, _ := newTestClient(t, srv.URL, true)

	list, err := client.ListPurchases(context.Background(), 1, 10, DateRangeFilter{Email: "none@example.com"})
	require.NoError(t, err)
	require.Empty(t, list.Purchases)
	require.Equal(t, 1, list.TotalPages)
}

func TestUpdateUserStatusRoundTrip(t *testing.T) {
	srv := newFakeAdminAPI(t)
	client, _ := newTestClient(t, srv.URL, true)

	require.NoError(t, client.UpdateUserStatus(context.Background(), "u1", "inactive"))
	require.NoError(t, client.UpdateUserStatus(context.Background(), "u1", "active"))

	err := client.UpdateUserStatus(context.Background(), "u1", "banned")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "unknown status", apiErr.Message)
}

func TestServerMessagePreferredOverFallback(t *testing.T) {
	srv := newFakeAdminAPI(t)
	client, _ := newTestClient(t, srv.URL, true)

	err := client.AddCredits(context.Background(), "u1", decimal.NewFromInt(5), "0000")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Invalid admin PIN", apiErr.Message)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestErrorFieldEnvelope(t *testing.T) {
	srv := newFakeAdminAPI(t)
	client, _ := newTestClient(t, srv.URL, true)

	err := client.GenerateGiftCards(context.Background(), GenerateGiftCardsRequest{Count: 5000})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Batch limit exceeded", apiErr.Message)
}

func TestBodylessFailureFallsBack(t *testing.T) {
	srv := newFakeAdminAPI(t)
	client, _ := newTestClient(t, srv.URL, true)

	err := client.get(context.Background(), "/admin/boom", nil, nil, "Something went wrong")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.NotEmpty(t, apiErr.Message)
	require.Equal(t, "Something went wrong", apiErr.Message)
}

func TestUnreachableServerFallsBack(t *testing.T) {
	client, _ := newTestClient(t, "http://127.0.0.1:1", true)

	_, err := client.ListPurchases(context.Background(), 1, 10, DateRangeFilter{})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.NotEmpty(t, apiErr.Message)
	require.NotNil(t, apiErr.Unwrap())
}

func TestRecheckReturnsServerMessage(t *testing.T) {
	srv := newFakeAdminAPI(t)
	client, _ := newTestClient(t, srv.URL, true)

	msg, err := client.RecheckFonepay(context.Background(), "PRN-1")
	require.NoError(t, err)
	require.Equal(t, "Transaction verified", msg)
}

func TestExportBatchReturnsRawBody(t *testing.T) {
	srv := newFakeAdminAPI(t)
	client, _ := newTestClient(t, srv.URL, true)

	data, err := client.ExportBatch(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "code,amount\nGC-1,10\n", string(data))
}
