package ledger

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-erp/meridian-erp/internal/accounting/accounts"
	"github.com/meridian-erp/meridian-erp/internal/accounting/journals"
)

func newTestRouter(svc *Service) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	NewHandler(logger, svc).MountRoutes(r)
	return r
}

func serve(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandlerSingle(t *testing.T) {
	router := newTestRouter(newTestService(
		[]accounts.Account{{ID: 1, Code: "A101", Name: "Cash", Type: accounts.AccountTypeAsset}},
		[]journals.JournalEntry{
			entry(1, 1, "2024-01-05", 1000, 0),
			entry(2, 1, "2024-01-10", 0, 200),
		},
	))

	rec := serve(t, router, "/1?startDate=2024-01-01&endDate=2024-01-31")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	var got Ledger
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ClosingBalance != 800 {
		t.Fatalf("closing = %v, want 800", got.ClosingBalance)
	}
	if len(got.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(got.Entries))
	}
}

func TestHandlerSingleNotFound(t *testing.T) {
	router := newTestRouter(newTestService(nil, nil))

	if rec := serve(t, router, "/42"); rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHandlerSingleBadAccountID(t *testing.T) {
	router := newTestRouter(newTestService(nil, nil))

	if rec := serve(t, router, "/abc"); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerSingleBadDate(t *testing.T) {
	router := newTestRouter(newTestService(
		[]accounts.Account{{ID: 1, Code: "A101", Type: accounts.AccountTypeAsset}},
		nil,
	))

	if rec := serve(t, router, "/1?startDate=01/05/2024"); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerBulk(t *testing.T) {
	router := newTestRouter(newTestService(
		[]accounts.Account{
			{ID: 1, Code: "A101", Name: "Cash", Type: accounts.AccountTypeAsset},
			{ID: 2, Code: "L200", Name: "Payables", Type: accounts.AccountTypeLiability},
		},
		[]journals.JournalEntry{
			entry(1, 1, "2024-01-05", 1000, 0),
			entry(2, 2, "2024-01-05", 0, 1000),
		},
	))

	rec := serve(t, router, "/?accountIds=1,2,999")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Success bool     `json:"success"`
		Data    []Ledger `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body.Success {
		t.Fatal("expected success envelope")
	}
	if len(body.Data) != 2 {
		t.Fatalf("len = %d, want 2 (unknown id dropped)", len(body.Data))
	}
}

func TestHandlerBulkEmptyIDList(t *testing.T) {
	router := newTestRouter(newTestService(nil, nil))

	if rec := serve(t, router, "/?accountIds="); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
