package reports

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/meridian-erp/meridian-erp/internal/accounting/shared"
	"github.com/meridian-erp/meridian-erp/internal/observability"
	"github.com/meridian-erp/meridian-erp/internal/platform/httpx"
)

// Handler wires the report endpoints. Full reports are served through a
// short-lived response cache with singleflight so identical concurrent
// requests share one build.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	metrics   *observability.Metrics
	cache     *responseCache
	rateLimit func(http.Handler) http.Handler
}

func NewHandler(logger *slog.Logger, service *Service, metrics *observability.Metrics) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		metrics:   metrics,
		cache:     newResponseCache(cacheTTL),
		rateLimit: httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)),
	}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/trial-balance", h.TrialBalance)
	r.Get("/trial-balance/by-type", h.TrialBalanceByType)
	r.Get("/balance-sheet", h.BalanceSheet)
	r.Get("/balance-sheet/summary", h.BalanceSheetSummary)
	r.Get("/income-statement", h.IncomeStatement)
	r.Get("/income-statement/summary", h.IncomeStatementSummary)

	r.Group(func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Get("/trial-balance/export.csv", h.ExportTrialBalanceCSV)
		r.Get("/balance-sheet/export.csv", h.ExportBalanceSheetCSV)
		r.Get("/income-statement/export.csv", h.ExportIncomeStatementCSV)
	})
}

func (h *Handler) asOf(r *http.Request) (*time.Time, error) {
	return shared.ParseDate(r.URL.Query().Get("asOfDate"))
}

func (h *Handler) period(r *http.Request) (start, end *time.Time, err error) {
	start, err = shared.ParseDate(r.URL.Query().Get("startDate"))
	if err != nil {
		return nil, nil, err
	}
	end, err = shared.ParseDate(r.URL.Query().Get("endDate"))
	if err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func (h *Handler) buildTrialBalance(ctx context.Context, asOf *time.Time) (TrialBalance, error) {
	value, err := h.cache.do(ctx, cacheKey("tb", asOf), func(ctx context.Context) (any, error) {
		tb, err := h.service.TrialBalance(ctx, asOf)
		if err != nil {
			return nil, err
		}
		h.metrics.ReportBuilt("trial_balance")
		return tb, nil
	})
	if err != nil {
		return TrialBalance{}, err
	}
	return value.(TrialBalance), nil
}

func (h *Handler) buildBalanceSheet(ctx context.Context, asOf *time.Time) (BalanceSheet, error) {
	value, err := h.cache.do(ctx, cacheKey("bs", asOf), func(ctx context.Context) (any, error) {
		bs, err := h.service.BalanceSheet(ctx, asOf)
		if err != nil {
			return nil, err
		}
		h.metrics.ReportBuilt("balance_sheet")
		return bs, nil
	})
	if err != nil {
		return BalanceSheet{}, err
	}
	return value.(BalanceSheet), nil
}

func (h *Handler) buildIncomeStatement(ctx context.Context, start, end *time.Time) (IncomeStatement, error) {
	value, err := h.cache.do(ctx, cacheKey("is", start, end), func(ctx context.Context) (any, error) {
		is, err := h.service.IncomeStatement(ctx, start, end)
		if err != nil {
			return nil, err
		}
		h.metrics.ReportBuilt("income_statement")
		return is, nil
	})
	if err != nil {
		return IncomeStatement{}, err
	}
	return value.(IncomeStatement), nil
}

func (h *Handler) TrialBalance(w http.ResponseWriter, r *http.Request) {
	asOf, err := h.asOf(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	tb, err := h.buildTrialBalance(r.Context(), asOf)
	if err != nil {
		shared.RespondError(w, h.logger, "build trial balance", err)
		return
	}
	httpx.JSON(w, http.StatusOK, tb)
}

func (h *Handler) TrialBalanceByType(w http.ResponseWriter, r *http.Request) {
	asOf, err := h.asOf(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	groups, err := h.service.TrialBalanceByType(r.Context(), asOf)
	if err != nil {
		shared.RespondError(w, h.logger, "build trial balance by type", err)
		return
	}
	httpx.Envelope(w, http.StatusOK, groups)
}

func (h *Handler) BalanceSheet(w http.ResponseWriter, r *http.Request) {
	asOf, err := h.asOf(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	bs, err := h.buildBalanceSheet(r.Context(), asOf)
	if err != nil {
		shared.RespondError(w, h.logger, "build balance sheet", err)
		return
	}
	httpx.JSON(w, http.StatusOK, bs)
}

func (h *Handler) BalanceSheetSummary(w http.ResponseWriter, r *http.Request) {
	asOf, err := h.asOf(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	summary, err := h.service.BalanceSheetSummary(r.Context(), asOf)
	if err != nil {
		shared.RespondError(w, h.logger, "build balance sheet summary", err)
		return
	}
	httpx.Envelope(w, http.StatusOK, summary)
}

func (h *Handler) IncomeStatement(w http.ResponseWriter, r *http.Request) {
	start, end, err := h.period(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	is, err := h.buildIncomeStatement(r.Context(), start, end)
	if err != nil {
		shared.RespondError(w, h.logger, "build income statement", err)
		return
	}
	httpx.JSON(w, http.StatusOK, is)
}

func (h *Handler) IncomeStatementSummary(w http.ResponseWriter, r *http.Request) {
	start, end, err := h.period(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	is, err := h.buildIncomeStatement(r.Context(), start, end)
	if err != nil {
		shared.RespondError(w, h.logger, "build income statement summary", err)
		return
	}
	httpx.Envelope(w, http.StatusOK, is.Summary())
}
