package balance

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-erp/meridian-erp/internal/accounting/shared"
	"github.com/meridian-erp/meridian-erp/internal/platform/httpx"
)

type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.All)
	r.Get("/summary", h.Summary)
	r.Get("/{accountID}", h.One)
}

func (h *Handler) One(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseAccountID(chi.URLParam(r, "accountID"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	asOf, err := shared.ParseDate(r.URL.Query().Get("asOfDate"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	result, err := h.service.Compute(r.Context(), id, asOf)
	if err != nil {
		if errors.Is(err, shared.ErrAccountNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
			return
		}
		h.logger.Error("compute balance", slog.Int64("account_id", id), slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) All(w http.ResponseWriter, r *http.Request) {
	asOf, err := shared.ParseDate(r.URL.Query().Get("asOfDate"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	balances, err := h.service.ComputeAll(r.Context(), asOf)
	if err != nil {
		h.logger.Error("compute all balances", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, balances)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	asOf, err := shared.ParseDate(r.URL.Query().Get("asOfDate"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	summary, err := h.service.SummaryByType(r.Context(), asOf)
	if err != nil {
		h.logger.Error("balance summary", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.Envelope(w, http.StatusOK, summary)
}
