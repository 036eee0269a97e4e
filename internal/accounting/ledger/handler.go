package ledger

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/meridian-erp/meridian-erp/internal/accounting/shared"
	"github.com/meridian-erp/meridian-erp/internal/platform/httpx"
)

// Handler wires HTTP endpoints for general ledger retrieval.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.Bulk)
	r.Get("/{accountID}", h.Single)
}

type ledgerQuery struct {
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
}

func (h *Handler) parseRange(r *http.Request) (ledgerQuery, error) {
	q := ledgerQuery{
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	}
	if err := h.validator.Struct(q); err != nil {
		return ledgerQuery{}, shared.ErrInvalidDate
	}
	return q, nil
}

func (h *Handler) Single(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseAccountID(chi.URLParam(r, "accountID"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	q, err := h.parseRange(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	start, _ := shared.ParseDate(q.StartDate)
	end, _ := shared.ParseDate(q.EndDate)

	result, err := h.service.Get(r.Context(), id, start, end)
	if err != nil {
		shared.RespondError(w, h.logger, "get general ledger", err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) Bulk(w http.ResponseWriter, r *http.Request) {
	ids, err := shared.ParseAccountIDs(r.URL.Query().Get("accountIds"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	q, err := h.parseRange(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	start, _ := shared.ParseDate(q.StartDate)
	end, _ := shared.ParseDate(q.EndDate)

	results, err := h.service.GetBulk(r.Context(), ids, start, end)
	if err != nil {
		shared.RespondError(w, h.logger, "get general ledger bulk", err)
		return
	}
	httpx.Envelope(w, http.StatusOK, results)
}
