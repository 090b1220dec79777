package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/segyhp/easy-service/internal/domain"
	"github.com/segyhp/easy-service/internal/export"
	customError "github.com/segyhp/easy-service/pkg/errors"
	"github.com/segyhp/easy-service/pkg/response"
	"github.com/segyhp/easy-service/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// NegotiationService is what NegotiationHandler needs from the service layer.
type NegotiationService interface {
	PreviewProposals(req *domain.PreviewRequest) (*domain.PreviewResponse, error)
	RefusalText(req *domain.RefusalRequest) (string, error)
	CreateAgreement(ctx context.Context, req *domain.CreateAgreementRequest) (*domain.AgreementView, error)
	ListAgreements(ctx context.Context, filter domain.AgreementFilter) ([]domain.AgreementView, error)
	GetStatistics(ctx context.Context, period domain.Period) (*domain.Statistics, error)
	MarkAgreementPaid(ctx context.Context, id int64) (*domain.AgreementView, error)
	MarkAgreementPromised(ctx context.Context, id int64) (*domain.AgreementView, error)
	DeleteAgreement(ctx context.Context, id int64) error
}

type NegotiationHandler struct {
	service   NegotiationService
	validator *validator.Validate
	logger    *slog.Logger
}

func NewNegotiationHandler(service NegotiationService, validator *validator.Validate, logger *slog.Logger) *NegotiationHandler {
	return &NegotiationHandler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// PreviewProposals handles POST /api/v1/proposals/preview
func (h *NegotiationHandler) PreviewProposals(w http.ResponseWriter, r *http.Request) {
	var req domain.PreviewRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.PreviewProposals(&req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Success(w, resp)
}

// RefusalText handles POST /api/v1/proposals/refusal
func (h *NegotiationHandler) RefusalText(w http.ResponseWriter, r *http.Request) {
	var req domain.RefusalRequest
	if !h.decode(w, r, &req) {
		return
	}

	text, err := h.service.RefusalText(&req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Success(w, domain.RefusalResponse{Text: text})
}

// RefusalReasons handles GET /api/v1/proposals/refusal-reasons
func (h *NegotiationHandler) RefusalReasons(w http.ResponseWriter, r *http.Request) {
	response.Success(w, domain.RefusalReasonNames())
}

// Products handles GET /api/v1/products
func (h *NegotiationHandler) Products(w http.ResponseWriter, r *http.Request) {
	type product struct {
		Name            domain.Product `json:"name"`
		MaxInstallments int            `json:"max_installments"`
	}

	products := make([]product, 0, len(domain.Products))
	for _, p := range domain.Products {
		products = append(products, product{Name: p, MaxInstallments: p.MaxInstallments()})
	}
	response.Success(w, products)
}

// CreateAgreement handles POST /api/v1/agreements
func (h *NegotiationHandler) CreateAgreement(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAgreementRequest
	if !h.decode(w, r, &req) {
		return
	}

	agreement, err := h.service.CreateAgreement(r.Context(), &req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Created(w, agreement)
}

// ListAgreements handles GET /api/v1/agreements
func (h *NegotiationHandler) ListAgreements(w http.ResponseWriter, r *http.Request) {
	filter, err := parseAgreementFilter(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	agreements, err := h.service.ListAgreements(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Success(w, agreements)
}

// GetStatistics handles GET /api/v1/agreements/statistics
func (h *NegotiationHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	period, err := domain.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		h.fail(w, r, customError.NewValidationError("period", "Período inválido."))
		return
	}

	stats, err := h.service.GetStatistics(r.Context(), period)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Success(w, stats)
}

// ExportAgreements handles GET /api/v1/agreements/export
func (h *NegotiationHandler) ExportAgreements(w http.ResponseWriter, r *http.Request) {
	filter, err := parseAgreementFilter(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	agreements, err := h.service.ListAgreements(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteAgreements(&buf, agreements); err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", `attachment; filename="acordos.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write export", "error", err)
	}
}

// MarkPaid handles POST /api/v1/agreements/{id}/paid
func (h *NegotiationHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	h.updateAgreement(w, r, h.service.MarkAgreementPaid)
}

// MarkPromised handles POST /api/v1/agreements/{id}/promise
func (h *NegotiationHandler) MarkPromised(w http.ResponseWriter, r *http.Request) {
	h.updateAgreement(w, r, h.service.MarkAgreementPromised)
}

func (h *NegotiationHandler) updateAgreement(w http.ResponseWriter, r *http.Request, update func(context.Context, int64) (*domain.AgreementView, error)) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	agreement, err := update(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Success(w, agreement)
}

// DeleteAgreement handles DELETE /api/v1/agreements/{id}
func (h *NegotiationHandler) DeleteAgreement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.service.DeleteAgreement(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	response.NoContent(w)
}

// decode reads and validates the JSON body into dst, answering 400 on failure.
func (h *NegotiationHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	return decodeAndValidate(w, r, h.validator, dst)
}

func (h *NegotiationHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	failRequest(w, r, h.logger, err)
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return false
	}
	if err := v.Struct(dst); err != nil {
		response.FromError(w, validation.Translate(err))
		return false
	}
	return true
}

func failRequest(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	if response.StatusFor(err) == http.StatusInternalServerError {
		logger.Error("request failed",
			"request_id", response.RequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	response.FromError(w, err)
}

func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, customError.NewValidationError("id", fmt.Sprintf("Identificador inválido: %q.", raw))
	}
	return id, nil
}

// parseAgreementFilter reads state, cpf, period, sort and reverse from the query string.
func parseAgreementFilter(r *http.Request) (domain.AgreementFilter, error) {
	query := r.URL.Query()
	filter := domain.AgreementFilter{
		CPF: query.Get("cpf"),
	}

	sortBy, err := domain.ParseSortBy(query.Get("sort"))
	if err != nil {
		return filter, customError.NewValidationError("sort", "Ordenação inválida.")
	}
	filter.SortBy = sortBy

	if raw := query.Get("state"); raw != "" {
		state, err := domain.ParseState(raw)
		if err != nil {
			return filter, customError.NewValidationError("state", "Estado inválido.")
		}
		filter.State = &state
	}

	period, err := domain.ParsePeriod(query.Get("period"))
	if err != nil {
		return filter, customError.NewValidationError("period", "Período inválido.")
	}
	filter.Period = period

	if raw := query.Get("reverse"); raw != "" {
		reverse, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, customError.NewValidationError("reverse", "Parâmetro reverse inválido.")
		}
		filter.Reverse = reverse
	}

	return filter, nil
}
