package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/segyhp/easy-service/internal/domain"
	"github.com/segyhp/easy-service/pkg/response"

	"github.com/go-playground/validator/v10"
)

type ExceptionProposalService interface {
	Create(ctx context.Context, req *domain.CreateExceptionProposalRequest) (*domain.ExceptionProposalResponse, error)
	List(ctx context.Context) ([]*domain.ExceptionProposalRecord, error)
	Edit(ctx context.Context, id int64, req *domain.EditExceptionProposalRequest) (*domain.ExceptionProposalRecord, error)
	Delete(ctx context.Context, id int64) error
}

type ExceptionProposalHandler struct {
	service   ExceptionProposalService
	validator *validator.Validate
	logger    *slog.Logger
}

func NewExceptionProposalHandler(service ExceptionProposalService, validator *validator.Validate, logger *slog.Logger) *ExceptionProposalHandler {
	return &ExceptionProposalHandler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// Create handles POST /api/v1/exception-proposals
func (h *ExceptionProposalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateExceptionProposalRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}

	response.Created(w, resp)
}

// List handles GET /api/v1/exception-proposals
func (h *ExceptionProposalHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}

	response.Success(w, records)
}

// Edit handles PUT /api/v1/exception-proposals/{id}
func (h *ExceptionProposalHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}

	var req domain.EditExceptionProposalRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	record, err := h.service.Edit(r.Context(), id, &req)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}

	response.Success(w, record)
}

// Delete handles DELETE /api/v1/exception-proposals/{id}
func (h *ExceptionProposalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		failRequest(w, r, h.logger, err)
		return
	}

	response.NoContent(w)
}
