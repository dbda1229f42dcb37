/**
* Name:        handler.go
* Description: Gin handlers shared types and error mapping
* Workflow:    service error -> status code + user message
 */
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"GasMileageTracker/internal/apperr"
	"GasMileageTracker/internal/models"
	"GasMileageTracker/internal/service"
)

const DateLayout = "2006/01/02"

// FuelService is the part of service.FuelService the handlers use.
type FuelService interface {
	Submit(ctx context.Context, in models.FormInput) (*service.SubmitResult, error)
	History(ctx context.Context) (*service.History, error)
	Records(ctx context.Context) ([]models.Record, error)
}

type Handler struct {
	service            FuelService
	logger             *zap.Logger
	now                func() time.Time
	accessCodeRequired bool
}

func New(svc FuelService, logger *zap.Logger, accessCodeRequired bool) *Handler {
	return &Handler{
		service:            svc,
		logger:             logger,
		now:                time.Now,
		accessCodeRequired: accessCodeRequired,
	}
}

// WithClock replaces the clock used for the default form date.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

func (h *Handler) today() string {
	return h.now().Format(DateLayout)
}

type ErrorResponse struct {
	Error  string              `json:"error" example:"Please correct the highlighted fields."`
	Kind   string              `json:"kind,omitempty" example:"validation"`
	Fields []apperr.FieldError `json:"fields,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// errorResponse maps a tagged error to its status code and user-facing message.
func errorResponse(err error) (int, ErrorResponse) {
	var (
		ve *apperr.ValidationError
		ce *apperr.ComputationError
		se *apperr.StoreError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ErrorResponse{
			Error:  "Please correct the highlighted fields.",
			Kind:   "validation",
			Fields: ve.Fields,
		}
	case errors.Is(err, apperr.ErrZeroFuel):
		return http.StatusUnprocessableEntity, ErrorResponse{
			Error: "Fuel volume must be greater than zero.",
			Kind:  "computation",
		}
	case errors.As(err, &ce):
		return http.StatusUnprocessableEntity, ErrorResponse{
			Error: "Could not calculate gas mileage from the stored records.",
			Kind:  "computation",
		}
	case errors.As(err, &se):
		return http.StatusBadGateway, ErrorResponse{
			Error: "Could not reach the record store. Please try again later.",
			Kind:  "store",
		}
	default:
		return http.StatusInternalServerError, ErrorResponse{
			Error: "An unexpected error occurred.",
		}
	}
}

func (h *Handler) logFailure(msg string, err error) {
	fields := []zap.Field{zap.String("kind", apperr.Kind(err)), zap.Error(err)}
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		h.logger.Info(msg, fields...)
		return
	}
	h.logger.Error(msg, fields...)
}
