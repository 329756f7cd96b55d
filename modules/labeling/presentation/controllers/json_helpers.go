package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
	"github.com/herbalogix/labelspec/modules/labeling/domain/compliance"
	"github.com/herbalogix/labelspec/modules/labeling/presentation/controllers/dtos"
	"github.com/herbalogix/labelspec/modules/labeling/services"
	"github.com/herbalogix/labelspec/pkg/configuration"
)

func ensureRequestID(r *http.Request) string {
	conf := configuration.Use()
	v := strings.TrimSpace(r.Header.Get(conf.RequestIDHeader))
	if v != "" {
		return v
	}
	v = uuid.NewString()
	r.Header.Set(conf.RequestIDHeader, v)
	return v
}

func decodeJSON(body io.ReadCloser, out any) error {
	defer func() { _ = body.Close() }()
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

// writeDomainError translates lifecycle and compliance errors into the API
// envelope. Compliance failures are 422 with the structured detail attached;
// lifecycle gate violations are 409.
func writeDomainError(w http.ResponseWriter, requestID string, err error) {
	var (
		contentErr     *services.ContentValidationError
		validationErr  *compliance.ValidationError
		claimErr       *compliance.ClaimError
		crossCheckErr  *compliance.CrossCheckError
		consistencyErr *compliance.ConsistencyError
	)

	switch {
	case errors.Is(err, labelspec.ErrNotFound):
		writeAPIError(w, http.StatusNotFound, requestID, "LABEL_NOT_FOUND", "label spec not found")
	case errors.Is(err, labelspec.ErrContentNotFound):
		writeAPIError(w, http.StatusNotFound, requestID, "LABEL_CONTENT_NOT_FOUND", "label spec has no content yet")
	case errors.Is(err, labelspec.ErrContentLocked):
		writeAPIError(w, http.StatusConflict, requestID, "LABEL_CONTENT_LOCKED", "content is locked; the spec is no longer an editable draft")
	case errors.Is(err, labelspec.ErrAlreadyQAApproved):
		writeAPIError(w, http.StatusConflict, requestID, "LABEL_ALREADY_QA_APPROVED", "QA sign-off is already recorded")
	case errors.Is(err, labelspec.ErrQAApprovalRequired):
		writeAPIError(w, http.StatusConflict, requestID, "LABEL_QA_REQUIRED", "QA sign-off is required before approval")
	case errors.Is(err, labelspec.ErrInvalidStatusTransition):
		writeAPIError(w, http.StatusConflict, requestID, "LABEL_INVALID_TRANSITION", "the spec status does not allow this operation")
	case errors.Is(err, labelspec.ErrActorRequired):
		writeAPIError(w, http.StatusUnauthorized, requestID, "LABEL_ACTOR_REQUIRED", "an authenticated actor is required")
	case errors.Is(err, labelspec.ErrCoARequired):
		writeAPIError(w, http.StatusConflict, requestID, "LABEL_COA_REQUIRED", "a Certificate of Analysis must be attached before export")
	case errors.Is(err, labelspec.ErrVersionConflict):
		writeAPIError(w, http.StatusConflict, requestID, "LABEL_VERSION_CONFLICT", "a concurrent draft claimed this version")
	case errors.As(err, &contentErr):
		writeAPIErrorDetails(w, http.StatusBadRequest, requestID, "LABEL_INVALID_CONTENT", contentErr.Error(), contentErr.Fields)
	case errors.As(err, &validationErr):
		writeAPIErrorDetails(w, http.StatusUnprocessableEntity, requestID, "LABEL_INCOMPLETE", validationErr.MessageEN, map[string]string{
			"field":      validationErr.Field,
			"message_en": validationErr.MessageEN,
			"message_fr": validationErr.MessageFR,
		})
	case errors.As(err, &claimErr):
		writeAPIErrorDetails(w, http.StatusUnprocessableEntity, requestID, "LABEL_CLAIM_BLOCKED", claimErr.Error(), claimErr.Result)
	case errors.As(err, &crossCheckErr):
		writeAPIErrorDetails(w, http.StatusUnprocessableEntity, requestID, "LABEL_RISK_NOT_COVERED", crossCheckErr.Error(), crossCheckErr.Flags)
	case errors.As(err, &consistencyErr):
		writeAPIErrorDetails(w, http.StatusUnprocessableEntity, requestID, "LABEL_INCONSISTENT", consistencyErr.Error(), consistencyErr.Result)
	default:
		writeAPIError(w, http.StatusInternalServerError, requestID, "LABEL_INTERNAL", err.Error())
	}
}

func writeAPIError(w http.ResponseWriter, status int, requestID, code, message string) {
	writeAPIErrorDetails(w, status, requestID, code, message, nil)
}

func writeAPIErrorDetails(w http.ResponseWriter, status int, requestID, code, message string, details any) {
	meta := map[string]string{}
	if requestID != "" {
		meta["request_id"] = requestID
	}
	writeJSON(w, status, dtos.APIError{
		Code:    code,
		Message: message,
		Meta:    meta,
		Details: details,
	})
}

func writeJSON[T any](w http.ResponseWriter, status int, payload T) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
