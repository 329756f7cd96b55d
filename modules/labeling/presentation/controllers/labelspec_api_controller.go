package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
	"github.com/herbalogix/labelspec/modules/labeling/services"
	"github.com/herbalogix/labelspec/pkg/composables"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LabelSpecAPIController exposes the labeling lifecycle over JSON. The actor
// identity comes from the trusted actor header middleware; anonymous calls
// reach the service with a nil actor and the service decides whether that is
// acceptable for the operation.
type LabelSpecAPIController struct {
	specs     *services.LabelSpecService
	recalls   *services.RecallReportService
	apiPrefix string
}

func NewLabelSpecAPIController(specs *services.LabelSpecService, recalls *services.RecallReportService) *LabelSpecAPIController {
	return &LabelSpecAPIController{
		specs:     specs,
		recalls:   recalls,
		apiPrefix: "/labeling/api",
	}
}

func (c *LabelSpecAPIController) Key() string {
	return c.apiPrefix
}

func (c *LabelSpecAPIController) Register(r *mux.Router) {
	api := r.PathPrefix(c.apiPrefix).Subrouter()

	api.HandleFunc("/specs", c.CreateDraft).Methods(http.MethodPost)
	api.HandleFunc("/specs/{id}", c.GetSpec).Methods(http.MethodGet)
	api.HandleFunc("/specs/{id}/full", c.GetSpecWithContent).Methods(http.MethodGet)
	api.HandleFunc("/specs/{id}/content", c.UpdateContent).Methods(http.MethodPut)
	api.HandleFunc("/specs/{id}/coa", c.AttachCoA).Methods(http.MethodPost)

	api.HandleFunc("/specs/{id}/suggestions", c.GetSuggestions).Methods(http.MethodGet)
	api.HandleFunc("/specs/{id}/suggestions:apply", c.ApplySuggestion).Methods(http.MethodPost)
	api.HandleFunc("/specs/{id}/claim-validation", c.GetClaimValidation).Methods(http.MethodGet)
	api.HandleFunc("/specs/{id}/risk-flags", c.GetRiskFlags).Methods(http.MethodGet)
	api.HandleFunc("/specs/{id}/cross-check", c.GetCrossCheck).Methods(http.MethodGet)
	api.HandleFunc("/specs/{id}/consistency", c.GetConsistency).Methods(http.MethodGet)

	api.HandleFunc("/specs/{id}/qa-approval", c.QAApprove).Methods(http.MethodPost)
	api.HandleFunc("/specs/{id}/approval", c.Approve).Methods(http.MethodPost)
	api.HandleFunc("/specs/{id}/retirement", c.Retire).Methods(http.MethodPost)
	api.HandleFunc("/specs/{id}/export", c.Export).Methods(http.MethodGet)
	api.HandleFunc("/specs/{id}/activity", c.ListActivity).Methods(http.MethodGet)

	api.HandleFunc("/products/{productId}/specs", c.ListByProduct).Methods(http.MethodGet)
	api.HandleFunc("/products/{productId}/recall-report", c.RecallReport).Methods(http.MethodGet)
	api.HandleFunc("/products/{productId}/recall-report.xlsx", c.RecallReportXLSX).Methods(http.MethodGet)
}

type createDraftRequest struct {
	ProductID string `json:"product_id"`
}

func (c *LabelSpecAPIController) CreateDraft(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)

	var body createDraftRequest
	if err := decodeJSON(r.Body, &body); err != nil {
		writeAPIError(w, http.StatusBadRequest, requestID, "LABEL_INVALID_BODY", err.Error())
		return
	}
	if strings.TrimSpace(body.ProductID) == "" {
		writeAPIError(w, http.StatusBadRequest, requestID, "LABEL_INVALID_BODY", "product_id is required")
		return
	}

	spec, err := c.specs.CreateDraft(r.Context(), body.ProductID, composables.UseActor(r.Context()))
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	writeJSON(w, http.StatusCreated, spec)
}

func (c *LabelSpecAPIController) GetSpec(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	id, ok := specID(w, r, requestID)
	if !ok {
		return
	}

	spec, err := c.specs.GetSpec(r.Context(), id)
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

func (c *LabelSpecAPIController) GetSpecWithContent(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	id, ok := specID(w, r, requestID)
	if !ok {
		return
	}

	bundle, err := c.specs.GetSpecWithContent(r.Context(), id)
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	writeJSON(w, http.StatusOK, bundle)
}

func (c *LabelSpecAPIController) UpdateContent(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	id, ok := specID(w, r, requestID)
	if !ok {
		return
	}

	var dto labelspec.UpdateContentDTO
	if err := decodeJSON(r.Body, &dto); err != nil {
		writeAPIError(w, http.StatusBadRequest, requestID, "LABEL_INVALID_BODY", err.Error())
		return
	}

	content, err := c.specs.UpdateContent(r.Context(), id, &dto, composables.UseActor(r.Context()))
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}

type attachCoARequest struct {
	FilePath string `json:"file_path"`
	FileName string `json:"file_name"`
}

func (c *LabelSpecAPIController) AttachCoA(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	id, ok := specID(w, r, requestID)
	if !ok {
		return
	}

	var body attachCoARequest
	if err := decodeJSON(r.Body, &body); err != nil {
		writeAPIError(w, http.StatusBadRequest, requestID, "LABEL_INVALID_BODY", err.Error())
		return
	}
	if strings.TrimSpace(body.FilePath) == "" {
		writeAPIError(w, http.StatusBadRequest, requestID, "LABEL_INVALID_BODY", "file_path is required")
		return
	}

	if err := c.specs.AttachCoA(r.Context(), id, body.FilePath, body.FileName, composables.UseActor(r.Context())); err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *LabelSpecAPIController) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	id, ok := specID(w, r, requestID)
	if !ok {
		return
	}

	suggestions, err := c.specs.SuggestFromIngredients(r.Context(), id)
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}

func (c *LabelSpecAPIController) ApplySuggestion(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	id, ok := specID(w, r, requestID)
	if !ok {
		return
	}

	var body labelspec.Suggestion
	if err := decodeJSON(r.Body, &body); err != nil {
		writeAPIError(w, http.StatusBadRequest, requestID, "LABEL_INVALID_BODY", err.Error())
		return
	}
	if strings.TrimSpace(body.Field) == "" {
		writeAPIError(w, http.StatusBadRequest, requestID, "LABEL_INVALID_BODY", "field is required")
		return
	}

	content, err := c.specs.ApplySuggestion(r.Context(), id, body, composables.UseActor(r.Context()))
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}

func (c *LabelSpecAPIController) GetClaimValidation(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	id, ok := specID(w, r, requestID)
	if !ok {
		return
	}

	result, err := c.specs.ClaimValidation(r.Context(), id)
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (c *LabelSpecAPIController) GetRiskFlags(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	id, ok := specID(w, r, requestID)
	if !ok {
		return
	}

	flags, err := c.specs.RiskFlags(r.Context(), id)
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	writeJSON(w, http.StatusOK, flags)
}

func (c *LabelSpecAPIController) GetCrossCheck(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	id, ok := specID(w, r, requestID)
	if !ok {
		return
	}

	flags, err := c.specs.CrossCheckFlags(r.Context(), id)
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	writeJSON(w, http.StatusOK, flags)
}

func (c *LabelSpecAPIController) GetConsistency(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	id, ok := specID(w, r, requestID)
	if !ok {
		return
	}

	result, err := c.specs.BatchConsistency(r.Context(), id)
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (c *LabelSpecAPIController) QAApprove(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	id, ok := specID(w, r, requestID)
	if !ok {
		return
	}

	spec, err := c.specs.QAApproveSpec(r.Context(), id, composables.UseActor(r.Context()))
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

func (c *LabelSpecAPIController) Approve(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	id, ok := specID(w, r, requestID)
	if !ok {
		return
	}

	spec, err := c.specs.ApproveSpec(r.Context(), id, composables.UseActor(r.Context()))
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

func (c *LabelSpecAPIController) Retire(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	id, ok := specID(w, r, requestID)
	if !ok {
		return
	}

	spec, err := c.specs.RetireSpec(r.Context(), id, composables.UseActor(r.Context()))
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

func (c *LabelSpecAPIController) Export(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	id, ok := specID(w, r, requestID)
	if !ok {
		return
	}

	artifact, err := c.specs.ExportSpec(r.Context(), id, r.URL.Query().Get("format"))
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}

	if artifact.Format == "xlsx" {
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(artifact.Data)
		return
	}
	writeJSON(w, http.StatusOK, artifact)
}

func (c *LabelSpecAPIController) ListActivity(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	id, ok := specID(w, r, requestID)
	if !ok {
		return
	}

	entries, err := c.specs.ListActivity(r.Context(), id)
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (c *LabelSpecAPIController) ListByProduct(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	productID := strings.TrimSpace(mux.Vars(r)["productId"])
	if productID == "" {
		writeAPIError(w, http.StatusBadRequest, requestID, "LABEL_INVALID_QUERY", "product id is required")
		return
	}

	var status *labelspec.Status
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		s := labelspec.Status(raw)
		if !s.Valid() {
			writeAPIError(w, http.StatusBadRequest, requestID, "LABEL_INVALID_QUERY", "status is invalid")
			return
		}
		status = &s
	}

	specs, err := c.specs.ListByProduct(r.Context(), productID, status)
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	writeJSON(w, http.StatusOK, specs)
}

func (c *LabelSpecAPIController) RecallReport(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	productID := strings.TrimSpace(mux.Vars(r)["productId"])
	if productID == "" {
		writeAPIError(w, http.StatusBadRequest, requestID, "LABEL_INVALID_QUERY", "product id is required")
		return
	}

	rows, err := c.recalls.Generate(r.Context(), productID)
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (c *LabelSpecAPIController) RecallReportXLSX(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(r)
	productID := strings.TrimSpace(mux.Vars(r)["productId"])
	if productID == "" {
		writeAPIError(w, http.StatusBadRequest, requestID, "LABEL_INVALID_QUERY", "product id is required")
		return
	}

	data, err := c.recalls.GenerateXLSX(r.Context(), productID)
	if err != nil {
		writeDomainError(w, requestID, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", productID+"-recall-report.xlsx"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func specID(w http.ResponseWriter, r *http.Request, requestID string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, requestID, "LABEL_INVALID_ID", "spec id must be a uuid")
		return uuid.Nil, false
	}
	return id, true
}
