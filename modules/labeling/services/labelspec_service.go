package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
	"github.com/herbalogix/labelspec/modules/labeling/domain/compliance"
	"github.com/herbalogix/labelspec/modules/labeling/domain/suggest"
	"github.com/herbalogix/labelspec/pkg/composables"
	"github.com/herbalogix/labelspec/pkg/eventbus"
)

// ContentValidationError reports structurally invalid content input
// (missing medicinal rows, blank ingredient names).
type ContentValidationError struct {
	Fields map[string]string
}

func (e *ContentValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, tag := range e.Fields {
		parts = append(parts, field+": "+tag)
	}
	return "invalid content: " + strings.Join(parts, ", ")
}

// Renderer turns a validated spec into an externally hosted artifact for
// rendered export formats. The implementation is an opaque collaborator;
// the core only forwards the descriptor it returns.
type Renderer interface {
	Render(ctx context.Context, format string, spec labelspec.SpecWithContent) (string, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(ctx context.Context, format string, spec labelspec.SpecWithContent) (string, error)

func (f RendererFunc) Render(ctx context.Context, format string, spec labelspec.SpecWithContent) (string, error) {
	return f(ctx, format, spec)
}

// ExportArtifact describes the outcome of an export. Structured formats
// carry the full spec+content (and workbook bytes for xlsx); rendered
// formats carry an opaque reference to the renderer's output.
type ExportArtifact struct {
	Format   string                     `json:"format"`
	Spec     *labelspec.SpecWithContent `json:"spec,omitempty"`
	Data     []byte                     `json:"data,omitempty"`
	Filename string                     `json:"filename,omitempty"`
	Ref      string                     `json:"ref,omitempty"`
}

// LabelSpecService owns the label spec lifecycle: version assignment, the
// draft-mutability gate, QA sign-off, regulatory approval and export gating.
// Every mutating operation validates first, then mutates and appends exactly
// one audit entry inside a single transaction.
type LabelSpecService struct {
	repo      labelspec.Repository
	tables    *compliance.Tables
	engine    *suggest.Engine
	renderer  Renderer
	publisher eventbus.EventBus
}

func NewLabelSpecService(
	repo labelspec.Repository,
	tables *compliance.Tables,
	engine *suggest.Engine,
	renderer Renderer,
	publisher eventbus.EventBus,
) *LabelSpecService {
	return &LabelSpecService{
		repo:      repo,
		tables:    tables,
		engine:    engine,
		renderer:  renderer,
		publisher: publisher,
	}
}

// CreateDraft inserts a new draft header with the next version for the
// product. Versions are strictly increasing, assigned once, never reused.
// The (product_id, version) unique constraint turns a concurrent creation
// into a conflict, which is retried once with a freshly read version.
func (s *LabelSpecService) CreateDraft(ctx context.Context, productID string, actor uuid.UUID) (labelspec.Spec, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return labelspec.Spec{}, errors.New("product id is required")
	}

	var created labelspec.Spec
	attempt := func(txCtx context.Context) error {
		maxVersion, err := s.repo.MaxVersion(txCtx, productID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		spec := labelspec.Spec{
			ID:        uuid.New(),
			ProductID: productID,
			Version:   maxVersion + 1,
			Status:    labelspec.StatusDraft,
			CreatedBy: actor,
			CreatedAt: now,
			UpdatedAt: now,
		}
		created, err = s.repo.InsertSpec(txCtx, spec)
		if err != nil {
			return err
		}
		newValue := fmt.Sprintf("version %d", created.Version)
		return s.appendLog(txCtx, created.ID, "", labelspec.ActionCreate, nil, &newValue, actor)
	}

	err := s.repo.InTx(ctx, attempt)
	if errors.Is(err, labelspec.ErrVersionConflict) {
		err = s.repo.InTx(ctx, attempt)
	}
	if err != nil {
		return labelspec.Spec{}, err
	}

	transitionsTotal.WithLabelValues(labelspec.ActionCreate).Inc()
	s.publish(DraftCreatedEvent{Spec: created})
	composables.UseLogger(ctx).
		WithField("spec_id", created.ID).
		WithField("product_id", productID).
		WithField("version", created.Version).
		Info("label spec draft created")
	return created, nil
}

func (s *LabelSpecService) GetSpec(ctx context.Context, id uuid.UUID) (labelspec.Spec, error) {
	return s.repo.GetSpec(ctx, id)
}

// GetSpecWithContent returns the header and, if already created, the content.
func (s *LabelSpecService) GetSpecWithContent(ctx context.Context, id uuid.UUID) (labelspec.SpecWithContent, error) {
	spec, err := s.repo.GetSpec(ctx, id)
	if err != nil {
		return labelspec.SpecWithContent{}, err
	}
	content, err := s.repo.GetContent(ctx, id)
	if err != nil {
		if errors.Is(err, labelspec.ErrContentNotFound) {
			return labelspec.SpecWithContent{Spec: spec}, nil
		}
		return labelspec.SpecWithContent{}, err
	}
	return labelspec.SpecWithContent{Spec: spec, Content: &content}, nil
}

func (s *LabelSpecService) ListByProduct(ctx context.Context, productID string, status *labelspec.Status) ([]labelspec.Spec, error) {
	return s.repo.ListByProduct(ctx, strings.TrimSpace(productID), status)
}

func (s *LabelSpecService) ListActivity(ctx context.Context, specID uuid.UUID) ([]labelspec.ActivityLogEntry, error) {
	return s.repo.ListActivity(ctx, specID)
}

// UpdateContent saves content for a draft. Content is mutable only while
// the spec is a draft without QA sign-off; outside that window the call is
// a state error, never a silent no-op. The sanitizer runs first, then risk
// flags are recomputed and cached onto the row.
func (s *LabelSpecService) UpdateContent(ctx context.Context, specID uuid.UUID, dto *labelspec.UpdateContentDTO, actor uuid.UUID) (labelspec.Content, error) {
	if dto == nil {
		return labelspec.Content{}, errors.New("missing content payload")
	}
	if fields, ok := dto.Ok(); !ok {
		return labelspec.Content{}, &ContentValidationError{Fields: fields}
	}

	var saved labelspec.Content
	err := s.repo.InTx(ctx, func(txCtx context.Context) error {
		spec, err := s.repo.GetSpec(txCtx, specID)
		if err != nil {
			return err
		}
		if !spec.Editable() {
			return labelspec.ErrContentLocked
		}

		content := dto.Sanitize(specID)
		content.RiskFlags = s.tables.GenerateRiskFlags(content)
		content.UpdatedAt = time.Now().UTC()

		var previous *labelspec.Content
		if existing, err := s.repo.GetContent(txCtx, specID); err == nil {
			previous = &existing
			// The payload never carries the CoA reference; it survives edits.
			content.CoAFilePath = existing.CoAFilePath
			content.CoAFileName = existing.CoAFileName
		} else if !errors.Is(err, labelspec.ErrContentNotFound) {
			return err
		}

		if err := s.repo.UpsertContent(txCtx, content); err != nil {
			return err
		}
		saved = content

		oldValue, newValue := contentDiff(previous, content)
		return s.appendLog(txCtx, specID, "content", labelspec.ActionUpdateContent, oldValue, newValue, actor)
	})
	if err != nil {
		return labelspec.Content{}, err
	}

	transitionsTotal.WithLabelValues(labelspec.ActionUpdateContent).Inc()
	s.publish(ContentUpdatedEvent{SpecID: specID, Content: saved})
	return saved, nil
}

// ApplySuggestion merges one suggestion into the targeted field and persists
// the whole content row under the same draft-mutability gate as any edit.
// The write is whole-row, so a concurrent edit of an unrelated field by
// another actor is lost (last writer wins); accepted behavior for now.
func (s *LabelSpecService) ApplySuggestion(ctx context.Context, specID uuid.UUID, sug labelspec.Suggestion, actor uuid.UUID) (labelspec.Content, error) {
	var saved labelspec.Content
	err := s.repo.InTx(ctx, func(txCtx context.Context) error {
		spec, err := s.repo.GetSpec(txCtx, specID)
		if err != nil {
			return err
		}
		if !spec.Editable() {
			return labelspec.ErrContentLocked
		}
		content, err := s.repo.GetContent(txCtx, specID)
		if err != nil {
			return err
		}
		previous := content

		if err := applySuggestionField(&content, sug); err != nil {
			return err
		}
		content.RiskFlags = s.tables.GenerateRiskFlags(content)
		content.UpdatedAt = time.Now().UTC()

		if err := s.repo.UpsertContent(txCtx, content); err != nil {
			return err
		}
		saved = content

		oldValue, newValue := contentDiff(&previous, content)
		return s.appendLog(txCtx, specID, sug.Field, labelspec.ActionApplySuggestion, oldValue, newValue, actor)
	})
	if err != nil {
		return labelspec.Content{}, err
	}

	transitionsTotal.WithLabelValues(labelspec.ActionApplySuggestion).Inc()
	s.publish(ContentUpdatedEvent{SpecID: specID, Content: saved})
	return saved, nil
}

// AttachCoA records the Certificate of Analysis reference. The reference is
// traceability metadata rather than label content, so it may be attached
// after QA sign-off or approval; only retired specs refuse it. The core
// never opens the file, it records the opaque path/name pair.
func (s *LabelSpecService) AttachCoA(ctx context.Context, specID uuid.UUID, filePath, fileName string, actor uuid.UUID) error {
	filePath = strings.TrimSpace(filePath)
	fileName = strings.TrimSpace(fileName)
	if filePath == "" {
		return errors.New("coa file path is required")
	}

	err := s.repo.InTx(ctx, func(txCtx context.Context) error {
		spec, err := s.repo.GetSpec(txCtx, specID)
		if err != nil {
			return err
		}
		if spec.Status == labelspec.StatusRetired {
			return labelspec.ErrInvalidStatusTransition
		}
		content, err := s.repo.GetContent(txCtx, specID)
		if err != nil {
			return err
		}

		var oldValue *string
		if content.CoAFilePath != nil {
			oldValue = content.CoAFilePath
		}
		content.CoAFilePath = &filePath
		if fileName != "" {
			content.CoAFileName = &fileName
		}
		content.UpdatedAt = time.Now().UTC()

		if err := s.repo.UpsertContent(txCtx, content); err != nil {
			return err
		}
		return s.appendLog(txCtx, specID, "coa_file_path", labelspec.ActionAttachCoA, oldValue, &filePath, actor)
	})
	if err != nil {
		return err
	}

	transitionsTotal.WithLabelValues(labelspec.ActionAttachCoA).Inc()
	return nil
}

// QAApproveSpec records the QA sign-off. It requires an authenticated signer
// and a draft that has not been signed yet. From this point on the content
// is immutable even though the status is still draft.
func (s *LabelSpecService) QAApproveSpec(ctx context.Context, specID uuid.UUID, actor uuid.UUID) (labelspec.Spec, error) {
	if actor == uuid.Nil {
		return labelspec.Spec{}, labelspec.ErrActorRequired
	}

	var updated labelspec.Spec
	err := s.repo.InTx(ctx, func(txCtx context.Context) error {
		spec, err := s.repo.GetSpec(txCtx, specID)
		if err != nil {
			return err
		}
		if spec.Status != labelspec.StatusDraft {
			return labelspec.ErrInvalidStatusTransition
		}
		if spec.QAApproved {
			return labelspec.ErrAlreadyQAApproved
		}

		now := time.Now().UTC()
		approved := true
		patch := labelspec.SpecPatch{
			QAApproved:   &approved,
			QAApprovedBy: &actor,
			QAApprovedAt: &now,
		}
		if err := s.repo.UpdateSpec(txCtx, specID, patch); err != nil {
			return err
		}
		updated = spec
		updated.QAApproved = true
		updated.QAApprovedBy = &actor
		updated.QAApprovedAt = &now

		newValue := "qa approved"
		return s.appendLog(txCtx, specID, "qa_approved_flag", labelspec.ActionQAApprove, nil, &newValue, actor)
	})
	if err != nil {
		return labelspec.Spec{}, err
	}

	transitionsTotal.WithLabelValues(labelspec.ActionQAApprove).Inc()
	s.publish(SpecQAApprovedEvent{Spec: updated})
	return updated, nil
}

// ApproveSpec is the regulatory approval gate. QA sign-off must already be
// recorded. The four checks run in a fixed order — bilingual completeness,
// claim, risk/warning cross-check, batch consistency — and the first failure
// aborts before any mutation; later checks are not evaluated in that call.
// Nothing is taken from the cached risk flags, everything is recomputed.
func (s *LabelSpecService) ApproveSpec(ctx context.Context, specID uuid.UUID, actor uuid.UUID) (labelspec.Spec, error) {
	var updated labelspec.Spec
	err := s.repo.InTx(ctx, func(txCtx context.Context) error {
		spec, err := s.repo.GetSpec(txCtx, specID)
		if err != nil {
			return err
		}
		if spec.Status != labelspec.StatusDraft {
			return labelspec.ErrInvalidStatusTransition
		}
		content, err := s.repo.GetContent(txCtx, specID)
		if err != nil {
			return err
		}
		if !spec.QAApproved {
			return labelspec.ErrQAApprovalRequired
		}

		if err := compliance.CheckCompleteness(content); err != nil {
			return err
		}
		claim := s.tables.ValidateClaim(content.ClaimEN, content.ClaimFR)
		if claim.Severity == labelspec.SeverityError {
			return &compliance.ClaimError{Result: claim}
		}
		if flags := errorFlags(s.tables.CrossCheck(content)); len(flags) > 0 {
			return &compliance.CrossCheckError{Flags: flags}
		}
		siblings, err := s.repo.QueryApprovedSiblings(txCtx, spec.ProductID, specID)
		if err != nil {
			return err
		}
		if result := compliance.CheckConsistency(spec.ProductID, content, siblings); !result.IsConsistent {
			return &compliance.ConsistencyError{Result: result}
		}

		now := time.Now().UTC()
		status := labelspec.StatusApproved
		patch := labelspec.SpecPatch{
			Status:     &status,
			ApprovedBy: &actor,
			ApprovedAt: &now,
		}
		if err := s.repo.UpdateSpec(txCtx, specID, patch); err != nil {
			return err
		}
		updated = spec
		updated.Status = labelspec.StatusApproved
		updated.ApprovedBy = &actor
		updated.ApprovedAt = &now

		newValue := string(labelspec.StatusApproved)
		oldValue := string(labelspec.StatusDraft)
		return s.appendLog(txCtx, specID, "status", labelspec.ActionApprove, &oldValue, &newValue, actor)
	})
	if err != nil {
		return labelspec.Spec{}, err
	}

	transitionsTotal.WithLabelValues(labelspec.ActionApprove).Inc()
	s.publish(SpecApprovedEvent{Spec: updated})
	composables.UseLogger(ctx).
		WithField("spec_id", updated.ID).
		WithField("version", updated.Version).
		Info("label spec approved")
	return updated, nil
}

// RetireSpec moves an approved spec into the terminal retired state.
func (s *LabelSpecService) RetireSpec(ctx context.Context, specID uuid.UUID, actor uuid.UUID) (labelspec.Spec, error) {
	var updated labelspec.Spec
	err := s.repo.InTx(ctx, func(txCtx context.Context) error {
		spec, err := s.repo.GetSpec(txCtx, specID)
		if err != nil {
			return err
		}
		if spec.Status != labelspec.StatusApproved {
			return labelspec.ErrInvalidStatusTransition
		}

		status := labelspec.StatusRetired
		if err := s.repo.UpdateSpec(txCtx, specID, labelspec.SpecPatch{Status: &status}); err != nil {
			return err
		}
		updated = spec
		updated.Status = labelspec.StatusRetired

		oldValue := string(labelspec.StatusApproved)
		newValue := string(labelspec.StatusRetired)
		return s.appendLog(txCtx, specID, "status", labelspec.ActionRetire, &oldValue, &newValue, actor)
	})
	if err != nil {
		return labelspec.Spec{}, err
	}

	transitionsTotal.WithLabelValues(labelspec.ActionRetire).Inc()
	s.publish(SpecRetiredEvent{Spec: updated})
	return updated, nil
}

// ExportSpec gates export on approval, QA sign-off and a recorded CoA
// reference, and re-runs the consistency check: siblings may have been
// approved since this spec was, and an inconsistent template must not ship.
func (s *LabelSpecService) ExportSpec(ctx context.Context, specID uuid.UUID, format string) (ExportArtifact, error) {
	format = strings.ToLower(strings.TrimSpace(format))

	spec, err := s.repo.GetSpec(ctx, specID)
	if err != nil {
		return ExportArtifact{}, err
	}
	if spec.Status != labelspec.StatusApproved || !spec.QAApproved {
		return ExportArtifact{}, labelspec.ErrInvalidStatusTransition
	}
	content, err := s.repo.GetContent(ctx, specID)
	if err != nil {
		return ExportArtifact{}, err
	}
	if !content.HasCoA() {
		return ExportArtifact{}, labelspec.ErrCoARequired
	}
	siblings, err := s.repo.QueryApprovedSiblings(ctx, spec.ProductID, specID)
	if err != nil {
		return ExportArtifact{}, err
	}
	if result := compliance.CheckConsistency(spec.ProductID, content, siblings); !result.IsConsistent {
		return ExportArtifact{}, &compliance.ConsistencyError{Result: result}
	}

	bundle := labelspec.SpecWithContent{Spec: spec, Content: &content}
	var artifact ExportArtifact
	switch format {
	case "", "json":
		artifact = ExportArtifact{Format: "json", Spec: &bundle}
	case "xlsx":
		data, err := buildSpecWorkbook(bundle)
		if err != nil {
			return ExportArtifact{}, err
		}
		artifact = ExportArtifact{
			Format:   "xlsx",
			Data:     data,
			Filename: fmt.Sprintf("%s-v%d-label-spec.xlsx", spec.ProductID, spec.Version),
		}
	case "pdf", "png":
		if s.renderer == nil {
			return ExportArtifact{}, fmt.Errorf("no renderer configured for format %q", format)
		}
		ref, err := s.renderer.Render(ctx, format, bundle)
		if err != nil {
			return ExportArtifact{}, err
		}
		artifact = ExportArtifact{Format: format, Ref: ref}
	default:
		return ExportArtifact{}, fmt.Errorf("unsupported export format %q", format)
	}

	s.publish(SpecExportedEvent{SpecID: specID, Format: artifact.Format})
	return artifact, nil
}

// SuggestFromIngredients recomputes the suggestion feed for a spec.
func (s *LabelSpecService) SuggestFromIngredients(ctx context.Context, specID uuid.UUID) ([]labelspec.Suggestion, error) {
	content, err := s.repo.GetContent(ctx, specID)
	if err != nil {
		return nil, err
	}
	return s.engine.Suggest(content), nil
}

// ClaimValidation classifies the saved claim text.
func (s *LabelSpecService) ClaimValidation(ctx context.Context, specID uuid.UUID) (compliance.ClaimResult, error) {
	content, err := s.repo.GetContent(ctx, specID)
	if err != nil {
		return compliance.ClaimResult{}, err
	}
	return s.tables.ValidateClaim(content.ClaimEN, content.ClaimFR), nil
}

// CrossCheckFlags recomputes the risk/warning coverage flags.
func (s *LabelSpecService) CrossCheckFlags(ctx context.Context, specID uuid.UUID) ([]labelspec.RiskFlag, error) {
	content, err := s.repo.GetContent(ctx, specID)
	if err != nil {
		return nil, err
	}
	return s.tables.CrossCheck(content), nil
}

// RiskFlags recomputes the generator's ingredient flags without saving.
func (s *LabelSpecService) RiskFlags(ctx context.Context, specID uuid.UUID) ([]labelspec.RiskFlag, error) {
	content, err := s.repo.GetContent(ctx, specID)
	if err != nil {
		return nil, err
	}
	return s.tables.GenerateRiskFlags(content), nil
}

// BatchConsistency compares a spec against the approved siblings of its
// product.
func (s *LabelSpecService) BatchConsistency(ctx context.Context, specID uuid.UUID) (compliance.ConsistencyResult, error) {
	spec, err := s.repo.GetSpec(ctx, specID)
	if err != nil {
		return compliance.ConsistencyResult{}, err
	}
	content, err := s.repo.GetContent(ctx, specID)
	if err != nil {
		return compliance.ConsistencyResult{}, err
	}
	siblings, err := s.repo.QueryApprovedSiblings(ctx, spec.ProductID, specID)
	if err != nil {
		return compliance.ConsistencyResult{}, err
	}
	return compliance.CheckConsistency(spec.ProductID, content, siblings), nil
}

func (s *LabelSpecService) publish(event any) {
	if s.publisher != nil {
		s.publisher.Publish(event)
	}
}

func (s *LabelSpecService) appendLog(ctx context.Context, specID uuid.UUID, field, action string, oldValue, newValue *string, actor uuid.UUID) error {
	entry := labelspec.ActivityLogEntry{
		ID:        uuid.New(),
		SpecID:    specID,
		Field:     field,
		Action:    action,
		OldValue:  oldValue,
		NewValue:  newValue,
		CreatedAt: time.Now().UTC(),
	}
	if actor != uuid.Nil {
		entry.Actor = &actor
	}
	return s.repo.AppendActivityLog(ctx, entry)
}

func errorFlags(flags []labelspec.RiskFlag) []labelspec.RiskFlag {
	out := make([]labelspec.RiskFlag, 0, len(flags))
	for _, flag := range flags {
		if flag.Severity == labelspec.SeverityError {
			out = append(out, flag)
		}
	}
	return out
}

func applySuggestionField(content *labelspec.Content, sug labelspec.Suggestion) error {
	mergeInto := func(en *string, fr *string) {
		*en = suggest.MergeSuggestion(*en, sug.SuggestionEN)
		*fr = suggest.MergeSuggestion(*fr, sug.SuggestionFR)
	}
	mergeOptional := func(field **string, value string) {
		if *field == nil {
			*field = &value
			return
		}
		merged := suggest.MergeSuggestion(**field, value)
		*field = &merged
	}

	switch sug.Field {
	case "warning_en":
		mergeInto(&content.WarningEN, &content.WarningFR)
	case "directions_en":
		mergeInto(&content.DirectionsEN, &content.DirectionsFR)
	case "duration_en":
		mergeOptional(&content.DurationEN, sug.SuggestionEN)
		mergeOptional(&content.DurationFR, sug.SuggestionFR)
	case "storage_en":
		mergeOptional(&content.StorageEN, sug.SuggestionEN)
		mergeOptional(&content.StorageFR, sug.SuggestionFR)
	case "company_block_en":
		mergeOptional(&content.CompanyBlockEN, sug.SuggestionEN)
		mergeOptional(&content.CompanyBlockFR, sug.SuggestionFR)
	case "website":
		mergeOptional(&content.Website, sug.SuggestionEN)
	case "made_in":
		mergeOptional(&content.MadeIn, sug.SuggestionEN)
	case "distributed_by":
		mergeOptional(&content.DistributedBy, sug.SuggestionEN)
	case "npn":
		mergeOptional(&content.NPN, sug.SuggestionEN)
	case "lot_number":
		mergeOptional(&content.LotNumber, sug.SuggestionEN)
	case "expiry_date":
		parsed, err := time.Parse("2006-01-02", sug.SuggestionEN)
		if err != nil {
			return fmt.Errorf("invalid expiry date suggestion %q", sug.SuggestionEN)
		}
		parsed = parsed.UTC()
		content.ExpiryDate = &parsed
	default:
		return fmt.Errorf("suggestion targets unknown field %q", sug.Field)
	}
	return nil
}

// contentDiff summarizes the changed top-level fields of a content save as
// JSON old/new maps for the audit trail.
func contentDiff(previous *labelspec.Content, current labelspec.Content) (*string, *string) {
	newMap := contentMap(current)
	if previous == nil {
		encoded := encodeMap(newMap)
		return nil, &encoded
	}
	oldMap := contentMap(*previous)

	changedOld := make(map[string]any)
	changedNew := make(map[string]any)
	for key, newVal := range newMap {
		if oldVal, ok := oldMap[key]; !ok || !reflect.DeepEqual(oldVal, newVal) {
			changedOld[key] = oldMap[key]
			changedNew[key] = newVal
		}
	}
	for key, oldVal := range oldMap {
		if _, ok := newMap[key]; !ok {
			changedOld[key] = oldVal
			changedNew[key] = nil
		}
	}

	oldEncoded := encodeMap(changedOld)
	newEncoded := encodeMap(changedNew)
	return &oldEncoded, &newEncoded
}

func contentMap(c labelspec.Content) map[string]any {
	c.UpdatedAt = time.Time{}
	raw, err := json.Marshal(c)
	if err != nil {
		return map[string]any{}
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{}
	}
	return out
}

func encodeMap(m map[string]any) string {
	raw, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(raw)
}
