package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
	"github.com/herbalogix/labelspec/modules/labeling/domain/compliance"
	"github.com/herbalogix/labelspec/modules/labeling/domain/suggest"
)

type memoryRepo struct {
	specs    map[uuid.UUID]labelspec.Spec
	contents map[uuid.UUID]labelspec.Content
	activity []labelspec.ActivityLogEntry
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		specs:    map[uuid.UUID]labelspec.Spec{},
		contents: map[uuid.UUID]labelspec.Content{},
	}
}

func (m *memoryRepo) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *memoryRepo) GetSpec(_ context.Context, id uuid.UUID) (labelspec.Spec, error) {
	spec, ok := m.specs[id]
	if !ok {
		return labelspec.Spec{}, labelspec.ErrNotFound
	}
	return spec, nil
}

func (m *memoryRepo) InsertSpec(_ context.Context, spec labelspec.Spec) (labelspec.Spec, error) {
	for _, existing := range m.specs {
		if existing.ProductID == spec.ProductID && existing.Version == spec.Version {
			return labelspec.Spec{}, labelspec.ErrVersionConflict
		}
	}
	m.specs[spec.ID] = spec
	return spec, nil
}

func (m *memoryRepo) UpdateSpec(_ context.Context, id uuid.UUID, patch labelspec.SpecPatch) error {
	spec, ok := m.specs[id]
	if !ok {
		return labelspec.ErrNotFound
	}
	if patch.Status != nil {
		spec.Status = *patch.Status
	}
	if patch.QAApproved != nil {
		spec.QAApproved = *patch.QAApproved
	}
	if patch.QAApprovedBy != nil {
		spec.QAApprovedBy = patch.QAApprovedBy
	}
	if patch.QAApprovedAt != nil {
		spec.QAApprovedAt = patch.QAApprovedAt
	}
	if patch.ApprovedBy != nil {
		spec.ApprovedBy = patch.ApprovedBy
	}
	if patch.ApprovedAt != nil {
		spec.ApprovedAt = patch.ApprovedAt
	}
	m.specs[id] = spec
	return nil
}

func (m *memoryRepo) MaxVersion(_ context.Context, productID string) (int, error) {
	maxVersion := 0
	for _, spec := range m.specs {
		if spec.ProductID == productID && spec.Version > maxVersion {
			maxVersion = spec.Version
		}
	}
	return maxVersion, nil
}

func (m *memoryRepo) ListByProduct(_ context.Context, productID string, status *labelspec.Status) ([]labelspec.Spec, error) {
	out := make([]labelspec.Spec, 0)
	for _, spec := range m.specs {
		if spec.ProductID != productID {
			continue
		}
		if status != nil && spec.Status != *status {
			continue
		}
		out = append(out, spec)
	}
	return out, nil
}

func (m *memoryRepo) GetContent(_ context.Context, specID uuid.UUID) (labelspec.Content, error) {
	content, ok := m.contents[specID]
	if !ok {
		return labelspec.Content{}, labelspec.ErrContentNotFound
	}
	return content, nil
}

func (m *memoryRepo) UpsertContent(_ context.Context, content labelspec.Content) error {
	m.contents[content.SpecID] = content
	return nil
}

func (m *memoryRepo) QueryApprovedSiblings(_ context.Context, productID string, excludeID uuid.UUID) ([]labelspec.Content, error) {
	out := make([]labelspec.Content, 0)
	for id, spec := range m.specs {
		if spec.ProductID != productID || spec.Status != labelspec.StatusApproved || id == excludeID {
			continue
		}
		if content, ok := m.contents[id]; ok {
			out = append(out, content)
		}
	}
	return out, nil
}

func (m *memoryRepo) QueryApprovedWithContent(_ context.Context, productID string) ([]labelspec.SpecWithContent, error) {
	out := make([]labelspec.SpecWithContent, 0)
	for id, spec := range m.specs {
		if spec.ProductID != productID || spec.Status != labelspec.StatusApproved || !spec.QAApproved {
			continue
		}
		if content, ok := m.contents[id]; ok {
			c := content
			out = append(out, labelspec.SpecWithContent{Spec: spec, Content: &c})
		}
	}
	return out, nil
}

func (m *memoryRepo) AppendActivityLog(_ context.Context, entry labelspec.ActivityLogEntry) error {
	m.activity = append(m.activity, entry)
	return nil
}

func (m *memoryRepo) ListActivity(_ context.Context, specID uuid.UUID) ([]labelspec.ActivityLogEntry, error) {
	out := make([]labelspec.ActivityLogEntry, 0)
	for _, entry := range m.activity {
		if entry.SpecID == specID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func newTestService(repo labelspec.Repository) *LabelSpecService {
	tables := compliance.DefaultTables()
	engine := suggest.NewEngineWithDigits(tables, func(n int) string { return "123456"[:n] })
	return NewLabelSpecService(repo, tables, engine, nil, nil)
}

func approvableDTO() *labelspec.UpdateContentDTO {
	return &labelspec.UpdateContentDTO{
		ProductNameEN: "Stress Relief",
		ProductNameFR: "Soulagement du stress",
		ClaimEN:       "Helps increase resistance to stress",
		ClaimFR:       "Aide à augmenter la résistance au stress",
		DirectionsEN:  "Adults: Take 1 capsule 2 times daily with food.",
		DirectionsFR:  "Adultes : Prendre 1 capsule 2 fois par jour avec de la nourriture.",
		WarningEN:     "Consult a health care practitioner prior to use if you are pregnant or breastfeeding.",
		WarningFR:     "Consultez un praticien avant l'usage si vous êtes enceinte ou allaitez.",
		DosageForm:    "Capsule",
		Medicinal: []labelspec.MedicinalItemInput{{
			NameEN:     "Ashwagandha",
			NameFR:     "Ashwagandha",
			StrengthMG: "300",
		}},
		ShelfLifeMonths: "24",
	}
}

func TestCreateDraft_VersionsAreSequential(t *testing.T) {
	svc := newTestService(newMemoryRepo())
	ctx := context.Background()
	actor := uuid.New()

	for want := 1; want <= 3; want++ {
		spec, err := svc.CreateDraft(ctx, "HX-100", actor)
		require.NoError(t, err)
		require.Equal(t, want, spec.Version)
		require.Equal(t, labelspec.StatusDraft, spec.Status)
		require.False(t, spec.QAApproved)
	}

	other, err := svc.CreateDraft(ctx, "HX-200", actor)
	require.NoError(t, err)
	require.Equal(t, 1, other.Version)
}

func TestCreateDraft_RequiresProductID(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	_, err := svc.CreateDraft(context.Background(), "   ", uuid.New())
	require.Error(t, err)
}

// staleVersionRepo serves a stale MaxVersion for the first reads, so the
// following insert collides the way a concurrent creation would.
type staleVersionRepo struct {
	*memoryRepo
	staleReads int
}

func (r *staleVersionRepo) MaxVersion(ctx context.Context, productID string) (int, error) {
	if r.staleReads > 0 {
		r.staleReads--
		return 0, nil
	}
	return r.memoryRepo.MaxVersion(ctx, productID)
}

func TestCreateDraft_RetriesOnVersionConflict(t *testing.T) {
	repo := &staleVersionRepo{memoryRepo: newMemoryRepo()}
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	first, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)
	require.Equal(t, 1, first.Version)

	repo.staleReads = 1
	second, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)
	require.Equal(t, 2, second.Version)
}

func TestCreateDraft_PersistentConflictSurfaces(t *testing.T) {
	repo := &staleVersionRepo{memoryRepo: newMemoryRepo()}
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	_, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)

	repo.staleReads = 2
	_, err = svc.CreateDraft(ctx, "HX-100", actor)
	require.ErrorIs(t, err, labelspec.ErrVersionConflict)
}

func TestUpdateContent_SavesAndCachesRiskFlags(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	spec, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)

	content, err := svc.UpdateContent(ctx, spec.ID, approvableDTO(), actor)
	require.NoError(t, err)
	require.Len(t, content.RiskFlags, 1)
	require.Equal(t, labelspec.FlagContraindication, content.RiskFlags[0].Type)

	entries, err := svc.ListActivity(ctx, spec.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, labelspec.ActionCreate, entries[0].Action)
	require.Equal(t, labelspec.ActionUpdateContent, entries[1].Action)
}

func TestUpdateContent_InvalidPayload(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	spec, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)

	dto := approvableDTO()
	dto.Medicinal = nil
	_, err = svc.UpdateContent(ctx, spec.ID, dto, actor)

	var vErr *ContentValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestUpdateContent_LockedAfterQAApproval(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	spec, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)
	_, err = svc.UpdateContent(ctx, spec.ID, approvableDTO(), actor)
	require.NoError(t, err)
	_, err = svc.QAApproveSpec(ctx, spec.ID, actor)
	require.NoError(t, err)

	_, err = svc.UpdateContent(ctx, spec.ID, approvableDTO(), actor)
	require.ErrorIs(t, err, labelspec.ErrContentLocked)
}

func TestUpdateContent_PreservesCoAReference(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	spec, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)
	_, err = svc.UpdateContent(ctx, spec.ID, approvableDTO(), actor)
	require.NoError(t, err)
	require.NoError(t, svc.AttachCoA(ctx, spec.ID, "s3://coa/HX-100.pdf", "HX-100.pdf", actor))

	content, err := svc.UpdateContent(ctx, spec.ID, approvableDTO(), actor)
	require.NoError(t, err)
	require.True(t, content.HasCoA())
}

func TestQAApprove_RequiresActor(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	spec, err := svc.CreateDraft(ctx, "HX-100", uuid.New())
	require.NoError(t, err)

	_, err = svc.QAApproveSpec(ctx, spec.ID, uuid.Nil)
	require.ErrorIs(t, err, labelspec.ErrActorRequired)
}

func TestQAApprove_SecondSignOffFails(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	spec, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)

	signed, err := svc.QAApproveSpec(ctx, spec.ID, actor)
	require.NoError(t, err)
	require.True(t, signed.QAApproved)
	require.NotNil(t, signed.QAApprovedAt)

	_, err = svc.QAApproveSpec(ctx, spec.ID, actor)
	require.ErrorIs(t, err, labelspec.ErrAlreadyQAApproved)
}

func TestApprove_RequiresQASignOff(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	spec, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)
	_, err = svc.UpdateContent(ctx, spec.ID, approvableDTO(), actor)
	require.NoError(t, err)

	_, err = svc.ApproveSpec(ctx, spec.ID, actor)
	require.ErrorIs(t, err, labelspec.ErrQAApprovalRequired)
}

func TestApprove_RequiresContent(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	spec, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)
	_, err = svc.QAApproveSpec(ctx, spec.ID, actor)
	require.NoError(t, err)

	_, err = svc.ApproveSpec(ctx, spec.ID, actor)
	require.ErrorIs(t, err, labelspec.ErrContentNotFound)
}

func TestApprove_IncompleteContent(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	spec, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)
	dto := approvableDTO()
	dto.WarningFR = ""
	_, err = svc.UpdateContent(ctx, spec.ID, dto, actor)
	require.NoError(t, err)
	_, err = svc.QAApproveSpec(ctx, spec.ID, actor)
	require.NoError(t, err)

	_, err = svc.ApproveSpec(ctx, spec.ID, actor)

	var vErr *compliance.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "warning", vErr.Field)
}

func TestApprove_BlockedClaim(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	spec, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)
	dto := approvableDTO()
	dto.ClaimEN = "Cures stress permanently"
	_, err = svc.UpdateContent(ctx, spec.ID, dto, actor)
	require.NoError(t, err)
	_, err = svc.QAApproveSpec(ctx, spec.ID, actor)
	require.NoError(t, err)

	_, err = svc.ApproveSpec(ctx, spec.ID, actor)

	var claimErr *compliance.ClaimError
	require.ErrorAs(t, err, &claimErr)
	require.False(t, claimErr.Result.IsValid)
}

func TestApprove_UncoveredRiskBlocks(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	spec, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)
	dto := approvableDTO()
	dto.WarningEN = "Keep out of reach of children."
	dto.WarningFR = "Garder hors de la portée des enfants."
	_, err = svc.UpdateContent(ctx, spec.ID, dto, actor)
	require.NoError(t, err)
	_, err = svc.QAApproveSpec(ctx, spec.ID, actor)
	require.NoError(t, err)

	_, err = svc.ApproveSpec(ctx, spec.ID, actor)

	var ccErr *compliance.CrossCheckError
	require.ErrorAs(t, err, &ccErr)
	require.Len(t, ccErr.Flags, 1)
}

func TestApprove_InconsistentSiblingBlocks(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	approved := approveSpec(t, svc, ctx, "HX-100", actor, approvableDTO())
	require.Equal(t, labelspec.StatusApproved, approved.Status)

	next, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)
	dto := approvableDTO()
	dto.DosageForm = "Gummy"
	_, err = svc.UpdateContent(ctx, next.ID, dto, actor)
	require.NoError(t, err)
	_, err = svc.QAApproveSpec(ctx, next.ID, actor)
	require.NoError(t, err)

	_, err = svc.ApproveSpec(ctx, next.ID, actor)

	var consErr *compliance.ConsistencyError
	require.ErrorAs(t, err, &consErr)
	require.False(t, consErr.Result.IsConsistent)
}

func approveSpec(t *testing.T, svc *LabelSpecService, ctx context.Context, productID string, actor uuid.UUID, dto *labelspec.UpdateContentDTO) labelspec.Spec {
	t.Helper()
	spec, err := svc.CreateDraft(ctx, productID, actor)
	require.NoError(t, err)
	_, err = svc.UpdateContent(ctx, spec.ID, dto, actor)
	require.NoError(t, err)
	_, err = svc.QAApproveSpec(ctx, spec.ID, actor)
	require.NoError(t, err)
	approved, err := svc.ApproveSpec(ctx, spec.ID, actor)
	require.NoError(t, err)
	return approved
}

func TestApprove_FullWorkflow(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	approved := approveSpec(t, svc, ctx, "HX-100", actor, approvableDTO())

	require.Equal(t, labelspec.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)
	require.NotNil(t, approved.ApprovedBy)
	require.Equal(t, actor, *approved.ApprovedBy)

	entries, err := svc.ListActivity(ctx, approved.ID)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	require.Equal(t, labelspec.ActionApprove, entries[3].Action)
	require.Equal(t, "status", entries[3].Field)
}

func TestApprove_NonDraftFails(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	approved := approveSpec(t, svc, ctx, "HX-100", actor, approvableDTO())

	_, err := svc.ApproveSpec(ctx, approved.ID, actor)
	require.ErrorIs(t, err, labelspec.ErrInvalidStatusTransition)
}

func TestRetire_OnlyFromApproved(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	draft, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)
	_, err = svc.RetireSpec(ctx, draft.ID, actor)
	require.ErrorIs(t, err, labelspec.ErrInvalidStatusTransition)

	approved := approveSpec(t, svc, ctx, "HX-200", actor, approvableDTO())
	retired, err := svc.RetireSpec(ctx, approved.ID, actor)
	require.NoError(t, err)
	require.Equal(t, labelspec.StatusRetired, retired.Status)

	_, err = svc.RetireSpec(ctx, approved.ID, actor)
	require.ErrorIs(t, err, labelspec.ErrInvalidStatusTransition)
}

func TestExport_RequiresApprovalAndCoA(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	draft, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)
	_, err = svc.UpdateContent(ctx, draft.ID, approvableDTO(), actor)
	require.NoError(t, err)

	_, err = svc.ExportSpec(ctx, draft.ID, "json")
	require.ErrorIs(t, err, labelspec.ErrInvalidStatusTransition)

	approved := approveSpec(t, svc, ctx, "HX-200", actor, approvableDTO())
	_, err = svc.ExportSpec(ctx, approved.ID, "json")
	require.ErrorIs(t, err, labelspec.ErrCoARequired)

	require.NoError(t, svc.AttachCoA(ctx, approved.ID, "s3://coa/HX-200.pdf", "HX-200.pdf", actor))

	artifact, err := svc.ExportSpec(ctx, approved.ID, "json")
	require.NoError(t, err)
	require.Equal(t, "json", artifact.Format)
	require.NotNil(t, artifact.Spec)
	require.NotNil(t, artifact.Spec.Content)
}

func TestExport_XLSXArtifact(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	approved := approveSpec(t, svc, ctx, "HX-100", actor, approvableDTO())
	require.NoError(t, svc.AttachCoA(ctx, approved.ID, "s3://coa/HX-100.pdf", "HX-100.pdf", actor))

	artifact, err := svc.ExportSpec(ctx, approved.ID, "xlsx")
	require.NoError(t, err)
	require.Equal(t, "xlsx", artifact.Format)
	require.NotEmpty(t, artifact.Data)
	require.Contains(t, artifact.Filename, "HX-100")
}

func TestExport_InconsistentSiblingBlocks(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	approved := approveSpec(t, svc, ctx, "HX-100", actor, approvableDTO())
	require.NoError(t, svc.AttachCoA(ctx, approved.ID, "s3://coa/HX-100.pdf", "HX-100.pdf", actor))

	_, err := svc.ExportSpec(ctx, approved.ID, "json")
	require.NoError(t, err)

	// A sibling approved after this spec drifts from the shared template.
	sibling := approved
	sibling.ID = uuid.New()
	sibling.Version = approved.Version + 1
	repo.specs[sibling.ID] = sibling
	drifted := repo.contents[approved.ID]
	drifted.SpecID = sibling.ID
	drifted.DosageForm = "Gummy"
	repo.contents[sibling.ID] = drifted

	_, err = svc.ExportSpec(ctx, approved.ID, "json")

	var consErr *compliance.ConsistencyError
	require.ErrorAs(t, err, &consErr)
	require.False(t, consErr.Result.IsConsistent)
}

func TestExport_UnsupportedFormat(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	approved := approveSpec(t, svc, ctx, "HX-100", actor, approvableDTO())
	require.NoError(t, svc.AttachCoA(ctx, approved.ID, "s3://coa/HX-100.pdf", "HX-100.pdf", actor))

	_, err := svc.ExportSpec(ctx, approved.ID, "docx")
	require.Error(t, err)
}

func TestExport_RendererFormat(t *testing.T) {
	repo := newMemoryRepo()
	tables := compliance.DefaultTables()
	engine := suggest.NewEngine(tables)
	renderer := RendererFunc(func(_ context.Context, format string, spec labelspec.SpecWithContent) (string, error) {
		return "render://" + spec.Spec.ID.String() + "." + format, nil
	})
	svc := NewLabelSpecService(repo, tables, engine, renderer, nil)
	ctx := context.Background()
	actor := uuid.New()

	approved := approveSpec(t, svc, ctx, "HX-100", actor, approvableDTO())
	require.NoError(t, svc.AttachCoA(ctx, approved.ID, "s3://coa/HX-100.pdf", "HX-100.pdf", actor))

	artifact, err := svc.ExportSpec(ctx, approved.ID, "pdf")
	require.NoError(t, err)
	require.Equal(t, "pdf", artifact.Format)
	require.Equal(t, "render://"+approved.ID.String()+".pdf", artifact.Ref)
}

func TestApplySuggestion_MergeIsIdempotent(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	spec, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)
	_, err = svc.UpdateContent(ctx, spec.ID, approvableDTO(), actor)
	require.NoError(t, err)

	sug := labelspec.Suggestion{
		Field:        "warning_en",
		Source:       "contraindication",
		SuggestionEN: "Do not use with sedatives.",
		SuggestionFR: "Ne pas utiliser avec des sédatifs.",
	}

	first, err := svc.ApplySuggestion(ctx, spec.ID, sug, actor)
	require.NoError(t, err)
	require.Contains(t, first.WarningEN, "Do not use with sedatives.")
	require.Contains(t, first.WarningFR, "Ne pas utiliser avec des sédatifs.")

	second, err := svc.ApplySuggestion(ctx, spec.ID, sug, actor)
	require.NoError(t, err)
	require.Equal(t, first.WarningEN, second.WarningEN)
}

func TestApplySuggestion_UnknownField(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	spec, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)
	_, err = svc.UpdateContent(ctx, spec.ID, approvableDTO(), actor)
	require.NoError(t, err)

	_, err = svc.ApplySuggestion(ctx, spec.ID, labelspec.Suggestion{Field: "bogus"}, actor)
	require.Error(t, err)
}

func TestSuggestFromIngredients_UsesSavedContent(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	actor := uuid.New()

	spec, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)

	_, err = svc.SuggestFromIngredients(ctx, spec.ID)
	require.ErrorIs(t, err, labelspec.ErrContentNotFound)

	_, err = svc.UpdateContent(ctx, spec.ID, approvableDTO(), actor)
	require.NoError(t, err)

	suggestions, err := svc.SuggestFromIngredients(ctx, spec.ID)
	require.NoError(t, err)
	require.NotEmpty(t, suggestions)
}
