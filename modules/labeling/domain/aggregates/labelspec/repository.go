package labelspec

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary of the labeling core. Every call is
// atomic; InTx groups calls of one workflow operation into a single
// transaction so no partial state transition is ever persisted.
type Repository interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error

	GetSpec(ctx context.Context, id uuid.UUID) (Spec, error)
	InsertSpec(ctx context.Context, spec Spec) (Spec, error)
	UpdateSpec(ctx context.Context, id uuid.UUID, patch SpecPatch) error
	// MaxVersion returns the highest version assigned for the product, or 0
	// if none exist. The (product_id, version) unique constraint converts a
	// concurrent read-then-insert race into ErrVersionConflict on insert.
	MaxVersion(ctx context.Context, productID string) (int, error)
	ListByProduct(ctx context.Context, productID string, status *Status) ([]Spec, error)

	GetContent(ctx context.Context, specID uuid.UUID) (Content, error)
	UpsertContent(ctx context.Context, content Content) error
	// QueryApprovedSiblings returns content of every other approved spec of
	// the same product, the dataset the consistency check runs against.
	QueryApprovedSiblings(ctx context.Context, productID string, excludeID uuid.UUID) ([]Content, error)
	// QueryApprovedWithContent returns approved, QA-signed specs of the
	// product together with their content, for recall reporting.
	QueryApprovedWithContent(ctx context.Context, productID string) ([]SpecWithContent, error)

	AppendActivityLog(ctx context.Context, entry ActivityLogEntry) error
	ListActivity(ctx context.Context, specID uuid.UUID) ([]ActivityLogEntry, error)
}
