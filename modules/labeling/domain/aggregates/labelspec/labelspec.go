package labelspec

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a label spec version.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusApproved Status = "approved"
	StatusRetired  Status = "retired"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusApproved, StatusRetired:
		return true
	}
	return false
}

// Spec is one versioned snapshot of a product's label. The version is
// assigned once at creation and is strictly increasing per product.
type Spec struct {
	ID           uuid.UUID  `json:"id"`
	ProductID    string     `json:"product_id"`
	Version      int        `json:"version"`
	Status       Status     `json:"status"`
	CreatedBy    uuid.UUID  `json:"created_by"`
	QAApproved   bool       `json:"qa_approved_flag"`
	QAApprovedBy *uuid.UUID `json:"qa_approved_by,omitempty"`
	QAApprovedAt *time.Time `json:"qa_approved_at,omitempty"`
	ApprovedBy   *uuid.UUID `json:"approved_by,omitempty"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Editable reports whether the spec's content may still be mutated.
// QA sign-off locks content even while the status is still draft.
func (s Spec) Editable() bool {
	return s.Status == StatusDraft && !s.QAApproved
}

// SpecPatch carries header fields to update. Nil fields are left untouched;
// the workflow only ever sets values, it never clears them.
type SpecPatch struct {
	Status       *Status
	QAApproved   *bool
	QAApprovedBy *uuid.UUID
	QAApprovedAt *time.Time
	ApprovedBy   *uuid.UUID
	ApprovedAt   *time.Time
}

// SpecWithContent bundles a header with its lazily created content row.
// Content is nil until the first content save.
type SpecWithContent struct {
	Spec    Spec     `json:"spec"`
	Content *Content `json:"content,omitempty"`
}
