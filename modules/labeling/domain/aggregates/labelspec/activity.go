package labelspec

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions. One entry is appended per mutating operation.
const (
	ActionCreate          = "create"
	ActionUpdateContent   = "update_content"
	ActionApplySuggestion = "apply_suggestion"
	ActionAttachCoA       = "attach_coa"
	ActionQAApprove       = "qa_approve"
	ActionApprove         = "approve"
	ActionRetire          = "retire"
)

// ActivityLogEntry is an append-only audit record. Entries are never updated
// or deleted. OldValue/NewValue hold JSON summaries of the affected fields.
type ActivityLogEntry struct {
	ID        uuid.UUID  `json:"id"`
	SpecID    uuid.UUID  `json:"spec_id"`
	Field     string     `json:"field"`
	Action    string     `json:"action"`
	OldValue  *string    `json:"old_value,omitempty"`
	NewValue  *string    `json:"new_value,omitempty"`
	Actor     *uuid.UUID `json:"actor,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
