package compliance

import (
	"fmt"

	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
)

// ValidationError is an abortive, pre-mutation check failure. The message is
// user-facing.
type ValidationError struct {
	Field     string
	MessageEN string
	MessageFR string
}

func (e *ValidationError) Error() string {
	return e.MessageEN
}

func newValidationError(field, messageEN, messageFR string) *ValidationError {
	return &ValidationError{Field: field, MessageEN: messageEN, MessageFR: messageFR}
}

// ConsistencyError wraps an inconsistent batch-consistency result so the
// workflow can abort approval or export with the deviation detail attached.
type ConsistencyError struct {
	Result ConsistencyResult
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s (%d deviations)", e.Result.MessageEN, len(e.Result.Deviations))
}

// CrossCheckError carries the error-severity flags that block approval.
type CrossCheckError struct {
	Flags []labelspec.RiskFlag
}

func (e *CrossCheckError) Error() string {
	if len(e.Flags) == 1 {
		return fmt.Sprintf("risk for %q is not reflected in the warning text", e.Flags[0].Ingredient)
	}
	return fmt.Sprintf("%d ingredient risks are not reflected in the warning text", len(e.Flags))
}

// ClaimError signals a blocked marketing claim.
type ClaimError struct {
	Result ClaimResult
}

func (e *ClaimError) Error() string {
	return e.Result.MessageEN
}
