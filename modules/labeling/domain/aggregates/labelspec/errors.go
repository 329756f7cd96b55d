package labelspec

import "errors"

var (
	// ErrNotFound indicates the spec header does not exist.
	ErrNotFound = errors.New("label spec not found")
	// ErrContentNotFound indicates the spec has no content row yet.
	ErrContentNotFound = errors.New("label spec content not found")
	// ErrContentLocked indicates an edit was attempted outside the
	// draft-and-not-QA-approved window.
	ErrContentLocked = errors.New("label spec content is locked")
	// ErrAlreadyQAApproved indicates a second QA sign-off on the same spec.
	ErrAlreadyQAApproved = errors.New("label spec is already QA approved")
	// ErrQAApprovalRequired indicates regulatory approval was requested
	// before QA sign-off.
	ErrQAApprovalRequired = errors.New("label spec requires QA approval first")
	// ErrInvalidStatusTransition indicates the requested transition is not allowed.
	ErrInvalidStatusTransition = errors.New("label spec status transition not allowed")
	// ErrActorRequired indicates the operation demands an authenticated signer.
	ErrActorRequired = errors.New("an authenticated actor is required")
	// ErrCoARequired indicates export was requested without a CoA reference.
	ErrCoARequired = errors.New("certificate of analysis reference is required")
	// ErrVersionConflict indicates a concurrent draft creation took the
	// computed version; the caller may retry.
	ErrVersionConflict = errors.New("label spec version already taken")
)
