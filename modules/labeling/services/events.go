package services

import (
	"github.com/google/uuid"

	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
)

type DraftCreatedEvent struct {
	Spec labelspec.Spec
}

type ContentUpdatedEvent struct {
	SpecID  uuid.UUID
	Content labelspec.Content
}

type SpecQAApprovedEvent struct {
	Spec labelspec.Spec
}

type SpecApprovedEvent struct {
	Spec labelspec.Spec
}

type SpecRetiredEvent struct {
	Spec labelspec.Spec
}

type SpecExportedEvent struct {
	SpecID uuid.UUID
	Format string
}
