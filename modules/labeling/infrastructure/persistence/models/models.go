package models

import (
	"time"
)

type LabelSpec struct {
	ID           string
	ProductID    string
	Version      int
	Status       string
	QAApproved   bool
	QAApprovedBy *string
	QAApprovedAt *time.Time
	ApprovedBy   *string
	ApprovedAt   *time.Time
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type LabelSpecContent struct {
	SpecID        string
	ProductNameEN string
	ProductNameFR string
	ClaimEN       string
	ClaimFR       string
	DirectionsEN  string
	DirectionsFR  string
	WarningEN     string
	WarningFR     string

	DurationEN *string
	DurationFR *string
	StorageEN  *string
	StorageFR  *string

	CompanyBlockEN *string
	CompanyBlockFR *string
	Website        *string
	MadeIn         *string
	DistributedBy  *string
	NPN            *string

	DosageForm     string
	Medicinal      []byte
	NonMedicinalEN *string
	NonMedicinalFR *string

	BatchID         *string
	BatchDate       *time.Time
	ShelfLifeMonths *int
	LotNumber       *string
	ExpiryDate      *time.Time
	CoAFilePath     *string
	CoAFileName     *string

	OverrideStorage   bool
	OverrideLotExpiry bool

	RiskFlags []byte

	UpdatedAt time.Time
}

type ActivityLogEntry struct {
	ID        string
	SpecID    string
	Field     string
	Action    string
	OldValue  *string
	NewValue  *string
	Actor     *string
	CreatedAt time.Time
}
