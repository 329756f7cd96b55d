package labelspec

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MedicinalItem is one row of the medicinal ingredient table, in label order.
type MedicinalItem struct {
	NameEN           string           `json:"name_en"`
	NameFR           string           `json:"name_fr"`
	Part             *string          `json:"part,omitempty"`
	ExtractRatio     *string          `json:"extract_ratio,omitempty"`
	StrengthMG       *decimal.Decimal `json:"strength_mg,omitempty"`
	PerServing       *string          `json:"per_serving,omitempty"`
	ClaimReferenceID *string          `json:"claim_reference_id,omitempty"`
}

// Content holds the bilingual label content of a spec. There is at most one
// content row per spec, created lazily on the first save. Required text fields
// stay empty strings while a draft is being filled in; optional fields are nil
// when blank.
type Content struct {
	SpecID uuid.UUID `json:"spec_id"`

	ProductNameEN string `json:"product_name_en"`
	ProductNameFR string `json:"product_name_fr"`
	ClaimEN       string `json:"claim_en"`
	ClaimFR       string `json:"claim_fr"`
	DirectionsEN  string `json:"directions_en"`
	DirectionsFR  string `json:"directions_fr"`
	WarningEN     string `json:"warning_en"`
	WarningFR     string `json:"warning_fr"`

	DurationEN *string `json:"duration_en,omitempty"`
	DurationFR *string `json:"duration_fr,omitempty"`
	StorageEN  *string `json:"storage_en,omitempty"`
	StorageFR  *string `json:"storage_fr,omitempty"`

	CompanyBlockEN *string `json:"company_block_en,omitempty"`
	CompanyBlockFR *string `json:"company_block_fr,omitempty"`
	Website        *string `json:"website,omitempty"`
	MadeIn         *string `json:"made_in,omitempty"`
	DistributedBy  *string `json:"distributed_by,omitempty"`
	NPN            *string `json:"npn,omitempty"`

	DosageForm     string          `json:"dosage_form"`
	Medicinal      []MedicinalItem `json:"medicinal"`
	NonMedicinalEN *string         `json:"non_medicinal_en,omitempty"`
	NonMedicinalFR *string         `json:"non_medicinal_fr,omitempty"`

	BatchID         *string    `json:"batch_id,omitempty"`
	BatchDate       *time.Time `json:"batch_date,omitempty"`
	ShelfLifeMonths *int       `json:"shelf_life_months,omitempty"`
	LotNumber       *string    `json:"lot_number,omitempty"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
	CoAFilePath     *string    `json:"coa_file_path,omitempty"`
	CoAFileName     *string    `json:"coa_file_name,omitempty"`

	OverrideStorage   bool `json:"override_storage_flag"`
	OverrideLotExpiry bool `json:"override_lot_expiry_flag"`

	// RiskFlags is a denormalized cache of the generator output at last save.
	// Derived views always recompute; this copy exists for reporting only.
	RiskFlags []RiskFlag `json:"risk_flags"`

	UpdatedAt time.Time `json:"updated_at"`
}

// HasCoA reports whether a Certificate of Analysis reference is recorded.
// The core never inspects file bytes, only presence of the reference.
func (c Content) HasCoA() bool {
	return c.CoAFilePath != nil && *c.CoAFilePath != ""
}
