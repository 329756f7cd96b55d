package labelspec

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/herbalogix/labelspec/pkg/constants"
)

// MedicinalItemInput is the raw form of one medicinal table row. Numeric
// fields arrive as strings and are coerced during sanitization.
type MedicinalItemInput struct {
	NameEN           string `json:"name_en" validate:"required"`
	NameFR           string `json:"name_fr" validate:"required"`
	Part             string `json:"part"`
	ExtractRatio     string `json:"extract_ratio"`
	StrengthMG       string `json:"strength_mg"`
	PerServing       string `json:"per_serving"`
	ClaimReferenceID string `json:"claim_reference_id"`
}

// UpdateContentDTO is the raw content payload accepted by updateContent.
// Drafts may be partially filled; bilingual completeness is enforced only at
// approval time, not here.
type UpdateContentDTO struct {
	ProductNameEN string `json:"product_name_en"`
	ProductNameFR string `json:"product_name_fr"`
	ClaimEN       string `json:"claim_en"`
	ClaimFR       string `json:"claim_fr"`
	DirectionsEN  string `json:"directions_en"`
	DirectionsFR  string `json:"directions_fr"`
	WarningEN     string `json:"warning_en"`
	WarningFR     string `json:"warning_fr"`

	DurationEN string `json:"duration_en"`
	DurationFR string `json:"duration_fr"`
	StorageEN  string `json:"storage_en"`
	StorageFR  string `json:"storage_fr"`

	CompanyBlockEN string `json:"company_block_en"`
	CompanyBlockFR string `json:"company_block_fr"`
	Website        string `json:"website"`
	MadeIn         string `json:"made_in"`
	DistributedBy  string `json:"distributed_by"`
	NPN            string `json:"npn"`

	DosageForm     string               `json:"dosage_form"`
	Medicinal      []MedicinalItemInput `json:"medicinal" validate:"min=1,dive"`
	NonMedicinalEN string               `json:"non_medicinal_en"`
	NonMedicinalFR string               `json:"non_medicinal_fr"`

	BatchID         string `json:"batch_id"`
	BatchDate       string `json:"batch_date"`
	ShelfLifeMonths string `json:"shelf_life_months"`
	LotNumber       string `json:"lot_number"`
	ExpiryDate      string `json:"expiry_date"`

	OverrideStorage   *bool `json:"override_storage_flag"`
	OverrideLotExpiry *bool `json:"override_lot_expiry_flag"`
}

// Normalize trims every string field in place. Idempotent.
func (d *UpdateContentDTO) Normalize() {
	fields := []*string{
		&d.ProductNameEN, &d.ProductNameFR,
		&d.ClaimEN, &d.ClaimFR,
		&d.DirectionsEN, &d.DirectionsFR,
		&d.WarningEN, &d.WarningFR,
		&d.DurationEN, &d.DurationFR,
		&d.StorageEN, &d.StorageFR,
		&d.CompanyBlockEN, &d.CompanyBlockFR,
		&d.Website, &d.MadeIn, &d.DistributedBy, &d.NPN,
		&d.DosageForm,
		&d.NonMedicinalEN, &d.NonMedicinalFR,
		&d.BatchID, &d.BatchDate, &d.ShelfLifeMonths, &d.LotNumber, &d.ExpiryDate,
	}
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
	for i := range d.Medicinal {
		item := &d.Medicinal[i]
		item.NameEN = strings.TrimSpace(item.NameEN)
		item.NameFR = strings.TrimSpace(item.NameFR)
		item.Part = strings.TrimSpace(item.Part)
		item.ExtractRatio = strings.TrimSpace(item.ExtractRatio)
		item.StrengthMG = strings.TrimSpace(item.StrengthMG)
		item.PerServing = strings.TrimSpace(item.PerServing)
		item.ClaimReferenceID = strings.TrimSpace(item.ClaimReferenceID)
	}
}

// Ok validates the payload. Medicinal rows must be present and bilingual
// once saved; everything else may stay blank while the draft is edited.
func (d *UpdateContentDTO) Ok() (map[string]string, bool) {
	d.Normalize()
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return map[string]string{}, true
	}
	out := map[string]string{}
	for _, err := range errs.(validator.ValidationErrors) {
		out[err.Field()] = err.Tag()
	}
	return out, false
}

// Sanitize produces canonical content from the raw payload. Pure: required
// fields are trimmed to themselves, optional fields trim to nil, numeric
// strings are coerced, override flags default to false and risk flags to
// empty. Never fails; emptiness of required fields is the completeness
// validator's concern.
func (d UpdateContentDTO) Sanitize(specID uuid.UUID) Content {
	d.Normalize()

	items := make([]MedicinalItem, 0, len(d.Medicinal))
	for _, raw := range d.Medicinal {
		items = append(items, MedicinalItem{
			NameEN:           raw.NameEN,
			NameFR:           raw.NameFR,
			Part:             nilIfEmpty(raw.Part),
			ExtractRatio:     nilIfEmpty(raw.ExtractRatio),
			StrengthMG:       coerceDecimal(raw.StrengthMG),
			PerServing:       nilIfEmpty(raw.PerServing),
			ClaimReferenceID: nilIfEmpty(raw.ClaimReferenceID),
		})
	}

	return Content{
		SpecID:        specID,
		ProductNameEN: d.ProductNameEN,
		ProductNameFR: d.ProductNameFR,
		ClaimEN:       d.ClaimEN,
		ClaimFR:       d.ClaimFR,
		DirectionsEN:  d.DirectionsEN,
		DirectionsFR:  d.DirectionsFR,
		WarningEN:     d.WarningEN,
		WarningFR:     d.WarningFR,

		DurationEN: nilIfEmpty(d.DurationEN),
		DurationFR: nilIfEmpty(d.DurationFR),
		StorageEN:  nilIfEmpty(d.StorageEN),
		StorageFR:  nilIfEmpty(d.StorageFR),

		CompanyBlockEN: nilIfEmpty(d.CompanyBlockEN),
		CompanyBlockFR: nilIfEmpty(d.CompanyBlockFR),
		Website:        nilIfEmpty(d.Website),
		MadeIn:         nilIfEmpty(d.MadeIn),
		DistributedBy:  nilIfEmpty(d.DistributedBy),
		NPN:            nilIfEmpty(d.NPN),

		DosageForm:     d.DosageForm,
		Medicinal:      items,
		NonMedicinalEN: nilIfEmpty(d.NonMedicinalEN),
		NonMedicinalFR: nilIfEmpty(d.NonMedicinalFR),

		BatchID:         nilIfEmpty(d.BatchID),
		BatchDate:       coerceDate(d.BatchDate),
		ShelfLifeMonths: coerceInt(d.ShelfLifeMonths),
		LotNumber:       nilIfEmpty(d.LotNumber),
		ExpiryDate:      coerceDate(d.ExpiryDate),

		OverrideStorage:   d.OverrideStorage != nil && *d.OverrideStorage,
		OverrideLotExpiry: d.OverrideLotExpiry != nil && *d.OverrideLotExpiry,

		RiskFlags: []RiskFlag{},
	}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func coerceDecimal(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &v
}

func coerceInt(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func coerceDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
