package compliance

import (
	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
)

// CheckCompleteness enforces the bilingual minimum a spec must carry before
// regulatory approval: product name, claim, directions and warning in both
// languages, plus at least one medicinal ingredient. It fails fast on the
// first missing field; callers re-run after fixing to find the next one.
// Drafts are allowed to be partially filled, so this runs at approval time
// only, never on save.
func CheckCompleteness(c labelspec.Content) error {
	checks := []struct {
		field string
		en    string
		fr    string
	}{
		{"product_name", c.ProductNameEN, c.ProductNameFR},
		{"claim", c.ClaimEN, c.ClaimFR},
		{"directions", c.DirectionsEN, c.DirectionsFR},
		{"warning", c.WarningEN, c.WarningFR},
	}
	for _, check := range checks {
		if check.en == "" || check.fr == "" {
			return newValidationError(
				check.field,
				check.field+" (EN/FR) is required.",
				check.field+" (EN/FR) est requis.",
			)
		}
	}
	if len(c.Medicinal) == 0 {
		return newValidationError(
			"medicinal",
			"medicinal (EN/FR) is required.",
			"medicinal (EN/FR) est requis.",
		)
	}
	for _, item := range c.Medicinal {
		if item.NameEN == "" || item.NameFR == "" {
			return newValidationError(
				"medicinal",
				"medicinal ingredient name (EN/FR) is required.",
				"le nom de l'ingrédient médicinal (EN/FR) est requis.",
			)
		}
	}
	return nil
}
