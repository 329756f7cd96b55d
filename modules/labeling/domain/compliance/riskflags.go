package compliance

import (
	"strings"

	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
)

// GenerateRiskFlags derives ingredient-driven risk flags from the rule
// tables. Each medicinal item with a known profile that carries
// contraindications yields exactly one flag bundling all of them. Unknown
// ingredients yield nothing.
func (t *Tables) GenerateRiskFlags(c labelspec.Content) []labelspec.RiskFlag {
	flags := make([]labelspec.RiskFlag, 0)
	for _, item := range c.Medicinal {
		profile, ok := t.ProfileFor(item.NameEN)
		if !ok || len(profile.ContraindicationsEN) == 0 {
			continue
		}
		flags = append(flags, labelspec.RiskFlag{
			Type:       labelspec.FlagContraindication,
			Ingredient: item.NameEN,
			MessageEN:  strings.Join(profile.ContraindicationsEN, " "),
			MessageFR:  strings.Join(profile.ContraindicationsFR, " "),
			Severity:   labelspec.SeverityWarning,
			Reference:  profile.MonographRef,
		})
	}
	return flags
}
