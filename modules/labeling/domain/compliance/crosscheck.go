package compliance

import (
	"strings"

	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
)

const (
	pregnancyKeywordEN = "pregnant"
	pregnancyKeywordFR = "enceinte"
)

// CrossCheck verifies that known ingredient risks are actually reflected in
// the saved warning text. For every ingredient whose profile requires a
// pregnancy/breastfeeding caution, the warning must mention it in at least
// one language. A miss is an error-severity flag: unlike the generator's
// informational flags, this measures whether the risk made it onto the
// label, not whether the risk exists.
func (t *Tables) CrossCheck(c labelspec.Content) []labelspec.RiskFlag {
	warningEN := strings.ToLower(c.WarningEN)
	warningFR := strings.ToLower(c.WarningFR)
	covered := strings.Contains(warningEN, pregnancyKeywordEN) ||
		strings.Contains(warningFR, pregnancyKeywordFR)

	flags := make([]labelspec.RiskFlag, 0)
	for _, item := range c.Medicinal {
		profile, ok := t.ProfileFor(item.NameEN)
		if !ok || !profile.PregnancyCaution {
			continue
		}
		if covered {
			continue
		}
		flags = append(flags, labelspec.RiskFlag{
			Type:       labelspec.FlagPregnancyCoverage,
			Ingredient: item.NameEN,
			MessageEN:  "The warning text does not mention use during pregnancy or breastfeeding, which is required for " + item.NameEN + ".",
			MessageFR:  "Le texte d'avertissement ne mentionne pas l'usage pendant la grossesse ou l'allaitement, ce qui est requis pour " + item.NameEN + ".",
			Severity:   labelspec.SeverityError,
			Reference:  profile.MonographRef,
		})
	}
	return flags
}
