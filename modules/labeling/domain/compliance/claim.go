package compliance

import (
	"strings"

	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
)

// ClaimResult classifies a marketing claim.
type ClaimResult struct {
	IsValid     bool               `json:"is_valid"`
	Severity    labelspec.Severity `json:"severity"`
	MessageEN   string             `json:"message_en"`
	MessageFR   string             `json:"message_fr"`
	ReferenceID string             `json:"reference_id,omitempty"`
}

// ValidateClaim runs a three-tier lexicon match over the combined EN+FR
// claim text. The blocked list is checked first and wins ties; an allowed
// match carries its monograph reference; no match at all means the claim
// needs manual review. Deterministic, no NLP.
func (t *Tables) ValidateClaim(claimEN, claimFR string) ClaimResult {
	combined := strings.ToLower(claimEN + " " + claimFR)

	for _, phrase := range t.BlockedClaims {
		if strings.Contains(combined, strings.ToLower(phrase)) {
			return ClaimResult{
				IsValid:   false,
				Severity:  labelspec.SeverityError,
				MessageEN: "The claim contains prohibited wording: \"" + phrase + "\".",
				MessageFR: "L'allégation contient une formulation interdite : « " + phrase + " ».",
			}
		}
	}

	for _, entry := range t.AllowedClaims {
		if strings.Contains(combined, strings.ToLower(entry.Phrase)) {
			return ClaimResult{
				IsValid:     true,
				Severity:    labelspec.SeverityInfo,
				MessageEN:   "The claim matches an approved monograph phrase.",
				MessageFR:   "L'allégation correspond à une formulation de monographie approuvée.",
				ReferenceID: entry.MonographRef,
			}
		}
	}

	return ClaimResult{
		IsValid:   true,
		Severity:  labelspec.SeverityWarning,
		MessageEN: "The claim does not match a known monograph phrase and requires manual review.",
		MessageFR: "L'allégation ne correspond à aucune formulation de monographie connue et requiert une revue manuelle.",
	}
}
