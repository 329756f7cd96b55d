package suggest

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
	"github.com/herbalogix/labelspec/modules/labeling/domain/compliance"
)

// Suggestion sources.
const (
	SourceContraindication = "contraindication"
	SourceDosage           = "dosage"
	SourceChildSafety      = "child_safety"
	SourceStorage          = "storage"
	SourceCompany          = "company"
	SourceRegulatory       = "regulatory"
	SourceLotExpiry        = "lot_expiry"
	SourceCrossCheck       = "cross_check"
)

// Engine produces non-persisted editorial suggestions from saved content.
// All output is recomputed on demand; nothing here mutates state.
type Engine struct {
	tables *compliance.Tables
	digits func(n int) string
}

func NewEngine(tables *compliance.Tables) *Engine {
	return &Engine{tables: tables, digits: randomDigits}
}

// NewEngineWithDigits pins the digit source; tests use this to make NPN
// synthesis deterministic.
func NewEngineWithDigits(tables *compliance.Tables, digits func(n int) string) *Engine {
	return &Engine{tables: tables, digits: digits}
}

// Suggest runs every suggestion rule over the content. Order of output is
// stable but carries no meaning; callers may render all of it.
func (e *Engine) Suggest(c labelspec.Content) []labelspec.Suggestion {
	out := make([]labelspec.Suggestion, 0)
	out = append(out, e.contraindicationSuggestions(c)...)
	out = append(out, e.dosageSuggestions(c)...)
	out = append(out, e.childSafetySuggestions(c)...)
	out = append(out, e.storageSuggestions(c)...)
	out = append(out, e.companySuggestions(c)...)
	out = append(out, e.regulatorySuggestions(c)...)
	out = append(out, e.lotExpirySuggestions(c)...)
	out = append(out, e.crossCheckSuggestions(c)...)
	return out
}

func (e *Engine) contraindicationSuggestions(c labelspec.Content) []labelspec.Suggestion {
	out := make([]labelspec.Suggestion, 0)
	for _, flag := range e.tables.GenerateRiskFlags(c) {
		out = append(out, labelspec.Suggestion{
			Field:        "warning_en",
			Source:       SourceContraindication,
			SuggestionEN: flag.MessageEN,
			SuggestionFR: flag.MessageFR,
			Note:         "Standard caution for " + flag.Ingredient + " (" + flag.Reference + ").",
			Severity:     labelspec.SeverityWarning,
		})
	}
	return out
}

func (e *Engine) dosageSuggestions(c labelspec.Content) []labelspec.Suggestion {
	out := make([]labelspec.Suggestion, 0)
	if c.DirectionsEN != "" && c.DurationEN != nil {
		return out
	}
	for _, item := range c.Medicinal {
		rec, ok := e.tables.DosageFor(item.NameEN, c.DosageForm)
		if !ok {
			continue
		}
		// First matching ingredient wins; competing recommendations would
		// only confuse the editor.
		if c.DirectionsEN == "" {
			out = append(out, labelspec.Suggestion{
				Field:        "directions_en",
				Source:       SourceDosage,
				SuggestionEN: rec.DirectionsEN,
				SuggestionFR: rec.DirectionsFR,
				Note:         "Recommended directions for " + item.NameEN + " in " + c.DosageForm + " form.",
				Severity:     labelspec.SeverityInfo,
			})
		}
		if c.DurationEN == nil {
			out = append(out, labelspec.Suggestion{
				Field:        "duration_en",
				Source:       SourceDosage,
				SuggestionEN: rec.DurationEN,
				SuggestionFR: rec.DurationFR,
				Note:         "Recommended duration of use for " + item.NameEN + ".",
				Severity:     labelspec.SeverityInfo,
			})
		}
		break
	}
	return out
}

func (e *Engine) childSafetySuggestions(c labelspec.Content) []labelspec.Suggestion {
	if !strings.EqualFold(c.DosageForm, "gummy") {
		return nil
	}
	return []labelspec.Suggestion{{
		Field:        "warning_en",
		Source:       SourceChildSafety,
		SuggestionEN: e.tables.ChildSafetyEN,
		SuggestionFR: e.tables.ChildSafetyFR,
		Note:         "Gummy formats carry a child-safety caution.",
		Severity:     labelspec.SeverityInfo,
	}}
}

func (e *Engine) storageSuggestions(c labelspec.Content) []labelspec.Suggestion {
	if c.OverrideStorage || c.StorageEN != nil {
		return nil
	}
	return []labelspec.Suggestion{{
		Field:        "storage_en",
		Source:       SourceStorage,
		SuggestionEN: e.tables.StandardStorageEN,
		SuggestionFR: e.tables.StandardStorageFR,
		Note:         "Standard storage sentence.",
		Severity:     labelspec.SeverityInfo,
	}}
}

func (e *Engine) companySuggestions(c labelspec.Content) []labelspec.Suggestion {
	out := make([]labelspec.Suggestion, 0)
	if c.CompanyBlockEN == nil {
		out = append(out, labelspec.Suggestion{
			Field:        "company_block_en",
			Source:       SourceCompany,
			SuggestionEN: e.tables.Company.BlockEN,
			SuggestionFR: e.tables.Company.BlockFR,
			Severity:     labelspec.SeverityInfo,
		})
	}
	if c.Website == nil {
		out = append(out, labelspec.Suggestion{
			Field:        "website",
			Source:       SourceCompany,
			SuggestionEN: e.tables.Company.Website,
			SuggestionFR: e.tables.Company.Website,
			Severity:     labelspec.SeverityInfo,
		})
	}
	return out
}

func (e *Engine) regulatorySuggestions(c labelspec.Content) []labelspec.Suggestion {
	out := make([]labelspec.Suggestion, 0)
	if c.MadeIn == nil {
		out = append(out, labelspec.Suggestion{
			Field:        "made_in",
			Source:       SourceRegulatory,
			SuggestionEN: e.tables.Regulatory.MadeIn,
			SuggestionFR: e.tables.Regulatory.MadeIn,
			Severity:     labelspec.SeverityInfo,
		})
	}
	if c.DistributedBy == nil {
		out = append(out, labelspec.Suggestion{
			Field:        "distributed_by",
			Source:       SourceRegulatory,
			SuggestionEN: e.tables.Regulatory.DistributedBy,
			SuggestionFR: e.tables.Regulatory.DistributedBy,
			Severity:     labelspec.SeverityInfo,
		})
	}
	if c.NPN == nil {
		// Synthesized NPNs are placeholders with no uniqueness guarantee
		// against existing specs.
		npn := e.tables.Regulatory.NPNPrefix + e.digits(6)
		out = append(out, labelspec.Suggestion{
			Field:        "npn",
			Source:       SourceRegulatory,
			SuggestionEN: npn,
			SuggestionFR: npn,
			Note:         "Placeholder NPN; replace with the licensed number.",
			Severity:     labelspec.SeverityInfo,
		})
	}
	return out
}

func (e *Engine) lotExpirySuggestions(c labelspec.Content) []labelspec.Suggestion {
	if c.OverrideLotExpiry {
		return nil
	}
	out := make([]labelspec.Suggestion, 0)
	if c.BatchDate != nil && c.ShelfLifeMonths != nil {
		expiry := c.BatchDate.AddDate(0, *c.ShelfLifeMonths, 0)
		if c.ExpiryDate == nil || !c.ExpiryDate.Equal(expiry) {
			value := expiry.Format("2006-01-02")
			out = append(out, labelspec.Suggestion{
				Field:        "expiry_date",
				Source:       SourceLotExpiry,
				SuggestionEN: value,
				SuggestionFR: value,
				Note: fmt.Sprintf("Computed from batch date %s plus %d months shelf life.",
					c.BatchDate.Format("2006-01-02"), *c.ShelfLifeMonths),
				Severity: labelspec.SeverityInfo,
			})
		}
	}
	if c.LotNumber == nil && c.BatchDate != nil {
		lot := "LOT-" + c.BatchDate.Format("060102") + "-01"
		out = append(out, labelspec.Suggestion{
			Field:        "lot_number",
			Source:       SourceLotExpiry,
			SuggestionEN: lot,
			SuggestionFR: lot,
			Note:         "Synthesized from the batch date; not checked for uniqueness.",
			Severity:     labelspec.SeverityInfo,
		})
	}
	return out
}

// crossCheckSuggestions surfaces every warning/error cross-check flag as a
// suggestion targeting warning_en so the editorial and compliance views
// share one feed.
func (e *Engine) crossCheckSuggestions(c labelspec.Content) []labelspec.Suggestion {
	out := make([]labelspec.Suggestion, 0)
	for _, flag := range e.tables.CrossCheck(c) {
		if flag.Severity != labelspec.SeverityError && flag.Severity != labelspec.SeverityWarning {
			continue
		}
		out = append(out, labelspec.Suggestion{
			Field:        "warning_en",
			Source:       SourceCrossCheck,
			SuggestionEN: flag.MessageEN,
			SuggestionFR: flag.MessageFR,
			Note:         "Cross-check: " + flag.Ingredient,
			Severity:     flag.Severity,
		})
	}
	return out
}

// MergeSuggestion merges proposed text into the current value as a
// line-based set union: split on newlines, trim, dedupe, rejoin in
// first-seen order. Applying the same suggestion twice is a no-op.
func MergeSuggestion(current, proposed string) string {
	seen := make(map[string]struct{})
	lines := make([]string, 0)
	for _, chunk := range []string{current, proposed} {
		for _, line := range strings.Split(chunk, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if _, ok := seen[line]; ok {
				continue
			}
			seen[line] = struct{}{}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func randomDigits(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return b.String()
}
