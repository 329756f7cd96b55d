package suggest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
	"github.com/herbalogix/labelspec/modules/labeling/domain/compliance"
)

func newTestEngine() *Engine {
	return NewEngineWithDigits(compliance.DefaultTables(), func(n int) string {
		digits := "1234567890"
		return digits[:n]
	})
}

func contentWith(names ...string) labelspec.Content {
	items := make([]labelspec.MedicinalItem, 0, len(names))
	for _, name := range names {
		items = append(items, labelspec.MedicinalItem{NameEN: name, NameFR: name})
	}
	return labelspec.Content{Medicinal: items}
}

func bySource(suggestions []labelspec.Suggestion, source string) []labelspec.Suggestion {
	out := make([]labelspec.Suggestion, 0)
	for _, s := range suggestions {
		if s.Source == source {
			out = append(out, s)
		}
	}
	return out
}

func TestSuggest_ContraindicationTargetsWarning(t *testing.T) {
	engine := newTestEngine()

	suggestions := bySource(engine.Suggest(contentWith("Ashwagandha")), SourceContraindication)

	require.Len(t, suggestions, 1)
	require.Equal(t, "warning_en", suggestions[0].Field)
	require.Equal(t, labelspec.SeverityWarning, suggestions[0].Severity)
	require.Contains(t, suggestions[0].SuggestionEN, "pregnant or breastfeeding")
}

func TestSuggest_DosageFirstMatchOnly(t *testing.T) {
	engine := newTestEngine()
	content := contentWith("Ashwagandha", "Valerian")
	content.DosageForm = "Capsule"

	suggestions := bySource(engine.Suggest(content), SourceDosage)

	require.Len(t, suggestions, 2)
	for _, s := range suggestions {
		require.Contains(t, s.Note, "Ashwagandha")
	}
}

func TestSuggest_DosageSkipsFilledFields(t *testing.T) {
	engine := newTestEngine()
	content := contentWith("Ashwagandha")
	content.DosageForm = "Capsule"
	content.DirectionsEN = "Take 2 capsules daily."
	duration := "Use for 2 weeks."
	content.DurationEN = &duration

	require.Empty(t, bySource(engine.Suggest(content), SourceDosage))
}

func TestSuggest_GummyChildSafety(t *testing.T) {
	engine := newTestEngine()
	content := contentWith("Melatonin")
	content.DosageForm = "Gummy"

	suggestions := bySource(engine.Suggest(content), SourceChildSafety)

	require.Len(t, suggestions, 1)
	require.Contains(t, suggestions[0].SuggestionEN, "mistaken for candy")

	content.DosageForm = "Capsule"
	require.Empty(t, bySource(engine.Suggest(content), SourceChildSafety))
}

func TestSuggest_StorageRespectsOverride(t *testing.T) {
	engine := newTestEngine()
	content := contentWith("Zinc")

	require.Len(t, bySource(engine.Suggest(content), SourceStorage), 1)

	content.OverrideStorage = true
	require.Empty(t, bySource(engine.Suggest(content), SourceStorage))
}

func TestSuggest_NPNSynthesis(t *testing.T) {
	engine := newTestEngine()

	suggestions := bySource(engine.Suggest(contentWith("Zinc")), SourceRegulatory)

	var npn string
	for _, s := range suggestions {
		if s.Field == "npn" {
			npn = s.SuggestionEN
		}
	}
	require.Equal(t, "800123456", npn)
}

func TestSuggest_ExpiryFromBatchDateAndShelfLife(t *testing.T) {
	engine := newTestEngine()
	content := contentWith("Zinc")
	batchDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	shelfLife := 24
	content.BatchDate = &batchDate
	content.ShelfLifeMonths = &shelfLife

	suggestions := bySource(engine.Suggest(content), SourceLotExpiry)

	var expiry, lot string
	for _, s := range suggestions {
		switch s.Field {
		case "expiry_date":
			expiry = s.SuggestionEN
		case "lot_number":
			lot = s.SuggestionEN
		}
	}
	require.Equal(t, "2028-03-15", expiry)
	require.Equal(t, "LOT-260315-01", lot)
}

func TestSuggest_LotExpiryRespectsOverride(t *testing.T) {
	engine := newTestEngine()
	content := contentWith("Zinc")
	batchDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	shelfLife := 24
	content.BatchDate = &batchDate
	content.ShelfLifeMonths = &shelfLife
	content.OverrideLotExpiry = true

	require.Empty(t, bySource(engine.Suggest(content), SourceLotExpiry))
}

func TestSuggest_NoExpirySuggestionWhenAlreadyCorrect(t *testing.T) {
	engine := newTestEngine()
	content := contentWith("Zinc")
	batchDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	shelfLife := 24
	expiry := batchDate.AddDate(0, shelfLife, 0)
	lot := "LOT-260315-01"
	content.BatchDate = &batchDate
	content.ShelfLifeMonths = &shelfLife
	content.ExpiryDate = &expiry
	content.LotNumber = &lot

	require.Empty(t, bySource(engine.Suggest(content), SourceLotExpiry))
}

func TestSuggest_CrossCheckFeedsSuggestions(t *testing.T) {
	engine := newTestEngine()
	content := contentWith("Ashwagandha")
	content.WarningEN = "Keep out of reach of children."

	suggestions := bySource(engine.Suggest(content), SourceCrossCheck)

	require.Len(t, suggestions, 1)
	require.Equal(t, "warning_en", suggestions[0].Field)
	require.Equal(t, labelspec.SeverityError, suggestions[0].Severity)
}

func TestMergeSuggestion_DedupesLines(t *testing.T) {
	current := "Do not use if pregnant.\nKeep out of reach of children."
	proposed := "Keep out of reach of children.\nConsult a practitioner."

	merged := MergeSuggestion(current, proposed)

	require.Equal(t, "Do not use if pregnant.\nKeep out of reach of children.\nConsult a practitioner.", merged)
}

func TestMergeSuggestion_Idempotent(t *testing.T) {
	current := "Do not use if pregnant."
	proposed := "Consult a practitioner."

	once := MergeSuggestion(current, proposed)
	twice := MergeSuggestion(once, proposed)

	require.Equal(t, once, twice)
}

func TestMergeSuggestion_EmptyCurrent(t *testing.T) {
	require.Equal(t, "Consult a practitioner.", MergeSuggestion("", "Consult a practitioner.\n"))
}
