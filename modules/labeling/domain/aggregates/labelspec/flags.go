package labelspec

// Severity grades validator and suggestion output.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// RiskFlag is a derived, ingredient-driven compliance flag. Flags are
// recomputed on demand and mirrored into Content.RiskFlags on save.
type RiskFlag struct {
	Type       string   `json:"type"`
	Ingredient string   `json:"ingredient"`
	MessageEN  string   `json:"message_en"`
	MessageFR  string   `json:"message_fr"`
	Severity   Severity `json:"severity"`
	Reference  string   `json:"reference,omitempty"`
}

const (
	FlagContraindication  = "contraindication"
	FlagPregnancyCoverage = "pregnancy_coverage"
)

// Suggestion is a transient editorial proposal. Suggestions are never
// persisted; the UI applies them through the workflow like any other edit.
type Suggestion struct {
	Field        string   `json:"field"`
	Source       string   `json:"source"`
	SuggestionEN string   `json:"suggestion_en"`
	SuggestionFR string   `json:"suggestion_fr"`
	Note         string   `json:"note,omitempty"`
	Severity     Severity `json:"severity"`
}
