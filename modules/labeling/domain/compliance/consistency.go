package compliance

import (
	"slices"
	"strconv"
	"strings"

	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
)

// Deviation records one template-field mismatch against a sibling spec.
type Deviation struct {
	SKU      string `json:"sku"`
	Field    string `json:"field"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// ConsistencyResult is the outcome of comparing a spec against the approved
// siblings of its product.
type ConsistencyResult struct {
	IsConsistent bool        `json:"is_consistent"`
	MessageEN    string      `json:"message_en"`
	MessageFR    string      `json:"message_fr"`
	Deviations   []Deviation `json:"deviations"`
}

// CheckConsistency compares the template-defining fields of the current
// content against every other approved spec of the same product: dosage
// form (exact string), shelf life (exact months, nil differs from non-nil)
// and the order-insensitive set of medicinal EN names. Strengths and forms
// of individual ingredients are deliberately not compared; all SKUs of one
// product must share a label template, not identical doses.
func CheckConsistency(productID string, current labelspec.Content, siblings []labelspec.Content) ConsistencyResult {
	deviations := make([]Deviation, 0)

	for _, sibling := range siblings {
		if sibling.DosageForm != current.DosageForm {
			deviations = append(deviations, Deviation{
				SKU:      productID,
				Field:    "dosage_form",
				Expected: sibling.DosageForm,
				Actual:   current.DosageForm,
			})
		}
		if !equalShelfLife(sibling.ShelfLifeMonths, current.ShelfLifeMonths) {
			deviations = append(deviations, Deviation{
				SKU:      productID,
				Field:    "shelf_life_months",
				Expected: shelfLifeString(sibling.ShelfLifeMonths),
				Actual:   shelfLifeString(current.ShelfLifeMonths),
			})
		}
		expectedNames := sortedNameSet(sibling)
		actualNames := sortedNameSet(current)
		if !slices.Equal(expectedNames, actualNames) {
			deviations = append(deviations, Deviation{
				SKU:      productID,
				Field:    "medicinal",
				Expected: strings.Join(expectedNames, ", "),
				Actual:   strings.Join(actualNames, ", "),
			})
		}
	}

	if len(deviations) > 0 {
		return ConsistencyResult{
			IsConsistent: false,
			MessageEN:    "The label deviates from the approved template of this product.",
			MessageFR:    "L'étiquette s'écarte du modèle approuvé de ce produit.",
			Deviations:   deviations,
		}
	}
	return ConsistencyResult{
		IsConsistent: true,
		MessageEN:    "The label is consistent with the approved specs of this product.",
		MessageFR:    "L'étiquette est conforme aux spécifications approuvées de ce produit.",
		Deviations:   deviations,
	}
}

func equalShelfLife(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func shelfLifeString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func sortedNameSet(c labelspec.Content) []string {
	seen := make(map[string]struct{}, len(c.Medicinal))
	names := make([]string, 0, len(c.Medicinal))
	for _, item := range c.Medicinal {
		name := strings.ToLower(strings.TrimSpace(item.NameEN))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
