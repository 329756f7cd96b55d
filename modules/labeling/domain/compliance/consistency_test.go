package compliance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
)

func templateContent(form string, shelfLife int, names ...string) labelspec.Content {
	c := contentWithIngredients(names...)
	c.DosageForm = form
	c.ShelfLifeMonths = &shelfLife
	return c
}

func TestCheckConsistency_NoSiblings(t *testing.T) {
	result := CheckConsistency("HX-100", templateContent("Capsule", 24, "Ashwagandha"), nil)

	require.True(t, result.IsConsistent)
	require.Empty(t, result.Deviations)
	require.NotEmpty(t, result.MessageEN)
	require.NotEmpty(t, result.MessageFR)
}

func TestCheckConsistency_MatchingTemplate(t *testing.T) {
	current := templateContent("Capsule", 24, "Ashwagandha", "Zinc")
	sibling := templateContent("Capsule", 24, "Zinc", "Ashwagandha")

	result := CheckConsistency("HX-100", current, []labelspec.Content{sibling})

	require.True(t, result.IsConsistent)
}

func TestCheckConsistency_DosageFormDeviation(t *testing.T) {
	current := templateContent("Gummy", 24, "Melatonin")
	sibling := templateContent("Capsule", 24, "Melatonin")

	result := CheckConsistency("HX-200", current, []labelspec.Content{sibling})

	require.False(t, result.IsConsistent)
	require.Len(t, result.Deviations, 1)
	require.Equal(t, "dosage_form", result.Deviations[0].Field)
	require.Equal(t, "Capsule", result.Deviations[0].Expected)
	require.Equal(t, "Gummy", result.Deviations[0].Actual)
}

func TestCheckConsistency_ShelfLifeNilDiffersFromSet(t *testing.T) {
	current := contentWithIngredients("Melatonin")
	current.DosageForm = "Capsule"
	sibling := templateContent("Capsule", 36, "Melatonin")

	result := CheckConsistency("HX-200", current, []labelspec.Content{sibling})

	require.False(t, result.IsConsistent)
	require.Len(t, result.Deviations, 1)
	require.Equal(t, "shelf_life_months", result.Deviations[0].Field)
	require.Equal(t, "36", result.Deviations[0].Expected)
	require.Equal(t, "", result.Deviations[0].Actual)
}

func TestCheckConsistency_MedicinalSetDeviation(t *testing.T) {
	current := templateContent("Capsule", 24, "Ashwagandha", "Zinc")
	sibling := templateContent("Capsule", 24, "Ashwagandha")

	result := CheckConsistency("HX-100", current, []labelspec.Content{sibling})

	require.False(t, result.IsConsistent)
	require.Len(t, result.Deviations, 1)
	require.Equal(t, "medicinal", result.Deviations[0].Field)
}

func TestCheckConsistency_DeviationsAgainstEverySibling(t *testing.T) {
	current := templateContent("Capsule", 24, "Ashwagandha")
	siblings := []labelspec.Content{
		templateContent("Capsule", 24, "Ashwagandha"),
		templateContent("Gummy", 24, "Ashwagandha"),
	}

	result := CheckConsistency("HX-100", current, siblings)

	require.False(t, result.IsConsistent)
	require.Len(t, result.Deviations, 1)
}
