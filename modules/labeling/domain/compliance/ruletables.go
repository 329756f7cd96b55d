package compliance

import "strings"

// IngredientProfile is the static risk profile of one medicinal ingredient.
// Profiles are matched by case-insensitive substring against the EN name, so
// "Ashwagandha Root Extract 10:1" still resolves to the ashwagandha profile.
type IngredientProfile struct {
	Name                string
	ContraindicationsEN []string
	ContraindicationsFR []string
	// PregnancyCaution marks ingredients whose risk must be textually
	// reflected in the warning block before approval.
	PregnancyCaution bool
	MonographRef     string
}

// ClaimEntry is one allowed marketing phrase with its monograph reference.
type ClaimEntry struct {
	Phrase       string
	MonographRef string
}

// DosageKey addresses a dosage recommendation by ingredient and dosage form.
type DosageKey struct {
	Ingredient string
	Form       string
}

// DosageRecommendation is the standard directions/duration text for a
// (ingredient, dosage form) pair.
type DosageRecommendation struct {
	DirectionsEN string
	DirectionsFR string
	DurationEN   string
	DurationFR   string
}

// CompanyInfo is the global company block used when a label leaves it blank.
type CompanyInfo struct {
	BlockEN string
	BlockFR string
	Website string
}

// RegulatoryDefaults fill empty origin/distribution fields.
type RegulatoryDefaults struct {
	MadeIn        string
	DistributedBy string
	NPNPrefix     string
}

// Tables bundles the injectable rule data the validators and the suggestion
// engine run against. Deployments load their own; DefaultTables ships a
// working baseline.
type Tables struct {
	Ingredients []IngredientProfile
	Dosage      map[DosageKey]DosageRecommendation

	BlockedClaims []string
	AllowedClaims []ClaimEntry

	StandardStorageEN string
	StandardStorageFR string
	ChildSafetyEN     string
	ChildSafetyFR     string

	Company    CompanyInfo
	Regulatory RegulatoryDefaults
}

// ProfileFor resolves an ingredient risk profile by case-insensitive
// substring match. Unknown ingredients are not an error.
func (t *Tables) ProfileFor(nameEN string) (IngredientProfile, bool) {
	needle := strings.ToLower(strings.TrimSpace(nameEN))
	if needle == "" {
		return IngredientProfile{}, false
	}
	for _, p := range t.Ingredients {
		if strings.Contains(needle, strings.ToLower(p.Name)) {
			return p, true
		}
	}
	return IngredientProfile{}, false
}

// DosageFor resolves a dosage recommendation by case-insensitive substring
// on the ingredient and exact-insensitive match on the dosage form.
func (t *Tables) DosageFor(ingredientEN, form string) (DosageRecommendation, bool) {
	needle := strings.ToLower(strings.TrimSpace(ingredientEN))
	form = strings.ToLower(strings.TrimSpace(form))
	for key, rec := range t.Dosage {
		if form == strings.ToLower(key.Form) && strings.Contains(needle, strings.ToLower(key.Ingredient)) {
			return rec, true
		}
	}
	return DosageRecommendation{}, false
}

// DefaultTables returns the built-in rule data.
func DefaultTables() *Tables {
	return &Tables{
		Ingredients: []IngredientProfile{
			{
				Name: "ashwagandha",
				ContraindicationsEN: []string{
					"Consult a health care practitioner prior to use if you are pregnant or breastfeeding.",
					"Consult a health care practitioner if symptoms persist or worsen.",
				},
				ContraindicationsFR: []string{
					"Consultez un praticien de soins de santé avant d'en faire l'usage si vous êtes enceinte ou allaitez.",
					"Consultez un praticien de soins de santé si les symptômes persistent ou s'aggravent.",
				},
				PregnancyCaution: true,
				MonographRef:     "NNHPD-ASHW-2018",
			},
			{
				Name: "valerian",
				ContraindicationsEN: []string{
					"Consult a health care practitioner prior to use if you are pregnant or breastfeeding.",
					"Do not use if you are operating heavy machinery.",
				},
				ContraindicationsFR: []string{
					"Consultez un praticien de soins de santé avant d'en faire l'usage si vous êtes enceinte ou allaitez.",
					"Ne pas utiliser si vous conduisez de la machinerie lourde.",
				},
				PregnancyCaution: true,
				MonographRef:     "NNHPD-VALE-2019",
			},
			{
				Name: "st. john's wort",
				ContraindicationsEN: []string{
					"Do not use if you are taking prescription medication without consulting a health care practitioner.",
					"Avoid prolonged exposure to sunlight.",
				},
				ContraindicationsFR: []string{
					"Ne pas utiliser si vous prenez des médicaments sur ordonnance sans consulter un praticien de soins de santé.",
					"Évitez l'exposition prolongée au soleil.",
				},
				PregnancyCaution: true,
				MonographRef:     "NNHPD-HYPE-2020",
			},
			{
				Name: "melatonin",
				ContraindicationsEN: []string{
					"Do not drive or use machinery for 5 hours after taking melatonin.",
					"Consult a health care practitioner if sleeplessness persists for more than 4 weeks.",
				},
				ContraindicationsFR: []string{
					"Ne pas conduire ni utiliser de machinerie pendant les 5 heures suivant la prise de mélatonine.",
					"Consultez un praticien de soins de santé si l'insomnie persiste plus de 4 semaines.",
				},
				PregnancyCaution: false,
				MonographRef:     "NNHPD-MELA-2021",
			},
			{
				Name: "ginkgo",
				ContraindicationsEN: []string{
					"Consult a health care practitioner prior to use if you are taking blood thinners.",
				},
				ContraindicationsFR: []string{
					"Consultez un praticien de soins de santé avant d'en faire l'usage si vous prenez des anticoagulants.",
				},
				PregnancyCaution: true,
				MonographRef:     "NNHPD-GINK-2017",
			},
			{
				Name:             "zinc",
				PregnancyCaution: false,
				MonographRef:     "NNHPD-ZINC-2016",
			},
		},
		Dosage: map[DosageKey]DosageRecommendation{
			{Ingredient: "ashwagandha", Form: "Capsule"}: {
				DirectionsEN: "Adults: Take 1 capsule 2 times daily with food.",
				DirectionsFR: "Adultes : Prendre 1 capsule 2 fois par jour avec de la nourriture.",
				DurationEN:   "Use for a minimum of 1 month to see beneficial effects.",
				DurationFR:   "Utiliser pendant au moins 1 mois pour constater les effets bénéfiques.",
			},
			{Ingredient: "melatonin", Form: "Gummy"}: {
				DirectionsEN: "Adults: Chew 1 gummy at or before bedtime.",
				DirectionsFR: "Adultes : Mâcher 1 gélifié au coucher ou avant.",
				DurationEN:   "For occasional short-term use.",
				DurationFR:   "Pour usage occasionnel à court terme.",
			},
			{Ingredient: "valerian", Form: "Capsule"}: {
				DirectionsEN: "Adults: Take 1 capsule 30 minutes before bedtime.",
				DirectionsFR: "Adultes : Prendre 1 capsule 30 minutes avant le coucher.",
				DurationEN:   "Consult a health care practitioner for use beyond 4 weeks.",
				DurationFR:   "Consultez un praticien de soins de santé pour un usage au-delà de 4 semaines.",
			},
		},
		BlockedClaims: []string{
			"cures", "cure", "treats cancer", "prevents cancer", "miracle",
			"guaranteed results", "clinically proven to cure", "antiviral cure",
			"guérit", "traite le cancer", "prévient le cancer", "résultats garantis",
		},
		AllowedClaims: []ClaimEntry{
			{Phrase: "helps to temporarily promote relaxation", MonographRef: "NNHPD-ASHW-2018"},
			{Phrase: "helps increase resistance to stress", MonographRef: "NNHPD-ASHW-2018"},
			{Phrase: "helps reduce the time it takes to fall asleep", MonographRef: "NNHPD-MELA-2021"},
			{Phrase: "sleep aid", MonographRef: "NNHPD-VALE-2019"},
			{Phrase: "helps to maintain immune function", MonographRef: "NNHPD-ZINC-2016"},
			{Phrase: "source of antioxidants", MonographRef: "NNHPD-GEN-2015"},
			{Phrase: "aide à favoriser temporairement la relaxation", MonographRef: "NNHPD-ASHW-2018"},
			{Phrase: "aide au sommeil", MonographRef: "NNHPD-VALE-2019"},
		},
		StandardStorageEN: "Store in a cool, dry place away from direct sunlight. Keep out of reach of children.",
		StandardStorageFR: "Conserver dans un endroit frais et sec, à l'abri de la lumière directe du soleil. Garder hors de la portée des enfants.",
		ChildSafetyEN:     "This product may be mistaken for candy. Keep out of reach of children.",
		ChildSafetyFR:     "Ce produit peut être confondu avec des bonbons. Garder hors de la portée des enfants.",
		Company: CompanyInfo{
			BlockEN: "Herbalogix Naturals Inc.\n4250 Still Creek Drive\nBurnaby, BC V5C 6C6",
			BlockFR: "Herbalogix Naturals Inc.\n4250, promenade Still Creek\nBurnaby (C.-B.) V5C 6C6",
			Website: "www.herbalogix.ca",
		},
		Regulatory: RegulatoryDefaults{
			MadeIn:        "Made in Canada / Fabriqué au Canada",
			DistributedBy: "Distributed by Herbalogix Naturals Inc., Burnaby, BC",
			NPNPrefix:     "800",
		},
	}
}
