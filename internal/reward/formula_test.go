package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormula_FlatAndCollabBonus(t *testing.T) {
	spec := ParseFormula("flat:100 collab_bonus:20")

	assert.Equal(t, 100, spec.Flat)
	assert.Equal(t, 0, spec.PerUnit)
	assert.Equal(t, "", spec.Unit)
	assert.Equal(t, 0, spec.MaxUnits)
	assert.Equal(t, 20, spec.CollabBonus)
}

func TestParseFormula_PerUnitWithCap(t *testing.T) {
	spec := ParseFormula("per_unit:50 unit:submission max:3 collab_bonus:20")

	assert.Equal(t, 0, spec.Flat)
	assert.Equal(t, 50, spec.PerUnit)
	assert.Equal(t, "submission", spec.Unit)
	assert.Equal(t, 3, spec.MaxUnits)
	assert.Equal(t, 20, spec.CollabBonus)
}

func TestParseFormula_NoReward(t *testing.T) {
	assert.Equal(t, Spec{}, ParseFormula("No reward"))
	assert.Equal(t, Spec{}, ParseFormula("no reward"))
	assert.Equal(t, Spec{}, ParseFormula("N/A"))
	assert.Equal(t, Spec{}, ParseFormula("n/a"))
}

func TestParseFormula_BareNumber(t *testing.T) {
	spec := ParseFormula("250")

	assert.Equal(t, Spec{Flat: 250}, spec)
}

func TestParseFormula_QuotedUnit(t *testing.T) {
	spec := ParseFormula(`per_unit:10 unit:"approved submission"`)

	assert.Equal(t, 10, spec.PerUnit)
	assert.Equal(t, "approved submission", spec.Unit)
}

func TestParseFormula_QuotedUnitWithEscapedQuotes(t *testing.T) {
	spec := ParseFormula(`per_unit:10 unit:"the \"good\" kind"`)

	assert.Equal(t, `the "good" kind`, spec.Unit)
}

func TestParseFormula_CaseInsensitiveKeys(t *testing.T) {
	spec := ParseFormula("FLAT:75 Per_Unit:5 UNIT:post MAX:2")

	assert.Equal(t, 75, spec.Flat)
	assert.Equal(t, 5, spec.PerUnit)
	assert.Equal(t, "post", spec.Unit)
	assert.Equal(t, 2, spec.MaxUnits)
}

func TestParseFormula_OrderIndependent(t *testing.T) {
	a := ParseFormula("flat:10 per_unit:5 unit:submission")
	b := ParseFormula("unit:submission per_unit:5 flat:10")

	assert.Equal(t, a, b)
}

func TestParseFormula_MalformedDegradesToZero(t *testing.T) {
	// Unknown keys and garbage yield the zero default, never an error
	assert.Equal(t, Spec{}, ParseFormula("gold:100 shiny:yes"))
	assert.Equal(t, Spec{}, ParseFormula(""))
	assert.Equal(t, Spec{}, ParseFormula("   "))
	assert.Equal(t, Spec{Flat: 30}, ParseFormula("flat:30 bogus"))
}

func TestParseFormula_PerUnitDoesNotMatchUnitKey(t *testing.T) {
	// The unit: pattern must not fire inside per_unit:
	spec := ParseFormula("per_unit:50")

	assert.Equal(t, 50, spec.PerUnit)
	assert.Equal(t, "", spec.Unit)
}

func TestParseFormula_NegativeBareNumberClampsToZero(t *testing.T) {
	assert.Equal(t, Spec{}, ParseFormula("-40"))
}

func TestSpecIsZero(t *testing.T) {
	assert.True(t, Spec{}.IsZero())
	assert.True(t, Spec{Unit: "submission", MaxUnits: 3}.IsZero())
	assert.False(t, Spec{Flat: 1}.IsZero())
	assert.False(t, Spec{PerUnit: 1}.IsZero())
}
