package calculations

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  PayerCategory
	}{
		{name: "short f", input: "f", want: Individual},
		{name: "fisica", input: "fisica", want: Individual},
		{name: "accented upper", input: "FÍSICA", want: Individual},
		{name: "accented padded", input: " Física ", want: Individual},
		{name: "pessoa fisica", input: "Pessoa Física", want: Individual},
		{name: "pf padded", input: " pf ", want: Individual},
		{name: "short j", input: "J", want: LegalEntity},
		{name: "juridica accented", input: "Jurídica", want: LegalEntity},
		{name: "pessoa juridica", input: "pessoa jurídica", want: LegalEntity},
		{name: "pj", input: "pj", want: LegalEntity},
		{name: "PJ tabs", input: "\tPJ\n", want: LegalEntity},
		{name: "no-break space inside", input: "pessoa\u00a0fisica", want: Individual},
		{name: "fi ligature", input: "\ufb01sica", want: Individual},
		{name: "full-width pf", input: "\uff50\uff46", want: Individual},
		{name: "full-width upper PJ", input: "\uff30\uff2a", want: LegalEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveCategory(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveCategory_Invalid(t *testing.T) {
	inputs := []string{"xyz", "", "   ", "pessoa", "fisicas", "p f", "pessoa  fisica"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := ResolveCategory(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCategory))
			assert.Equal(t, CategoryUnknown, got)

			var catErr *InvalidCategoryError
			require.True(t, errors.As(err, &catErr))
			assert.Equal(t, input, catErr.Input)
		})
	}
}

func TestNormalizeCategoryText(t *testing.T) {
	assert.Equal(t, "fisica", NormalizeCategoryText("  FÍSICA "))
	assert.Equal(t, "pessoa juridica", NormalizeCategoryText("Pessoa Jurídica"))
	assert.Equal(t, "", NormalizeCategoryText("   "))
	assert.Equal(t, "pessoa fisica", NormalizeCategoryText("Pessoa\u00a0Física"))
	assert.Equal(t, "fisica", NormalizeCategoryText("\ufb01sica"))
}

func TestPayerCategory_MonthlyRate(t *testing.T) {
	assert.Equal(t, 0.069, Individual.MonthlyRate())
	assert.Equal(t, 0.038, LegalEntity.MonthlyRate())
	assert.Equal(t, 0.0, CategoryUnknown.MonthlyRate())
}

func TestPayerCategory_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Category PayerCategory `json:"category"`
	}{Category: LegalEntity})
	require.NoError(t, err)
	assert.JSONEq(t, `{"category":"juridica"}`, string(data))

	var decoded struct {
		Category PayerCategory `json:"category"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"category":"Física"}`), &decoded))
	assert.Equal(t, Individual, decoded.Category)

	err = json.Unmarshal([]byte(`{"category":"xyz"}`), &decoded)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}
