package commissions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateFormulaLiteral(t *testing.T) {
	got, err := EvaluateFormula([]string{"42"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)
}

func TestEvaluateFormulaPrecedence(t *testing.T) {
	got, err := EvaluateFormula([]string{"2", "+", "3", "*", "4"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 14.0, got)
}

func TestEvaluateFormulaParentheses(t *testing.T) {
	got, err := EvaluateFormula([]string{"(", "2", "+", "3", ")", "*", "4"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 20.0, got)
}

func TestEvaluateFormulaUnaryMinus(t *testing.T) {
	got, err := EvaluateFormula([]string{"-", "5", "+", "8"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestEvaluateFormulaVariables(t *testing.T) {
	variables := map[string]float64{"valorProposta": 20000, "potenciaPico": 8}

	got, err := EvaluateFormula([]string{"[valorProposta]", "*", "0.05", "+", "[potenciaPico]", "*", "10"}, variables)
	require.NoError(t, err)
	assert.Equal(t, 1080.0, got)
}

func TestEvaluateFormulaDivisionByZero(t *testing.T) {
	got, err := EvaluateFormula([]string{"10", "/", "0"}, nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))
}

func TestEvaluateFormulaUnknownVariable(t *testing.T) {
	_, err := EvaluateFormula([]string{"[desconhecida]"}, map[string]float64{})
	assert.Error(t, err)
}

func TestEvaluateFormulaInvalidToken(t *testing.T) {
	_, err := EvaluateFormula([]string{"abc"}, nil)
	assert.Error(t, err)
}

func TestEvaluateFormulaUnclosedParenthesis(t *testing.T) {
	_, err := EvaluateFormula([]string{"(", "2", "+", "3"}, nil)
	assert.Error(t, err)
}

func TestEvaluateFormulaTrailingTokens(t *testing.T) {
	_, err := EvaluateFormula([]string{"2", "3"}, nil)
	assert.Error(t, err)
}

func TestEvaluateFormulaEmpty(t *testing.T) {
	_, err := EvaluateFormula(nil, nil)
	assert.Error(t, err)
}
