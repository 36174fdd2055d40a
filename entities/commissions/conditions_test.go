package commissions

import (
	"testing"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFacts() Facts {
	return Facts{
		Numericos: map[string]float64{"valorProposta": 20000, "potenciaPico": 8},
		Textos:    map[string]string{"papel": "VENDEDOR", "uf": "MG"},
	}
}

func TestConditionMatches(t *testing.T) {
	facts := testFacts()

	tests := []struct {
		name      string
		condition schemas.CommissionCondition
		want      bool
	}{
		{
			name:      "texto igual",
			condition: schemas.CommissionCondition{Tipo: schemas.COMMISSION_CONDITION_TEXT_EQUALS, Variavel: "papel", Igual: "VENDEDOR"},
			want:      true,
		},
		{
			name:      "texto diferente",
			condition: schemas.CommissionCondition{Tipo: schemas.COMMISSION_CONDITION_TEXT_EQUALS, Variavel: "papel", Igual: "SDR"},
			want:      false,
		},
		{
			name:      "numérico igual",
			condition: schemas.CommissionCondition{Tipo: schemas.COMMISSION_CONDITION_NUMERIC_EQUALS, Variavel: "potenciaPico", IgualNumerico: 8},
			want:      true,
		},
		{
			name:      "maior que",
			condition: schemas.CommissionCondition{Tipo: schemas.COMMISSION_CONDITION_GREATER_THAN, Variavel: "valorProposta", Maior: 10000},
			want:      true,
		},
		{
			name:      "maior que no limite é falso",
			condition: schemas.CommissionCondition{Tipo: schemas.COMMISSION_CONDITION_GREATER_THAN, Variavel: "valorProposta", Maior: 20000},
			want:      false,
		},
		{
			name:      "menor que",
			condition: schemas.CommissionCondition{Tipo: schemas.COMMISSION_CONDITION_LESS_THAN, Variavel: "potenciaPico", Menor: 10},
			want:      true,
		},
		{
			name: "intervalo inclusivo",
			condition: schemas.CommissionCondition{
				Tipo:     schemas.COMMISSION_CONDITION_NUMERIC_RANGE,
				Variavel: "valorProposta",
				Entre:    &schemas.CommissionConditionRange{Minimo: 20000, Maximo: 30000},
			},
			want: true,
		},
		{
			name:      "intervalo sem limites definidos",
			condition: schemas.CommissionCondition{Tipo: schemas.COMMISSION_CONDITION_NUMERIC_RANGE, Variavel: "valorProposta"},
			want:      false,
		},
		{
			name:      "lista inclui",
			condition: schemas.CommissionCondition{Tipo: schemas.COMMISSION_CONDITION_LIST_INCLUDES, Variavel: "uf", Lista: []string{"MG", "SP"}},
			want:      true,
		},
		{
			name:      "lista não inclui",
			condition: schemas.CommissionCondition{Tipo: schemas.COMMISSION_CONDITION_LIST_INCLUDES, Variavel: "uf", Lista: []string{"RJ"}},
			want:      false,
		},
		{
			name:      "variável ausente",
			condition: schemas.CommissionCondition{Tipo: schemas.COMMISSION_CONDITION_GREATER_THAN, Variavel: "inexistente", Maior: 1},
			want:      false,
		},
		{
			name:      "tipo desconhecido",
			condition: schemas.CommissionCondition{Tipo: "OUTRO", Variavel: "papel"},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConditionMatches(tt.condition, facts))
		})
	}
}

func TestSelectScenarioFirstMatchWins(t *testing.T) {
	scenarios := []schemas.CommissionScenario{
		{
			Nome: "alto valor",
			Condicao: schemas.CommissionCondition{
				Aplicavel: true,
				Tipo:      schemas.COMMISSION_CONDITION_GREATER_THAN,
				Variavel:  "valorProposta",
				Maior:     10000,
			},
		},
		{
			Nome: "também casaria",
			Condicao: schemas.CommissionCondition{
				Aplicavel: true,
				Tipo:      schemas.COMMISSION_CONDITION_GREATER_THAN,
				Variavel:  "valorProposta",
				Maior:     5000,
			},
		},
	}

	scenario, err := SelectScenario(scenarios, testFacts())
	require.NoError(t, err)
	assert.Equal(t, "alto valor", scenario.Nome)
}

func TestSelectScenarioGeneralFallback(t *testing.T) {
	scenarios := []schemas.CommissionScenario{
		{
			Nome: "condicional que não casa",
			Condicao: schemas.CommissionCondition{
				Aplicavel: true,
				Tipo:      schemas.COMMISSION_CONDITION_GREATER_THAN,
				Variavel:  "valorProposta",
				Maior:     100000,
			},
		},
		{
			Nome:     "geral",
			Condicao: schemas.CommissionCondition{Aplicavel: false},
		},
	}

	scenario, err := SelectScenario(scenarios, testFacts())
	require.NoError(t, err)
	assert.Equal(t, "geral", scenario.Nome)
}

func TestSelectScenarioNoMatch(t *testing.T) {
	scenarios := []schemas.CommissionScenario{
		{
			Condicao: schemas.CommissionCondition{
				Aplicavel: true,
				Tipo:      schemas.COMMISSION_CONDITION_GREATER_THAN,
				Variavel:  "valorProposta",
				Maior:     100000,
			},
		},
	}

	_, err := SelectScenario(scenarios, testFacts())
	assert.ErrorIs(t, err, ErrNoScenario)
}

func TestComputeCommission(t *testing.T) {
	scenarios := []schemas.CommissionScenario{
		{
			Nome: "padrão",
			Condicao: schemas.CommissionCondition{
				Aplicavel: true,
				Tipo:      schemas.COMMISSION_CONDITION_TEXT_EQUALS,
				Variavel:  "papel",
				Igual:     "VENDEDOR",
			},
			FormulaArr: []string{"[valorProposta]", "*", "0.05"},
		},
	}

	value, scenario, err := ComputeCommission(scenarios, testFacts())
	require.NoError(t, err)
	assert.Equal(t, 1000.0, value)
	assert.Equal(t, "padrão", scenario.Nome)
}

func TestComputeCommissionNoScenario(t *testing.T) {
	_, _, err := ComputeCommission(nil, testFacts())
	assert.ErrorIs(t, err, ErrNoScenario)
}
