package commissions

import (
	"errors"
	"slices"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"
)

// Facts são os atributos da proposta/oportunidade contra os quais as
// condições dos cenários são avaliadas.
type Facts struct {
	Numericos map[string]float64
	Textos    map[string]string
}

func ConditionMatches(condition schemas.CommissionCondition, facts Facts) bool {
	switch condition.Tipo {
	case schemas.COMMISSION_CONDITION_TEXT_EQUALS:
		value, ok := facts.Textos[condition.Variavel]
		return ok && value == condition.Igual
	case schemas.COMMISSION_CONDITION_NUMERIC_EQUALS:
		value, ok := facts.Numericos[condition.Variavel]
		return ok && value == condition.IgualNumerico
	case schemas.COMMISSION_CONDITION_GREATER_THAN:
		value, ok := facts.Numericos[condition.Variavel]
		return ok && value > condition.Maior
	case schemas.COMMISSION_CONDITION_LESS_THAN:
		value, ok := facts.Numericos[condition.Variavel]
		return ok && value < condition.Menor
	case schemas.COMMISSION_CONDITION_NUMERIC_RANGE:
		if condition.Entre == nil {
			return false
		}
		value, ok := facts.Numericos[condition.Variavel]
		return ok && value >= condition.Entre.Minimo && value <= condition.Entre.Maximo
	case schemas.COMMISSION_CONDITION_LIST_INCLUDES:
		value, ok := facts.Textos[condition.Variavel]
		return ok && slices.Contains(condition.Lista, value)
	}
	return false
}

var ErrNoScenario = errors.New("nenhum cenário de comissão aplicável")

// SelectScenario percorre os cenários na ordem configurada e escolhe o
// primeiro cuja condição casa com os fatos; sem casamento, cai no cenário
// geral (sem condição) quando houver.
func SelectScenario(scenarios []schemas.CommissionScenario, facts Facts) (*schemas.CommissionScenario, error) {
	for i := range scenarios {
		if scenarios[i].Condicao.Aplicavel && ConditionMatches(scenarios[i].Condicao, facts) {
			return &scenarios[i], nil
		}
	}

	for i := range scenarios {
		if !scenarios[i].Condicao.Aplicavel {
			return &scenarios[i], nil
		}
	}

	return nil, ErrNoScenario
}
