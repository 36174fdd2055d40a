package commissions

import (
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"
)

// ComputeCommission escolhe o cenário aplicável e avalia sua fórmula com os
// fatos numéricos. O valor resultante é devolvido sem arredondamento; regras
// de arredondamento são do chamador.
func ComputeCommission(scenarios []schemas.CommissionScenario, facts Facts) (float64, *schemas.CommissionScenario, error) {
	scenario, err := SelectScenario(scenarios, facts)
	if err != nil {
		return 0, nil, err
	}

	value, err := EvaluateFormula(scenario.FormulaArr, facts.Numericos)
	if err != nil {
		return 0, nil, err
	}

	return value, scenario, nil
}
