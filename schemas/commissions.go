package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	COMMISSION_CONDITION_TEXT_EQUALS    = "IGUAL_TEXTO"
	COMMISSION_CONDITION_NUMERIC_EQUALS = "IGUAL_NUMERICO"
	COMMISSION_CONDITION_GREATER_THAN   = "MAIOR_QUE"
	COMMISSION_CONDITION_LESS_THAN      = "MENOR_QUE"
	COMMISSION_CONDITION_NUMERIC_RANGE  = "INTERVALO_NUMERICO"
	COMMISSION_CONDITION_LIST_INCLUDES  = "INCLUI_LISTA"
)

type CommissionConditionRange struct {
	Minimo float64 `json:"minimo" bson:"minimo,omitempty"`
	Maximo float64 `json:"maximo" bson:"maximo,omitempty"`
}

// Aplicavel false marca o cenário geral, usado como fallback quando nenhuma
// condição casa.
type CommissionCondition struct {
	Aplicavel     bool                      `json:"aplicavel" bson:"aplicavel"`
	Tipo          string                    `json:"tipo,omitempty" bson:"tipo,omitempty"`
	Variavel      string                    `json:"variavel,omitempty" bson:"variavel,omitempty"`
	Igual         string                    `json:"igual,omitempty" bson:"igual,omitempty"`
	IgualNumerico float64                   `json:"igualNumerico,omitempty" bson:"igualNumerico,omitempty"`
	Maior         float64                   `json:"maior,omitempty" bson:"maior,omitempty"`
	Menor         float64                   `json:"menor,omitempty" bson:"menor,omitempty"`
	Entre         *CommissionConditionRange `json:"entre,omitempty" bson:"entre,omitempty"`
	Lista         []string                  `json:"lista,omitempty" bson:"lista,omitempty"`
}

// FormulaArr é a sequência de tokens da fórmula: operadores, literais
// numéricos, parênteses e variáveis entre colchetes ("[valorProposta]").
type CommissionScenario struct {
	ID            bson.ObjectID       `json:"id,omitempty" bson:"_id,omitempty"`
	Nome          string              `json:"nome,omitempty" bson:"nome,omitempty"`
	IDTipoProjeto string              `json:"idTipoProjeto,omitempty" bson:"idTipoProjeto,omitempty"`
	Papel         string              `json:"papel,omitempty" bson:"papel,omitempty"`
	Condicao      CommissionCondition `json:"condicao" bson:"condicao,omitempty"`
	FormulaArr    []string            `json:"formulaArr,omitempty" bson:"formulaArr,omitempty"`
	DataInsercao  time.Time           `json:"dataInsercao" bson:"dataInsercao,omitempty"`
}
