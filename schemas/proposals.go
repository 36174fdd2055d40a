package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ProposalProduct struct {
	Descricao     string  `json:"descricao,omitempty" bson:"descricao,omitempty"`
	Categoria     string  `json:"categoria,omitempty" bson:"categoria,omitempty"`
	Quantidade    float64 `json:"quantidade,omitempty" bson:"quantidade,omitempty"`
	ValorUnitario float64 `json:"valorUnitario,omitempty" bson:"valorUnitario,omitempty"`
}

type ProposalService struct {
	Descricao string  `json:"descricao,omitempty" bson:"descricao,omitempty"`
	Valor     float64 `json:"valor,omitempty" bson:"valor,omitempty"`
}

type Proposal struct {
	ID             bson.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	Nome           string            `json:"nome,omitempty" bson:"nome,omitempty"`
	IDOportunidade bson.ObjectID     `json:"idOportunidade,omitempty" bson:"idOportunidade,omitempty"`
	Valor          float64           `json:"valor" bson:"valor,omitempty"`
	PotenciaPico   float64           `json:"potenciaPico" bson:"potenciaPico,omitempty"`
	Produtos       []ProposalProduct `json:"produtos,omitempty" bson:"produtos,omitempty"`
	Servicos       []ProposalService `json:"servicos,omitempty" bson:"servicos,omitempty"`
	DataInsercao   time.Time         `json:"dataInsercao" bson:"dataInsercao,omitempty"`
	DataExclusao   *time.Time        `json:"dataExclusao,omitempty" bson:"dataExclusao,omitempty"`
}
