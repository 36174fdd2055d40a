package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RESPONSIBLE_ROLE_SELLER = "VENDEDOR"
	RESPONSIBLE_ROLE_SDR    = "SDR"
)

type OpportunityResponsible struct {
	ID           string    `json:"id,omitempty" bson:"id,omitempty"`
	Nome         string    `json:"nome,omitempty" bson:"nome,omitempty"`
	Papel        string    `json:"papel,omitempty" bson:"papel,omitempty"`
	DataInsercao time.Time `json:"dataInsercao" bson:"dataInsercao,omitempty"`
}

type OpportunityType struct {
	ID     string `json:"id,omitempty" bson:"id,omitempty"`
	Titulo string `json:"titulo,omitempty" bson:"titulo,omitempty"`
}

type OpportunityLocation struct {
	Cidade string `json:"cidade,omitempty" bson:"cidade,omitempty"`
	UF     string `json:"uf,omitempty" bson:"uf,omitempty"`
}

type OpportunityWin struct {
	Data       *time.Time `json:"data,omitempty" bson:"data,omitempty"`
	IDProposta string     `json:"idProposta,omitempty" bson:"idProposta,omitempty"`
}

type OpportunityLoss struct {
	Data            *time.Time `json:"data,omitempty" bson:"data,omitempty"`
	DescricaoMotivo string     `json:"descricaoMotivo,omitempty" bson:"descricaoMotivo,omitempty"`
}

// Uma oportunidade aberta não tem data de ganho nem de perda; no máximo uma
// das duas é preenchida.
type Opportunity struct {
	ID                  bson.ObjectID            `json:"id,omitempty" bson:"_id,omitempty"`
	Nome                string                   `json:"nome,omitempty" bson:"nome,omitempty"`
	IDParceiro          *string                  `json:"idParceiro,omitempty" bson:"idParceiro,omitempty"`
	Tipo                OpportunityType          `json:"tipo,omitempty" bson:"tipo,omitempty"`
	Responsaveis        []OpportunityResponsible `json:"responsaveis,omitempty" bson:"responsaveis,omitempty"`
	IDCliente           bson.ObjectID            `json:"idCliente,omitempty" bson:"idCliente,omitempty"`
	IDMarketing         *string                  `json:"idMarketing,omitempty" bson:"idMarketing,omitempty"`
	IDIndicacao         *string                  `json:"idIndicacao,omitempty" bson:"idIndicacao,omitempty"`
	IDPropostaAtiva     *bson.ObjectID           `json:"idPropostaAtiva,omitempty" bson:"idPropostaAtiva,omitempty"`
	Localizacao         OpportunityLocation      `json:"localizacao,omitempty" bson:"localizacao,omitempty"`
	Ganho               OpportunityWin           `json:"ganho,omitempty" bson:"ganho,omitempty"`
	Perda               OpportunityLoss          `json:"perda,omitempty" bson:"perda,omitempty"`
	DataInsercao        time.Time                `json:"dataInsercao" bson:"dataInsercao,omitempty"`
	DataUltimaInteracao *time.Time               `json:"dataUltimaInteracao,omitempty" bson:"dataUltimaInteracao,omitempty"`
	DataExclusao        *time.Time               `json:"dataExclusao,omitempty" bson:"dataExclusao,omitempty"`
}
