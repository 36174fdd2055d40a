package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Ids de etapa são referências estáveis usadas pelo histórico das referências
// de funil; nunca são regenerados em atualizações.
type FunnelStage struct {
	ID   string `json:"id,omitempty" bson:"id,omitempty"`
	Nome string `json:"nome,omitempty" bson:"nome,omitempty"`
}

type Funnel struct {
	ID              bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nome            string        `json:"nome,omitempty" bson:"nome,omitempty"`
	Descricao       string        `json:"descricao,omitempty" bson:"descricao,omitempty"`
	IDParceiro      *string       `json:"idParceiro,omitempty" bson:"idParceiro,omitempty"`
	Etapas          []FunnelStage `json:"etapas,omitempty" bson:"etapas,omitempty"`
	DataInsercao    time.Time     `json:"dataInsercao" bson:"dataInsercao,omitempty"`
	DataAtualizacao time.Time     `json:"dataAtualizacao" bson:"dataAtualizacao,omitempty"`
}
