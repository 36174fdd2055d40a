package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const INDICATION_OPPORTUNITY_WIN_CREDITS_PERCENTAGE = 0.05

type Indication struct {
	ID             bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	IDCliente      bson.ObjectID `json:"idCliente,omitempty" bson:"idCliente,omitempty"`
	IDOportunidade bson.ObjectID `json:"idOportunidade,omitempty" bson:"idOportunidade,omitempty"`
	Creditos       float64       `json:"creditos" bson:"creditos,omitempty"`
	DataGanho      *time.Time    `json:"dataGanho,omitempty" bson:"dataGanho,omitempty"`
	DataInsercao   time.Time     `json:"dataInsercao" bson:"dataInsercao,omitempty"`
}
