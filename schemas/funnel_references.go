package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// StageVisit registra a passagem por uma etapa. DataSaida presente implica
// DataSaida >= DataEntrada.
type StageVisit struct {
	DataEntrada *time.Time `json:"dataEntrada,omitempty" bson:"dataEntrada,omitempty"`
	DataSaida   *time.Time `json:"dataSaida,omitempty" bson:"dataSaida,omitempty"`
}

type FunnelReference struct {
	ID             bson.ObjectID         `json:"id,omitempty" bson:"_id,omitempty"`
	IDOportunidade bson.ObjectID         `json:"idOportunidade,omitempty" bson:"idOportunidade,omitempty"`
	IDFunil        string                `json:"idFunil,omitempty" bson:"idFunil,omitempty"`
	IDEstagio      string                `json:"idEstagio,omitempty" bson:"idEstagio,omitempty"`
	Estagios       map[string]StageVisit `json:"estagios,omitempty" bson:"estagios,omitempty"`
	DataInsercao   time.Time             `json:"dataInsercao" bson:"dataInsercao,omitempty"`
}
