package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Escopos nulos significam visibilidade irrestrita; listas vazias restringem
// tudo. A distinção entre nil e vazio é relevante para a autorização.
type User struct {
	ID              bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nome            string        `json:"nome,omitempty" bson:"nome,omitempty"`
	Email           string        `json:"email,omitempty" bson:"email,omitempty"`
	Avatar          string        `json:"avatar,omitempty" bson:"avatar,omitempty"`
	EscopoParceiros *[]string     `json:"escopoParceiros,omitempty" bson:"escopoParceiros,omitempty"`
	EscopoUsuarios  *[]string     `json:"escopoUsuarios,omitempty" bson:"escopoUsuarios,omitempty"`
	DataInsercao    time.Time     `json:"dataInsercao" bson:"dataInsercao,omitempty"`
}

type Session struct {
	ID            bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	IDUsuario     bson.ObjectID `json:"idUsuario,omitempty" bson:"idUsuario,omitempty"`
	DataExpiracao time.Time     `json:"dataExpiracao" bson:"dataExpiracao,omitempty"`
	DataInsercao  time.Time     `json:"dataInsercao" bson:"dataInsercao,omitempty"`
}
