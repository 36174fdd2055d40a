package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Client struct {
	ID             bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nome           string        `json:"nome,omitempty" bson:"nome,omitempty"`
	Telefone       string        `json:"telefone,omitempty" bson:"telefone,omitempty"`
	CanalAquisicao string        `json:"canalAquisicao,omitempty" bson:"canalAquisicao,omitempty"`
	Cidade         string        `json:"cidade,omitempty" bson:"cidade,omitempty"`
	UF             string        `json:"uf,omitempty" bson:"uf,omitempty"`
	Creditos       float64       `json:"creditos" bson:"creditos,omitempty"`
	DataInsercao   time.Time     `json:"dataInsercao" bson:"dataInsercao,omitempty"`
}
