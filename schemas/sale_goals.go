package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type SaleGoalTargets struct {
	PotenciaVendida  float64 `json:"potenciaVendida" bson:"potenciaVendida,omitempty"`
	ValorVendido     float64 `json:"valorVendido" bson:"valorVendido,omitempty"`
	ProjetosVendidos float64 `json:"projetosVendidos" bson:"projetosVendidos,omitempty"`
	ProjetosCriados  float64 `json:"projetosCriados" bson:"projetosCriados,omitempty"`
	ProjetosEnviados float64 `json:"projetosEnviados" bson:"projetosEnviados,omitempty"`
	Conversao        float64 `json:"conversao" bson:"conversao,omitempty"`
}

// Periodo segue o formato MM/YYYY e delimita o mês-calendário da meta.
type SaleGoal struct {
	ID              bson.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	IDUsuario       string          `json:"idUsuario,omitempty" bson:"idUsuario,omitempty"`
	Periodo         string          `json:"periodo,omitempty" bson:"periodo,omitempty"`
	Metas           SaleGoalTargets `json:"metas" bson:"metas,omitempty"`
	DataInsercao    time.Time       `json:"dataInsercao" bson:"dataInsercao,omitempty"`
	DataAtualizacao time.Time       `json:"dataAtualizacao" bson:"dataAtualizacao,omitempty"`
}
