package schemas

import (
	"encoding/json"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	CLASSIFICATION_INBOUND         = "INBOUND"
	CLASSIFICATION_OUTBOUND_SDR    = "OUTBOUND SDR"
	CLASSIFICATION_OUTBOUND_SELLER = "OUTBOUND VENDEDOR"
	CLASSIFICATION_UNDEFINED       = "UNDEFINED"

	ACQUISITION_CHANNEL_UNDEFINED = "UNDEFINED"
	LOSS_REASON_UNDEFINED         = "NÃO DEFINIDO"
)

// JSONFloat serializa NaN e infinito como null, reproduzindo o comportamento
// da API legada para quocientes sem guarda de divisão por zero.
type JSONFloat float64

func (f JSONFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// OpportunityProjection é o registro achatado consumido pelos redutores:
// apenas os campos necessários para agregação, com a proposta ativa e o canal
// de aquisição já resolvidos.
type OpportunityProjection struct {
	ID               bson.ObjectID            `bson:"_id,omitempty"`
	Nome             string                   `bson:"nome,omitempty"`
	IDParceiro       *string                  `bson:"idParceiro,omitempty"`
	Tipo             OpportunityType          `bson:"tipo,omitempty"`
	Responsaveis     []OpportunityResponsible `bson:"responsaveis,omitempty"`
	IDMarketing      *string                  `bson:"idMarketing,omitempty"`
	IDIndicacao      *string                  `bson:"idIndicacao,omitempty"`
	CanalAquisicao   string                   `bson:"canalAquisicao,omitempty"`
	Valor            float64                  `bson:"valor,omitempty"`
	PotenciaPico     float64                  `bson:"potenciaPico,omitempty"`
	Localizacao      OpportunityLocation      `bson:"localizacao,omitempty"`
	Ganho            OpportunityWin           `bson:"ganho,omitempty"`
	Perda            OpportunityLoss          `bson:"perda,omitempty"`
	DataInsercao     time.Time                `bson:"dataInsercao,omitempty"`
	ReferenciasFunis []FunnelReference        `bson:"referenciasFunis,omitempty"`
}

type FunnelStageStats struct {
	EmAndamento      int            `json:"emAndamento"`
	ValorEmAndamento float64        `json:"valorEmAndamento"`
	Entradas         int            `json:"entradas"`
	Saidas           int            `json:"saidas"`
	HorasAcumuladas  float64        `json:"horasAcumuladas"`
	MediaHoras       JSONFloat      `json:"mediaHoras"`
	Perdas           int            `json:"perdas"`
	PerdasPorMotivo  map[string]int `json:"perdasPorMotivo"`
}

// RollupSplit separa um contador pela classificação de origem da oportunidade.
type RollupSplit struct {
	Inbound          float64 `json:"inbound"`
	OutboundSdr      float64 `json:"outboundSdr"`
	OutboundVendedor float64 `json:"outboundVendedor"`
	Total            float64 `json:"total"`
}

type ChannelRollup struct {
	Criados  int `json:"criados"`
	Vendidos int `json:"vendidos"`
}

type CommercialRollup struct {
	ProjetosCriados   RollupSplit               `json:"projetosCriados"`
	ProjetosVendidos  RollupSplit               `json:"projetosVendidos"`
	ProjetosPerdidos  RollupSplit               `json:"projetosPerdidos"`
	TotalVendido      RollupSplit               `json:"totalVendido"`
	PerdasPorMotivo   map[string]int            `json:"perdasPorMotivo"`
	PorCanalAquisicao map[string]*ChannelRollup `json:"porCanalAquisicao"`
	TaxaConversao     JSONFloat                 `json:"taxaConversao"`
}

type TransferRollup struct {
	Recebido int `json:"recebido"`
	Ganho    int `json:"ganho"`
}

// SellerRollup acrescenta metas e transferências ao rollup comercial; usado
// pelas visões por vendedor, por SDR e por promotor.
type SellerRollup struct {
	CommercialRollup
	Objetivo       float64                    `json:"objetivo"`
	Atingido       float64                    `json:"atingido"`
	Transferencias map[string]*TransferRollup `json:"transferencias,omitempty"`
}
