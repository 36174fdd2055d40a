package stats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func testPeriod() Period {
	return Period{
		After:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Before: time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC),
	}
}

func testFunnel() schemas.Funnel {
	return schemas.Funnel{
		ID:   bson.NewObjectID(),
		Nome: "Funil Comercial",
		Etapas: []schemas.FunnelStage{
			{ID: "e1", Nome: "Prospecção"},
			{ID: "e2", Nome: "Proposta"},
		},
	}
}

func TestReduceFunnelStagesZeroSeeding(t *testing.T) {
	funnel := testFunnel()

	result := ReduceFunnelStages([]schemas.Funnel{funnel}, nil, testPeriod())

	require.Contains(t, result, "Funil Comercial")
	require.Contains(t, result["Funil Comercial"], "Prospecção")
	require.Contains(t, result["Funil Comercial"], "Proposta")

	stage := result["Funil Comercial"]["Prospecção"]
	assert.Equal(t, 0, stage.EmAndamento)
	assert.Equal(t, 0, stage.Entradas)
	assert.NotNil(t, stage.PerdasPorMotivo)
}

func TestReduceFunnelStagesUnknownReferencesIgnored(t *testing.T) {
	funnel := testFunnel()
	period := testPeriod()

	opportunities := []schemas.OpportunityProjection{
		{
			Valor: 1000,
			ReferenciasFunis: []schemas.FunnelReference{
				{IDFunil: "ffffffffffffffffffffffff", IDEstagio: "e1"},
				{IDFunil: funnel.ID.Hex(), IDEstagio: "etapa-removida"},
			},
		},
	}

	result := ReduceFunnelStages([]schemas.Funnel{funnel}, opportunities, period)

	for _, stage := range result["Funil Comercial"] {
		assert.Equal(t, 0, stage.EmAndamento)
		assert.Equal(t, 0.0, stage.ValorEmAndamento)
	}
}

func TestReduceFunnelStagesAccumulation(t *testing.T) {
	funnel := testFunnel()
	period := testPeriod()

	entrada := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	saida := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)

	opportunities := []schemas.OpportunityProjection{
		{
			Valor: 5000,
			ReferenciasFunis: []schemas.FunnelReference{
				{
					IDFunil:   funnel.ID.Hex(),
					IDEstagio: "e2",
					Estagios: map[string]schemas.StageVisit{
						"e1": {DataEntrada: timePtr(entrada), DataSaida: timePtr(saida)},
						"e2": {DataEntrada: timePtr(saida)},
					},
				},
			},
		},
	}

	result := ReduceFunnelStages([]schemas.Funnel{funnel}, opportunities, period)

	prospeccao := result["Funil Comercial"]["Prospecção"]
	assert.Equal(t, 1, prospeccao.Entradas)
	assert.Equal(t, 1, prospeccao.Saidas)
	assert.Equal(t, 12.0, prospeccao.HorasAcumuladas)
	assert.Equal(t, schemas.JSONFloat(12.0), prospeccao.MediaHoras)

	proposta := result["Funil Comercial"]["Proposta"]
	assert.Equal(t, 1, proposta.EmAndamento)
	assert.Equal(t, 5000.0, proposta.ValorEmAndamento)
	assert.Equal(t, 1, proposta.Entradas)
	assert.Equal(t, 0, proposta.Saidas)
}

func TestReduceFunnelStagesLossInPeriod(t *testing.T) {
	funnel := testFunnel()
	period := testPeriod()

	lossDate := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)

	opportunities := []schemas.OpportunityProjection{
		{
			Valor: 3000,
			Perda: schemas.OpportunityLoss{Data: timePtr(lossDate), DescricaoMotivo: "PREÇO"},
			ReferenciasFunis: []schemas.FunnelReference{
				{IDFunil: funnel.ID.Hex(), IDEstagio: "e1"},
			},
		},
		{
			Valor: 2000,
			Perda: schemas.OpportunityLoss{Data: timePtr(lossDate)},
			ReferenciasFunis: []schemas.FunnelReference{
				{IDFunil: funnel.ID.Hex(), IDEstagio: "e1"},
			},
		},
	}

	result := ReduceFunnelStages([]schemas.Funnel{funnel}, opportunities, period)

	stage := result["Funil Comercial"]["Prospecção"]
	assert.Equal(t, 0, stage.EmAndamento, "oportunidade perdida não conta como em andamento")
	assert.Equal(t, 2, stage.Perdas)
	assert.Equal(t, 1, stage.PerdasPorMotivo["PREÇO"])
	assert.Equal(t, 1, stage.PerdasPorMotivo[""], "motivo ausente agrupa sob a chave vazia")
}

func TestFunnelStageStatsNaNSerializesAsNull(t *testing.T) {
	funnel := testFunnel()

	result := ReduceFunnelStages([]schemas.Funnel{funnel}, nil, testPeriod())

	payload, err := json.Marshal(result["Funil Comercial"]["Prospecção"])
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"mediaHoras":null`)
}
