package stats

import (
	"testing"
	"time"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cenário de transferência: a SDR Ana abre a oportunidade e o vendedor Beto a
// recebe e ganha dentro da mesma janela.
func transferOpportunity(period Period) schemas.OpportunityProjection {
	joinedAna := period.After.Add(24 * time.Hour)
	joinedBeto := period.After.Add(72 * time.Hour)
	won := period.After.Add(120 * time.Hour)

	return schemas.OpportunityProjection{
		Valor:        10000,
		DataInsercao: joinedAna,
		Responsaveis: []schemas.OpportunityResponsible{
			{ID: "ana", Nome: "Ana", Papel: schemas.RESPONSIBLE_ROLE_SDR, DataInsercao: joinedAna},
			{ID: "beto", Nome: "Beto", Papel: schemas.RESPONSIBLE_ROLE_SELLER, DataInsercao: joinedBeto},
		},
		Ganho: schemas.OpportunityWin{Data: timePtr(won)},
	}
}

func TestReduceBySellerTransferScenario(t *testing.T) {
	period := testPeriod()
	opportunities := []schemas.OpportunityProjection{transferOpportunity(period)}

	buckets := ReduceBySeller(opportunities, period)

	require.Contains(t, buckets, "Beto")
	assert.NotContains(t, buckets, "Ana", "SDR não vira bucket no recorte por vendedor")

	beto := buckets["Beto"]
	assert.Equal(t, 1.0, beto.ProjetosCriados.OutboundSdr)
	assert.Equal(t, 1.0, beto.ProjetosCriados.Total)
	assert.Equal(t, 1.0, beto.ProjetosVendidos.OutboundSdr)
	assert.Equal(t, 10000.0, beto.TotalVendido.Total)
	assert.Equal(t, 10000.0, beto.Atingido)

	require.Contains(t, beto.Transferencias, "Ana")
	assert.Equal(t, 1, beto.Transferencias["Ana"].Recebido)
	assert.Equal(t, 1, beto.Transferencias["Ana"].Ganho)
}

func TestReduceBySellerTransferReceivedOutsideWindow(t *testing.T) {
	period := testPeriod()
	opportunity := transferOpportunity(period)
	opportunity.Responsaveis[1].DataInsercao = period.After.Add(-48 * time.Hour)

	buckets := ReduceBySeller([]schemas.OpportunityProjection{opportunity}, period)

	beto := buckets["Beto"]
	require.Contains(t, beto.Transferencias, "Ana")
	assert.Equal(t, 0, beto.Transferencias["Ana"].Recebido, "entrada do vendedor fora da janela não conta como recebido")
	assert.Equal(t, 1, beto.Transferencias["Ana"].Ganho)
}

func TestReduceBySellerConversionRate(t *testing.T) {
	period := testPeriod()
	opportunity := transferOpportunity(period)

	buckets := ReduceBySeller([]schemas.OpportunityProjection{opportunity}, period)

	assert.Equal(t, schemas.JSONFloat(1.0), buckets["Beto"].TaxaConversao)
}

func TestReduceOverallCountsByDate(t *testing.T) {
	period := testPeriod()

	created := period.After.Add(24 * time.Hour)
	lost := period.After.Add(48 * time.Hour)

	opportunities := []schemas.OpportunityProjection{
		transferOpportunity(period),
		{
			Valor:        4000,
			DataInsercao: created,
			Responsaveis: []schemas.OpportunityResponsible{
				{ID: "beto", Nome: "Beto", Papel: schemas.RESPONSIBLE_ROLE_SELLER, DataInsercao: created},
			},
			Perda: schemas.OpportunityLoss{Data: timePtr(lost)},
		},
		{
			Valor:        7000,
			DataInsercao: period.After.Add(-240 * time.Hour),
			Responsaveis: []schemas.OpportunityResponsible{
				{ID: "beto", Nome: "Beto", Papel: schemas.RESPONSIBLE_ROLE_SELLER},
			},
		},
	}

	rollup := ReduceOverall(opportunities, period)

	assert.Equal(t, 2.0, rollup.ProjetosCriados.Total, "criação fora da janela não conta")
	assert.Equal(t, 1.0, rollup.ProjetosVendidos.Total)
	assert.Equal(t, 1.0, rollup.ProjetosPerdidos.Total)
	assert.Equal(t, 10000.0, rollup.TotalVendido.Total)
	assert.Equal(t, 1, rollup.PerdasPorMotivo[schemas.LOSS_REASON_UNDEFINED])
	assert.Equal(t, schemas.JSONFloat(0.5), rollup.TaxaConversao)
}

func TestReduceOverallChannelBuckets(t *testing.T) {
	period := testPeriod()
	created := period.After.Add(24 * time.Hour)

	opportunities := []schemas.OpportunityProjection{
		{
			CanalAquisicao: "INDICAÇÃO",
			DataInsercao:   created,
			Responsaveis: []schemas.OpportunityResponsible{
				{ID: "beto", Nome: "Beto", Papel: schemas.RESPONSIBLE_ROLE_SELLER},
			},
		},
		{
			DataInsercao: created,
			Responsaveis: []schemas.OpportunityResponsible{
				{ID: "beto", Nome: "Beto", Papel: schemas.RESPONSIBLE_ROLE_SELLER},
			},
		},
	}

	rollup := ReduceOverall(opportunities, period)

	require.Contains(t, rollup.PorCanalAquisicao, "INDICAÇÃO")
	require.Contains(t, rollup.PorCanalAquisicao, schemas.ACQUISITION_CHANNEL_UNDEFINED)
	assert.Equal(t, 1, rollup.PorCanalAquisicao["INDICAÇÃO"].Criados)
}

func TestApplySaleGoals(t *testing.T) {
	period := Period{
		After:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Before: time.Date(2025, 3, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC),
	}

	buckets := map[string]*schemas.SellerRollup{
		"Beto": newSellerRollup(),
	}
	goals := []schemas.SaleGoal{
		{IDUsuario: "beto", Periodo: "03/2025", Metas: schemas.SaleGoalTargets{ValorVendido: 50000}},
		{IDUsuario: "caio", Periodo: "03/2025", Metas: schemas.SaleGoalTargets{ValorVendido: 30000}},
	}
	names := map[string]string{"beto": "Beto", "caio": "Caio"}

	ApplySaleGoals(buckets, goals, names, period)

	assert.Equal(t, 50000.0, buckets["Beto"].Objetivo, "janela cobre o mês inteiro, meta integral")
}

func TestProratedGoalTargetPartialWindow(t *testing.T) {
	period := Period{
		After:  time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
		Before: time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
	}
	goal := schemas.SaleGoal{IDUsuario: "beto", Periodo: "03/2025", Metas: schemas.SaleGoalTargets{ValorVendido: 60000}}

	got := ProratedGoalTarget(goal, period)

	assert.InDelta(t, 60000.0*16.0/31.0, got, 1, "16 dos 31 dias do mês sobrepostos")
}

func TestProratedGoalTargetInvalidPeriod(t *testing.T) {
	goal := schemas.SaleGoal{IDUsuario: "beto", Periodo: "março", Metas: schemas.SaleGoalTargets{ValorVendido: 60000}}

	assert.Equal(t, 0.0, ProratedGoalTarget(goal, testPeriod()))
}
