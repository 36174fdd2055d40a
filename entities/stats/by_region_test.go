package stats

import (
	"net/url"
	"testing"
	"time"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceByRegion(t *testing.T) {
	period := testPeriod()
	created := period.After.Add(24 * time.Hour)

	opportunities := []schemas.OpportunityProjection{
		{
			DataInsercao: created,
			Localizacao:  schemas.OpportunityLocation{Cidade: "Uberlândia", UF: "MG"},
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

	buckets := ReduceByRegion(opportunities, period)

	require.Contains(t, buckets, "Uberlândia")
	require.Contains(t, buckets, "NÃO DEFINIDO", "cidade ausente agrupa no bucket padrão")
	assert.Equal(t, 1.0, buckets["Uberlândia"].ProjetosCriados.Total)
}

func TestReduceByPromoter(t *testing.T) {
	period := testPeriod()
	won := period.After.Add(48 * time.Hour)

	opportunities := []schemas.OpportunityProjection{
		{
			Valor:        8000,
			IDIndicacao:  strPtr("ind-1"),
			DataInsercao: period.After.Add(24 * time.Hour),
			Responsaveis: []schemas.OpportunityResponsible{
				{ID: "beto", Nome: "Beto", Papel: schemas.RESPONSIBLE_ROLE_SELLER},
			},
			Ganho: schemas.OpportunityWin{Data: timePtr(won)},
		},
		{
			Valor:        5000,
			DataInsercao: period.After.Add(24 * time.Hour),
			Responsaveis: []schemas.OpportunityResponsible{
				{ID: "beto", Nome: "Beto", Papel: schemas.RESPONSIBLE_ROLE_SELLER},
			},
		},
	}

	buckets := ReduceByPromoter(opportunities, period)

	require.Len(t, buckets, 1, "oportunidade sem indicação fica de fora")
	require.Contains(t, buckets, "ind-1")
	assert.Equal(t, 8000.0, buckets["ind-1"].Atingido)
	assert.Equal(t, 1.0, buckets["ind-1"].ProjetosVendidos.Total)
}

func TestStatsCacheKey(t *testing.T) {
	query := url.Values{}
	query.Set("after", "2025-03-01")
	query.Set("before", "2025-03-31")

	keyA := statsCacheKey("comercial-geral", query, Filters{})
	keyB := statsCacheKey("comercial-geral", query, Filters{Responsaveis: listPtr("u1")})
	keyC := statsCacheKey("comercial-regiao", query, Filters{})

	assert.Contains(t, keyA, "stats:comercial-geral:2025-03-01:2025-03-31:")
	assert.NotEqual(t, keyA, keyB, "filtros diferentes não compartilham cache")
	assert.NotEqual(t, keyA, keyC, "rotas diferentes não compartilham cache")

	assert.Equal(t, keyA, statsCacheKey("comercial-geral", query, Filters{}), "chave é determinística")
}
