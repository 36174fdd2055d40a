package stats

import (
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"
)

func newCommercialRollup() schemas.CommercialRollup {
	return schemas.CommercialRollup{
		PerdasPorMotivo:   map[string]int{},
		PorCanalAquisicao: map[string]*schemas.ChannelRollup{},
	}
}

func newSellerRollup() *schemas.SellerRollup {
	return &schemas.SellerRollup{
		CommercialRollup: newCommercialRollup(),
		Transferencias:   map[string]*schemas.TransferRollup{},
	}
}

func addToSplit(split *schemas.RollupSplit, classification string, amount float64) {
	switch classification {
	case schemas.CLASSIFICATION_INBOUND:
		split.Inbound += amount
	case schemas.CLASSIFICATION_OUTBOUND_SDR:
		split.OutboundSdr += amount
	case schemas.CLASSIFICATION_OUTBOUND_SELLER:
		split.OutboundVendedor += amount
	}
	split.Total += amount
}

func channelBucket(rollup *schemas.CommercialRollup, channel string) *schemas.ChannelRollup {
	if channel == "" {
		channel = schemas.ACQUISITION_CHANNEL_UNDEFINED
	}
	bucket, ok := rollup.PorCanalAquisicao[channel]
	if !ok {
		bucket = &schemas.ChannelRollup{}
		rollup.PorCanalAquisicao[channel] = bucket
	}
	return bucket
}

// accumulateCommercial aplica a contribuição de uma oportunidade ao rollup,
// condicionada à data relevante de cada contador cair na janela.
func accumulateCommercial(rollup *schemas.CommercialRollup, o schemas.OpportunityProjection, classification string, period Period) {
	if period.Contains(o.DataInsercao) {
		addToSplit(&rollup.ProjetosCriados, classification, 1)
		channelBucket(rollup, o.CanalAquisicao).Criados++
	}

	if period.ContainsPtr(o.Ganho.Data) {
		addToSplit(&rollup.ProjetosVendidos, classification, 1)
		addToSplit(&rollup.TotalVendido, classification, o.Valor)
		channelBucket(rollup, o.CanalAquisicao).Vendidos++
	}

	if period.ContainsPtr(o.Perda.Data) {
		addToSplit(&rollup.ProjetosPerdidos, classification, 1)
		reason := o.Perda.DescricaoMotivo
		if reason == "" {
			reason = schemas.LOSS_REASON_UNDEFINED
		}
		rollup.PerdasPorMotivo[reason]++
	}
}

// Quociente sem guarda, preservado do comportamento legado.
func finalizeCommercial(rollup *schemas.CommercialRollup) {
	rollup.TaxaConversao = schemas.JSONFloat(rollup.ProjetosVendidos.Total / rollup.ProjetosCriados.Total)
}
