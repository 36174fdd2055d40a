package stats

import (
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"
)

func isInbound(o schemas.OpportunityProjection) bool {
	return o.IDMarketing != nil && *o.IDMarketing != ""
}

func isTransfer(o schemas.OpportunityProjection) bool {
	return len(o.Responsaveis) > 1
}

func isFromInsider(o schemas.OpportunityProjection) bool {
	for _, responsible := range o.Responsaveis {
		if responsible.Papel == schemas.RESPONSIBLE_ROLE_SDR {
			return true
		}
	}
	return false
}

// Classify atribui exatamente um rótulo de origem por oportunidade, em função
// apenas de (idMarketing presente, mais de um responsável, SDR presente).
// Oportunidades sem responsáveis ficam como UNDEFINED.
func Classify(o schemas.OpportunityProjection) string {
	if len(o.Responsaveis) == 0 {
		return schemas.CLASSIFICATION_UNDEFINED
	}

	if isInbound(o) {
		return schemas.CLASSIFICATION_INBOUND
	}

	transfer := isTransfer(o)
	insider := isFromInsider(o)

	if (transfer && insider) || (insider && !transfer) {
		return schemas.CLASSIFICATION_OUTBOUND_SDR
	}

	return schemas.CLASSIFICATION_OUTBOUND_SELLER
}
