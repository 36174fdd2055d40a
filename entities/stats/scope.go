package stats

import (
	"fmt"
	"slices"
	"time"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/middlewares"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Filters é o payload de filtros das rotas de estatísticas. Listas nulas
// significam "sem restrição solicitada".
type Filters struct {
	Responsaveis *[]string `json:"responsibles" validate:"omitempty,dive,min=1"`
	Parceiros    *[]string `json:"partners" validate:"omitempty,dive,min=1"`
	TiposProjeto *[]string `json:"projectTypes" validate:"omitempty,dive,min=1"`
}

// ScopeError indica violação do escopo de visibilidade do solicitante; as
// rotas respondem 401 com a mensagem literal.
type ScopeError struct {
	Message string
}

func (e *ScopeError) Error() string {
	return e.Message
}

// ResolveScopeFilter valida os filtros solicitados contra os escopos do
// solicitante e devolve os fragmentos de filtro a serem combinados por $and.
// Um escopo não-nulo exige o filtro correspondente na requisição, e todo id
// solicitado precisa pertencer ao escopo.
func ResolveScopeFilter(identity middlewares.Identity, filters Filters) (bson.D, error) {
	fragments := bson.D{}

	if identity.EscopoUsuarios != nil {
		if filters.Responsaveis == nil {
			return nil, &ScopeError{Message: "Filtro de responsáveis não informado para usuário com escopo restrito"}
		}
		for _, id := range *filters.Responsaveis {
			if !slices.Contains(*identity.EscopoUsuarios, id) {
				return nil, &ScopeError{Message: fmt.Sprintf("Responsável %s fora do escopo de visibilidade do usuário", id)}
			}
		}
	}

	if identity.EscopoParceiros != nil {
		if filters.Parceiros == nil {
			return nil, &ScopeError{Message: "Filtro de parceiros não informado para usuário com escopo restrito"}
		}
		for _, id := range *filters.Parceiros {
			if !slices.Contains(*identity.EscopoParceiros, id) {
				return nil, &ScopeError{Message: fmt.Sprintf("Parceiro %s fora do escopo de visibilidade do usuário", id)}
			}
		}
	}

	if filters.Responsaveis != nil {
		fragments = append(fragments, bson.E{Key: "responsaveis.id", Value: bson.D{{Key: "$in", Value: *filters.Responsaveis}}})
	}

	if filters.Parceiros != nil {
		// O id de parceiro nulo entra sempre: registros legados sem
		// parceiro permanecem visíveis em qualquer recorte.
		partnerValues := make([]any, 0, len(*filters.Parceiros)+1)
		for _, id := range *filters.Parceiros {
			partnerValues = append(partnerValues, id)
		}
		partnerValues = append(partnerValues, nil)
		fragments = append(fragments, bson.E{Key: "idParceiro", Value: bson.D{{Key: "$in", Value: partnerValues}}})
	}

	if filters.TiposProjeto != nil {
		fragments = append(fragments, bson.E{Key: "tipo.id", Value: bson.D{{Key: "$in", Value: *filters.TiposProjeto}}})
	}

	return fragments, nil
}

type Period struct {
	After  time.Time
	Before time.Time
}

// ResolvePeriod converte os parâmetros after/before em limites concretos.
func ResolvePeriod(afterStr, beforeStr string) (Period, error) {
	if afterStr == "" || beforeStr == "" {
		return Period{}, fmt.Errorf("parâmetros de período obrigatórios: after e before")
	}

	after, err := utils.ParseDate(afterStr)
	if err != nil {
		return Period{}, err
	}

	before, err := utils.ParseDate(beforeStr)
	if err != nil {
		return Period{}, err
	}

	if before.Before(after) {
		return Period{}, fmt.Errorf("período inválido: before anterior a after")
	}

	return Period{After: after, Before: before}, nil
}

// Normalized estende a janela para limites de dia do calendário UTC-3.
func (p Period) Normalized() Period {
	return Period{
		After:  utils.PeriodStart(p.After),
		Before: utils.PeriodEnd(p.Before),
	}
}

// Previous devolve a janela equivalente um mês para trás.
func (p Period) Previous() Period {
	after, before := utils.PreviousPeriod(p.After, p.Before)
	return Period{After: after, Before: before}
}

// Contains testa pertencimento com ambos os limites inclusivos.
func (p Period) Contains(t time.Time) bool {
	return utils.InPeriod(t, p.After, p.Before)
}

// ContainsPtr trata ponteiro nulo como fora da janela.
func (p Period) ContainsPtr(t *time.Time) bool {
	if t == nil {
		return false
	}
	return p.Contains(*t)
}
