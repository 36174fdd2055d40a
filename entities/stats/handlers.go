package stats

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/middlewares"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var validate = validator.New()

type statsRequest struct {
	identity middlewares.Identity
	filters  Filters
	scope    bson.D
	period   Period
}

// parseStatsRequest concentra a validação comum das rotas de estatísticas:
// identidade da sessão, janela after/before, payload de filtros e autorização
// de escopo. Escreve a resposta de erro e devolve ok=false quando algo falha.
func parseStatsRequest(w http.ResponseWriter, r *http.Request, normalizeDays bool) (*statsRequest, bool) {
	identityRaw := r.Context().Value(middlewares.IdentityContextKey)
	if identityRaw == nil {
		utils.SendResponse(w, http.StatusUnauthorized, "Usuário não autenticado", nil, 0)
		return nil, false
	}
	identity, ok := identityRaw.(middlewares.Identity)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Usuário inválido", nil, 0)
		return nil, false
	}

	params := r.URL.Query()
	period, err := ResolvePeriod(params.Get("after"), params.Get("before"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, err.Error(), nil, 0)
		return nil, false
	}
	if normalizeDays {
		period = period.Normalized()
	}

	var filters Filters
	if err := json.NewDecoder(r.Body).Decode(&filters); err != nil && !errors.Is(err, io.EOF) {
		utils.SendResponse(w, http.StatusBadRequest, "Dados de requisição inválidos", nil, utils.STATS_INVALID_REQUEST_DATA)
		return nil, false
	}

	if err := validate.Struct(filters); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Filtros de requisição inválidos", nil, utils.STATS_INVALID_REQUEST_DATA)
		return nil, false
	}

	scope, err := ResolveScopeFilter(identity, filters)
	if err != nil {
		var scopeErr *ScopeError
		if errors.As(err, &scopeErr) {
			utils.SendResponse(w, http.StatusUnauthorized, scopeErr.Message, nil, 0)
			return nil, false
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.STATS_INVALID_REQUEST_DATA)
		return nil, false
	}

	return &statsRequest{
		identity: identity,
		filters:  filters,
		scope:    scope,
		period:   period,
	}, true
}
