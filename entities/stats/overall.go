package stats

import (
	"context"
	"net/http"
	"os"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/database"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/utils"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func ReduceOverall(opportunities []schemas.OpportunityProjection, period Period) *schemas.CommercialRollup {
	rollup := newCommercialRollup()

	for _, opportunity := range opportunities {
		classification := Classify(opportunity)
		accumulateCommercial(&rollup, opportunity, classification, period)
	}

	finalizeCommercial(&rollup)
	return &rollup
}

// GetOverallStats responde o rollup geral da janela pedida junto com o da
// janela equivalente um mês antes, para comparação período a período.
func GetOverallStats(w http.ResponseWriter, r *http.Request) {
	request, ok := parseStatsRequest(w, r, true)
	if !ok {
		return
	}

	if payload, hit := cachedStatsPayload(r.Context(), "comercial-geral", r.URL.Query(), request.filters); hit {
		writeCachedStatsPayload(w, payload)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	mongoURI := os.Getenv(utils.MONGODB_URI)
	client, err := mongo.Connect(options.Client().ApplyURI(mongoURI))
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer client.Disconnect(ctx)

	current, err := FetchOpportunityProjections(ctx, client, request.scope, request.period, FetchOptions{})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.ERROR_TO_FIND_IN_MONGODB)
		return
	}

	previousPeriod := request.period.Previous()
	previous, err := FetchOpportunityProjections(ctx, client, request.scope, previousPeriod, FetchOptions{})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.ERROR_TO_FIND_IN_MONGODB)
		return
	}

	result := map[string]*schemas.CommercialRollup{
		"atual":    ReduceOverall(current, request.period),
		"anterior": ReduceOverall(previous, previousPeriod),
	}

	storeStatsPayload(r.Context(), "comercial-geral", r.URL.Query(), request.filters, result)
	utils.SendResponse(w, http.StatusOK, "", result, 0)
}
