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

// ReduceByRegion agrupa pelo município de destino da oportunidade.
func ReduceByRegion(opportunities []schemas.OpportunityProjection, period Period) map[string]*schemas.CommercialRollup {
	buckets := map[string]*schemas.CommercialRollup{}

	for _, opportunity := range opportunities {
		city := opportunity.Localizacao.Cidade
		if city == "" {
			city = "NÃO DEFINIDO"
		}

		bucket, ok := buckets[city]
		if !ok {
			rollup := newCommercialRollup()
			bucket = &rollup
			buckets[city] = bucket
		}

		classification := Classify(opportunity)
		accumulateCommercial(bucket, opportunity, classification, period)
	}

	for _, bucket := range buckets {
		finalizeCommercial(bucket)
	}

	return buckets
}

func GetStatsByRegion(w http.ResponseWriter, r *http.Request) {
	request, ok := parseStatsRequest(w, r, true)
	if !ok {
		return
	}

	if payload, hit := cachedStatsPayload(r.Context(), "comercial-regiao", r.URL.Query(), request.filters); hit {
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

	opportunities, err := FetchOpportunityProjections(ctx, client, request.scope, request.period, FetchOptions{})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.ERROR_TO_FIND_IN_MONGODB)
		return
	}

	result := ReduceByRegion(opportunities, request.period)

	storeStatsPayload(r.Context(), "comercial-regiao", r.URL.Query(), request.filters, result)
	utils.SendResponse(w, http.StatusOK, "", result, 0)
}
