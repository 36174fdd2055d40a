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

// ReduceBySDR agrupa pelo nome de cada SDR responsável; vendas de
// oportunidades originadas pelo SDR contam para o atingido dele mesmo quando
// fechadas por um vendedor.
func ReduceBySDR(opportunities []schemas.OpportunityProjection, period Period) map[string]*schemas.SellerRollup {
	buckets := map[string]*schemas.SellerRollup{}

	for _, opportunity := range opportunities {
		classification := Classify(opportunity)

		for _, responsible := range opportunity.Responsaveis {
			if responsible.Papel != schemas.RESPONSIBLE_ROLE_SDR {
				continue
			}

			bucket, ok := buckets[responsible.Nome]
			if !ok {
				bucket = newSellerRollup()
				buckets[responsible.Nome] = bucket
			}

			accumulateCommercial(&bucket.CommercialRollup, opportunity, classification, period)

			if period.ContainsPtr(opportunity.Ganho.Data) {
				bucket.Atingido += opportunity.Valor
			}
		}
	}

	for _, bucket := range buckets {
		finalizeCommercial(&bucket.CommercialRollup)
	}

	return buckets
}

func GetStatsBySDR(w http.ResponseWriter, r *http.Request) {
	request, ok := parseStatsRequest(w, r, true)
	if !ok {
		return
	}

	if payload, hit := cachedStatsPayload(r.Context(), "comercial-sdr", r.URL.Query(), request.filters); hit {
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

	buckets := ReduceBySDR(opportunities, request.period)

	names := sellerNamesByUserID(opportunities, schemas.RESPONSIBLE_ROLE_SDR)
	userIDs := make([]string, 0, len(names))
	for id := range names {
		userIDs = append(userIDs, id)
	}

	goals, err := FetchSaleGoals(ctx, client, userIDs)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.ERROR_TO_FIND_IN_MONGODB)
		return
	}
	ApplySaleGoals(buckets, goals, names, request.period)

	storeStatsPayload(r.Context(), "comercial-sdr", r.URL.Query(), request.filters, buckets)
	utils.SendResponse(w, http.StatusOK, "", buckets, 0)
}
