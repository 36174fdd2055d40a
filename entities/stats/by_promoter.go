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

// ReduceByPromoter agrupa pelo id da indicação que originou a oportunidade;
// oportunidades sem indicação ficam de fora.
func ReduceByPromoter(opportunities []schemas.OpportunityProjection, period Period) map[string]*schemas.SellerRollup {
	buckets := map[string]*schemas.SellerRollup{}

	for _, opportunity := range opportunities {
		if opportunity.IDIndicacao == nil || *opportunity.IDIndicacao == "" {
			continue
		}

		promoterID := *opportunity.IDIndicacao
		bucket, ok := buckets[promoterID]
		if !ok {
			bucket = newSellerRollup()
			buckets[promoterID] = bucket
		}

		classification := Classify(opportunity)
		accumulateCommercial(&bucket.CommercialRollup, opportunity, classification, period)

		if period.ContainsPtr(opportunity.Ganho.Data) {
			bucket.Atingido += opportunity.Valor
		}
	}

	for _, bucket := range buckets {
		finalizeCommercial(&bucket.CommercialRollup)
	}

	return buckets
}

func GetStatsByPromoter(w http.ResponseWriter, r *http.Request) {
	request, ok := parseStatsRequest(w, r, true)
	if !ok {
		return
	}

	if payload, hit := cachedStatsPayload(r.Context(), "comercial-promotor", r.URL.Query(), request.filters); hit {
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

	opportunities, err := FetchOpportunityProjections(ctx, client, request.scope, request.period, FetchOptions{SomenteIndicacao: true})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.ERROR_TO_FIND_IN_MONGODB)
		return
	}

	buckets := ReduceByPromoter(opportunities, request.period)

	promoterIDs := make([]string, 0, len(buckets))
	namesByID := map[string]string{}
	for id := range buckets {
		promoterIDs = append(promoterIDs, id)
		namesByID[id] = id
	}

	goals, err := FetchSaleGoals(ctx, client, promoterIDs)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.ERROR_TO_FIND_IN_MONGODB)
		return
	}
	ApplySaleGoals(buckets, goals, namesByID, request.period)

	storeStatsPayload(r.Context(), "comercial-promotor", r.URL.Query(), request.filters, buckets)
	utils.SendResponse(w, http.StatusOK, "", buckets, 0)
}
