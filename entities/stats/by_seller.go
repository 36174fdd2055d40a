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

// ReduceBySeller agrupa pelo nome de cada vendedor responsável. Transferências
// de SDR para vendedor entram no bucket do vendedor, chaveadas pelo nome do
// SDR: recebido quando a entrada do vendedor cai na janela, ganho quando a
// oportunidade transferida é ganha na janela.
func ReduceBySeller(opportunities []schemas.OpportunityProjection, period Period) map[string]*schemas.SellerRollup {
	buckets := map[string]*schemas.SellerRollup{}

	for _, opportunity := range opportunities {
		classification := Classify(opportunity)
		transfer := isTransfer(opportunity) && isFromInsider(opportunity)

		for _, responsible := range opportunity.Responsaveis {
			if responsible.Papel != schemas.RESPONSIBLE_ROLE_SELLER {
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

			if !transfer {
				continue
			}

			for _, insider := range opportunity.Responsaveis {
				if insider.Papel != schemas.RESPONSIBLE_ROLE_SDR {
					continue
				}

				transferBucket, ok := bucket.Transferencias[insider.Nome]
				if !ok {
					transferBucket = &schemas.TransferRollup{}
					bucket.Transferencias[insider.Nome] = transferBucket
				}

				if period.Contains(responsible.DataInsercao) {
					transferBucket.Recebido++
				}
				if period.ContainsPtr(opportunity.Ganho.Data) {
					transferBucket.Ganho++
				}
			}
		}
	}

	for _, bucket := range buckets {
		finalizeCommercial(&bucket.CommercialRollup)
	}

	return buckets
}

func sellerNamesByUserID(opportunities []schemas.OpportunityProjection, role string) map[string]string {
	names := map[string]string{}
	for _, opportunity := range opportunities {
		for _, responsible := range opportunity.Responsaveis {
			if responsible.Papel == role && responsible.ID != "" {
				names[responsible.ID] = responsible.Nome
			}
		}
	}
	return names
}

func GetStatsBySeller(w http.ResponseWriter, r *http.Request) {
	request, ok := parseStatsRequest(w, r, true)
	if !ok {
		return
	}

	if payload, hit := cachedStatsPayload(r.Context(), "comercial-vendedor", r.URL.Query(), request.filters); hit {
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

	buckets := ReduceBySeller(opportunities, request.period)

	names := sellerNamesByUserID(opportunities, schemas.RESPONSIBLE_ROLE_SELLER)
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

	storeStatsPayload(r.Context(), "comercial-vendedor", r.URL.Query(), request.filters, buckets)
	utils.SendResponse(w, http.StatusOK, "", buckets, 0)
}
