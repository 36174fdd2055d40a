package stats

import (
	"context"
	"net/http"
	"os"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/database"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ReduceFunnelStages dobra as oportunidades e seus históricos de etapa na
// estrutura funil → etapa. Toda etapa de todo funil conhecido aparece na
// saída, mesmo sem atividade. Referências a funis ou etapas desconhecidos são
// ignoradas sem erro.
func ReduceFunnelStages(funnels []schemas.Funnel, opportunities []schemas.OpportunityProjection, period Period) map[string]map[string]*schemas.FunnelStageStats {
	result := map[string]map[string]*schemas.FunnelStageStats{}

	funnelsByID := map[string]schemas.Funnel{}
	stageNamesByFunnel := map[string]map[string]string{}

	for _, funnel := range funnels {
		funnelID := funnel.ID.Hex()
		funnelsByID[funnelID] = funnel

		stageNames := map[string]string{}
		result[funnel.Nome] = map[string]*schemas.FunnelStageStats{}
		for _, stage := range funnel.Etapas {
			stageNames[stage.ID] = stage.Nome
			result[funnel.Nome][stage.Nome] = &schemas.FunnelStageStats{
				PerdasPorMotivo: map[string]int{},
			}
		}
		stageNamesByFunnel[funnelID] = stageNames
	}

	for _, opportunity := range opportunities {
		for _, reference := range opportunity.ReferenciasFunis {
			funnel, ok := funnelsByID[reference.IDFunil]
			if !ok {
				continue
			}

			stageNames := stageNamesByFunnel[reference.IDFunil]
			currentStageName, ok := stageNames[reference.IDEstagio]
			if !ok {
				continue
			}

			currentStage := result[funnel.Nome][currentStageName]

			if opportunity.Perda.Data == nil {
				currentStage.EmAndamento++
				currentStage.ValorEmAndamento += opportunity.Valor
			}

			if period.ContainsPtr(opportunity.Perda.Data) {
				currentStage.Perdas++
				currentStage.PerdasPorMotivo[opportunity.Perda.DescricaoMotivo]++
			}

			for stageID, visit := range reference.Estagios {
				stageName, ok := stageNames[stageID]
				if !ok {
					continue
				}
				stage := result[funnel.Nome][stageName]

				if period.ContainsPtr(visit.DataEntrada) {
					stage.Entradas++
				}
				if period.ContainsPtr(visit.DataSaida) {
					stage.Saidas++
				}

				if visit.DataEntrada != nil && visit.DataSaida != nil {
					stage.HorasAcumuladas += visit.DataSaida.Sub(*visit.DataEntrada).Hours()
				}
			}
		}
	}

	for _, stages := range result {
		for _, stage := range stages {
			// Quociente sem guarda: saídas zero produz NaN ou infinito,
			// serializado como null (comportamento legado).
			stage.MediaHoras = schemas.JSONFloat(stage.HorasAcumuladas / float64(stage.Saidas))
		}
	}

	return result
}

func fetchFunnels(ctx context.Context, client *mongo.Client, filters Filters) ([]schemas.Funnel, error) {
	filter := bson.D{}
	if filters.Parceiros != nil {
		partnerValues := make([]any, 0, len(*filters.Parceiros)+1)
		for _, id := range *filters.Parceiros {
			partnerValues = append(partnerValues, id)
		}
		partnerValues = append(partnerValues, nil)
		filter = append(filter, bson.E{Key: "idParceiro", Value: bson.D{{Key: "$in", Value: partnerValues}}})
	}

	cursor, err := client.Database(database.GetDB()).
		Collection(database.COLLECTION_FUNNELS).
		Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var funnels []schemas.Funnel
	if err := cursor.All(ctx, &funnels); err != nil {
		return nil, err
	}
	return funnels, nil
}

func GetFunnelStats(w http.ResponseWriter, r *http.Request) {
	request, ok := parseStatsRequest(w, r, false)
	if !ok {
		return
	}

	if payload, hit := cachedStatsPayload(r.Context(), "funis", r.URL.Query(), request.filters); hit {
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

	funnels, err := fetchFunnels(ctx, client, request.filters)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.ERROR_TO_FIND_IN_MONGODB)
		return
	}

	opportunities, err := FetchOpportunityProjections(ctx, client, request.scope, request.period, FetchOptions{})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.ERROR_TO_FIND_IN_MONGODB)
		return
	}

	result := ReduceFunnelStages(funnels, opportunities, request.period)

	storeStatsPayload(r.Context(), "funis", r.URL.Query(), request.filters, result)
	utils.SendResponse(w, http.StatusOK, "", result, 0)
}
