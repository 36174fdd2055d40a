package goals

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/database"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func UpdateOne(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "ID inválido", nil, utils.INVALID_SALE_GOAL_ID_FORMAT)
		return
	}

	var goalUpdate schemas.SaleGoal
	err = json.NewDecoder(r.Body).Decode(&goalUpdate)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Dados de requisição inválidos", nil, utils.SALE_GOALS_INVALID_REQUEST_DATA)
		return
	}

	update := bson.D{}

	if goalUpdate.Periodo != "" {
		if _, _, err := utils.ParseGoalPeriod(goalUpdate.Periodo); err != nil {
			utils.SendResponse(w, http.StatusBadRequest, "Período de meta inválido, use o formato MM/AAAA", nil, utils.SALE_GOALS_INVALID_REQUEST_DATA)
			return
		}
		update = append(update, bson.E{Key: "periodo", Value: goalUpdate.Periodo})
	}

	if goalUpdate.Metas != (schemas.SaleGoalTargets{}) {
		update = append(update, bson.E{Key: "metas", Value: goalUpdate.Metas})
	}

	update = append(update, bson.E{Key: "dataAtualizacao", Value: time.Now()})

	if len(update) == 1 {
		utils.SendResponse(w, http.StatusBadRequest, "Nenhum dado para atualizar", nil, utils.SALE_GOALS_INVALID_REQUEST_DATA)
		return
	}

	mongoURI := os.Getenv(utils.MONGODB_URI)
	client, err := mongo.Connect(options.Client().ApplyURI(mongoURI))
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer client.Disconnect(ctx)

	collection := client.Database(database.GetDB()).Collection(database.COLLECTION_SALE_GOALS)

	result, err := collection.UpdateOne(
		ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: update}},
	)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "Erro ao atualizar meta de venda", nil, utils.ERROR_TO_UPDATE_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Meta de venda não encontrada", nil, utils.NOT_FOUND)
		return
	}

	utils.SendResponse(w, http.StatusOK, "Meta de venda atualizada com sucesso", nil, 0)
}
