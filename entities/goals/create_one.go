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

func CreateOne(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	var goal schemas.SaleGoal
	err := json.NewDecoder(r.Body).Decode(&goal)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Dados de requisição inválidos", nil, utils.SALE_GOALS_INVALID_REQUEST_DATA)
		return
	}

	if goal.IDUsuario == "" || goal.Periodo == "" {
		utils.SendResponse(w, http.StatusBadRequest, "Campos obrigatórios não preenchidos", nil, utils.SALE_GOALS_INVALID_REQUEST_DATA)
		return
	}

	if _, _, err := utils.ParseGoalPeriod(goal.Periodo); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Período de meta inválido, use o formato MM/AAAA", nil, utils.SALE_GOALS_INVALID_REQUEST_DATA)
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

	now := time.Now()
	goal.DataInsercao = now
	goal.DataAtualizacao = now

	result, err := collection.InsertOne(ctx, goal)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "Erro ao criar meta de venda", nil, utils.ERROR_TO_INSERT_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "Meta de venda criada com sucesso", bson.M{"_id": result.InsertedID}, 0)
}
