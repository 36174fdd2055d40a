package funnels

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
	funnel := &schemas.Funnel{}
	if err := json.NewDecoder(r.Body).Decode(&funnel); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.FUNNELS_INVALID_REQUEST_DATA)
		return
	}

	if funnel.Nome == "" || len(funnel.Etapas) == 0 {
		utils.SendResponse(w, http.StatusBadRequest, "Nome e etapas do funil são obrigatórios", nil, 0)
		return
	}

	// Ids de etapa são gerados uma única vez; o histórico das referências de
	// funil depende da estabilidade deles.
	for i := range funnel.Etapas {
		if funnel.Etapas[i].ID == "" {
			funnel.Etapas[i].ID = bson.NewObjectID().Hex()
		}
	}

	funnel.DataInsercao = time.Now()
	funnel.DataAtualizacao = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_FUNNELS)

	result, err := collection.InsertOne(ctx, funnel)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_FUNNEL_TO_MONGODB)
		return
	}

	broadcastFunnelUpdate(FunnelWSMessage{
		Action:  "created",
		Funnel:  funnel,
		Details: funnel.Nome,
	})

	utils.SendResponse(w, http.StatusCreated, "", bson.M{"_id": result.InsertedID}, 0)
}
