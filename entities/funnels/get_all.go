package funnels

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

func GetAll(w http.ResponseWriter, r *http.Request) {
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

	filter := bson.D{}
	if partner := r.URL.Query().Get("idParceiro"); partner != "" {
		// Funis globais (sem parceiro) aparecem em qualquer recorte.
		filter = append(filter, bson.E{Key: "idParceiro", Value: bson.D{{Key: "$in", Value: bson.A{partner, nil}}}})
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "dataInsercao", Value: -1}})

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_FUNNELS)

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.ERROR_TO_FIND_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	var funnels []schemas.Funnel
	if err := cursor.All(ctx, &funnels); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.ERROR_TO_FIND_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", funnels, 0)
}
