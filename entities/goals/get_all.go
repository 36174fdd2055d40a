package goals

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

	filter := bson.D{}

	if idUsuario := r.URL.Query().Get("idUsuario"); idUsuario != "" {
		filter = append(filter, bson.E{Key: "idUsuario", Value: idUsuario})
	}
	if periodo := r.URL.Query().Get("periodo"); periodo != "" {
		filter = append(filter, bson.E{Key: "periodo", Value: periodo})
	}

	mongoURI := os.Getenv(utils.MONGODB_URI)
	client, err := mongo.Connect(options.Client().ApplyURI(mongoURI))
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer client.Disconnect(ctx)

	collection := client.Database(database.GetDB()).Collection(database.COLLECTION_SALE_GOALS)

	findOptions := options.Find().SetSort(bson.D{{Key: "dataInsercao", Value: -1}})

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "Erro ao buscar metas de venda", nil, utils.ERROR_TO_FIND_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	goals := []schemas.SaleGoal{}
	if err := cursor.All(ctx, &goals); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "Erro ao decodificar metas de venda", nil, utils.ERROR_TO_FIND_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", goals, 0)
}
