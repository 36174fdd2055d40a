package commissions

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

func GetScenarios(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	mongoURI := os.Getenv(utils.MONGODB_URI)
	client, err := mongo.Connect(options.Client().ApplyURI(mongoURI))
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer client.Disconnect(ctx)

	filter := bson.D{}
	params := r.URL.Query()
	if projectType := params.Get("idTipoProjeto"); projectType != "" {
		filter = append(filter, bson.E{Key: "idTipoProjeto", Value: projectType})
	}
	if role := params.Get("papel"); role != "" {
		filter = append(filter, bson.E{Key: "papel", Value: role})
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "dataInsercao", Value: 1}})

	cursor, err := client.Database(database.GetDB()).
		Collection(database.COLLECTION_COMMISSION_SCENARIOS).
		Find(ctx, filter, findOptions)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_COMMISSION_SCENARIOS)
		return
	}
	defer cursor.Close(ctx)

	var scenarios []schemas.CommissionScenario
	if err := cursor.All(ctx, &scenarios); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_COMMISSION_SCENARIOS)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", scenarios, 0)
}
