package opportunities

import (
	"context"
	"net/http"
	"os"
	"strconv"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/database"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const DEFAULT_PAGE_SIZE = 50

func GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	mongoURI := os.Getenv(utils.MONGODB_URI)
	client, err := mongo.Connect(options.Client().ApplyURI(mongoURI))
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer client.Disconnect(ctx)

	params := r.URL.Query()

	filter := bson.D{{Key: "dataExclusao", Value: nil}}
	if partner := params.Get("idParceiro"); partner != "" {
		filter = append(filter, bson.E{Key: "idParceiro", Value: partner})
	}
	if status := params.Get("status"); status != "" {
		switch status {
		case "GANHOS":
			filter = append(filter, bson.E{Key: "ganho.data", Value: bson.D{{Key: "$ne", Value: nil}}})
		case "PERDIDOS":
			filter = append(filter, bson.E{Key: "perda.data", Value: bson.D{{Key: "$ne", Value: nil}}})
		case "ABERTOS":
			filter = append(filter,
				bson.E{Key: "ganho.data", Value: nil},
				bson.E{Key: "perda.data", Value: nil},
			)
		}
	}

	page, _ := strconv.Atoi(params.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(params.Get("limit"))
	if limit < 1 || limit > 500 {
		limit = DEFAULT_PAGE_SIZE
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "dataInsercao", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	collection := client.Database(database.GetDB()).Collection(database.COLLECTION_OPPORTUNITIES)

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.ERROR_TO_FIND_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	var results []schemas.Opportunity
	if err := cursor.All(ctx, &results); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.ERROR_TO_FIND_IN_MONGODB)
		return
	}

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.ERROR_TO_FIND_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", bson.M{
		"oportunidades": results,
		"total":         total,
		"pagina":        page,
	}, 0)
}
