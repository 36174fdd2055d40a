package opportunities

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

func GetOne(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Id de oportunidade inválido", nil, 0)
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

	var opportunity schemas.Opportunity
	err = client.Database(database.GetDB()).
		Collection(database.COLLECTION_OPPORTUNITIES).
		FindOne(ctx, bson.M{"_id": objectID, "dataExclusao": nil}).
		Decode(&opportunity)
	if err == mongo.ErrNoDocuments {
		utils.SendResponse(w, http.StatusNotFound, "Oportunidade não encontrada", nil, 0)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_OPPORTUNITY_BY_ID)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", opportunity, 0)
}
