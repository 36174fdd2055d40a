package opportunities

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/database"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/entities/indications"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type winRequest struct {
	IDProposta string `json:"idProposta"`
}

// Win registra o ganho da oportunidade com a proposta vencedora e, quando a
// oportunidade veio de indicação, aplica os créditos de ganho uma única vez.
func Win(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Id de oportunidade inválido", nil, 0)
		return
	}

	var payload winRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.IDProposta == "" {
		utils.SendResponse(w, http.StatusBadRequest, "Proposta vencedora não informada", nil, 0)
		return
	}

	proposalID, err := bson.ObjectIDFromHex(payload.IDProposta)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Id de proposta inválido", nil, 0)
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

	db := client.Database(database.GetDB())

	var opportunity schemas.Opportunity
	err = db.Collection(database.COLLECTION_OPPORTUNITIES).
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

	if opportunity.Perda.Data != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Oportunidade já registrada como perdida", nil, 0)
		return
	}
	if opportunity.Ganho.Data != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Oportunidade já registrada como ganha", nil, 0)
		return
	}

	// A proposta vencedora precisa existir: ganho apontando para proposta
	// removida é tratado como erro, não como ausência silenciosa.
	var proposal schemas.Proposal
	err = db.Collection(database.COLLECTION_PROPOSALS).
		FindOne(ctx, bson.M{"_id": proposalID, "dataExclusao": nil}).
		Decode(&proposal)
	if err == mongo.ErrNoDocuments {
		utils.SendResponse(w, http.StatusNotFound, "Proposta vencedora não encontrada", nil, 0)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.ERROR_TO_FIND_IN_MONGODB)
		return
	}

	now := time.Now()
	_, err = db.Collection(database.COLLECTION_OPPORTUNITIES).UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{
			"ganho.data":       now,
			"ganho.idProposta": payload.IDProposta,
		}},
	)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.ERROR_TO_UPDATE_IN_MONGODB)
		return
	}

	if opportunity.IDIndicacao != nil && *opportunity.IDIndicacao != "" {
		if err := indications.ApplyWinCredits(ctx, client, *opportunity.IDIndicacao, proposal.Valor); err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.ERROR_TO_UPDATE_IN_MONGODB)
			return
		}
	}

	utils.SendResponse(w, http.StatusOK, "Ganho registrado com sucesso", bson.M{"dataGanho": now}, 0)
}
