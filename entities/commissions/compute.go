package commissions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/database"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type computeRequest struct {
	IDTipoProjeto string  `json:"idTipoProjeto"`
	Papel         string  `json:"papel"`
	ValorProposta float64 `json:"valorProposta"`
	PotenciaPico  float64 `json:"potenciaPico"`
	Combinacao    string  `json:"combinacaoResponsaveis"`
}

func Compute(w http.ResponseWriter, r *http.Request) {
	var payload computeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Dados de requisição inválidos", nil, utils.STATS_INVALID_REQUEST_DATA)
		return
	}

	if payload.IDTipoProjeto == "" || payload.Papel == "" {
		utils.SendResponse(w, http.StatusBadRequest, "Campos obrigatórios não preenchidos", nil, utils.STATS_INVALID_REQUEST_DATA)
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

	filter := bson.D{
		{Key: "idTipoProjeto", Value: payload.IDTipoProjeto},
		{Key: "papel", Value: payload.Papel},
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

	facts := Facts{
		Numericos: map[string]float64{
			"valorProposta": payload.ValorProposta,
			"potenciaPico":  payload.PotenciaPico,
		},
		Textos: map[string]string{
			"papel":                  payload.Papel,
			"combinacaoResponsaveis": payload.Combinacao,
		},
	}

	value, scenario, err := ComputeCommission(scenarios, facts)
	if err != nil {
		if errors.Is(err, ErrNoScenario) {
			utils.SendResponse(w, http.StatusNotFound, "Nenhum cenário de comissão aplicável", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.COMMISSION_FORMULA_INVALID)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", bson.M{
		"comissao": value,
		"cenario":  scenario.Nome,
	}, 0)
}
