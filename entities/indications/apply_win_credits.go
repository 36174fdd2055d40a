package indications

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/database"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// CalculateWinCredits aplica o teto da porcentagem fixa sobre o valor da
// proposta vencedora.
func CalculateWinCredits(proposalValue float64) float64 {
	return math.Ceil(proposalValue * schemas.INDICATION_OPPORTUNITY_WIN_CREDITS_PERCENTAGE)
}

// ApplyWinCredits credita a indicação e o saldo do cliente indicador uma
// única vez: a atualização da indicação é condicionada à ausência de
// dataGanho, e o crédito do cliente só acontece quando essa atualização
// efetivamente ocorreu.
func ApplyWinCredits(ctx context.Context, client *mongo.Client, indicationID string, proposalValue float64) error {
	objectID, err := bson.ObjectIDFromHex(indicationID)
	if err != nil {
		return fmt.Errorf("id de indicação inválido: %w", err)
	}

	credits := CalculateWinCredits(proposalValue)
	db := client.Database(database.GetDB())

	result, err := db.Collection(database.COLLECTION_INDICATIONS).UpdateOne(ctx,
		bson.M{"_id": objectID, "dataGanho": nil},
		bson.M{
			"$set": bson.M{"dataGanho": time.Now()},
			"$inc": bson.M{"creditos": credits},
		},
	)
	if err != nil {
		return err
	}

	if result.ModifiedCount == 0 {
		return nil
	}

	var indication schemas.Indication
	if err := db.Collection(database.COLLECTION_INDICATIONS).
		FindOne(ctx, bson.M{"_id": objectID}).Decode(&indication); err != nil {
		return err
	}

	_, err = db.Collection(database.COLLECTION_CLIENTS).UpdateOne(ctx,
		bson.M{"_id": indication.IDCliente},
		bson.M{"$inc": bson.M{"creditos": credits}},
	)
	return err
}
