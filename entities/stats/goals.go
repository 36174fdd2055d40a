package stats

import (
	"context"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/database"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func FetchSaleGoals(ctx context.Context, client *mongo.Client, userIDs []string) ([]schemas.SaleGoal, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	cursor, err := client.Database(database.GetDB()).
		Collection(database.COLLECTION_SALE_GOALS).
		Find(ctx, bson.D{{Key: "idUsuario", Value: bson.D{{Key: "$in", Value: userIDs}}}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var goals []schemas.SaleGoal
	if err := cursor.All(ctx, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// ProratedGoalTarget devolve a meta de valor vendido ajustada à janela: o
// valor integral quando a janela contém o período da meta, senão a fração
// linear de dias sobrepostos.
func ProratedGoalTarget(goal schemas.SaleGoal, period Period) float64 {
	start, end, err := utils.ParseGoalPeriod(goal.Periodo)
	if err != nil {
		return 0
	}
	return goal.Metas.ValorVendido * utils.GoalProrationFactor(start, end, period.After, period.Before)
}

// ApplySaleGoals soma os objetivos prorateados nos buckets nomeados;
// namesByUserID traduz o dono da meta para a chave do bucket.
func ApplySaleGoals(buckets map[string]*schemas.SellerRollup, goals []schemas.SaleGoal, namesByUserID map[string]string, period Period) {
	for _, goal := range goals {
		name, ok := namesByUserID[goal.IDUsuario]
		if !ok {
			continue
		}
		bucket, ok := buckets[name]
		if !ok {
			continue
		}
		bucket.Objetivo += ProratedGoalTarget(goal, period)
	}
}
