package stats

import (
	"context"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/database"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	STATUS_FILTER_WON  = "GANHOS"
	STATUS_FILTER_LOST = "PERDIDOS"
)

type FetchOptions struct {
	SomenteInbound   bool
	SomenteIndicacao bool
	Status           string
}

// FetchOpportunityProjections executa a única leitura do motor de
// estatísticas: interseção dos fragmentos de escopo com a disjunção de datas
// na janela, exclusão de registros removidos e lookups da proposta ativa, do
// cliente e das referências de funil. Devolve registros achatados com
// defaults numéricos e de canal.
func FetchOpportunityProjections(ctx context.Context, client *mongo.Client, scope bson.D, period Period, opts FetchOptions) ([]schemas.OpportunityProjection, error) {
	dateWindow := bson.D{{Key: "$gte", Value: period.After}, {Key: "$lte", Value: period.Before}}

	and := bson.A{
		bson.D{{Key: "dataExclusao", Value: nil}},
		bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "dataInsercao", Value: dateWindow}},
			bson.D{{Key: "ganho.data", Value: dateWindow}},
			bson.D{{Key: "perda.data", Value: dateWindow}},
			bson.D{{Key: "responsaveis.dataInsercao", Value: dateWindow}},
		}}},
	}

	for _, fragment := range scope {
		and = append(and, bson.D{fragment})
	}

	if opts.SomenteInbound {
		and = append(and, bson.D{{Key: "idMarketing", Value: bson.D{{Key: "$ne", Value: nil}}}})
	}
	if opts.SomenteIndicacao {
		and = append(and, bson.D{{Key: "idIndicacao", Value: bson.D{{Key: "$ne", Value: nil}}}})
	}
	if opts.Status == STATUS_FILTER_WON {
		and = append(and, bson.D{{Key: "ganho.data", Value: bson.D{{Key: "$ne", Value: nil}}}})
	}
	if opts.Status == STATUS_FILTER_LOST {
		and = append(and, bson.D{{Key: "perda.data", Value: bson.D{{Key: "$ne", Value: nil}}}})
	}

	pipeline := bson.A{
		bson.D{{Key: "$match", Value: bson.D{{Key: "$and", Value: and}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.COLLECTION_PROPOSALS},
			{Key: "localField", Value: "idPropostaAtiva"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "propostaAtiva"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.COLLECTION_CLIENTS},
			{Key: "localField", Value: "idCliente"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "cliente"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.COLLECTION_FUNNEL_REFERENCES},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "idOportunidade"},
			{Key: "as", Value: "referenciasFunis"},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "valor", Value: bson.D{{Key: "$ifNull", Value: bson.A{
				bson.D{{Key: "$arrayElemAt", Value: bson.A{"$propostaAtiva.valor", 0}}}, 0,
			}}}},
			{Key: "potenciaPico", Value: bson.D{{Key: "$ifNull", Value: bson.A{
				bson.D{{Key: "$arrayElemAt", Value: bson.A{"$propostaAtiva.potenciaPico", 0}}}, 0,
			}}}},
			{Key: "canalAquisicao", Value: bson.D{{Key: "$ifNull", Value: bson.A{
				bson.D{{Key: "$arrayElemAt", Value: bson.A{"$cliente.canalAquisicao", 0}}},
				schemas.ACQUISITION_CHANNEL_UNDEFINED,
			}}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "nome", Value: 1},
			{Key: "idParceiro", Value: 1},
			{Key: "tipo", Value: 1},
			{Key: "responsaveis", Value: 1},
			{Key: "idMarketing", Value: 1},
			{Key: "idIndicacao", Value: 1},
			{Key: "canalAquisicao", Value: 1},
			{Key: "valor", Value: 1},
			{Key: "potenciaPico", Value: 1},
			{Key: "localizacao", Value: 1},
			{Key: "ganho", Value: 1},
			{Key: "perda", Value: 1},
			{Key: "dataInsercao", Value: 1},
			{Key: "referenciasFunis", Value: 1},
		}}},
	}

	cursor, err := client.Database(database.GetDB()).
		Collection(database.COLLECTION_OPPORTUNITIES).
		Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projections []schemas.OpportunityProjection
	if err := cursor.All(ctx, &projections); err != nil {
		return nil, err
	}

	return projections, nil
}
