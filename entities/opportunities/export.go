package opportunities

import (
	"context"
	"net/http"
	"os"
	"sync"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/database"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	EXPORT_PAGE_SIZE       = 500
	EXPORT_MAX_CONCURRENCY = 4
)

type PageFetcher func(ctx context.Context, page int) ([]schemas.Opportunity, error)

// FetchAllPages busca as páginas do export com no máximo quatro requisições
// em voo, remontando o resultado pela ordem dos índices de página. O primeiro
// erro cancela as buscas restantes e é devolvido ao chamador; não há retorno
// parcial.
func FetchAllPages(ctx context.Context, totalPages int, fetch PageFetcher) ([]schemas.Opportunity, error) {
	if totalPages <= 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([][]schemas.Opportunity, totalPages)
	errCh := make(chan error, totalPages)
	sem := make(chan struct{}, EXPORT_MAX_CONCURRENCY)

	var wg sync.WaitGroup
	for page := range totalPages {
		wg.Add(1)
		go func(page int) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				errCh <- ctx.Err()
				return
			}

			docs, err := fetch(ctx, page)
			if err != nil {
				errCh <- err
				cancel()
				return
			}
			results[page] = docs
		}(page)
	}
	wg.Wait()

	select {
	case err := <-errCh:
		return nil, err
	default:
	}

	var assembled []schemas.Opportunity
	for _, page := range results {
		assembled = append(assembled, page...)
	}
	return assembled, nil
}

func Export(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	mongoURI := os.Getenv(utils.MONGODB_URI)
	client, err := mongo.Connect(options.Client().ApplyURI(mongoURI))
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer client.Disconnect(ctx)

	collection := client.Database(database.GetDB()).Collection(database.COLLECTION_OPPORTUNITIES)
	filter := bson.D{{Key: "dataExclusao", Value: nil}}

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.OPPORTUNITY_EXPORT_FAILED)
		return
	}

	totalPages := int((total + EXPORT_PAGE_SIZE - 1) / EXPORT_PAGE_SIZE)

	fetchPage := func(ctx context.Context, page int) ([]schemas.Opportunity, error) {
		findOptions := options.Find().
			SetSort(bson.D{{Key: "_id", Value: 1}}).
			SetSkip(int64(page * EXPORT_PAGE_SIZE)).
			SetLimit(EXPORT_PAGE_SIZE)

		cursor, err := collection.Find(ctx, filter, findOptions)
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		var docs []schemas.Opportunity
		if err := cursor.All(ctx, &docs); err != nil {
			return nil, err
		}
		return docs, nil
	}

	opportunities, err := FetchAllPages(ctx, totalPages, fetchPage)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.OPPORTUNITY_EXPORT_FAILED)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", bson.M{
		"oportunidades": opportunities,
		"total":         total,
	}, 0)
}
