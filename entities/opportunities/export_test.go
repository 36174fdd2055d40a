package opportunities

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageOf(page int) []schemas.Opportunity {
	return []schemas.Opportunity{
		{Nome: fmt.Sprintf("pagina-%d-a", page)},
		{Nome: fmt.Sprintf("pagina-%d-b", page)},
	}
}

func TestFetchAllPagesReassemblesInOrder(t *testing.T) {
	fetch := func(ctx context.Context, page int) ([]schemas.Opportunity, error) {
		// Páginas mais baixas demoram mais, para embaralhar a ordem de
		// conclusão.
		time.Sleep(time.Duration(10-page) * time.Millisecond)
		return pageOf(page), nil
	}

	docs, err := FetchAllPages(context.Background(), 4, fetch)
	require.NoError(t, err)
	require.Len(t, docs, 8)

	for page := range 4 {
		assert.Equal(t, fmt.Sprintf("pagina-%d-a", page), docs[page*2].Nome)
		assert.Equal(t, fmt.Sprintf("pagina-%d-b", page), docs[page*2+1].Nome)
	}
}

func TestFetchAllPagesConcurrencyCap(t *testing.T) {
	var inFlight, peak int32
	var mu sync.Mutex

	fetch := func(ctx context.Context, page int) ([]schemas.Opportunity, error) {
		current := atomic.AddInt32(&inFlight, 1)
		mu.Lock()
		if current > peak {
			peak = current
		}
		mu.Unlock()

		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return pageOf(page), nil
	}

	_, err := FetchAllPages(context.Background(), 12, fetch)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak, int32(EXPORT_MAX_CONCURRENCY))
}

func TestFetchAllPagesFirstErrorWins(t *testing.T) {
	wantErr := errors.New("falha na página 2")

	fetch := func(ctx context.Context, page int) ([]schemas.Opportunity, error) {
		if page == 2 {
			return nil, wantErr
		}
		return pageOf(page), nil
	}

	docs, err := FetchAllPages(context.Background(), 6, fetch)
	assert.Error(t, err)
	assert.Nil(t, docs, "sem resultado parcial após erro")
}

func TestFetchAllPagesErrorCancelsRemaining(t *testing.T) {
	var cancelled int32

	fetch := func(ctx context.Context, page int) ([]schemas.Opportunity, error) {
		if page == 0 {
			return nil, errors.New("falha imediata")
		}
		select {
		case <-ctx.Done():
			atomic.AddInt32(&cancelled, 1)
			return nil, ctx.Err()
		case <-time.After(200 * time.Millisecond):
			return pageOf(page), nil
		}
	}

	start := time.Now()
	_, err := FetchAllPages(context.Background(), 4, fetch)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 150*time.Millisecond, "cancelamento evita esperar as páginas lentas")
}

func TestFetchAllPagesParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetch := func(ctx context.Context, page int) ([]schemas.Opportunity, error) {
		return pageOf(page), nil
	}

	_, err := FetchAllPages(ctx, 4, fetch)
	assert.Error(t, err)
}

func TestFetchAllPagesNoPages(t *testing.T) {
	fetch := func(ctx context.Context, page int) ([]schemas.Opportunity, error) {
		return nil, nil
	}

	docs, err := FetchAllPages(context.Background(), 0, fetch)
	require.NoError(t, err)
	assert.Nil(t, docs)
}
