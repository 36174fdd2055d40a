package stats

import (
	"testing"
	"time"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/middlewares"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func listPtr(items ...string) *[]string {
	return &items
}

func TestResolveScopeFilterUnrestricted(t *testing.T) {
	identity := middlewares.Identity{}

	fragments, err := ResolveScopeFilter(identity, Filters{})
	require.NoError(t, err)
	assert.Empty(t, fragments)
}

func TestResolveScopeFilterUnrestrictedWithFilters(t *testing.T) {
	identity := middlewares.Identity{}

	fragments, err := ResolveScopeFilter(identity, Filters{
		Responsaveis: listPtr("u1", "u2"),
	})
	require.NoError(t, err)
	require.Len(t, fragments, 1)
	assert.Equal(t, "responsaveis.id", fragments[0].Key)
}

func TestResolveScopeFilterScopedRequiresFilter(t *testing.T) {
	identity := middlewares.Identity{EscopoUsuarios: listPtr("u1")}

	_, err := ResolveScopeFilter(identity, Filters{})
	var scopeErr *ScopeError
	require.ErrorAs(t, err, &scopeErr)
}

func TestResolveScopeFilterScopedRejectsOutsider(t *testing.T) {
	identity := middlewares.Identity{EscopoUsuarios: listPtr("u1", "u2")}

	_, err := ResolveScopeFilter(identity, Filters{Responsaveis: listPtr("u1", "u9")})
	var scopeErr *ScopeError
	require.ErrorAs(t, err, &scopeErr)
}

func TestResolveScopeFilterScopedSubsetAllowed(t *testing.T) {
	identity := middlewares.Identity{EscopoUsuarios: listPtr("u1", "u2", "u3")}

	fragments, err := ResolveScopeFilter(identity, Filters{Responsaveis: listPtr("u2")})
	require.NoError(t, err)
	require.Len(t, fragments, 1)
}

func TestResolveScopeFilterPartnerScopeRequiresFilter(t *testing.T) {
	identity := middlewares.Identity{EscopoParceiros: listPtr("p1")}

	_, err := ResolveScopeFilter(identity, Filters{})
	var scopeErr *ScopeError
	require.ErrorAs(t, err, &scopeErr)
}

func TestResolveScopeFilterPartnerIncludesNull(t *testing.T) {
	identity := middlewares.Identity{}

	fragments, err := ResolveScopeFilter(identity, Filters{Parceiros: listPtr("p1")})
	require.NoError(t, err)
	require.Len(t, fragments, 1)
	assert.Equal(t, "idParceiro", fragments[0].Key)

	inDoc, ok := fragments[0].Value.(bson.D)
	require.True(t, ok)
	values, ok := inDoc[0].Value.([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"p1", nil}, values)
}

func TestResolvePeriod(t *testing.T) {
	period, err := ResolvePeriod("2025-03-01", "2025-03-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), period.After)

	_, err = ResolvePeriod("", "2025-03-31")
	assert.Error(t, err)

	_, err = ResolvePeriod("2025-03-31", "2025-03-01")
	assert.Error(t, err)
}

func TestPeriodNormalized(t *testing.T) {
	period, err := ResolvePeriod("2025-03-01", "2025-03-31")
	require.NoError(t, err)

	normalized := period.Normalized()
	assert.Equal(t, time.Date(2025, 2, 28, 21, 0, 0, 0, time.UTC), normalized.After)
	assert.Equal(t, time.Date(2025, 3, 31, 20, 59, 59, int(999*time.Millisecond), time.UTC), normalized.Before)
}

func TestPeriodPrevious(t *testing.T) {
	period := Period{
		After:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Before: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	previous := period.Previous()
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), previous.After)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), previous.Before)
}

func TestPeriodContainsPtr(t *testing.T) {
	period := Period{
		After:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Before: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	inside := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, period.ContainsPtr(&inside))
	assert.False(t, period.ContainsPtr(nil))
}
