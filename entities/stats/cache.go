package stats

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/utils"

	"github.com/redis/go-redis/v9"
)

const STATS_CACHE_TTL = 60 * time.Second

func statsRedisClient() *redis.Client {
	redisURI := os.Getenv(utils.REDIS_URI)
	if redisURI == "" {
		return nil
	}
	opts, err := redis.ParseURL(redisURI)
	if err != nil {
		return nil
	}
	return redis.NewClient(opts)
}

func statsCacheKey(route string, query url.Values, filters Filters) string {
	payload, _ := json.Marshal(filters)
	sum := sha1.Sum(payload)
	return "stats:" + route + ":" + query.Get("after") + ":" + query.Get("before") + ":" + hex.EncodeToString(sum[:])
}

func cachedStatsPayload(ctx context.Context, route string, query url.Values, filters Filters) ([]byte, bool) {
	rdb := statsRedisClient()
	if rdb == nil {
		return nil, false
	}
	defer rdb.Close()

	val, err := rdb.Get(ctx, statsCacheKey(route, query, filters)).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func storeStatsPayload(ctx context.Context, route string, query url.Values, filters Filters, data any) {
	rdb := statsRedisClient()
	if rdb == nil {
		return
	}
	defer rdb.Close()

	payload, err := json.Marshal(schemas.ApiResponse{Data: data})
	if err != nil {
		return
	}

	rdb.Set(ctx, statsCacheKey(route, query, filters), payload, STATS_CACHE_TTL)
}

func writeCachedStatsPayload(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}
