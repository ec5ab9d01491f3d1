package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/logframe/pkg/adapters/redis"
	"github.com/aretw0/logframe/pkg/domain"
	contract "github.com/aretw0/logframe/pkg/ports/tests"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, opts ...redis.Option) (*miniredis.Miniredis, *redis.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return mr, redis.NewFromClient(client, opts...)
}

func TestRedisCatalog_Contract(t *testing.T) {
	_, store := setup(t)
	require.NoError(t, store.Seed(context.Background(), contract.Fixture()))
	contract.CatalogContractTest(t, store)
}

func TestRedisRecords_Contract(t *testing.T) {
	_, store := setup(t)
	contract.RecordStoreContractTest(t, store)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, store := setup(t, redis.WithPrefix("test:"))
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx, contract.Fixture()))
	assert.True(t, mr.Exists("test:ecosystem:FLN"))
	assert.True(t, mr.Exists("test:district:bihar:gaya"))
	assert.True(t, mr.Exists("test:indicators:practice_change:FLN:TCH"))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, store := setup(t, redis.WithTTL(time.Hour))
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, domain.Record{Operation: domain.OpScoreCompleteness, OrganizationID: "org-1"}))

	orgs, err := store.Organizations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"org-1"}, orgs)

	mr.FastForward(2 * time.Hour)

	recs, err := store.Records(ctx, "org-1")
	require.NoError(t, err)
	assert.Empty(t, recs, "records expire with the list key")
}

func TestRedisStore_BackendFailure(t *testing.T) {
	mr, store := setup(t)
	mr.Close()

	_, err := store.EcosystemPattern(context.Background(), "FLN")
	assert.Error(t, err, "a failing backend is an error, not absent data")
}

func TestRedisStore_Ping(t *testing.T) {
	_, store := setup(t)
	assert.NoError(t, store.Ping(context.Background()))
	assert.NoError(t, store.Close())
}
