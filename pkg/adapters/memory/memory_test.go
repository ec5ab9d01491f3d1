package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/logframe/pkg/adapters/memory"
	"github.com/aretw0/logframe/pkg/domain"
	contract "github.com/aretw0/logframe/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Contract(t *testing.T) {
	contract.CatalogContractTest(t, memory.NewCatalog(contract.Fixture()))
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := memory.NewCatalog(contract.Fixture())

	p, err := c.EcosystemPattern(ctx, "FLN")
	require.NoError(t, err)
	p.CommonEffects[0] = "mutated"

	again, err := c.EcosystemPattern(ctx, "FLN")
	require.NoError(t, err)
	assert.Equal(t, "Learning loss compounds", again.CommonEffects[0])
}

func TestRecorder_Contract(t *testing.T) {
	contract.RecordStoreContractTest(t, memory.NewRecorder())
}

func TestRecorder_Concurrency(t *testing.T) {
	r := memory.NewRecorder()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Record(ctx, domain.Record{Operation: domain.OpValidatePathway, OrganizationID: "org"})
			_, _ = r.Records(ctx, "org")
		}()
	}
	wg.Wait()

	assert.Len(t, r.All(), 50)
}
