package file_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/logframe/pkg/adapters/file"
	"github.com/aretw0/logframe/pkg/domain"
	contract "github.com/aretw0/logframe/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCatalog_YAMLContract(t *testing.T) {
	raw, err := yaml.Marshal(contract.Fixture())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "reference.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0644))

	c, err := file.NewCatalog(path)
	require.NoError(t, err)
	contract.CatalogContractTest(t, c)
}

func TestCatalog_JSONContract(t *testing.T) {
	raw, err := json.Marshal(contract.Fixture())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "reference.json")
	require.NoError(t, os.WriteFile(path, raw, 0644))

	c, err := file.NewCatalog(path)
	require.NoError(t, err)
	contract.CatalogContractTest(t, c)
}

func TestLoadReferenceData(t *testing.T) {
	t.Run("Missing file yields empty tables", func(t *testing.T) {
		data, err := file.LoadReferenceData(filepath.Join(t.TempDir(), "none.yaml"))
		require.NoError(t, err)
		assert.Empty(t, data.EcosystemPatterns)
	})

	t.Run("Invalid document fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ecosystem_patterns: {"), 0644))
		_, err := file.LoadReferenceData(path)
		assert.Error(t, err)
	})
}

func TestRecorder_Contract(t *testing.T) {
	contract.RecordStoreContractTest(t, file.NewRecorder(t.TempDir()))
}

func TestRecorder_SanitizesOrganizationPath(t *testing.T) {
	dir := t.TempDir()
	r := file.NewRecorder(filepath.Join(dir, "records"))
	ctx := context.Background()

	require.NoError(t, r.Record(ctx, domain.Record{Operation: domain.OpDetectGaps, OrganizationID: "../evil/org"}))
	require.NoError(t, r.Record(ctx, domain.Record{Operation: domain.OpDetectGaps}))

	entries, err := os.ReadDir(filepath.Join(dir, "records"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	for _, e := range entries {
		assert.False(t, e.IsDir())
		assert.Equal(t, ".json", filepath.Ext(e.Name()))
	}

	recs, err := r.Records(ctx, "../evil/org")
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestRecorder_KeepsSimilarOrganizationsApart(t *testing.T) {
	r := file.NewRecorder(t.TempDir())
	ctx := context.Background()

	require.NoError(t, r.Record(ctx, domain.Record{Operation: domain.OpDetectGaps, OrganizationID: "ngo/bihar"}))
	require.NoError(t, r.Record(ctx, domain.Record{Operation: domain.OpDetectGaps, OrganizationID: "NGO/Bihar"}))

	for _, org := range []string{"ngo_bihar", "_anonymous", ""} {
		recs, err := r.Records(ctx, org)
		require.NoError(t, err)
		assert.Empty(t, recs, "org %q must not see other organizations' records", org)
	}

	recs, err := r.Records(ctx, "ngo/bihar")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "ngo/bihar", recs[0].OrganizationID)

	recs, err = r.Records(ctx, "NGO/Bihar")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "NGO/Bihar", recs[0].OrganizationID)
}
