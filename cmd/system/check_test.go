package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/cardioai/config"
	"github.com/Alijeyrad/cardioai/internal/features"
)

func writeModel(t *testing.T, dir string, nFeatures int) string {
	t.Helper()
	path := filepath.Join(dir, "model.json")
	body := fmt.Sprintf(`{
		"n_features_in": %d,
		"classes": [0, 1],
		"estimators": [{
			"children_left":  [1, -1, -1],
			"children_right": [2, -1, -1],
			"feature":        [0, -2, -2],
			"threshold":      [0.5, -2, -2],
			"value":          [[5, 5], [4, 1], [1, 4]]
		}]
	}`, nFeatures)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func writeReference(t *testing.T, dir string, columns []string) string {
	t.Helper()
	zeros := strings.TrimSuffix(strings.Repeat("0,", len(columns)), ",")
	ones := strings.TrimSuffix(strings.Repeat("1,", len(columns)), ",")
	body := strings.Join(columns, ",") + "\n" + zeros + "\n" + ones + "\n"

	path := filepath.Join(dir, "reference.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func checkConfig(t *testing.T, nFeatures int, columns []string) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Model.Backend = config.ModelBackendTree
	cfg.Model.Path = writeModel(t, dir, nFeatures)
	cfg.Dashboard.FieldsPath = filepath.Join("..", "..", "configs", "fields.json")
	cfg.Dashboard.ReferencePath = writeReference(t, dir, columns)
	return cfg
}

func tableNames(t *testing.T) []string {
	t.Helper()
	table, err := features.NewTable(features.Miokard())
	require.NoError(t, err)
	return table.Names()
}

func TestRunChecks_Passes(t *testing.T) {
	names := tableNames(t)
	assert.NoError(t, runChecks(checkConfig(t, len(names), names)))
}

func TestRunChecks_ModelWidth(t *testing.T) {
	names := tableNames(t)
	err := runChecks(checkConfig(t, 50, names))
	require.Error(t, err)
	assert.ErrorIs(t, err, features.ErrFeatureCount)
	assert.Contains(t, err.Error(), "accepts 107 to 108")
}

func TestRunChecks_ReferenceColumns(t *testing.T) {
	names := tableNames(t)
	err := runChecks(checkConfig(t, len(names), names[1:]))
	require.Error(t, err)
	assert.ErrorIs(t, err, features.ErrMissingReferenceColumn)
}
