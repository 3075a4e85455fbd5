package infrastructure_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connect0459/babysitter-pay/internal/infrastructure"
)

func TestNewFamilyRepository(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "families.json")
	yamlPath := filepath.Join(dir, "families.YML")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"families": [{"name": "json", "rates": []}]}`), 0644))
	require.NoError(t, os.WriteFile(yamlPath, []byte("families:\n  - name: yaml\n    rates: []\n"), 0644))

	t.Run("拡張子がjsonの場合はJSONとして読み込む", func(t *testing.T) {
		repo, err := infrastructure.NewFamilyRepository(jsonPath)
		require.NoError(t, err)

		_, err = repo.FindByName("json")
		assert.NoError(t, err)
	})

	t.Run("拡張子がyml/yamlの場合はYAMLとして読み込む", func(t *testing.T) {
		repo, err := infrastructure.NewFamilyRepository(yamlPath)
		require.NoError(t, err)

		_, err = repo.FindByName("yaml")
		assert.NoError(t, err)
	})

	t.Run("未対応の拡張子はエラーを返す", func(t *testing.T) {
		_, err := infrastructure.NewFamilyRepository(filepath.Join(dir, "families.toml"))

		assert.Error(t, err)
	})
}
