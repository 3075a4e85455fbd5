package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connect0459/babysitter-pay/internal/domain/entities"
	"github.com/connect0459/babysitter-pay/internal/infrastructure/yaml"
)

const familiesYAML = `
families:
  - name: A
    rates:
      - {start: 17, end: 23, rate: 15}
      - {start: 23, end: 24, rate: 20}
      - {start: 0, end: 4, rate: 20}
  - name: C
    rates:
      - start: 17
        end: 21
        rate: 21
      - start: 21
        end: 24
        rate: 15
      - start: 0
        end: 4
        rate: 15
`

func TestFamilyRepository(t *testing.T) {
	t.Run("YAML家庭定義ファイルの読み込み", func(t *testing.T) {
		t.Run("正常なYAMLファイルを読み込める", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "families.yaml")
			require.NoError(t, os.WriteFile(path, []byte(familiesYAML), 0644))

			repo, err := yaml.Load(path)
			require.NoError(t, err)

			a, err := repo.FindByName("A")
			require.NoError(t, err)
			c, err := repo.FindByName("C")
			require.NoError(t, err)

			job, err := entities.NewBabysittingJob(18, 2)
			require.NoError(t, err)
			assert.Equal(t, 135, job.CalculatePay(a))

			job, err = entities.NewBabysittingJob(17, 23)
			require.NoError(t, err)
			assert.Equal(t, 114, job.CalculatePay(c))
		})

		t.Run("時間帯が重なる場合は読み込み後も後の定義が優先される", func(t *testing.T) {
			repo, err := yaml.Parse([]byte(`
families:
  - name: overlap
    rates:
      - {start: 17, end: 24, rate: 10}
      - {start: 20, end: 22, rate: 30}
`))
			require.NoError(t, err)

			f, err := repo.FindByName("overlap")
			require.NoError(t, err)

			at21, err := f.RateForHour(21)
			require.NoError(t, err)
			at19, err := f.RateForHour(19)
			require.NoError(t, err)
			assert.Equal(t, 30, at21)
			assert.Equal(t, 10, at19)
		})

		t.Run("ファイルが存在しない場合はエラーを返す", func(t *testing.T) {
			_, err := yaml.Load("/nonexistent/families.yaml")

			assert.Error(t, err)
		})

		t.Run("不正なYAML形式の場合はエラーを返す", func(t *testing.T) {
			_, err := yaml.Parse([]byte("families: [unclosed"))

			assert.Error(t, err)
		})

		t.Run("家庭名がない場合はエラーを返す", func(t *testing.T) {
			_, err := yaml.Parse([]byte("families:\n  - rates: []\n"))

			assert.Error(t, err)
		})

		t.Run("範囲外の時刻はエラーを返す", func(t *testing.T) {
			_, err := yaml.Parse([]byte("families:\n  - name: A\n    rates:\n      - {start: 20, end: 25, rate: 10}\n"))

			assert.Error(t, err)
		})
	})
}
