package infrastructure

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/connect0459/babysitter-pay/internal/domain/repositories"
	"github.com/connect0459/babysitter-pay/internal/infrastructure/json"
	"github.com/connect0459/babysitter-pay/internal/infrastructure/yaml"
)

// NewFamilyRepository はファイルの拡張子に応じたFamilyRepositoryを返す
//
// 引数:
//   - path: 家庭定義ファイルのパス（.json / .yaml / .yml）
//
// 戻り値:
//   - FamilyRepository
//   - エラー
func NewFamilyRepository(path string) (repositories.FamilyRepository, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Load(path)
	case ".yaml", ".yml":
		return yaml.Load(path)
	default:
		return nil, errors.Errorf("unsupported families file extension: %s", path)
	}
}
