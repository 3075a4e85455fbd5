package yaml

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/connect0459/babysitter-pay/internal/domain/repositories"
	"github.com/connect0459/babysitter-pay/internal/infrastructure/files"
	"github.com/connect0459/babysitter-pay/internal/infrastructure/memory"
)

// Load は指定されたパスのYAMLファイルから家庭を読み込む
func Load(path string) (repositories.FamilyRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read families file")
	}
	return Parse(data)
}

// Parse はYAMLの内容から家庭を読み込む
func Parse(data []byte) (repositories.FamilyRepository, error) {
	var doc files.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse families file")
	}

	families, err := doc.ToFamilies()
	if err != nil {
		return nil, err
	}

	return memory.NewFamilyRepository(families...), nil
}
