package files

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/connect0459/babysitter-pay/internal/domain/entities"
	"github.com/connect0459/babysitter-pay/internal/domain/valueobjects"
)

var validate = validator.New()

// RateDocument は時給表の1行を表す
type RateDocument struct {
	Start int `json:"start" yaml:"start" validate:"min=0,max=23"`
	End   int `json:"end" yaml:"end" validate:"min=1,max=24,gtfield=Start"`
	Rate  int `json:"rate" yaml:"rate" validate:"min=0"`
}

// FamilyDocument は家庭1件を表す
type FamilyDocument struct {
	Name  string         `json:"name" yaml:"name" validate:"required"`
	Rates []RateDocument `json:"rates" yaml:"rates" validate:"dive"`
}

// Document は家庭定義ファイル全体の構造を表す
type Document struct {
	Families []FamilyDocument `json:"families" yaml:"families" validate:"required,min=1,dive"`
}

// ToFamilies はバリデーション後にドメインのFamilyへ変換する
func (d *Document) ToFamilies() ([]*entities.Family, error) {
	if err := validate.Struct(d); err != nil {
		return nil, errors.Wrap(err, "invalid families document")
	}

	seen := make(map[string]bool, len(d.Families))
	families := make([]*entities.Family, 0, len(d.Families))
	for _, fd := range d.Families {
		if seen[fd.Name] {
			return nil, errors.Errorf("duplicate family name: %s", fd.Name)
		}
		seen[fd.Name] = true

		rates := make([]valueobjects.RateEntry, 0, len(fd.Rates))
		for _, rd := range fd.Rates {
			rates = append(rates, valueobjects.RateEntry{
				Range: valueobjects.TimeRange{Start: rd.Start, End: rd.End},
				Rate:  rd.Rate,
			})
		}

		family, err := entities.NewFamily(fd.Name, rates)
		if err != nil {
			return nil, err
		}
		families = append(families, family)
	}

	return families, nil
}
