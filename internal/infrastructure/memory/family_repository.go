package memory

import (
	"github.com/pkg/errors"

	"github.com/connect0459/babysitter-pay/internal/domain/entities"
	"github.com/connect0459/babysitter-pay/internal/domain/repositories"
)

// FamilyRepository はインメモリのFamilyRepository実装
type FamilyRepository struct {
	families []*entities.Family
	byName   map[string]*entities.Family
}

// NewFamilyRepository はインメモリ実装のFamilyRepositoryを返す
func NewFamilyRepository(families ...*entities.Family) *FamilyRepository {
	r := &FamilyRepository{
		byName: make(map[string]*entities.Family),
	}
	for _, f := range families {
		r.AddFamily(f)
	}
	return r
}

// AddFamily は家庭を追加する。同名の家庭は置き換える
func (r *FamilyRepository) AddFamily(family *entities.Family) {
	if _, ok := r.byName[family.Name()]; ok {
		for i, f := range r.families {
			if f.Name() == family.Name() {
				r.families[i] = family
			}
		}
	} else {
		r.families = append(r.families, family)
	}
	r.byName[family.Name()] = family
}

// FindByName は家庭名で家庭を取得する
func (r *FamilyRepository) FindByName(name string) (*entities.Family, error) {
	family, ok := r.byName[name]
	if !ok {
		return nil, errors.Wrapf(repositories.ErrFamilyNotFound, "%q", name)
	}
	return family, nil
}

// List はすべての家庭を追加順に返す
func (r *FamilyRepository) List() ([]*entities.Family, error) {
	families := make([]*entities.Family, len(r.families))
	copy(families, r.families)
	return families, nil
}
