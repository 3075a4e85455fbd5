package repositories

import (
	"github.com/pkg/errors"

	"github.com/connect0459/babysitter-pay/internal/domain/entities"
)

// ErrFamilyNotFound は指定された家庭が存在しないことを表す
var ErrFamilyNotFound = errors.New("family not found")

// FamilyRepository は家庭と時給表の読み込みを抽象化する
type FamilyRepository interface {
	// FindByName は家庭名で家庭を取得する
	//
	// 引数:
	//   - name: 家庭名
	//
	// 戻り値:
	//   - 家庭
	//   - 存在しない場合は ErrFamilyNotFound
	FindByName(name string) (*entities.Family, error)

	// List は登録されているすべての家庭を定義順に返す
	List() ([]*entities.Family, error)
}
