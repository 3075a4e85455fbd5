package entities

import (
	"github.com/pkg/errors"

	"github.com/connect0459/babysitter-pay/internal/domain/valueobjects"
)

// Family はシッターを依頼する家庭と、その時給表を表すエンティティ
// 家庭名が暗黙的な識別子となる（計算には使わない）
type Family struct {
	name  string
	rates []valueobjects.RateEntry
}

// NewFamily は新しいFamilyを作成する
//
// 時給表は順序付きで保持し、同じ時刻を複数の時間帯が含む場合は後の定義が優先される。
//
// 引数:
//   - name: 家庭名
//   - rates: 時間帯と時給の組のリスト
//
// 戻り値:
//   - Family
//   - 時間帯または時給が不正な場合はエラー
func NewFamily(name string, rates []valueobjects.RateEntry) (*Family, error) {
	for i, e := range rates {
		if err := e.Validate(); err != nil {
			return nil, errors.Wrapf(err, "family %q: rate entry %d", name, i)
		}
	}

	copied := make([]valueobjects.RateEntry, len(rates))
	copy(copied, rates)

	return &Family{
		name:  name,
		rates: copied,
	}, nil
}

// Name は家庭名を返す
func (f *Family) Name() string {
	return f.name
}

// Rates は時給表のコピーを返す
func (f *Family) Rates() []valueobjects.RateEntry {
	rates := make([]valueobjects.RateEntry, len(f.rates))
	copy(rates, f.rates)
	return rates
}

// RateForHour は指定時刻の時給を返す
//
// 引数:
//   - hour: 時刻（0〜23）
//
// 戻り値:
//   - 時給（どの時間帯にも含まれない場合は0）
//   - 範囲外の時刻の場合は ErrHourOutOfRange
func (f *Family) RateForHour(hour int) (int, error) {
	h, err := valueobjects.NewHour(hour)
	if err != nil {
		return 0, err
	}
	return f.RateAt(h), nil
}

// RateAt は指定時刻の時給を返す。後に定義された時間帯が優先される
func (f *Family) RateAt(h valueobjects.Hour) int {
	rate := 0
	for _, e := range f.rates {
		if e.Range.Contains(h) {
			rate = e.Rate
		}
	}
	return rate
}
