package valueobjects

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidTimeRange は時間帯の境界が不正（範囲外、または start >= end）であることを表す
var ErrInvalidTimeRange = errors.New("invalid time range")

// TimeRange は半開区間 [Start, End) の時間帯を表す値オブジェクト
// 深夜0時をまたぐ時間帯は扱わない（22〜24 と 0〜4 のように2つに分割して表現する）
type TimeRange struct {
	Start int
	End   int
}

// NewTimeRange は境界チェック済みのTimeRangeを作成する
//
// 引数:
//   - start: 開始時刻（0〜23）
//   - end: 終了時刻（start+1〜24、この時刻は含まない）
//
// 戻り値:
//   - TimeRange
//   - 不正な境界の場合は ErrInvalidTimeRange
func NewTimeRange(start, end int) (TimeRange, error) {
	r := TimeRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return TimeRange{}, err
	}
	return r, nil
}

// MustTimeRange は定数の時間帯定義用。不正な境界ではpanicする
func MustTimeRange(start, end int) TimeRange {
	r, err := NewTimeRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// Validate は 0 <= Start < End <= 24 を満たすかチェックする
func (r TimeRange) Validate() error {
	if r.Start < 0 || r.End > HoursPerDay || r.Start >= r.End {
		return errors.Wrapf(ErrInvalidTimeRange, "[%d, %d)", r.Start, r.End)
	}
	return nil
}

// Contains は時刻が時間帯に含まれるかどうかを返す
func (r TimeRange) Contains(h Hour) bool {
	return r.Start <= int(h) && int(h) < r.End
}

// Len は時間帯に含まれる時間数を返す
func (r TimeRange) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Hours は時間帯に含まれる時刻を昇順で返す
func (r TimeRange) Hours() []Hour {
	hours := make([]Hour, 0, r.Len())
	for h := r.Start; h < r.End; h++ {
		hours = append(hours, Hour(h))
	}
	return hours
}

func (r TimeRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
