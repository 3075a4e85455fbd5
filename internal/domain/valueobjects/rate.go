package valueobjects

import "github.com/pkg/errors"

// ErrNegativeRate は時給が負の値であることを表す
var ErrNegativeRate = errors.New("negative rate")

// RateEntry は時間帯ごとの時給を表す値オブジェクト
type RateEntry struct {
	Range TimeRange
	Rate  int
}

// NewRateEntry はチェック済みのRateEntryを作成する
func NewRateEntry(start, end, rate int) (RateEntry, error) {
	r, err := NewTimeRange(start, end)
	if err != nil {
		return RateEntry{}, err
	}
	e := RateEntry{Range: r, Rate: rate}
	if err := e.Validate(); err != nil {
		return RateEntry{}, err
	}
	return e, nil
}

// Validate は時間帯と時給をチェックする
func (e RateEntry) Validate() error {
	if err := e.Range.Validate(); err != nil {
		return err
	}
	if e.Rate < 0 {
		return errors.Wrapf(ErrNegativeRate, "%d for %s", e.Rate, e.Range)
	}
	return nil
}
