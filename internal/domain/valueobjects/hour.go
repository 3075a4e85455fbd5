package valueobjects

import (
	"fmt"

	"github.com/pkg/errors"
)

// HoursPerDay は1日の時間数
const HoursPerDay = 24

// ErrHourOutOfRange は時刻が0〜23の範囲外であることを表す
var ErrHourOutOfRange = errors.New("hour out of range")

// Hour は24時間表記の時刻（0 = 深夜0時、23 = 午後11時）を表す値オブジェクト
type Hour int

// NewHour は範囲チェック済みのHourを作成する
//
// 引数:
//   - h: 時刻（0〜23）
//
// 戻り値:
//   - Hour
//   - 範囲外の場合は ErrHourOutOfRange
func NewHour(h int) (Hour, error) {
	hour := Hour(h)
	if !hour.IsValid() {
		return 0, errors.Wrapf(ErrHourOutOfRange, "%d", h)
	}
	return hour, nil
}

// IsValid は時刻が0〜23の範囲内かどうかを返す
func (h Hour) IsValid() bool {
	return h >= 0 && h < HoursPerDay
}

// Int は時刻をintとして返す
func (h Hour) Int() int {
	return int(h)
}

func (h Hour) String() string {
	return fmt.Sprintf("%02d:00", int(h))
}
