package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/connect0459/babysitter-pay/internal/domain/entities"
	"github.com/connect0459/babysitter-pay/internal/domain/valueobjects"
)

// ErrUnparsableHour は時刻文字列を解釈できないことを表す
var ErrUnparsableHour = errors.New("unparsable hour")

// HourlyCharge は1時間分の報酬を表す
type HourlyCharge struct {
	Hour valueobjects.Hour
	Rate int
}

// Quote は依頼1件分の見積もりを表す
type Quote struct {
	Family string
	Start  valueobjects.Hour
	End    valueobjects.Hour
	Valid  bool
	Lines  []HourlyCharge
	Total  int
}

// Calculator は報酬の見積もりを作成するドメインサービス
type Calculator struct{}

// NewCalculator は新しいCalculatorを作成する
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Quote は依頼の報酬を時刻ごとの内訳付きで計算する
//
// 引数:
//   - job: 依頼
//   - family: 家庭
//
// 戻り値:
//   - 見積もり（Total は job.CalculatePay(family) と一致する）
func (c *Calculator) Quote(job *entities.BabysittingJob, family *entities.Family) Quote {
	hours := job.WorkedHours()
	lines := make([]HourlyCharge, 0, len(hours))
	for _, h := range hours {
		lines = append(lines, HourlyCharge{Hour: h, Rate: family.RateAt(h)})
	}

	return Quote{
		Family: family.Name(),
		Start:  job.Start(),
		End:    job.End(),
		Valid:  job.IsValid(),
		Lines:  lines,
		Total:  job.CalculatePay(family),
	}
}

// FormatHour は時刻を12時間表記に整形する（17 -> 5pm、0 -> 12am）
//
// 引数:
//   - h: 時刻
//
// 戻り値:
//   - 整形された時刻文字列
func FormatHour(h valueobjects.Hour) string {
	suffix := "am"
	if h >= 12 {
		suffix = "pm"
	}

	clock := int(h) % 12
	if clock == 0 {
		clock = 12
	}
	return fmt.Sprintf("%d%s", clock, suffix)
}

// ParseHour は時刻文字列をHourに変換する
//
// 引数:
//   - s: 時刻文字列（"17"、"5pm"、"12AM" など）
//
// 戻り値:
//   - Hour
//   - エラー
func ParseHour(s string) (valueobjects.Hour, error) {
	v := strings.ToLower(strings.TrimSpace(s))

	var meridiem string
	if strings.HasSuffix(v, "am") || strings.HasSuffix(v, "pm") {
		meridiem = v[len(v)-2:]
		v = strings.TrimSpace(v[:len(v)-2])
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(ErrUnparsableHour, "%q", s)
	}

	if meridiem != "" {
		// 12時間表記は1〜12のみ
		if n < 1 || n > 12 {
			return 0, errors.Wrapf(valueobjects.ErrHourOutOfRange, "%q", s)
		}
		n %= 12
		if meridiem == "pm" {
			n += 12
		}
	}

	return valueobjects.NewHour(n)
}
