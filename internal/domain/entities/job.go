package entities

import (
	"github.com/connect0459/babysitter-pay/internal/domain/valueobjects"
)

// RateSchedule は時刻ごとの時給を返す
type RateSchedule interface {
	RateAt(h valueobjects.Hour) int
}

// BabysittingJob は1晩分のシッター依頼（開始時刻と終了時刻）を表すエンティティ
// 終了時刻は含まない。開始時刻 >= 終了時刻の場合は深夜0時をまたぐ
type BabysittingJob struct {
	start valueobjects.Hour
	end   valueobjects.Hour
}

// NewBabysittingJob は新しいBabysittingJobを作成する
//
// 勤務時間外の依頼も作成できる。妥当性は IsValid で確認する。
//
// 引数:
//   - start: 開始時刻（0〜23）
//   - end: 終了時刻（0〜23）
//
// 戻り値:
//   - BabysittingJob
//   - 範囲外の時刻の場合は ErrHourOutOfRange
func NewBabysittingJob(start, end int) (*BabysittingJob, error) {
	s, err := valueobjects.NewHour(start)
	if err != nil {
		return nil, err
	}
	e, err := valueobjects.NewHour(end)
	if err != nil {
		return nil, err
	}
	return &BabysittingJob{start: s, end: e}, nil
}

// Start は開始時刻を返す
func (j *BabysittingJob) Start() valueobjects.Hour {
	return j.start
}

// End は終了時刻を返す
func (j *BabysittingJob) End() valueobjects.Hour {
	return j.end
}

// IsWrapping は深夜0時をまたぐ依頼かどうかを返す
func (j *BabysittingJob) IsWrapping() bool {
	return j.start >= j.end
}

// IsValid は依頼が勤務時間内かつ開始・終了の順序が正しいかどうかを返す
func (j *BabysittingJob) IsValid() bool {
	return j.TimesWithinWorkingHours() && j.StartTimeIsBeforeEndTime()
}

// TimesWithinWorkingHours は開始・終了時刻がどちらも勤務時間内かどうかを返す
func (j *BabysittingJob) TimesWithinWorkingHours() bool {
	wh := valueobjects.DefaultWorkingHours
	return wh.AllowsEnd(j.end) && wh.AllowsStart(j.start)
}

// StartTimeIsBeforeEndTime は開始時刻が終了時刻より前かどうかを返す
// 早朝（午前4時まで）に終わる依頼は深夜0時をまたぐものとして扱う
func (j *BabysittingJob) StartTimeIsBeforeEndTime() bool {
	if j.start < j.end {
		return true
	}
	return j.end <= valueobjects.DefaultWorkingHours.LatestWrapEnd && j.start <= valueobjects.HoursPerDay-1
}

// WorkedHours は勤務する時刻を勤務順に返す
func (j *BabysittingJob) WorkedHours() []valueobjects.Hour {
	if !j.IsWrapping() {
		return valueobjects.TimeRange{Start: j.start.Int(), End: j.end.Int()}.Hours()
	}

	hours := valueobjects.TimeRange{Start: j.start.Int(), End: valueobjects.HoursPerDay}.Hours()
	return append(hours, valueobjects.TimeRange{Start: 0, End: j.end.Int()}.Hours()...)
}

// CalculatePay は依頼全体の報酬を計算する
//
// 妥当性はチェックしない。開始時刻 >= 終了時刻の場合は
// [start, 24) と [0, end) の時給を合計する。
//
// 引数:
//   - schedule: 家庭の時給表
//
// 戻り値:
//   - 報酬の合計
func (j *BabysittingJob) CalculatePay(schedule RateSchedule) int {
	pay := 0
	for _, h := range j.WorkedHours() {
		pay += schedule.RateAt(h)
	}
	return pay
}
