package valueobjects

// WorkingHours はシッターが働ける時間帯を表す値オブジェクト
// 深夜0時をまたぐ時間帯は最大2つのTimeRangeに分割して保持する
type WorkingHours struct {
	// StartWindows は開始時刻として許される時間帯
	StartWindows []TimeRange
	// EndWindows は終了時刻として許される時間帯
	EndWindows []TimeRange
	// LatestWrapEnd は深夜0時をまたぐ場合に許される最も遅い終了時刻
	LatestWrapEnd Hour
}

// DefaultWorkingHours は午後5時〜午前4時の勤務時間
//
// 開始は 17〜24 / 0〜4、終了は 18〜24 / 0〜5。
// 開始と終了で境界が非対称な点に注意（終了は午前4時台まで許される）。
var DefaultWorkingHours = WorkingHours{
	StartWindows:  []TimeRange{MustTimeRange(17, 24), MustTimeRange(0, 4)},
	EndWindows:    []TimeRange{MustTimeRange(18, 24), MustTimeRange(0, 5)},
	LatestWrapEnd: 4,
}

// AllowsStart は開始時刻が許される時間帯に含まれるかどうかを返す
func (w WorkingHours) AllowsStart(h Hour) bool {
	return anyContains(w.StartWindows, h)
}

// AllowsEnd は終了時刻が許される時間帯に含まれるかどうかを返す
func (w WorkingHours) AllowsEnd(h Hour) bool {
	return anyContains(w.EndWindows, h)
}

func anyContains(ranges []TimeRange, h Hour) bool {
	for _, r := range ranges {
		if r.Contains(h) {
			return true
		}
	}
	return false
}
