package schedule

import (
	"math"

	"github.com/BennersTaga/shift-management-app/internal/domain"
)

// TotalHours は従業員の合計労働時間を 0.1 時間単位に丸めて返す
// 休みは除外し、導出に失敗したレコードと 0 以下の長さのレコードは 0 換算する
// 集計は画面の再描画ごとに呼ばれるため、書き込み時と異なり契約時間の
// 不備でもエラーにはしない（書き込み時には既に ErrInvalidContractTime で
// 操作者に提示されている）
// Store を変更せず、同じ Store に対して何度呼んでも同じ値を返す
func TotalHours(store *Store, employee *domain.Employee) float64 {
	return TotalHoursOf(store.RecordsOf(employee.ID), employee)
}

// TotalHoursOf は取り出し済みのレコード列に対する合計（順序に依存しない）
func TotalHoursOf(records []domain.ShiftRecord, employee *domain.Employee) float64 {
	totalMinutes := 0

	for _, rec := range records {
		if rec.Type == domain.ShiftOff {
			continue
		}

		start, end, ok, err := ResolveRange(&rec, employee)
		if err != nil || !ok {
			continue
		}

		if minutes := end.Sub(start); minutes > 0 {
			totalMinutes += minutes
		}
	}

	return roundHours(totalMinutes)
}

// MonthlyTotals は提出済みシフトから従業員ごとの合計労働時間を算出する
// アーカイブには提出時点で解決済みの時刻が入っているため、時刻のない
// エントリ（休み）と不正なエントリはそのまま 0 換算で読み飛ばす
func MonthlyTotals(shifts []*domain.SubmittedShift) map[string]float64 {
	minutesByEmployee := make(map[string]int)

	for _, shift := range shifts {
		if _, exists := minutesByEmployee[shift.EmployeeID]; !exists {
			minutesByEmployee[shift.EmployeeID] = 0
		}

		if shift.StartTime == "" || shift.EndTime == "" {
			continue
		}
		start, err := domain.ParseClockTime(shift.StartTime)
		if err != nil {
			continue
		}
		end, err := domain.ParseClockTime(shift.EndTime)
		if err != nil {
			continue
		}
		if minutes := end.Sub(start); minutes > 0 {
			minutesByEmployee[shift.EmployeeID] += minutes
		}
	}

	totals := make(map[string]float64, len(minutesByEmployee))
	for employeeID, minutes := range minutesByEmployee {
		totals[employeeID] = roundHours(minutes)
	}

	return totals
}

func roundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}
