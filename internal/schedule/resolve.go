package schedule

import (
	"fmt"

	"github.com/BennersTaga/shift-management-app/internal/domain"
)

// 通常勤務の固定時間帯
var (
	normalStart = domain.ClockTime{Hour: 9}
	normalEnd   = domain.ClockTime{Hour: 17}
)

// ResolveRange はシフトタイプに応じた実効勤務時間帯を導出する
// off（および勤務時間を持たないケース）は ok=false を返す
// normal / contract の時刻はレコードに保存された値ではなく毎回ここで導出する
func ResolveRange(rec *domain.ShiftRecord, employee *domain.Employee) (start domain.ClockTime, end domain.ClockTime, ok bool, err error) {
	switch rec.Type {
	case domain.ShiftNormal:
		return normalStart, normalEnd, true, nil
	case domain.ShiftContract:
		start, end, err = employee.ContractRange()
		if err != nil {
			return domain.ClockTime{}, domain.ClockTime{}, false, err
		}
		return start, end, true, nil
	case domain.ShiftCustom:
		start, err = domain.ParseClockTime(rec.StartTime)
		if err != nil {
			return domain.ClockTime{}, domain.ClockTime{}, false, err
		}
		end, err = domain.ParseClockTime(rec.EndTime)
		if err != nil {
			return domain.ClockTime{}, domain.ClockTime{}, false, err
		}
		return start, end, true, nil
	case domain.ShiftOff:
		return domain.ClockTime{}, domain.ClockTime{}, false, nil
	default:
		return domain.ClockTime{}, domain.ClockTime{}, false, fmt.Errorf("不明なシフトタイプです: %q", rec.Type)
	}
}
