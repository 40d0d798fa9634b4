package schedule

import (
	"errors"
	"fmt"

	"github.com/BennersTaga/shift-management-app/internal/domain"
)

var ErrInvalidTimeRange = errors.New("終了時間は開始時間より後に設定してください")

// AssignShift は (従業員, 日付) にシフトを登録する
// 検証に失敗した場合は Store を変更せずにエラーを返す
// 入力期間のチェックはここでは行わない（表示用の案内のみで、書き込みはブロックしない）
func AssignShift(store *Store, employee *domain.Employee, date string, typ domain.ShiftType, start string, end string) error {
	rec := domain.ShiftRecord{
		EmployeeID: employee.ID,
		Date:       date,
		Type:       typ,
	}

	switch typ {
	case domain.ShiftNormal:
		// 固定 09:00-17:00。時刻は保存せず読み取り時に導出する
	case domain.ShiftContract:
		// 契約時間が分解できることだけを確認する。時刻は保存しない
		if _, _, err := employee.ContractRange(); err != nil {
			return err
		}
	case domain.ShiftOff:
		// 勤務なし。時刻は持たない
	case domain.ShiftCustom:
		startTime, err := domain.ParseClockTime(start)
		if err != nil {
			return err
		}
		endTime, err := domain.ParseClockTime(end)
		if err != nil {
			return err
		}
		if !startTime.IsHalfHour() || !endTime.IsHalfHour() {
			return fmt.Errorf("%w: 30分刻みで指定してください", domain.ErrMalformedTime)
		}
		if !startTime.Before(endTime) {
			return ErrInvalidTimeRange
		}
		rec.StartTime = startTime.String()
		rec.EndTime = endTime.String()
	default:
		return fmt.Errorf("不明なシフトタイプです: %q", typ)
	}

	store.put(rec)
	return nil
}
