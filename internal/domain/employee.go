package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidContractTime = errors.New("契約時間の形式が正しくありません")

type Employee struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContractTime string `json:"contractTime"` // "HH:MM-HH:MM"
	Department   string `json:"department,omitempty"`
	Version      int32  `json:"-"`
}

// ContractRange は契約時間を開始・終了時刻に分解する
func (e *Employee) ContractRange() (ClockTime, ClockTime, error) {
	parts := strings.Split(e.ContractTime, "-")
	if len(parts) != 2 {
		return ClockTime{}, ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidContractTime, e.ContractTime)
	}

	start, err := ParseClockTime(parts[0])
	if err != nil {
		return ClockTime{}, ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidContractTime, e.ContractTime)
	}
	end, err := ParseClockTime(parts[1])
	if err != nil {
		return ClockTime{}, ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidContractTime, e.ContractTime)
	}

	return start, end, nil
}

// FallbackEmployee はディレクトリ取得に失敗した場合の最小限のテストデータ
// 画面を使用可能に保つため、取得失敗は致命的エラーにしない
func FallbackEmployee() *Employee {
	return &Employee{
		ID:           "test",
		Name:         "テストユーザー",
		ContractTime: "09:00-17:00",
	}
}

// InputWindow は管理者が設定する入力期間（毎月の日にち範囲、両端を含む）
type InputWindow struct {
	StartDay int `json:"startDay"`
	EndDay   int `json:"endDay"`
}

type SystemSettings struct {
	InputStartDay *int  `json:"inputStartDate"`
	InputEndDay   *int  `json:"inputEndDate"`
	Version       int32 `json:"-"`
}

// Window は入力期間を返す。未設定（どちらかが nil）の場合は nil を返し、
// 呼び出し側は常に入力可能として扱う
func (s *SystemSettings) Window() *InputWindow {
	if s == nil || s.InputStartDay == nil || s.InputEndDay == nil {
		return nil
	}
	return &InputWindow{StartDay: *s.InputStartDay, EndDay: *s.InputEndDay}
}
