package domain

import "time"

// ShiftType はシフトの種別。新しい種別を追加する場合は
// 割り当て・集計・タイムラインの各 switch も併せて拡張すること
type ShiftType string

const (
	ShiftNormal   ShiftType = "normal"   // 通常勤務（09:00-17:00 固定）
	ShiftContract ShiftType = "contract" // 契約時間
	ShiftCustom   ShiftType = "custom"   // 自由時間
	ShiftOff      ShiftType = "off"      // 休み
)

func (t ShiftType) Valid() bool {
	switch t {
	case ShiftNormal, ShiftContract, ShiftCustom, ShiftOff:
		return true
	}
	return false
}

// ShiftRecord は従業員 1 人の 1 日分のシフト
// StartTime / EndTime を保持するのは custom のみで、normal / contract の
// 実効時間は読み取り時に毎回導出する（古いレコードの時刻を信用しない）
type ShiftRecord struct {
	EmployeeID string    `json:"employeeId"`
	Date       string    `json:"date"` // "YYYY-MM-DD"
	Type       ShiftType `json:"type"`
	StartTime  string    `json:"startTime,omitempty"`
	EndTime    string    `json:"endTime,omitempty"`
}

// SubmittedShift は提出済みシフトのアーカイブエントリ
// 提出時点で解決済みの時刻を保持する
type SubmittedShift struct {
	ID           int64     `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Date         string    `json:"date"`
	Type         ShiftType `json:"type"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
