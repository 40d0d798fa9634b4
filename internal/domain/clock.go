package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedTime = errors.New("時刻の形式が正しくありません")

// ClockTime は日付を持たない壁時計の時刻（時・分）
// 同一日内での比較・減算のみをサポートし、日をまたぐ勤務は扱わない
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime は "H:MM" または "HH:MM" 形式の文字列を解釈する
// 分が省略・短縮されている場合は 0 埋めして解釈する
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	minutePart := strings.TrimSpace(parts[1])
	if minutePart == "" {
		minutePart = "0"
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	return ClockTime{Hour: hour, Minute: minute}, nil
}

// Minutes は 00:00 からの経過分を返す
func (t ClockTime) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Sub は t - u を分単位で返す（u が t より後なら負になる）
func (t ClockTime) Sub(u ClockTime) int {
	return t.Minutes() - u.Minutes()
}

func (t ClockTime) Before(u ClockTime) bool {
	return t.Minutes() < u.Minutes()
}

// IsHalfHour は 30 分刻みの時刻かどうかを返す
func (t ClockTime) IsHalfHour() bool {
	return t.Minute%30 == 0
}

// String は 0 埋めした "HH:MM" 形式を返す
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
