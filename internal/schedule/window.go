package schedule

import (
	"fmt"
	"time"

	"github.com/BennersTaga/shift-management-app/internal/domain"
)

// IsOpen は today が入力期間内かどうかを返す
// 期間が未設定（nil）の場合は常に入力可能として扱う（フェイルオープン）
func IsOpen(window *domain.InputWindow, today time.Time) bool {
	if window == nil {
		return true
	}

	day := today.Day()
	return window.StartDay <= day && day <= window.EndDay
}

// Describe は入力期間の案内文を返す。表示用であり、
// 期間外でも書き込みをブロックするものではない
func Describe(window *domain.InputWindow, today time.Time) string {
	if window == nil {
		return "テスト期間中 - 入力可能です"
	}

	if IsOpen(window, today) {
		return fmt.Sprintf("入力可能です（毎月%d日〜%d日）", window.StartDay, window.EndDay)
	}
	return fmt.Sprintf("入力期間外です（毎月%d日〜%d日）", window.StartDay, window.EndDay)
}
