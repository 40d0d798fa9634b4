package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BennersTaga/shift-management-app/internal/domain"
)

func dayOfMonth(day int) time.Time {
	return time.Date(2025, time.March, day, 12, 0, 0, 0, time.Local)
}

func TestIsOpen_NilWindowAlwaysOpen(t *testing.T) {
	// 期間未設定ならどの日でも入力可能（フェイルオープン）
	for day := 1; day <= 31; day++ {
		assert.True(t, IsOpen(nil, dayOfMonth(day)), "%d日", day)
	}
}

func TestIsOpen_InclusiveBounds(t *testing.T) {
	window := &domain.InputWindow{StartDay: 10, EndDay: 20}

	assert.False(t, IsOpen(window, dayOfMonth(9)))
	assert.True(t, IsOpen(window, dayOfMonth(10)))
	assert.True(t, IsOpen(window, dayOfMonth(15)))
	assert.True(t, IsOpen(window, dayOfMonth(20)))
	assert.False(t, IsOpen(window, dayOfMonth(21)))
}

func TestIsOpen_SingleDay(t *testing.T) {
	window := &domain.InputWindow{StartDay: 15, EndDay: 15}

	assert.False(t, IsOpen(window, dayOfMonth(14)))
	assert.True(t, IsOpen(window, dayOfMonth(15)))
	assert.False(t, IsOpen(window, dayOfMonth(16)))
}

func TestDescribe(t *testing.T) {
	window := &domain.InputWindow{StartDay: 1, EndDay: 10}

	assert.Equal(t, "テスト期間中 - 入力可能です", Describe(nil, dayOfMonth(15)))
	assert.Equal(t, "入力可能です（毎月1日〜10日）", Describe(window, dayOfMonth(5)))
	assert.Equal(t, "入力期間外です（毎月1日〜10日）", Describe(window, dayOfMonth(15)))
}
