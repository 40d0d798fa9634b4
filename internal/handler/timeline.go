package handler

import (
	"net/http"

	"github.com/BennersTaga/shift-management-app/internal/schedule"
)

// GetTimeline はシフト管理画面用のデータを返す
// 提出済みシフトの日付ごとのタイムラインと、従業員別の月間労働時間
func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.repository.GetAllSubmittedShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "提出済みシフトを取得しました", map[string]any{
		"rows":       schedule.Layout(shifts),
		"totalHours": schedule.MonthlyTotals(shifts),
	})
}
