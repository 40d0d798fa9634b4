package handler

import (
	"database/sql"
	"errors"
	"net/http"
)

func (h *Handler) GetSystemSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.repository.GetSystemSettings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "システム設定を取得しました", settings)
}

func (h *Handler) UpdateSystemSettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InputStartDate *int `json:"inputStartDate" validate:"omitempty,min=1,max=31"`
		InputEndDate   *int `json:"inputEndDate" validate:"omitempty,min=1,max=31"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 開始日と終了日は両方指定するか、両方未指定（期間なし = 常に入力可能）にする
	if (req.InputStartDate == nil) != (req.InputEndDate == nil) {
		h.errorResponse(w, r, "入力開始日と終了日は両方指定してください")
		return
	}
	if req.InputStartDate != nil && *req.InputStartDate > *req.InputEndDate {
		h.errorResponse(w, r, "入力開始日は終了日以前にしてください")
		return
	}

	settings, err := h.repository.GetSystemSettings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	settings.InputStartDay = req.InputStartDate
	settings.InputEndDay = req.InputEndDate

	if err := h.repository.UpdateSystemSettings(settings); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "設定の更新が競合しました。もう一度お試しください")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "システム設定を更新しました", settings)
}
