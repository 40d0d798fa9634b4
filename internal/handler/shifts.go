package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/BennersTaga/shift-management-app/internal/domain"
	"github.com/BennersTaga/shift-management-app/internal/remote"
	"github.com/BennersTaga/shift-management-app/internal/schedule"
	"github.com/BennersTaga/shift-management-app/internal/session"
)

// shiftView はカレンダー表示用のレコード
// normal / contract は保存された時刻を持たないため、表示用に解決した時刻を付ける
type shiftView struct {
	domain.ShiftRecord
	ResolvedStartTime string `json:"resolvedStartTime,omitempty"`
	ResolvedEndTime   string `json:"resolvedEndTime,omitempty"`
}

func buildShiftViews(records []domain.ShiftRecord, employee *domain.Employee) []shiftView {
	views := make([]shiftView, 0, len(records))
	for i := range records {
		view := shiftView{ShiftRecord: records[i]}
		if start, end, ok, err := schedule.ResolveRange(&records[i], employee); err == nil && ok {
			view.ResolvedStartTime = start.String()
			view.ResolvedEndTime = end.String()
		}
		views = append(views, view)
	}
	return views
}

func (h *Handler) GetMyShifts(w http.ResponseWriter, r *http.Request) {
	sess := r.Context().Value(SessionCtx).(*session.Session)

	employee := sess.ActiveEmployee()
	if employee == nil {
		h.errorResponse(w, r, session.ErrNoActiveEmployee.Error())
		return
	}

	records, err := sess.Records()
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	totalHours, err := sess.TotalHours()
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.successResponse(w, r, "シフトを取得しました", map[string]any{
		"shifts":     buildShiftViews(records, employee),
		"totalHours": totalHours,
		"state":      sess.State(),
	})
}

func (h *Handler) AssignShift(w http.ResponseWriter, r *http.Request) {
	sess := r.Context().Value(SessionCtx).(*session.Session)

	date := chi.URLParam(r, "date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		h.errorResponse(w, r, "日付の形式が正しくありません")
		return
	}

	var req struct {
		Type      string `json:"type" validate:"required"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	typ := domain.ShiftType(req.Type)
	if !typ.Valid() {
		h.errorResponse(w, r, fmt.Sprintf("不明なシフトタイプです: %q", req.Type))
		return
	}

	// 入力期間はここではチェックしない（期間の案内は /input-window で返し、
	// 入力のブロックは画面側に委ねる）
	rec, err := sess.Assign(date, typ, req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMalformedTime),
			errors.Is(err, domain.ErrInvalidContractTime),
			errors.Is(err, schedule.ErrInvalidTimeRange),
			errors.Is(err, session.ErrNoActiveEmployee),
			errors.Is(err, session.ErrNotEditing):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "シフトを設定しました", rec)
}

func (h *Handler) GetTotalHours(w http.ResponseWriter, r *http.Request) {
	sess := r.Context().Value(SessionCtx).(*session.Session)

	totalHours, err := sess.TotalHours()
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.successResponse(w, r, "合計労働時間を取得しました", map[string]any{
		"totalHours": totalHours,
	})
}

func (h *Handler) GetInputWindow(w http.ResponseWriter, r *http.Request) {
	var window *domain.InputWindow

	settings, err := h.repository.GetSystemSettings()
	if err != nil {
		// 設定が読めない場合は未設定（常に入力可能）として扱う
		slog.Warn("システム設定の取得に失敗しました", "error", err)
	} else {
		window = settings.Window()
	}

	today := time.Now()

	h.successResponse(w, r, "入力期間を取得しました", map[string]any{
		"open":    schedule.IsOpen(window, today),
		"message": schedule.Describe(window, today),
		"window":  window,
	})
}

func (h *Handler) BeginReview(w http.ResponseWriter, r *http.Request) {
	sess := r.Context().Value(SessionCtx).(*session.Session)

	if err := sess.BeginReview(); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	employee := sess.ActiveEmployee()
	records, err := sess.Records()
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	totalHours, err := sess.TotalHours()
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.successResponse(w, r, "提出内容を確認してください", map[string]any{
		"shifts":     buildShiftViews(records, employee),
		"totalHours": totalHours,
		"state":      sess.State(),
	})
}

func (h *Handler) CancelReview(w http.ResponseWriter, r *http.Request) {
	sess := r.Context().Value(SessionCtx).(*session.Session)

	if err := sess.CancelReview(); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.successResponse(w, r, "入力画面に戻りました", nil)
}

// SubmitShifts は確認済みの月間シフトを提出する
// リモートへの送信とアーカイブへの反映が両方成功した場合のみ
// セッションが従業員選択に戻る。失敗時は確認画面のまま残り、
// 操作者の操作による再提出を待つ（自動リトライはしない）
func (h *Handler) SubmitShifts(w http.ResponseWriter, r *http.Request) {
	sess := r.Context().Value(SessionCtx).(*session.Session)

	records, employee, err := sess.Submit(r.Context(), func(ctx context.Context, emp *domain.Employee, recs []domain.ShiftRecord) error {
		if err := h.remote.SubmitShifts(ctx, emp, recs); err != nil {
			return err
		}

		// リモートが成功を返した場合のみアーカイブに反映する
		shifts := make([]*domain.SubmittedShift, 0, len(recs))
		for i := range recs {
			shift := &domain.SubmittedShift{
				EmployeeID:   emp.ID,
				EmployeeName: emp.Name,
				Date:         recs[i].Date,
				Type:         recs[i].Type,
			}
			if start, end, ok, err := schedule.ResolveRange(&recs[i], emp); err == nil && ok {
				shift.StartTime = start.String()
				shift.EndTime = end.String()
			}
			shifts = append(shifts, shift)
		}

		return h.repository.ReplaceEmployeeShifts(emp.ID, shifts)
	})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNoActiveEmployee),
			errors.Is(err, session.ErrNotReviewPending),
			errors.Is(err, remote.ErrTransportFailure),
			errors.Is(err, remote.ErrSubmissionRejected):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 提出通知メールをキューに送る（失敗しても提出自体は成立している）
	h.publishSubmittedMail(employee, records)

	h.successResponse(w, r, fmt.Sprintf("%sさんの月間シフトが登録されました", employee.Name), map[string]any{
		"shiftCount": len(records),
		"totalHours": schedule.TotalHoursOf(records, employee),
	})
}

func (h *Handler) publishSubmittedMail(employee *domain.Employee, records []domain.ShiftRecord) {
	month := ""
	if len(records) > 0 && len(records[0].Date) >= 7 {
		month = records[0].Date[:7]
	}

	mailMessage := domain.MailMessage{
		Type: "shift_submitted",
		To:   h.config.Email.NotifyTo,
		Data: domain.ShiftSubmittedMailData{
			EmployeeName: employee.Name,
			Month:        month,
			ShiftCount:   len(records),
			TotalHours:   schedule.TotalHoursOf(records, employee),
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		slog.Warn("提出通知メールの作成に失敗しました", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		slog.Warn("提出通知メールの送信に失敗しました", "error", err)
	}
}
