package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/BennersTaga/shift-management-app/internal/config"
	"github.com/BennersTaga/shift-management-app/internal/domain"
	"github.com/BennersTaga/shift-management-app/internal/schedule"
)

var (
	ErrTransportFailure   = errors.New("通信エラーが発生しました")
	ErrSubmissionRejected = errors.New("エラーが発生しました")
)

// Client は月間シフトの外部提出先（リモートストア）のクライアント
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Remote.Timeout) * time.Second,
		},
	}
}

type submissionShift struct {
	Date      string `json:"date"`
	Type      string `json:"type"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type submissionRequest struct {
	EmployeeID string            `json:"employeeId"`
	Shifts     []submissionShift `json:"shifts"`
}

type submissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmitShifts は月間シフトを提出先に 1 回だけ送信する
// 自動リトライは行わない。失敗時の再提出は操作者の操作に委ねる
// レスポンスが success=false の場合は提出先のメッセージをエラーとして返す
func (c *Client) SubmitShifts(ctx context.Context, employee *domain.Employee, records []domain.ShiftRecord) error {
	req := submissionRequest{
		EmployeeID: employee.ID,
		Shifts:     make([]submissionShift, 0, len(records)),
	}

	for i := range records {
		shift := submissionShift{
			Date: records[i].Date,
			Type: string(records[i].Type),
		}

		// 提出ペイロードにはタイプに応じて解決済みの時刻を載せる
		start, end, ok, err := schedule.ResolveRange(&records[i], employee)
		if err != nil {
			return err
		}
		if ok {
			shift.StartTime = start.String()
			shift.EndTime = end.String()
		}

		req.Shifts = append(req.Shifts, shift)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Remote.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	res := submissionResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return fmt.Errorf("%w: %v", ErrTransportFailure, err)
	}

	if !res.Success {
		return fmt.Errorf("%w: %s", ErrSubmissionRejected, res.Message)
	}

	return nil
}
