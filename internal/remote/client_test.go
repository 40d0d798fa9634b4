package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BennersTaga/shift-management-app/internal/config"
	"github.com/BennersTaga/shift-management-app/internal/domain"
)

func testClient(endpoint string) *Client {
	cfg := &config.Config{}
	cfg.Remote.Endpoint = endpoint
	cfg.Remote.Timeout = 5
	return NewClient(cfg)
}

func testRecords() (*domain.Employee, []domain.ShiftRecord) {
	employee := &domain.Employee{ID: "sato_m", Name: "佐藤 美咲", ContractTime: "10:00-18:00"}
	records := []domain.ShiftRecord{
		{EmployeeID: "sato_m", Date: "2025-03-03", Type: domain.ShiftContract},
		{EmployeeID: "sato_m", Date: "2025-03-04", Type: domain.ShiftOff},
		{EmployeeID: "sato_m", Date: "2025-03-05", Type: domain.ShiftCustom, StartTime: "13:00", EndTime: "15:30"},
	}
	return employee, records
}

func TestSubmitShifts_Success(t *testing.T) {
	var got submissionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(submissionResponse{Success: true, Message: "登録しました"})
	}))
	defer srv.Close()

	employee, records := testRecords()
	err := testClient(srv.URL).SubmitShifts(context.Background(), employee, records)
	require.NoError(t, err)

	assert.Equal(t, "sato_m", got.EmployeeID)
	require.Len(t, got.Shifts, 3)

	// 契約勤務は解決済みの時刻で送られる
	assert.Equal(t, "contract", got.Shifts[0].Type)
	assert.Equal(t, "10:00", got.Shifts[0].StartTime)
	assert.Equal(t, "18:00", got.Shifts[0].EndTime)

	// 休みは時刻を持たない
	assert.Equal(t, "off", got.Shifts[1].Type)
	assert.Empty(t, got.Shifts[1].StartTime)
	assert.Empty(t, got.Shifts[1].EndTime)

	assert.Equal(t, "13:00", got.Shifts[2].StartTime)
	assert.Equal(t, "15:30", got.Shifts[2].EndTime)
}

func TestSubmitShifts_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(submissionResponse{Success: false, Message: "シートがありません"})
	}))
	defer srv.Close()

	employee, records := testRecords()
	err := testClient(srv.URL).SubmitShifts(context.Background(), employee, records)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSubmissionRejected)
	assert.Contains(t, err.Error(), "シートがありません")
}

func TestSubmitShifts_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // 接続できないエンドポイントにする

	employee, records := testRecords()
	err := testClient(srv.URL).SubmitShifts(context.Background(), employee, records)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransportFailure)
}

func TestSubmitShifts_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>error</html>"))
	}))
	defer srv.Close()

	employee, records := testRecords()
	err := testClient(srv.URL).SubmitShifts(context.Background(), employee, records)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransportFailure)
}

func TestSubmitShifts_BrokenContract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("提出先が呼ばれてはいけない")
	}))
	defer srv.Close()

	employee := &domain.Employee{ID: "broken", ContractTime: "10:00"}
	records := []domain.ShiftRecord{
		{EmployeeID: "broken", Date: "2025-03-03", Type: domain.ShiftContract},
	}

	err := testClient(srv.URL).SubmitShifts(context.Background(), employee, records)
	assert.ErrorIs(t, err, domain.ErrInvalidContractTime)
}
