package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BennersTaga/shift-management-app/internal/domain"
)

func testEmployee() *domain.Employee {
	return &domain.Employee{
		ID:           "sato_m",
		Name:         "佐藤 美咲",
		ContractTime: "10:00-18:00",
	}
}

func TestSession_AssignRequiresEmployee(t *testing.T) {
	sess := newSession()

	_, err := sess.Assign("2025-03-03", domain.ShiftNormal, "", "")
	assert.ErrorIs(t, err, ErrNoActiveEmployee)

	_, err = sess.Records()
	assert.ErrorIs(t, err, ErrNoActiveEmployee)

	err = sess.BeginReview()
	assert.ErrorIs(t, err, ErrNoActiveEmployee)
}

func TestSession_BeginReviewEmpty(t *testing.T) {
	sess := newSession()
	sess.SelectEmployee(testEmployee())

	err := sess.BeginReview()
	assert.ErrorIs(t, err, ErrEmptySubmission)
	// 失敗しても編集中のまま
	assert.Equal(t, StateEditing, sess.State())
}

func TestSession_ReviewRoundTrip(t *testing.T) {
	sess := newSession()
	sess.SelectEmployee(testEmployee())

	_, err := sess.Assign("2025-03-03", domain.ShiftNormal, "", "")
	require.NoError(t, err)

	require.NoError(t, sess.BeginReview())
	assert.Equal(t, StateReviewPending, sess.State())

	// 確認中は編集できない
	_, err = sess.Assign("2025-03-04", domain.ShiftOff, "", "")
	assert.ErrorIs(t, err, ErrNotEditing)
	err = sess.BeginReview()
	assert.ErrorIs(t, err, ErrNotEditing)

	// キャンセルで編集に戻り、ドラフトは残っている
	require.NoError(t, sess.CancelReview())
	assert.Equal(t, StateEditing, sess.State())
	records, err := sess.Records()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSession_CancelReviewOutsideReview(t *testing.T) {
	sess := newSession()
	sess.SelectEmployee(testEmployee())

	assert.ErrorIs(t, sess.CancelReview(), ErrNotReviewPending)
}

func TestSession_SubmitSuccess(t *testing.T) {
	sess := newSession()
	employee := testEmployee()
	sess.SelectEmployee(employee)

	// 日付順と登録順が異なっても提出は日付昇順
	_, err := sess.Assign("2025-03-05", domain.ShiftCustom, "13:00", "15:30")
	require.NoError(t, err)
	_, err = sess.Assign("2025-03-03", domain.ShiftContract, "", "")
	require.NoError(t, err)

	require.NoError(t, sess.BeginReview())

	var submitted []domain.ShiftRecord
	records, submittedBy, err := sess.Submit(context.Background(), func(ctx context.Context, e *domain.Employee, recs []domain.ShiftRecord) error {
		submitted = recs
		return nil
	})
	require.NoError(t, err)

	require.Len(t, submitted, 2)
	assert.Equal(t, "2025-03-03", submitted[0].Date)
	assert.Equal(t, "2025-03-05", submitted[1].Date)
	assert.Equal(t, submitted, records)
	assert.Equal(t, employee, submittedBy)

	// 提出後は従業員選択に戻り、対象従業員のドラフトは消える
	assert.Equal(t, StateSubmitted, sess.State())
	assert.Nil(t, sess.ActiveEmployee())

	sess.SelectEmployee(employee)
	assert.Equal(t, StateEditing, sess.State())
	records, err = sess.Records()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSession_SubmitFailureKeepsDraft(t *testing.T) {
	sess := newSession()
	sess.SelectEmployee(testEmployee())

	_, err := sess.Assign("2025-03-03", domain.ShiftNormal, "", "")
	require.NoError(t, err)
	require.NoError(t, sess.BeginReview())

	submitErr := errors.New("シートがありません")
	_, _, err = sess.Submit(context.Background(), func(ctx context.Context, e *domain.Employee, recs []domain.ShiftRecord) error {
		return submitErr
	})
	assert.ErrorIs(t, err, submitErr)

	// 失敗したら確認中のまま、ドラフトも消えない
	assert.Equal(t, StateReviewPending, sess.State())
	require.NotNil(t, sess.ActiveEmployee())
	records, err := sess.Records()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSession_SubmitRequiresReview(t *testing.T) {
	sess := newSession()
	sess.SelectEmployee(testEmployee())

	_, _, err := sess.Submit(context.Background(), func(ctx context.Context, e *domain.Employee, recs []domain.ShiftRecord) error {
		t.Fatal("提出処理が呼ばれてはいけない")
		return nil
	})
	assert.ErrorIs(t, err, ErrNotReviewPending)
}

func TestSession_DraftsSurviveEmployeeSwitch(t *testing.T) {
	sess := newSession()
	sato := testEmployee()
	tanaka := &domain.Employee{ID: "tanaka_h", Name: "田中 宏", ContractTime: "09:00-17:00"}

	sess.SelectEmployee(sato)
	_, err := sess.Assign("2025-03-03", domain.ShiftNormal, "", "")
	require.NoError(t, err)

	sess.SelectEmployee(tanaka)
	records, err := sess.Records()
	require.NoError(t, err)
	assert.Empty(t, records)

	// 佐藤のドラフトは切り替えても残っている
	sess.SelectEmployee(sato)
	records, err = sess.Records()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestManager(t *testing.T) {
	manager := NewManager()

	sess := manager.Create()
	require.NotEmpty(t, sess.ID)

	got, ok := manager.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = manager.Get("unknown")
	assert.False(t, ok)

	manager.Delete(sess.ID)
	_, ok = manager.Get(sess.ID)
	assert.False(t, ok)
}
