package session

import (
	"context"
	"errors"
	"sync"

	"github.com/BennersTaga/shift-management-app/internal/domain"
	"github.com/BennersTaga/shift-management-app/internal/schedule"
	"github.com/google/uuid"
)

// State は提出ワークフローの状態
// editing →（確認へ）→ review_pending →（提出成功）→ submitted
// review_pending からはキャンセルで editing に戻れる
type State string

const (
	StateEditing       State = "editing"
	StateReviewPending State = "review_pending"
	StateSubmitted     State = "submitted"
)

var (
	ErrEmptySubmission  = errors.New("シフトを入力してください")
	ErrNoActiveEmployee = errors.New("従業員が選択されていません")
	ErrNotEditing       = errors.New("確認中はシフトを編集できません")
	ErrNotReviewPending = errors.New("確認画面に進んでいません")
)

// SubmitFunc は外部の提出先を呼び出す。成功した場合のみ nil を返すこと
type SubmitFunc func(ctx context.Context, employee *domain.Employee, records []domain.ShiftRecord) error

// Session は 1 つのブラウジングコンテキストのセッション
// ドラフトの Store とワークフロー状態を明示的に保持する
// Store には複数の従業員のドラフトが共存できるが、ワークフロー状態は
// 選択中の従業員のものだけを表す
type Session struct {
	ID string

	mu       sync.Mutex
	store    *schedule.Store
	employee *domain.Employee
	state    State
}

func newSession() *Session {
	return &Session{
		ID:    uuid.NewString(),
		store: schedule.NewStore(),
		state: StateEditing,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) ActiveEmployee() *domain.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.employee
}

// SelectEmployee は従業員を選択して入力画面に入る
// 既存のドラフトは従業員を切り替えても消えない
func (s *Session) SelectEmployee(employee *domain.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employee = employee
	s.state = StateEditing
}

// DeselectEmployee は従業員選択画面に戻る
func (s *Session) DeselectEmployee() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employee = nil
	s.state = StateEditing
}

// Assign は選択中の従業員のシフトを登録する（編集中のみ）
func (s *Session) Assign(date string, typ domain.ShiftType, start string, end string) (domain.ShiftRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.employee == nil {
		return domain.ShiftRecord{}, ErrNoActiveEmployee
	}
	if s.state != StateEditing {
		return domain.ShiftRecord{}, ErrNotEditing
	}

	if err := schedule.AssignShift(s.store, s.employee, date, typ, start, end); err != nil {
		return domain.ShiftRecord{}, err
	}

	rec, _ := s.store.Get(s.employee.ID, date)
	return rec, nil
}

// Records は選択中の従業員のドラフトを日付昇順で返す
func (s *Session) Records() ([]domain.ShiftRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.employee == nil {
		return nil, ErrNoActiveEmployee
	}
	return s.store.RecordsOf(s.employee.ID), nil
}

func (s *Session) TotalHours() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.employee == nil {
		return 0, ErrNoActiveEmployee
	}
	return schedule.TotalHours(s.store, s.employee), nil
}

// BeginReview は editing → review_pending の遷移
// ドラフトが 1 件もない場合は ErrEmptySubmission で状態は変わらない
func (s *Session) BeginReview() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.employee == nil {
		return ErrNoActiveEmployee
	}
	if s.state != StateEditing {
		return ErrNotEditing
	}
	if s.store.CountOf(s.employee.ID) == 0 {
		return ErrEmptySubmission
	}

	s.state = StateReviewPending
	return nil
}

// CancelReview は review_pending → editing の遷移（無条件）
func (s *Session) CancelReview() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReviewPending {
		return ErrNotReviewPending
	}

	s.state = StateEditing
	return nil
}

// Submit は review_pending から提出を実行する
// submit が成功した場合のみ submitted に遷移し、対象従業員のドラフトを
// 削除して従業員選択に戻る。失敗した場合は review_pending のまま残り、
// ドラフトも消えない（部分的な反映は起こさない）
// 提出中はロックを保持するため、同じセッションからの再提出は前の提出が
// 完了するまでブロックされる
func (s *Session) Submit(ctx context.Context, submit SubmitFunc) ([]domain.ShiftRecord, *domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.employee == nil {
		return nil, nil, ErrNoActiveEmployee
	}
	if s.state != StateReviewPending {
		return nil, nil, ErrNotReviewPending
	}

	employee := s.employee
	records := s.store.RecordsOf(employee.ID)

	if err := submit(ctx, employee, records); err != nil {
		return nil, nil, err
	}

	s.state = StateSubmitted
	s.store.ClearEmployee(employee.ID)
	s.employee = nil

	return records, employee, nil
}

// Manager はセッション ID から Session への対応を保持する
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) Create() *Session {
	sess := newSession()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess

	return sess
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
