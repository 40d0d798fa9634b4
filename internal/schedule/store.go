package schedule

import (
	"sort"

	"github.com/BennersTaga/shift-management-app/internal/domain"
)

type storeKey struct {
	employeeID string
	date       string
}

// Store は (従業員, 日付) をキーとするメモリ上のシフトドラフト
// 同じキーへの登録は上書きになる（1 人 1 日 1 レコード）
// 従業員を切り替えても他の従業員のドラフトはそのまま残る
type Store struct {
	records map[storeKey]domain.ShiftRecord
}

func NewStore() *Store {
	return &Store{
		records: make(map[storeKey]domain.ShiftRecord),
	}
}

func (s *Store) put(rec domain.ShiftRecord) {
	s.records[storeKey{employeeID: rec.EmployeeID, date: rec.Date}] = rec
}

func (s *Store) Get(employeeID string, date string) (domain.ShiftRecord, bool) {
	rec, ok := s.records[storeKey{employeeID: employeeID, date: date}]
	return rec, ok
}

// RecordsOf は指定した従業員のレコードを日付昇順で返す
// 返すのはコピーなので呼び出し側が変更しても Store には影響しない
func (s *Store) RecordsOf(employeeID string) []domain.ShiftRecord {
	records := make([]domain.ShiftRecord, 0)
	for key, rec := range s.records {
		if key.employeeID == employeeID {
			records = append(records, rec)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})

	return records
}

func (s *Store) CountOf(employeeID string) int {
	count := 0
	for key := range s.records {
		if key.employeeID == employeeID {
			count++
		}
	}
	return count
}

// ClearEmployee は指定した従業員のレコードだけを削除する
// 提出が成功した後にのみ呼び出すこと
func (s *Store) ClearEmployee(employeeID string) {
	for key := range s.records {
		if key.employeeID == employeeID {
			delete(s.records, key)
		}
	}
}

func (s *Store) Len() int {
	return len(s.records)
}
