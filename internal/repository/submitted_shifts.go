package repository

import (
	"context"
	"time"

	"github.com/BennersTaga/shift-management-app/internal/domain"
)

// ReplaceEmployeeShifts は従業員の提出済みシフトを置き換える
// 同じ従業員の過去の提出を削除してから挿入する（提出のやり直しに対応）
// トランザクション内で行うため、部分的な置き換えは起こらない
func (r *Repository) ReplaceEmployeeShifts(employeeID string, shifts []*domain.SubmittedShift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM submitted_shifts WHERE employee_id = $1`
	if _, err := tx.ExecContext(ctx, query, employeeID); err != nil {
		return err
	}

	for _, shift := range shifts {
		query := `
			INSERT INTO submitted_shifts (employee_id, employee_name, date, type, start_time, end_time)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, version
		`
		args := []any{shift.EmployeeID, shift.EmployeeName, shift.Date, shift.Type, shift.StartTime, shift.EndTime}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&shift.ID, &shift.CreatedAt, &shift.Version); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllSubmittedShifts() ([]*domain.SubmittedShift, error) {
	query := `
		SELECT id, employee_id, employee_name, date, type, start_time, end_time, created_at, version
		FROM submitted_shifts
		ORDER BY date, employee_name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.SubmittedShift, 0)
	for rows.Next() {
		shift := &domain.SubmittedShift{}
		dst := []any{&shift.ID, &shift.EmployeeID, &shift.EmployeeName, &shift.Date, &shift.Type, &shift.StartTime, &shift.EndTime, &shift.CreatedAt, &shift.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}
