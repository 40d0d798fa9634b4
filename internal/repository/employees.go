package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/BennersTaga/shift-management-app/internal/domain"
)

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	query := `
		SELECT id, name, contract_time, department, version
		FROM employees
		ORDER BY name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee := &domain.Employee{}
		department := sql.NullString{}

		if err := rows.Scan(&employee.ID, &employee.Name, &employee.ContractTime, &department, &employee.Version); err != nil {
			return nil, err
		}
		if department.Valid {
			employee.Department = department.String
		}

		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) GetEmployeeByID(id string) (*domain.Employee, error) {
	query := `
		SELECT name, contract_time, department, version
		FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		ID: id,
	}
	department := sql.NullString{}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&employee.Name, &employee.ContractTime, &department, &employee.Version); err != nil {
		return nil, err
	}
	if department.Valid {
		employee.Department = department.String
	}

	return employee, nil
}

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	query := `
		INSERT INTO employees (id, name, contract_time, department)
		VALUES ($1, $2, $3, $4)
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	department := sql.NullString{String: employee.Department, Valid: employee.Department != ""}

	if err := r.dbpool.QueryRowContext(ctx, query, employee.ID, employee.Name, employee.ContractTime, department).Scan(&employee.Version); err != nil {
		return err
	}

	return nil
}
