package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/praxis/internal/db"
	"github.com/alexanderramin/praxis/internal/domain"
)

// SQLiteEmployeeRepo implements EmployeeRepo using a SQLite database.
type SQLiteEmployeeRepo struct {
	db db.DBTX
}

func NewSQLiteEmployeeRepo(conn db.DBTX) *SQLiteEmployeeRepo {
	return &SQLiteEmployeeRepo{db: conn}
}

const employeeColumns = `id, name, join_date, monthly_rate, avg_hours`

func (r *SQLiteEmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employees (name, join_date, monthly_rate, avg_hours) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, e.Name, e.JoinDate, e.MonthlyRate, e.AvgHours)
	if err != nil {
		return fmt.Errorf("inserting employee: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading employee id: %w", err)
	}
	e.ID = id
	return nil
}

func (r *SQLiteEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ?`
	e, err := scanEmployee(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("employee %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning employee: %w", err)
	}
	return e, nil
}

func (r *SQLiteEmployeeRepo) List(ctx context.Context) ([]*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	employees := []*domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning employee row: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employees: %w", err)
	}
	return employees, nil
}

func (r *SQLiteEmployeeRepo) Update(ctx context.Context, e *domain.Employee) error {
	query := `UPDATE employees SET name = ?, join_date = ?, monthly_rate = ?, avg_hours = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, e.Name, e.JoinDate, e.MonthlyRate, e.AvgHours, e.ID)
	if err != nil {
		return fmt.Errorf("updating employee: %w", err)
	}
	return checkAffected(res, fmt.Sprintf("employee %d", e.ID))
}

func (r *SQLiteEmployeeRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}
	return checkAffected(res, fmt.Sprintf("employee %d", id))
}

func scanEmployee(s scanner) (*domain.Employee, error) {
	var e domain.Employee
	if err := s.Scan(&e.ID, &e.Name, &e.JoinDate, &e.MonthlyRate, &e.AvgHours); err != nil {
		return nil, err
	}
	return &e, nil
}
