package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/praxis/internal/db"
	"github.com/alexanderramin/praxis/internal/domain"
)

// SQLitePerformanceRepo implements PerformanceRepo using a SQLite database.
type SQLitePerformanceRepo struct {
	db db.DBTX
}

func NewSQLitePerformanceRepo(conn db.DBTX) *SQLitePerformanceRepo {
	return &SQLitePerformanceRepo{db: conn}
}

// modalityColumns lists the counter columns in domain.Modalities order.
var modalityColumns = func() []string {
	cols := make([]string, len(domain.Modalities))
	for i, m := range domain.Modalities {
		cols[i] = m.Column()
	}
	return cols
}()

// performanceSelect reads a record, mapping the NULLs early schemas allowed to zero values.
var performanceSelect = func() string {
	cols := []string{
		"id", "employee_id", "date",
		"COALESCE(hours_worked, 0)", "COALESCE(status, '')", "COALESCE(income, 0)",
	}
	for _, c := range modalityColumns {
		cols = append(cols, "COALESCE("+c+", 0)")
	}
	return "SELECT " + strings.Join(cols, ", ") + " FROM performance"
}()

func (r *SQLitePerformanceRepo) Create(ctx context.Context, p *domain.PerformanceRecord) error {
	query := `INSERT INTO performance (employee_id, date, hours_worked, status, income, ` +
		strings.Join(modalityColumns, ", ") + `) VALUES (` + placeholders(5+len(modalityColumns)) + `)`
	args := append([]any{p.EmployeeID, p.Date, p.HoursWorked, string(p.Status), p.Income},
		intValuesToAny(p.Values())...)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("performance for employee %d on %s: %w", p.EmployeeID, p.Date, ErrConflict)
		}
		return fmt.Errorf("inserting performance: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading performance id: %w", err)
	}
	p.ID = id
	return nil
}

func (r *SQLitePerformanceRepo) GetByID(ctx context.Context, id int64) (*domain.PerformanceRecord, error) {
	p, err := scanPerformance(r.db.QueryRowContext(ctx, performanceSelect+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("performance %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning performance: %w", err)
	}
	return p, nil
}

func (r *SQLitePerformanceRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]*domain.PerformanceRecord, error) {
	return r.list(ctx, performanceSelect+` WHERE employee_id = ? ORDER BY date, id`, employeeID)
}

func (r *SQLitePerformanceRepo) ListByEmployeeDate(ctx context.Context, employeeID int64, date string) ([]*domain.PerformanceRecord, error) {
	return r.list(ctx, performanceSelect+` WHERE employee_id = ? AND date = ? ORDER BY id`, employeeID, date)
}

func (r *SQLitePerformanceRepo) list(ctx context.Context, query string, args ...any) ([]*domain.PerformanceRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing performance: %w", err)
	}
	defer rows.Close()

	records := []*domain.PerformanceRecord{}
	for rows.Next() {
		p, err := scanPerformance(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning performance row: %w", err)
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating performance: %w", err)
	}
	return records, nil
}

func (r *SQLitePerformanceRepo) Update(ctx context.Context, p *domain.PerformanceRecord) error {
	sets := []string{"employee_id = ?", "date = ?", "hours_worked = ?", "status = ?", "income = ?"}
	for _, c := range modalityColumns {
		sets = append(sets, c+" = ?")
	}
	query := `UPDATE performance SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	args := append([]any{p.EmployeeID, p.Date, p.HoursWorked, string(p.Status), p.Income},
		intValuesToAny(p.Values())...)
	args = append(args, p.ID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("performance for employee %d on %s: %w", p.EmployeeID, p.Date, ErrConflict)
		}
		return fmt.Errorf("updating performance: %w", err)
	}
	return checkAffected(res, fmt.Sprintf("performance %d", p.ID))
}

func (r *SQLitePerformanceRepo) DeleteByEmployee(ctx context.Context, employeeID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM performance WHERE employee_id = ?`, employeeID)
	if err != nil {
		return 0, fmt.Errorf("deleting performance: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading deleted performance rows: %w", err)
	}
	return n, nil
}

func (r *SQLitePerformanceRepo) MonthlyTotals(ctx context.Context, employeeID int64, rng MonthRange) ([]*domain.MonthlyStats, error) {
	cols := []string{
		"substr(date, 1, 7) AS month",
		"COALESCE(SUM(hours_worked), 0)",
		"COUNT(CASE WHEN status = 'Present' THEN 1 END)",
	}
	for _, c := range modalityColumns {
		cols = append(cols, "COALESCE(SUM("+c+"), 0)")
	}
	query := `SELECT ` + strings.Join(cols, ", ") + ` FROM performance WHERE employee_id = ?`
	args := []any{employeeID}
	if rng.bounded() {
		query += ` AND substr(date, 1, 7) BETWEEN ? AND ?`
		args = append(args, rng.Start, rng.End)
	}
	query += ` GROUP BY month ORDER BY month`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregating performance: %w", err)
	}
	defer rows.Close()

	stats := []*domain.MonthlyStats{}
	for rows.Next() {
		var s domain.MonthlyStats
		dest := append([]any{&s.Month, &s.TotalHours, &s.WorkDays}, intPtrsToAny(s.ModalityTotals.Ptrs())...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning monthly totals: %w", err)
		}
		stats = append(stats, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monthly totals: %w", err)
	}
	return stats, nil
}

func scanPerformance(s scanner) (*domain.PerformanceRecord, error) {
	var p domain.PerformanceRecord
	var status string
	dest := append([]any{&p.ID, &p.EmployeeID, &p.Date, &p.HoursWorked, &status, &p.Income},
		intPtrsToAny(p.ModalityCounts.Ptrs())...)
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	p.Status = domain.Status(status)
	return &p, nil
}
