package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/praxis/internal/db"
	"github.com/alexanderramin/praxis/internal/domain"
)

// SQLiteTherapyRepo implements TherapyRepo using a SQLite database.
type SQLiteTherapyRepo struct {
	db db.DBTX
}

func NewSQLiteTherapyRepo(conn db.DBTX) *SQLiteTherapyRepo {
	return &SQLiteTherapyRepo{db: conn}
}

// Older databases allowed NULL prices.
const therapyColumns = `id, therapy_name, COALESCE(cost, 0), COALESCE(income, 0)`

func (r *SQLiteTherapyRepo) Create(ctx context.Context, t *domain.Therapy) error {
	query := `INSERT INTO therapy (therapy_name, cost, income) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, t.Name, t.Cost, t.Income)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("therapy %q: %w", t.Name, ErrConflict)
		}
		return fmt.Errorf("inserting therapy: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading therapy id: %w", err)
	}
	t.ID = id
	return nil
}

func (r *SQLiteTherapyRepo) GetByID(ctx context.Context, id int64) (*domain.Therapy, error) {
	query := `SELECT ` + therapyColumns + ` FROM therapy WHERE id = ?`
	var t domain.Therapy
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Cost, &t.Income)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("therapy %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning therapy: %w", err)
	}
	return &t, nil
}

func (r *SQLiteTherapyRepo) List(ctx context.Context) ([]*domain.Therapy, error) {
	query := `SELECT ` + therapyColumns + ` FROM therapy ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing therapies: %w", err)
	}
	defer rows.Close()

	therapies := []*domain.Therapy{}
	for rows.Next() {
		var t domain.Therapy
		if err := rows.Scan(&t.ID, &t.Name, &t.Cost, &t.Income); err != nil {
			return nil, fmt.Errorf("scanning therapy row: %w", err)
		}
		therapies = append(therapies, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating therapies: %w", err)
	}
	return therapies, nil
}

func (r *SQLiteTherapyRepo) Update(ctx context.Context, t *domain.Therapy) error {
	query := `UPDATE therapy SET therapy_name = ?, cost = ?, income = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, t.Name, t.Cost, t.Income, t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("therapy %q: %w", t.Name, ErrConflict)
		}
		return fmt.Errorf("updating therapy: %w", err)
	}
	return checkAffected(res, fmt.Sprintf("therapy %d", t.ID))
}
