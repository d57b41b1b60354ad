package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
)

type birthdayRepo struct {
	db dbConn
}

func newBirthdayRepo(db dbConn) contract.BirthdayRepo {
	return &birthdayRepo{db: db}
}

const birthdayColumns = `user_id, username, day, month, year, created_at`

// Set inserts or replaces the user's birthday. created_at keeps the value
// from the first insert.
func (r *birthdayRepo) Set(ctx context.Context, birthday *entity.Birthday) (bool, error) {
	query := `
		INSERT INTO birthdays (user_id, username, day, month, year)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			username = excluded.username,
			day = excluded.day,
			month = excluded.month,
			year = excluded.year
	`

	var year sql.NullInt64
	if birthday.Year != nil {
		year = sql.NullInt64{Int64: int64(*birthday.Year), Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		birthday.UserID,
		birthday.Username,
		birthday.Day,
		birthday.Month,
		year,
	)
	if err != nil {
		return false, domain.StorageError("set birthday", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, domain.StorageError("set birthday rows affected", err)
	}

	return affected > 0, nil
}

func (r *birthdayRepo) GetByUserID(ctx context.Context, userID string) (*entity.Birthday, error) {
	query := `
		SELECT ` + birthdayColumns + `
		FROM birthdays
		WHERE user_id = ?
	`

	birthday, err := scanBirthday(r.db.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, domain.StorageError("get birthday", err)
	}

	return birthday, nil
}

// GetByDate matches the stored month and day literally, so a Feb 29 birthday
// only shows up when Feb 29 is asked for.
func (r *birthdayRepo) GetByDate(ctx context.Context, month, day int) ([]*entity.Birthday, error) {
	query := `
		SELECT ` + birthdayColumns + `
		FROM birthdays
		WHERE month = ? AND day = ?
	`

	birthdays, err := r.queryBirthdays(ctx, query, month, day)
	if err != nil {
		return nil, domain.StorageError("get birthdays by date", err)
	}

	return birthdays, nil
}

// List returns every birthday ordered by month and day; ties keep insertion order.
func (r *birthdayRepo) List(ctx context.Context) ([]*entity.Birthday, error) {
	query := `
		SELECT ` + birthdayColumns + `
		FROM birthdays
		ORDER BY month, day, rowid
	`

	birthdays, err := r.queryBirthdays(ctx, query)
	if err != nil {
		return nil, domain.StorageError("list birthdays", err)
	}

	return birthdays, nil
}

func (r *birthdayRepo) queryBirthdays(ctx context.Context, query string, args ...any) ([]*entity.Birthday, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query birthdays: %w", err)
	}
	defer rows.Close()

	var birthdays []*entity.Birthday
	for rows.Next() {
		birthday, err := scanBirthday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan birthday: %w", err)
		}
		birthdays = append(birthdays, birthday)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate birthdays: %w", err)
	}

	return birthdays, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBirthday(row scanner) (*entity.Birthday, error) {
	birthday := &entity.Birthday{}
	var year sql.NullInt64

	err := row.Scan(
		&birthday.UserID,
		&birthday.Username,
		&birthday.Day,
		&birthday.Month,
		&year,
		&birthday.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if year.Valid {
		y := int(year.Int64)
		birthday.Year = &y
	}

	return birthday, nil
}
