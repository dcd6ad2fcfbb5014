package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const reviewColumns = `review_id, employee_id, reviewer_id, review_period_start, review_period_end,
	goals_achieved, communication, technical_skills, teamwork, leadership, punctuality,
	overall_rating, comments, status, created_at, updated_at`

// InsertBatch persists the whole cycle inside one transaction so a failure on
// any row leaves no trace of the batch.
func (s *Store) InsertBatch(ctx context.Context, records []Review) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin review batch: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, record := range records {
		_, err := tx.Exec(ctx, `
			INSERT INTO performance_reviews
				(employee_id, reviewer_id, review_period_start, review_period_end,
				 goals_achieved, communication, technical_skills, teamwork, leadership, punctuality,
				 overall_rating, comments, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			record.EmployeeID, record.ReviewerID, record.PeriodStart, record.PeriodEnd,
			record.GoalsAchieved, record.Communication, record.Technical, record.Teamwork,
			record.Leadership, record.Punctuality, record.OverallRating, record.Comments,
			record.Status, record.CreatedAt, record.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert review for employee %d: %w", record.EmployeeID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit review batch: %w", err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, record Review) error {
	tag, err := s.DB.Exec(ctx, `
		UPDATE performance_reviews
		SET reviewer_id = $2, review_period_start = $3, review_period_end = $4,
			goals_achieved = $5, communication = $6, technical_skills = $7,
			teamwork = $8, leadership = $9, punctuality = $10,
			overall_rating = $11, comments = $12, status = $13, updated_at = $14
		WHERE review_id = $1`,
		record.ID, record.ReviewerID, record.PeriodStart, record.PeriodEnd,
		record.GoalsAchieved, record.Communication, record.Technical, record.Teamwork,
		record.Leadership, record.Punctuality, record.OverallRating, record.Comments,
		record.Status, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ByID(ctx context.Context, id int64) (*Review, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT `+reviewColumns+` FROM performance_reviews WHERE review_id = $1`, id)
	return scanReview(row)
}

func (s *Store) ByEmployee(ctx context.Context, employeeID int64) ([]Review, error) {
	rows, err := s.DB.Query(ctx,
		`SELECT `+reviewColumns+` FROM performance_reviews WHERE employee_id = $1 ORDER BY created_at DESC, review_id DESC`,
		employeeID)
	if err != nil {
		return nil, fmt.Errorf("list reviews for employee: %w", err)
	}
	defer rows.Close()
	return collectReviews(rows)
}

func (s *Store) LatestByEmployee(ctx context.Context, employeeID int64) (*Review, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT `+reviewColumns+` FROM performance_reviews WHERE employee_id = $1 ORDER BY created_at DESC, review_id DESC LIMIT 1`,
		employeeID)
	return scanReview(row)
}

func (s *Store) ListAll(ctx context.Context) ([]Review, error) {
	rows, err := s.DB.Query(ctx,
		`SELECT ` + reviewColumns + ` FROM performance_reviews ORDER BY created_at DESC, review_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	return collectReviews(rows)
}

func scanReview(row pgx.Row) (*Review, error) {
	var record Review
	err := row.Scan(&record.ID, &record.EmployeeID, &record.ReviewerID,
		&record.PeriodStart, &record.PeriodEnd,
		&record.GoalsAchieved, &record.Communication, &record.Technical,
		&record.Teamwork, &record.Leadership, &record.Punctuality,
		&record.OverallRating, &record.Comments, &record.Status,
		&record.CreatedAt, &record.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan review: %w", err)
	}
	return &record, nil
}

func collectReviews(rows pgx.Rows) ([]Review, error) {
	var out []Review
	for rows.Next() {
		var record Review
		if err := rows.Scan(&record.ID, &record.EmployeeID, &record.ReviewerID,
			&record.PeriodStart, &record.PeriodEnd,
			&record.GoalsAchieved, &record.Communication, &record.Technical,
			&record.Teamwork, &record.Leadership, &record.Punctuality,
			&record.OverallRating, &record.Comments, &record.Status,
			&record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return out, nil
}
