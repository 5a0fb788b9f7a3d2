// Package store provides PostgreSQL access to developer profiles and open
// postings, for ranking runs driven from the CareerK database instead of an
// HTTP payload.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Abdelrhman-tamer/CareerK-AI/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// GetDeveloperProfile fetches a developer profile by ID.
func (s *Store) GetDeveloperProfile(ctx context.Context, id uuid.UUID) (types.DeveloperProfile, error) {
	var dev types.DeveloperProfile
	err := s.pool.QueryRow(ctx,
		`SELECT id, COALESCE(brief_bio, ''), COALESCE(skills, '{}'),
		        COALESCE(years_of_experience, 0), COALESCE(previous_job, ''),
		        COALESCE(track_level, ''), COALESCE(cv_text, '')
		 FROM developers WHERE id = $1`,
		id,
	).Scan(&dev.ID, &dev.BriefBio, &dev.Skills, &dev.YearsOfExperience,
		&dev.PreviousJob, &dev.TrackLevel, &dev.CVText)
	if err != nil {
		return types.DeveloperProfile{}, fmt.Errorf("failed to fetch developer %s: %w", id, err)
	}
	return dev, nil
}

// ListOpenJobPostings fetches all job postings still accepting applicants.
func (s *Store) ListOpenJobPostings(ctx context.Context) ([]types.JobPosting, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, COALESCE(job_description, ''), COALESCE(skills, '{}')
		 FROM job_posts WHERE status = 'open' ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var posts []types.JobPosting
	for rows.Next() {
		var p types.JobPosting
		if err := rows.Scan(&p.ID, &p.Title, &p.JobDescription, &p.Skills); err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job postings: %w", err)
	}
	return posts, nil
}

// ListOpenServicePostings fetches all service postings still open.
func (s *Store) ListOpenServicePostings(ctx context.Context) ([]types.ServicePosting, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, COALESCE(description, ''), COALESCE(required_skills, '{}')
		 FROM service_posts WHERE status = 'open' ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list service postings: %w", err)
	}
	defer rows.Close()

	var posts []types.ServicePosting
	for rows.Next() {
		var p types.ServicePosting
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.RequiredSkills); err != nil {
			return nil, fmt.Errorf("failed to scan service posting: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read service postings: %w", err)
	}
	return posts, nil
}
