package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/leadflow/crm/internal/apperrors"
	"github.com/leadflow/crm/internal/model"
)

const leadColumns = "id, first_name, company_name, email, source, note, status, activities, created_at, updated_at"

type postgresLeadRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresLeadRepository(p *pgxpool.Pool) LeadRepository {
	return &postgresLeadRepository{pool: p}
}

func (repo *postgresLeadRepository) FindByID(ctx context.Context, id string) (*model.Lead, error) {
	q := fmt.Sprintf("SELECT %s FROM leads WHERE id = $1", leadColumns)

	l, err := scanLead(repo.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

func (repo *postgresLeadRepository) FindAll(ctx context.Context) ([]*model.Lead, error) {
	leads := make([]*model.Lead, 0)
	q := fmt.Sprintf("SELECT %s FROM leads", leadColumns)

	rows, err := repo.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return leads, nil
}

func (repo *postgresLeadRepository) Create(ctx context.Context, l *model.Lead) (*model.Lead, error) {
	if !l.Status.Valid() {
		return nil, apperrors.NewInvalidInputErr("status", "status must be one of New, Contacted or Qualified")
	}

	now := time.Now().UTC()
	l.ID = uuid.NewString()
	l.CreatedAt = now
	l.UpdatedAt = now
	if l.Activities == nil {
		l.Activities = make([]model.Activity, 0)
	}

	activities, err := json.Marshal(l.Activities)
	if err != nil {
		return nil, err
	}

	q := `INSERT INTO leads(id, first_name, company_name, email, source, note, status, activities, created_at, updated_at)
		  VALUES($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9, $10)`
	if _, err := repo.pool.Exec(ctx, q, l.ID, l.FirstName, l.CompanyName, l.Email, l.Source, l.Note, string(l.Status), string(activities), l.CreatedAt, l.UpdatedAt); err != nil {
		return nil, err
	}
	return l, nil
}

func (repo *postgresLeadRepository) UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Lead, error) {
	if !status.Valid() {
		return nil, apperrors.NewInvalidInputErr("status", "status must be one of New, Contacted or Qualified")
	}

	q := fmt.Sprintf("UPDATE leads SET status = $1, updated_at = $2 WHERE id = $3 RETURNING %s", leadColumns)

	l, err := scanLead(repo.pool.QueryRow(ctx, q, string(status), time.Now().UTC(), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

func (repo *postgresLeadRepository) PushActivity(ctx context.Context, id string, a model.Activity) (*model.Lead, error) {
	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.Timestamp = now

	entry, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}

	// jsonb concatenation appends in a single statement, same guarantee as the mongo $push
	q := fmt.Sprintf("UPDATE leads SET activities = activities || $1::jsonb, updated_at = $2 WHERE id = $3 RETURNING %s", leadColumns)

	l, err := scanLead(repo.pool.QueryRow(ctx, q, string(entry), now, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

func scanLead(row pgx.Row) (*model.Lead, error) {
	var l model.Lead
	var status string
	var activities []byte

	if err := row.Scan(&l.ID, &l.FirstName, &l.CompanyName, &l.Email, &l.Source, &l.Note, &status, &activities, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}

	l.Status = model.Status(status)
	if err := json.Unmarshal(activities, &l.Activities); err != nil {
		return nil, err
	}
	if l.Activities == nil {
		l.Activities = make([]model.Activity, 0)
	}
	return &l, nil
}
