package service

import (
	"context"
	"strings"

	"github.com/leadflow/crm/internal/apperrors"
	"github.com/leadflow/crm/internal/cache"
	"github.com/leadflow/crm/internal/model"
	"github.com/leadflow/crm/internal/repository"
)

// LeadService is the orchestration surface over the lead store, the status
// engine and the activity journal.
type LeadService interface {
	Create(context.Context, *model.Lead) (*model.Lead, error)
	FindAll(context.Context) ([]*model.Lead, error)
	FindByID(context.Context, string) (*model.Lead, error)
	UpdateStatus(context.Context, string, model.Status) (*model.Lead, error)
	AddActivity(ctx context.Context, id string, activityType string, description string) ([]model.Activity, error)
	ListActivities(context.Context, string) ([]model.Activity, error)
}

type leadService struct {
	leadRepo  repository.LeadRepository
	leadCache cache.LeadCache
	policy    model.TransitionPolicy
}

func NewLeadService(leadRepo repository.LeadRepository, leadCache cache.LeadCache, policy model.TransitionPolicy) LeadService {
	if policy == nil {
		policy = model.AnyTransition
	}
	return &leadService{
		leadRepo:  leadRepo,
		leadCache: leadCache,
		policy:    policy,
	}
}

func (s *leadService) Create(ctx context.Context, l *model.Lead) (*model.Lead, error) {
	if l.Status == "" {
		l.Status = model.StatusNew
	}
	if l.Activities == nil {
		l.Activities = make([]model.Activity, 0)
	}

	created, err := s.leadRepo.Create(ctx, l)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *leadService) FindAll(ctx context.Context) ([]*model.Lead, error) {
	leads, err := s.leadRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return leads, nil
}

func (s *leadService) FindByID(ctx context.Context, id string) (*model.Lead, error) {
	l, err := s.leadCache.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if l != nil {
		return l, nil
	}

	l, err = s.leadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if l == nil {
		return nil, apperrors.NewNotFoundErr("lead not found")
	}

	if err := s.leadCache.Cache(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *leadService) UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Lead, error) {
	if strings.TrimSpace(string(status)) == "" {
		return nil, apperrors.NewInvalidInputErr("status", "status is required")
	}

	existing, err := s.leadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundErr("lead not found")
	}

	if err := s.policy(existing.Status, status); err != nil {
		return nil, apperrors.NewInvalidInputErr("status", err.Error())
	}

	if err := s.leadCache.EvictByID(ctx, id); err != nil {
		return nil, err
	}

	updated, err := s.leadRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NewNotFoundErr("lead not found")
	}

	if err := s.leadCache.Refresh(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *leadService) AddActivity(ctx context.Context, id string, activityType string, description string) ([]model.Activity, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewInvalidInputErr("id", "id is required")
	}
	if strings.TrimSpace(activityType) == "" {
		return nil, apperrors.NewInvalidInputErr("type", "type is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.NewInvalidInputErr("description", "description is required")
	}

	if err := s.leadCache.EvictByID(ctx, id); err != nil {
		return nil, err
	}

	updated, err := s.leadRepo.PushActivity(ctx, id, model.Activity{
		Type:        activityType,
		Description: description,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NewNotFoundErr("lead not found")
	}

	if err := s.leadCache.Refresh(ctx, updated); err != nil {
		return nil, err
	}
	return updated.Activities, nil
}

// ListActivities returns the journal in storage order. Any chronological
// re-sorting is a read-side concern of the caller.
func (s *leadService) ListActivities(ctx context.Context, id string) ([]model.Activity, error) {
	l, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return l.Activities, nil
}
