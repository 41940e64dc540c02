package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/modules/builder/repositories"
)

type StatusService struct {
	repo repositories.StatusRepo
	now  Clock
}

func NewStatusService(repo repositories.StatusRepo, now Clock) *StatusService {
	if now == nil {
		now = SystemClock
	}
	return &StatusService{repo: repo, now: now}
}

func (s *StatusService) Record(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	check := &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  s.now(),
	}
	if err := s.repo.Create(ctx, check); err != nil {
		return nil, translate(err)
	}
	return check, nil
}

func (s *StatusService) List(ctx context.Context) ([]models.StatusCheck, error) {
	checks, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err)
	}
	return checks, nil
}
