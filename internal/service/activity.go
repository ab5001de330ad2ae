package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/stpnv0/Activities/internal/domain"
	"github.com/stpnv0/Activities/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ActivityService struct {
	repo   ports.ActivityRepo
	logger logger.Logger
}

func NewActivityService(repo ports.ActivityRepo, logger logger.Logger) *ActivityService {
	return &ActivityService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ActivityService) List(ctx context.Context) (domain.Catalog, error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("list activities: %w", err)
	}

	return catalog, nil
}

// Signup returns the confirmation shown to the student.
func (s *ActivityService) Signup(ctx context.Context, activity, email string) (string, error) {
	if err := validateRequest(activity, email); err != nil {
		return "", err
	}

	if err := s.repo.AddParticipant(ctx, activity, email); err != nil {
		return "", fmt.Errorf("add participant: %w", err)
	}

	s.logger.Info("student signed up",
		logger.String("activity", activity),
		logger.String("email", email),
	)

	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

func (s *ActivityService) Unregister(ctx context.Context, activity, email string) (string, error) {
	if err := validateRequest(activity, email); err != nil {
		return "", err
	}

	if err := s.repo.RemoveParticipant(ctx, activity, email); err != nil {
		return "", fmt.Errorf("remove participant: %w", err)
	}

	s.logger.Info("student unregistered",
		logger.String("activity", activity),
		logger.String("email", email),
	)

	return fmt.Sprintf("Unregistered %s from %s", email, activity), nil
}

func validateRequest(activity, email string) error {
	if strings.TrimSpace(activity) == "" {
		return fmt.Errorf("%w: activity is required", domain.ErrValidation)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	return nil
}
