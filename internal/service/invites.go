package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"lentora/internal/models"
	"lentora/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultInviteMessage = "Join me for a focused work session!"
	inviteStatusSent     = "sent"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// InviteService records invitations to a shared session. Nothing is
// actually delivered.
type InviteService struct {
	repo repository.InviteRepo
	now  func() time.Time
}

func NewInviteService(repo repository.InviteRepo) *InviteService {
	return &InviteService{repo: repo, now: time.Now}
}

func (s *InviteService) Send(ctx context.Context, email, message string) (models.Invite, error) {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return models.Invite{}, ErrInvalidEmail
	}
	message = strings.TrimSpace(message)
	if message == "" {
		message = defaultInviteMessage
	}

	inv := models.Invite{
		ID:           uuid.NewString(),
		Email:        email,
		Message:      message,
		SessionToken: uuid.NewString(),
		Status:       inviteStatusSent,
		SentAt:       s.now().UTC(),
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return models.Invite{}, err
	}
	return inv, nil
}

func (s *InviteService) List(ctx context.Context) ([]models.Invite, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Invite{}
	}
	return out, nil
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}
