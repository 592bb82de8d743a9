package registration

import (
	"errors"
	"strings"

	"github.com/investifykids/investify-backend/internal/domain"
)

// RegistrationService handles user registration for a session.
type RegistrationService struct {
	Quests domain.QuestNotifier
}

// NewRegistrationService creates a new RegistrationService instance.
func NewRegistrationService(quests domain.QuestNotifier) *RegistrationService {
	return &RegistrationService{
		Quests: quests,
	}
}

// Register records the user's name and role on the session and completes
// the registration quest. The name must be non-empty after trimming.
// Registering again simply overwrites the profile; the quest flag stays
// completed.
func (s *RegistrationService) Register(session *domain.Session, name, role string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("name cannot be empty")
	}

	session.Name = name
	session.Role = role
	session.Registered = true
	s.Quests.Complete(session, domain.QuestRegistered)

	return nil
}
