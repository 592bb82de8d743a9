package httpapi

import (
	"sync"

	"github.com/investifykids/investify-backend/internal/domain"
	"github.com/investifykids/investify-backend/internal/usecase/education"
	"github.com/investifykids/investify-backend/internal/usecase/ledger"
	"github.com/investifykids/investify-backend/internal/usecase/quest"
	"github.com/investifykids/investify-backend/internal/usecase/registration"
)

// Server is the JSON-over-HTTP presentation adapter. It owns the single
// in-memory session and serializes access to it with one mutex: the
// usecase layer is single-threaded by contract, so concurrency is dealt
// with here at the edge, not inside the core.
type Server struct {
	LedgerService       *ledger.LedgerService
	RegistrationService *registration.RegistrationService
	EducationService    *education.EducationService
	QuestTracker        *quest.Tracker

	mu      sync.Mutex
	session *domain.Session
}

// NewServer creates a new HTTP server instance around the given session.
func NewServer(
	session *domain.Session,
	ledgerService *ledger.LedgerService,
	registrationService *registration.RegistrationService,
	educationService *education.EducationService,
	questTracker *quest.Tracker,
) *Server {
	return &Server{
		LedgerService:       ledgerService,
		RegistrationService: registrationService,
		EducationService:    educationService,
		QuestTracker:        questTracker,
		session:             session,
	}
}
