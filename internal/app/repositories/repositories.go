package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	ExamRepository         *ExamRepository
	RegistrationRepository *RegistrationRepository
	CutoffRepository       *CutoffRepository
	PredictionRepository   *PredictionRepository
	ReminderRepository     *ReminderRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		TokenRepository:        NewTokenRepository(db),
		ExamRepository:         NewExamRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
		CutoffRepository:       NewCutoffRepository(db),
		PredictionRepository:   NewPredictionRepository(db),
		ReminderRepository:     NewReminderRepository(db),
	}
}
