package volunteer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingName       = errors.New("applicant name is required")
	ErrMissingEmail      = errors.New("applicant email is required")
	ErrMissingMotivation = errors.New("motivation is required")
)

// Application is a one-shot submission against a volunteer listing. There is
// no update or delete path; follow-up happens off-platform.
type Application struct {
	id            uuid.UUID
	opportunityID uuid.UUID
	userID        uuid.UUID
	name          string
	email         string
	skills        string
	motivation    string
	availability  string
	createdAt     time.Time
}

func NewApplication(opportunityID, userID uuid.UUID, name, email, skills, motivation, availability string, now time.Time) (*Application, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	motivation = strings.TrimSpace(motivation)

	if name == "" {
		return nil, ErrMissingName
	}
	if email == "" {
		return nil, ErrMissingEmail
	}
	if motivation == "" {
		return nil, ErrMissingMotivation
	}

	return &Application{
		id:            uuid.New(),
		opportunityID: opportunityID,
		userID:        userID,
		name:          name,
		email:         email,
		skills:        strings.TrimSpace(skills),
		motivation:    motivation,
		availability:  strings.TrimSpace(availability),
		createdAt:     now,
	}, nil
}

func (a *Application) ID() uuid.UUID            { return a.id }
func (a *Application) OpportunityID() uuid.UUID { return a.opportunityID }
func (a *Application) UserID() uuid.UUID        { return a.userID }
func (a *Application) Name() string             { return a.name }
func (a *Application) Email() string            { return a.email }
func (a *Application) Skills() string           { return a.skills }
func (a *Application) Motivation() string       { return a.motivation }
func (a *Application) Availability() string     { return a.availability }
func (a *Application) CreatedAt() time.Time     { return a.createdAt }
