package state

import (
	"context"

	"fitcoach/client/internal/api"
	"fitcoach/client/internal/domain"
	"fitcoach/client/internal/session"
)

// ProfileBackend is the slice of the API client the profile screen uses.
type ProfileBackend interface {
	UpdateCurrentUser(ctx context.Context, req api.UpdateProfileRequest) (*domain.User, error)
	CreateHealthDeclaration(ctx context.Context, req api.CreateHealthDeclarationRequest) (*domain.HealthDeclaration, error)
}

// Profile applies the trainee's own profile mutations, replacing the session
// Identity with the backend's echoed profile.
type Profile struct {
	backend ProfileBackend
	session *session.Manager
	notify  Notifier
	gate    Gate
}

// NewProfile creates a profile controller bound to the session and notifier.
func NewProfile(backend ProfileBackend, sess *session.Manager, notify Notifier) *Profile {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Profile{backend: backend, session: sess, notify: notify}
}

// Update submits new measurements and reloads the Identity wholesale with the
// backend's updated profile.
func (p *Profile) Update(ctx context.Context, req api.UpdateProfileRequest) error {
	if !p.gate.TryStart() {
		return nil
	}
	defer p.gate.Done()

	Run(
		func() (*domain.User, error) { return p.backend.UpdateCurrentUser(ctx, req) },
		func(user *domain.User) {
			p.session.Reload(user)
			p.notify.Success("Measurements updated successfully")
		},
		p.notify.Error,
	)
	return nil
}

// SubmitHealthDeclaration sends the screening questionnaire and links the
// created declaration id into the Identity snapshot.
func (p *Profile) SubmitHealthDeclaration(ctx context.Context, req api.CreateHealthDeclarationRequest) error {
	if !p.gate.TryStart() {
		return nil
	}
	defer p.gate.Done()

	Run(
		func() (*domain.HealthDeclaration, error) { return p.backend.CreateHealthDeclaration(ctx, req) },
		func(decl *domain.HealthDeclaration) {
			if identity := p.session.Identity(); identity != nil {
				next := *identity
				id := decl.ID
				next.HealthDeclarationID = &id
				p.session.Reload(&next)
			}
			p.notify.Success("Health declaration submitted")
		},
		p.notify.Error,
	)
	return nil
}
