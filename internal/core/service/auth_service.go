package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bankapp/investment-club/internal/core/domain"
	"github.com/bankapp/investment-club/internal/core/ports"
)

// AuthService implements registration, login and the single-session lifecycle.
type AuthService struct {
	store      ports.CollectionStore
	admin      domain.AdminCredentials
	sessionTTL time.Duration
	log        zerolog.Logger
	env

	// mu serializes read-modify-write sequences on users and sessions within
	// this process. Writers in other processes are not excluded.
	mu sync.Mutex
}

var (
	_ ports.AuthService     = (*AuthService)(nil)
	_ ports.ClientDirectory = (*AuthService)(nil)
)

func NewAuthService(store ports.CollectionStore, admin domain.AdminCredentials, sessionTTL time.Duration, log zerolog.Logger, opts ...Option) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = domain.SessionTTL
	}
	return &AuthService{
		store:      store,
		admin:      admin,
		sessionTTL: sessionTTL,
		log:        log,
		env:        newEnv(opts),
	}
}

// Register stores a new client. The email must not match any stored user
// exactly; on conflict nothing is written.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.store.Users().Read(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == in.Email {
			s.log.Info().Str("email", in.Email).Msg("registration rejected: duplicate email")
			return nil, domain.ErrDuplicateEmail
		}
	}

	user := domain.User{
		ID:                 s.newID(),
		Email:              in.Email,
		Password:           in.Password,
		FullName:           in.FullName,
		Phone:              in.Phone,
		IntendedInvestment: in.IntendedInvestment,
		Role:               domain.RoleClient,
		CreatedAt:          s.now(),
	}
	if err := s.store.Users().Write(ctx, append(users, user)); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user registered")
	return &user, nil
}

// Login checks the administrator pair first, then the stored users. A
// successful login replaces whatever session was stored before.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Principal, *domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var principal domain.Principal
	if s.admin.Matches(email, password) {
		principal = domain.Admin{Email: s.admin.Email, IssuedAt: s.now()}
	} else {
		users, err := s.store.Users().Read(ctx)
		if err != nil {
			return nil, nil, err
		}
		for _, u := range users {
			if u.Email == email && u.Password == password {
				principal = domain.Client{User: u}
				break
			}
		}
	}
	if principal == nil {
		s.log.Info().Str("email", email).Msg("login failed")
		return nil, nil, domain.ErrInvalidCredentials
	}

	session := domain.Session{
		UserID:    principal.ID(),
		Role:      principal.Role(),
		ExpiresAt: s.now().Add(s.sessionTTL),
	}
	if err := s.store.Sessions().Write(ctx, []domain.Session{session}); err != nil {
		return nil, nil, err
	}

	s.log.Info().Str("user_id", session.UserID).Str("role", string(session.Role)).Msg("session issued")
	return principal, &session, nil
}

// Logout drops the stored session, if any.
func (s *AuthService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Sessions().Clear(ctx); err != nil {
		return err
	}
	s.log.Info().Msg("session cleared")
	return nil
}

// CurrentSession returns the stored session, or nil when there is none or it
// has expired. An expired session is deleted as a side effect.
func (s *AuthService) CurrentSession(ctx context.Context) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentSession(ctx)
}

func (s *AuthService) currentSession(ctx context.Context) (*domain.Session, error) {
	sessions, err := s.store.Sessions().Read(ctx)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}

	session := sessions[0]
	if session.Expired(s.now()) {
		if err := s.store.Sessions().Clear(ctx); err != nil {
			return nil, err
		}
		s.log.Info().Str("user_id", session.UserID).Msg("session expired")
		return nil, nil
	}
	return &session, nil
}

// CurrentUser resolves the principal behind the current session. A session
// whose user has vanished from storage resolves to nil.
func (s *AuthService) CurrentUser(ctx context.Context) (domain.Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.currentSession(ctx)
	if err != nil || session == nil {
		return nil, err
	}
	if session.UserID == domain.AdminID {
		return domain.Admin{Email: s.admin.Email, IssuedAt: s.now()}, nil
	}

	user, err := s.findUser(ctx, session.UserID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, nil
		}
		return nil, err
	}
	return domain.Client{User: *user}, nil
}

// RequireRole is the route guard. An empty role admits any session.
func (s *AuthService) RequireRole(ctx context.Context, role domain.Role) (domain.Access, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.currentSession(ctx)
	if err != nil {
		return domain.Access{}, err
	}
	if session == nil {
		return domain.Access{Redirect: domain.PathLogin}, nil
	}
	if role != "" && session.Role != role {
		return domain.Access{Denied: true, Redirect: domain.HomePath(session.Role)}, nil
	}
	return domain.Access{Allowed: true}, nil
}

// ListClients returns the stored users with the client role, in insertion order.
func (s *AuthService) ListClients(ctx context.Context) ([]domain.User, error) {
	users, err := s.store.Users().Read(ctx)
	if err != nil {
		return nil, err
	}
	clients := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.Role == domain.RoleClient {
			clients = append(clients, u)
		}
	}
	return clients, nil
}

// FindUser looks a stored user up by id.
func (s *AuthService) FindUser(ctx context.Context, id string) (*domain.User, error) {
	return s.findUser(ctx, id)
}

func (s *AuthService) findUser(ctx context.Context, id string) (*domain.User, error) {
	users, err := s.store.Users().Read(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
