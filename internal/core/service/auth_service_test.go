package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bankapp/investment-club/internal/core/domain"
	"github.com/bankapp/investment-club/internal/core/ports"
)

var testStart = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestAuth(store *stubStore, clock *fakeClock) *AuthService {
	return NewAuthService(store, domain.DefaultAdminCredentials(), 0, zerolog.Nop(),
		WithClock(clock.Now), WithIDGenerator(sequentialIDs()))
}

func registerAlice(t *testing.T, svc *AuthService) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:              "a@x.com",
		Password:           "secret1",
		FullName:           "Alice",
		Phone:              "(11) 99999-0000",
		IntendedInvestment: 5000,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	return user
}

func TestAuthService_Register_Success(t *testing.T) {
	store := newStubStore()
	svc := newTestAuth(store, &fakeClock{t: testStart})

	user := registerAlice(t, svc)

	if user.ID != "id-1" {
		t.Fatalf("expected generated id, got %q", user.ID)
	}
	if user.Role != domain.RoleClient {
		t.Fatalf("expected client role, got %s", user.Role)
	}
	if !user.CreatedAt.Equal(testStart) {
		t.Fatalf("expected createdAt %s, got %s", testStart, user.CreatedAt)
	}
	if len(store.users.records) != 1 || store.users.records[0] != *user {
		t.Fatalf("expected user persisted, got %+v", store.users.records)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	store := newStubStore()
	svc := newTestAuth(store, &fakeClock{t: testStart})
	registerAlice(t, svc)
	writes := store.users.writes

	_, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "other"})
	if err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(store.users.records) != 1 || store.users.writes != writes {
		t.Fatalf("duplicate registration must not write")
	}
}

func TestAuthService_Register_EmailIsCaseSensitive(t *testing.T) {
	store := newStubStore()
	svc := newTestAuth(store, &fakeClock{t: testStart})
	registerAlice(t, svc)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "A@x.com", Password: "p"}); err != nil {
		t.Fatalf("expected differently cased email to register, got %v", err)
	}
	if len(store.users.records) != 2 {
		t.Fatalf("expected 2 users, got %d", len(store.users.records))
	}
}

func TestAuthService_Login_Admin(t *testing.T) {
	store := newStubStore()
	// A stored user with the admin email must not shadow the built-in admin.
	store.users.records = []domain.User{{ID: "u-9", Email: domain.DefaultAdminEmail, Password: "x", Role: domain.RoleClient}}
	svc := newTestAuth(store, &fakeClock{t: testStart})

	principal, session, err := svc.Login(context.Background(), domain.DefaultAdminEmail, domain.DefaultAdminPassword)
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	if _, ok := principal.(domain.Admin); !ok {
		t.Fatalf("expected Admin principal, got %T", principal)
	}
	if principal.Role() != domain.RoleAdmin || session.Role != domain.RoleAdmin || session.UserID != domain.AdminID {
		t.Fatalf("unexpected admin session: %+v", session)
	}
	if principal.Profile().Password != "" {
		t.Fatalf("admin profile must not expose the password")
	}
	if len(store.sessions.records) != 1 {
		t.Fatalf("expected singleton session list, got %d", len(store.sessions.records))
	}
}

func TestAuthService_Login_Client(t *testing.T) {
	store := newStubStore()
	svc := newTestAuth(store, &fakeClock{t: testStart})
	alice := registerAlice(t, svc)

	principal, session, err := svc.Login(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	client, ok := principal.(domain.Client)
	if !ok || client.User.ID != alice.ID {
		t.Fatalf("unexpected principal: %#v", principal)
	}
	if session.UserID != alice.ID || session.Role != domain.RoleClient {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	store := newStubStore()
	svc := newTestAuth(store, &fakeClock{t: testStart})
	registerAlice(t, svc)

	for _, creds := range [][2]string{
		{"a@x.com", "wrong"},
		{"ghost@x.com", "secret1"},
		{domain.DefaultAdminEmail, "wrong"},
	} {
		if _, _, err := svc.Login(context.Background(), creds[0], creds[1]); err != domain.ErrInvalidCredentials {
			t.Fatalf("%v: expected ErrInvalidCredentials, got %v", creds, err)
		}
	}
	if store.sessions.writes != 0 {
		t.Fatalf("failed logins must not write sessions")
	}
}

func TestAuthService_Login_ReplacesPreviousSession(t *testing.T) {
	store := newStubStore()
	svc := newTestAuth(store, &fakeClock{t: testStart})
	alice := registerAlice(t, svc)

	_, _, _ = svc.Login(context.Background(), domain.DefaultAdminEmail, domain.DefaultAdminPassword)
	_, _, _ = svc.Login(context.Background(), "a@x.com", "secret1")

	if len(store.sessions.records) != 1 || store.sessions.records[0].UserID != alice.ID {
		t.Fatalf("expected only alice's session, got %+v", store.sessions.records)
	}
}

func TestAuthService_CurrentSession_ExpiresIn24h(t *testing.T) {
	store := newStubStore()
	clock := &fakeClock{t: testStart}
	svc := newTestAuth(store, clock)

	if _, _, err := svc.Login(context.Background(), domain.DefaultAdminEmail, domain.DefaultAdminPassword); err != nil {
		t.Fatalf("login: %v", err)
	}

	session, err := svc.CurrentSession(context.Background())
	if err != nil || session == nil {
		t.Fatalf("expected session, got %v (err %v)", session, err)
	}
	if want := testStart.Add(24 * time.Hour); !session.ExpiresAt.Equal(want) {
		t.Fatalf("expected expiry %s, got %s", want, session.ExpiresAt)
	}

	// Exactly at expiry the session is still valid; strictly after, it is gone.
	clock.Advance(24 * time.Hour)
	if s, _ := svc.CurrentSession(context.Background()); s == nil {
		t.Fatalf("session must survive until its expiry instant")
	}
	clock.Advance(time.Millisecond)
	if s, _ := svc.CurrentSession(context.Background()); s != nil {
		t.Fatalf("expected expired session to be dropped")
	}
	if store.sessions.clears != 1 || len(store.sessions.records) != 0 {
		t.Fatalf("expected expired session cleared from store")
	}
}

func TestAuthService_CurrentSession_PastExpiryInStore(t *testing.T) {
	store := newStubStore()
	store.sessions.records = []domain.Session{{UserID: "u-1", Role: domain.RoleClient, ExpiresAt: testStart.Add(-time.Minute)}}
	svc := newTestAuth(store, &fakeClock{t: testStart})

	session, err := svc.CurrentSession(context.Background())
	if err != nil {
		t.Fatalf("CurrentSession: %v", err)
	}
	if session != nil {
		t.Fatalf("expected no session, got %+v", session)
	}
	if store.sessions.clears != 1 {
		t.Fatalf("expected session collection cleared")
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	store := newStubStore()
	svc := newTestAuth(store, &fakeClock{t: testStart})

	for i := 0; i < 2; i++ {
		if err := svc.Logout(context.Background()); err != nil {
			t.Fatalf("Logout: %v", err)
		}
	}

	_, _, _ = svc.Login(context.Background(), domain.DefaultAdminEmail, domain.DefaultAdminPassword)
	_ = svc.Logout(context.Background())
	if s, _ := svc.CurrentSession(context.Background()); s != nil {
		t.Fatalf("expected no session after logout")
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	store := newStubStore()
	svc := newTestAuth(store, &fakeClock{t: testStart})
	alice := registerAlice(t, svc)

	if p, err := svc.CurrentUser(context.Background()); p != nil || err != nil {
		t.Fatalf("expected no user without session, got %v %v", p, err)
	}

	_, _, _ = svc.Login(context.Background(), "a@x.com", "secret1")
	p, err := svc.CurrentUser(context.Background())
	if err != nil || p == nil || p.ID() != alice.ID {
		t.Fatalf("expected alice, got %v (err %v)", p, err)
	}

	_, _, _ = svc.Login(context.Background(), domain.DefaultAdminEmail, domain.DefaultAdminPassword)
	p, _ = svc.CurrentUser(context.Background())
	if _, ok := p.(domain.Admin); !ok {
		t.Fatalf("expected admin principal, got %T", p)
	}
}

func TestAuthService_CurrentUser_StaleSession(t *testing.T) {
	store := newStubStore()
	store.sessions.records = []domain.Session{{UserID: "wiped", Role: domain.RoleClient, ExpiresAt: testStart.Add(time.Hour)}}
	svc := newTestAuth(store, &fakeClock{t: testStart})

	p, err := svc.CurrentUser(context.Background())
	if err != nil || p != nil {
		t.Fatalf("expected nil principal for unknown user, got %v (err %v)", p, err)
	}
}

func TestAuthService_RequireRole(t *testing.T) {
	store := newStubStore()
	svc := newTestAuth(store, &fakeClock{t: testStart})
	registerAlice(t, svc)
	ctx := context.Background()

	access, _ := svc.RequireRole(ctx, domain.RoleAdmin)
	if access.Allowed || access.Redirect != domain.PathLogin || access.Denied {
		t.Fatalf("no session: unexpected access %+v", access)
	}

	_, _, _ = svc.Login(ctx, "a@x.com", "secret1")
	if access, _ = svc.RequireRole(ctx, domain.RoleClient); !access.Allowed {
		t.Fatalf("client on client route should pass: %+v", access)
	}
	if access, _ = svc.RequireRole(ctx, ""); !access.Allowed {
		t.Fatalf("any role should pass: %+v", access)
	}
	access, _ = svc.RequireRole(ctx, domain.RoleAdmin)
	if access.Allowed || !access.Denied || access.Redirect != domain.PathDashboard {
		t.Fatalf("client on admin route: unexpected access %+v", access)
	}

	_, _, _ = svc.Login(ctx, domain.DefaultAdminEmail, domain.DefaultAdminPassword)
	access, _ = svc.RequireRole(ctx, domain.RoleClient)
	if access.Allowed || access.Redirect != domain.PathAdmin {
		t.Fatalf("admin on client route: unexpected access %+v", access)
	}
}

func TestAuthService_ListClientsAndFindUser(t *testing.T) {
	store := newStubStore()
	svc := newTestAuth(store, &fakeClock{t: testStart})
	alice := registerAlice(t, svc)
	store.users.records = append(store.users.records, domain.User{ID: "legacy-admin", Role: domain.RoleAdmin})

	clients, err := svc.ListClients(context.Background())
	if err != nil || len(clients) != 1 || clients[0].ID != alice.ID {
		t.Fatalf("expected only alice, got %+v (err %v)", clients, err)
	}

	if _, err := svc.FindUser(context.Background(), "nope"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_PropagatesStoreErrors(t *testing.T) {
	store := newStubStore()
	boom := errors.New("backend down")
	store.users.readErr = boom
	svc := newTestAuth(store, &fakeClock{t: testStart})

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com"}); !errors.Is(err, boom) {
		t.Fatalf("expected backend error, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@x.com", "p"); !errors.Is(err, boom) {
		t.Fatalf("expected backend error, got %v", err)
	}
}
