package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/ports"
)

const (
	RouteAdmin    = "/admin"
	RouteAccount  = "/cuenta"
	RouteLogin    = "/login"
	RouteRegister = "/register"
)

// Session is the authenticated state of one browser session.
type Session struct {
	ID    string       `json:"-"`
	Token string       `json:"-"`
	User  *domain.User `json:"user"`
	Roles domain.Roles `json:"roles"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Roles.Has(domain.RoleAdmin)
}

type AuthEventKind string

const (
	EventLoggedIn  AuthEventKind = "logged_in"
	EventLoggedOut AuthEventKind = "logged_out"
	EventExpired   AuthEventKind = "expired"
)

type AuthEvent struct {
	Kind      AuthEventKind
	SessionID string
	User      *domain.User
}

type AuthService struct {
	api    ports.AuthAPI
	tokens ports.TokenStore

	mu     sync.RWMutex
	subs   map[int]func(AuthEvent)
	nextID int
}

func NewAuthService(api ports.AuthAPI, tokens ports.TokenStore) *AuthService {
	return &AuthService{
		api:    api,
		tokens: tokens,
		subs:   make(map[int]func(AuthEvent)),
	}
}

// Subscribe registers fn for login and logout events. The returned func removes it.
func (s *AuthService) Subscribe(fn func(AuthEvent)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *AuthService) publish(ev AuthEvent) {
	s.mu.RLock()
	fns := make([]func(AuthEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func (s *AuthService) Login(ctx context.Context, sessionID string, creds domain.Credentials) (*Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := validateStruct(creds); err != nil {
		return nil, err
	}

	res, err := s.api.Login(ctx, creds)
	if err != nil {
		return nil, authRejection(err)
	}

	return s.establish(ctx, sessionID, res)
}

func (s *AuthService) Register(ctx context.Context, sessionID string, reg domain.Registration) (*Session, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Name = strings.TrimSpace(reg.Name)
	if err := validateStruct(reg); err != nil {
		return nil, err
	}

	res, err := s.api.Register(ctx, reg)
	if err != nil {
		return nil, authRejection(err)
	}

	return s.establish(ctx, sessionID, res)
}

func (s *AuthService) establish(ctx context.Context, sessionID string, res *domain.AuthResult) (*Session, error) {
	if res == nil || res.Token == "" {
		return nil, &RejectedError{Message: "No se recibió un token de sesión."}
	}

	if err := s.tokens.Set(ctx, sessionID, res.Token); err != nil {
		return nil, fmt.Errorf("store session token: %w", err)
	}

	roles := res.Roles
	if len(roles) == 0 && res.User != nil {
		roles = res.User.Roles
	}

	sess := &Session{ID: sessionID, Token: res.Token, User: res.User, Roles: roles}
	s.publish(AuthEvent{Kind: EventLoggedIn, SessionID: sessionID, User: res.User})

	return sess, nil
}

// Logout clears the local token even when the remote call fails.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	token, err := s.tokens.Get(ctx, sessionID)
	if err != nil {
		log.Printf("Logout: reading token for session %s: %v", sessionID, err)
	}

	if token != "" {
		if err := s.api.Logout(ctx, token); err != nil {
			log.Printf("Logout: remote logout failed for session %s: %v", sessionID, err)
		}
	}

	if err := s.tokens.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}

	s.publish(AuthEvent{Kind: EventLoggedOut, SessionID: sessionID})
	return nil
}

// Token resolves the bearer token for a call. An explicit token on the
// context wins over the stored one.
func (s *AuthService) Token(ctx context.Context, sessionID string) (string, error) {
	if token := ExplicitToken(ctx); token != "" {
		return token, nil
	}

	if sessionID == "" {
		return "", nil
	}

	token, err := s.tokens.Get(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("read session token: %w", err)
	}

	return token, nil
}

// Current re-validates the token against /api/me. An auth-class failure
// expires the session.
func (s *AuthService) Current(ctx context.Context, sessionID string) (*Session, error) {
	token, err := s.Token(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if token == "" {
		return nil, ErrUnauthenticated
	}

	user, err := s.api.Me(ctx, token)
	if err != nil {
		var apiErr *ports.APIError
		if errors.As(err, &apiErr) && apiErr.IsAuth() {
			s.expire(ctx, sessionID)
			return nil, ErrUnauthenticated
		}

		return nil, fmt.Errorf("fetch current user: %w", err)
	}

	if user == nil || user.ID == 0 {
		s.expire(ctx, sessionID)
		return nil, ErrUnauthenticated
	}

	return &Session{ID: sessionID, Token: token, User: user, Roles: user.Roles}, nil
}

// Expire drops the stored token after the API refused it.
func (s *AuthService) Expire(ctx context.Context, sessionID string) error {
	if err := s.tokens.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}

	s.publish(AuthEvent{Kind: EventExpired, SessionID: sessionID})
	return nil
}

func (s *AuthService) expire(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}

	if err := s.Expire(ctx, sessionID); err != nil {
		log.Printf("Failed to expire session %s: %v", sessionID, err)
	}
}

// RequireAdmin resolves the session and checks the admin role.
func (s *AuthService) RequireAdmin(ctx context.Context, sessionID string) (*Session, error) {
	sess, ok := SessionFromContext(ctx)
	if !ok || sess.ID != sessionID {
		var err error
		if sess, err = s.Current(ctx, sessionID); err != nil {
			return nil, err
		}
	}

	if !sess.IsAdmin() {
		return nil, ErrForbidden
	}

	return sess, nil
}

// LandingRoute is where a user goes after authenticating without an explicit target.
func LandingRoute(roles domain.Roles) string {
	if roles.Has(domain.RoleAdmin) {
		return RouteAdmin
	}

	return RouteAccount
}

// SafeRedirect accepts only local absolute paths.
func SafeRedirect(target string) (string, bool) {
	target = strings.TrimSpace(target)
	if target == "" || !strings.HasPrefix(target, "/") {
		return "", false
	}

	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "", false
	}

	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}

	return target, true
}

// PostAuthTarget picks the destination after login or registration.
func PostAuthTarget(redirect string, roles domain.Roles) string {
	if target, ok := SafeRedirect(redirect); ok {
		return target
	}

	return LandingRoute(roles)
}

// LoginURL builds /login?redirect=<target>.
func LoginURL(target string) string {
	return withRedirect(RouteLogin, target)
}

func RegisterURL(target string) string {
	return withRedirect(RouteRegister, target)
}

func withRedirect(base, target string) string {
	if target, ok := SafeRedirect(target); ok {
		return base + "?redirect=" + url.QueryEscape(target)
	}

	return base
}

func authRejection(err error) error {
	var apiErr *ports.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		return &RejectedError{Message: apiErr.Message}
	}

	return err
}

type explicitTokenKey struct{}

// WithExplicitToken attaches a caller-supplied bearer token to ctx.
func WithExplicitToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, explicitTokenKey{}, token)
}

func ExplicitToken(ctx context.Context) string {
	token, _ := ctx.Value(explicitTokenKey{}).(string)
	return token
}

func (s *AuthService) requireToken(ctx context.Context, sessionID string) (string, error) {
	token, err := s.Token(ctx, sessionID)
	if err != nil {
		return "", err
	}

	if token == "" {
		return "", ErrUnauthenticated
	}

	return token, nil
}

// classify maps an upstream failure: auth-class errors expire the session,
// business errors become rejections.
func (s *AuthService) classify(ctx context.Context, sessionID string, err error) error {
	var apiErr *ports.APIError
	if errors.As(err, &apiErr) && apiErr.IsAuth() {
		s.expire(ctx, sessionID)
		return ErrUnauthenticated
	}

	return rejection(err)
}

type sessionKey struct{}

// WithSession stores a session already resolved by a route guard so services
// do not fetch /api/me a second time within the same request.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(*Session)
	return sess, ok && sess != nil
}
