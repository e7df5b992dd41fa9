package services

import (
	"errors"

	"github.com/Saaaaaad3/Plattera/entity"
	"github.com/Saaaaaad3/Plattera/utils"
)

// SessionState is the client session lifecycle. LoggingOut is an
// explicit state so logout navigation cannot race the auth check; the
// session stays in it until the navigation completes, instead of a
// mutable global flag consulted from everywhere.
type SessionState int

const (
	SessionAnonymous SessionState = iota
	SessionAuthenticated
	SessionLoggingOut
)

var (
	ErrInvalidSessionToken = errors.New("invalid token or missing role")
	ErrNotAuthenticated    = errors.New("not authenticated")
)

// Session tracks one user's authentication state and normalized role.
type Session struct {
	state  SessionState
	role   entity.Role
	token  string
	secret string
}

func NewSession(secret string) *Session {
	return &Session{secret: secret}
}

func (s *Session) State() SessionState { return s.state }
func (s *Session) Role() entity.Role   { return s.role }
func (s *Session) Token() string       { return s.token }

func (s *Session) IsAuthenticated() bool {
	return s.state == SessionAuthenticated
}

// Login validates the token and enters Authenticated. A token that
// fails validation leaves the session untouched; a valid token with an
// unrecognized role authenticates with no capabilities.
func (s *Session) Login(token string) error {
	claims, err := utils.ParseToken(token, s.secret)
	if err != nil {
		return ErrInvalidSessionToken
	}
	role := entity.NormalizeRole(claims.Role)
	s.state = SessionAuthenticated
	s.role = role
	s.token = token
	return nil
}

// BeginLogout starts the logout transition. Auth checks must treat
// LoggingOut as "do not intercept navigation".
func (s *Session) BeginLogout() error {
	if s.state != SessionAuthenticated {
		return ErrNotAuthenticated
	}
	s.state = SessionLoggingOut
	return nil
}

// CompleteLogout clears credentials once navigation has settled.
func (s *Session) CompleteLogout() {
	s.state = SessionAnonymous
	s.role = entity.RoleNone
	s.token = ""
}
