package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/iliyamo/icinema-catalog/internal/model"
	"github.com/iliyamo/icinema-catalog/internal/session"
)

// loginUserID is the fixed identifier every mock login receives.
const loginUserID = "1"

// Login fabricates a session user from the email alone.  The password is
// accepted and ignored: this is a mock and never fails.  An email containing
// "admin" (case-sensitive) yields the admin role.
func (s *Store) Login(ctx context.Context, email, password string) model.User {
	s.pause()

	u := model.User{ID: loginUserID, Email: email, Name: "Regular User", Role: model.RoleUser}
	if strings.Contains(email, "admin") {
		u.Name = "Admin User"
		u.Role = model.RoleAdmin
	}
	s.setUser(ctx, u)
	s.notify(ctx, "Welcome back!", "Logged in as "+u.Name)
	return u
}

// Signup creates a regular user with a fresh identifier and the supplied
// display name.  Like Login it never fails and ignores the password.
func (s *Store) Signup(ctx context.Context, email, password, name string) model.User {
	s.pause()

	u := model.User{ID: s.newID(), Email: email, Name: name, Role: model.RoleUser}
	s.setUser(ctx, u)
	s.notify(ctx, "Welcome to iCinema!", "Account created successfully for "+name)
	return u
}

// Logout returns the slot to anonymous and removes the persisted copy.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.sessions.Delete(ctx, s.sessionKey); err != nil {
		s.log.Warn("session delete failed", zap.String("key", s.sessionKey), zap.Error(err))
	}
	s.notify(ctx, "Goodbye!", "You have been logged out successfully.")
}

// CurrentUser returns the session user; false means anonymous.
func (s *Store) CurrentUser() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// Restore loads the persisted user once at startup.  A missing, unreadable
// or corrupt value leaves the slot anonymous.
func (s *Store) Restore(ctx context.Context) {
	bs, err := s.sessions.Get(ctx, s.sessionKey)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			s.log.Warn("session read failed", zap.String("key", s.sessionKey), zap.Error(err))
		}
		return
	}
	u, err := decodeUser(bs)
	if err != nil {
		s.log.Warn("ignoring corrupt session value", zap.String("key", s.sessionKey), zap.Error(err))
		return
	}
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	s.log.Info("session restored", zap.String("email", u.Email), zap.String("role", string(u.Role)))
}

func (s *Store) setUser(ctx context.Context, u model.User) {
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()

	bs, err := json.Marshal(u)
	if err == nil {
		err = s.sessions.Set(ctx, s.sessionKey, bs)
	}
	if err != nil {
		s.log.Warn("session write failed", zap.String("key", s.sessionKey), zap.Error(err))
	}
}

func (s *Store) pause() {
	if s.latency > 0 {
		s.sleep(s.latency)
	}
}

var errInvalidUser = errors.New("session value is not a user")

func decodeUser(bs []byte) (model.User, error) {
	var u model.User
	if err := json.Unmarshal(bs, &u); err != nil {
		return model.User{}, err
	}
	if u.ID == "" || !u.Role.Valid() {
		return model.User{}, errInvalidUser
	}
	return u, nil
}
