package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/lafaom-mao/portal/internal/clients/lafaom"
	"github.com/lafaom-mao/portal/internal/entities"
	"github.com/pkg/errors"
)

var ErrNotAuthenticated = errors.New("not authenticated")

const (
	sessionFile = "session.json"
	tokenFile   = "token"
	userFile    = "user.json"
)

// Store persists the session under three artifacts in the state directory:
// the raw login payload, the bare token and the user profile. The split
// mirrors how the rest of the client consumes them: the token alone for
// request auth, the profile alone for display.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// IsAuthenticated is true only when both the token and the user profile are
// present; a half-written session counts as signed out.
func (s *Store) IsAuthenticated() bool {
	if _, ok := s.Token(); !ok {
		return false
	}
	_, ok := s.User()
	return ok
}

func (s *Store) Token() (string, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

func (s *Store) User() (*entities.User, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return nil, false
	}

	var user entities.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, false
	}
	return &user, true
}

func (s *Store) Save(payload *lafaom.LoginPayload) error {

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return errors.Wrap(err, "create session directory")
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, sessionFile), raw, 0o600); err != nil {
		return errors.Wrap(err, "persist session")
	}

	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(payload.AccessToken.Token), 0o600); err != nil {
		return errors.Wrap(err, "persist token")
	}

	user, err := json.Marshal(payload.User)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, userFile), user, 0o600); err != nil {
		return errors.Wrap(err, "persist user")
	}

	return nil
}

func (s *Store) Clear() error {
	var errs []error
	for _, name := range []string{sessionFile, tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Errorf("clear session: %v", errs)
	}
	return nil
}

// RequireAuth is the guard protected commands call before doing anything;
// callers must abort on a non-nil return.
func (s *Store) RequireAuth() error {
	if !s.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	return nil
}
