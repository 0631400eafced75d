package user

import (
	"errors"
	"slices"
	"strconv"
	"sync"

	"github.com/ferdiebergado/usersvc/internal/platform/validation"
)

const msgRequired = "Name and email are required"

var _ Service = (*Store)(nil)

// ValidationError is returned by Create when the params are incomplete.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var errNilValidator = errors.New("user store: validator is nil")

type CreateParams struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// UpdateParams carries the fields to merge into an existing user.
// A nil field is left untouched; a non-nil field overwrites, even when empty.
type UpdateParams struct {
	Name  *string
	Email *string
}

// Store is the in-memory owner of the user collection.
type Store struct {
	mu        sync.RWMutex
	users     []User
	lastID    uint64
	validator validation.Validator
}

func (s *Store) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

func (s *Store) Find(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return User{}, false
	}
	return s.users[i], true
}

func (s *Store) Create(params CreateParams) (User, error) {
	if errs := s.validator.ValidateStruct(params); len(errs) > 0 {
		return User{}, &ValidationError{Message: msgRequired, Fields: errs}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	u := User{
		ID:    strconv.FormatUint(s.lastID, 10),
		Name:  params.Name,
		Email: params.Email,
	}
	s.users = append(s.users, u)
	return u, nil
}

func (s *Store) Update(id string, params UpdateParams) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return User{}, false
	}

	u := &s.users[i]
	if params.Name != nil {
		u.Name = *params.Name
	}
	if params.Email != nil {
		u.Email = *params.Email
	}
	return *u, true
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.users)
	s.users = slices.DeleteFunc(s.users, func(u User) bool {
		return u.ID == id
	})
	return len(s.users) < before
}

// indexOf must be called with s.mu held.
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.users, func(u User) bool {
		return u.ID == id
	})
}

func NewStore(validator validation.Validator) (*Store, error) {
	if validator == nil {
		return nil, errNilValidator
	}
	return &Store{
		users:     make([]User, 0),
		validator: validator,
	}, nil
}
