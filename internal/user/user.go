package user

import (
	"fmt"

	"github.com/ferdiebergado/usersvc/internal/platform/validation"
)

type Module struct {
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func NewModule(validator validation.Validator) (*Module, error) {
	store, err := NewStore(validator)
	if err != nil {
		return nil, fmt.Errorf("new user store: %w", err)
	}
	return &Module{
		handler: NewHandler(store),
	}, nil
}
