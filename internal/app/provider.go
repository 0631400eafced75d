package app

import (
	"github.com/ferdiebergado/usersvc/internal/platform/router"
	"github.com/ferdiebergado/usersvc/internal/platform/validation"
)

type Provider struct {
	Validator validation.Validator
	Router    router.Router
}

func NewProvider() *Provider {
	return &Provider{
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
	}
}
