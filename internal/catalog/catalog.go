// Package catalog implements the movie catalog operations on top of the
// graph driver: browsing and search, the movie detail read model, the
// connections graph, trending sets, reviews, view tracking and the admin
// back-office.
package catalog

import (
	"errors"

	"go.uber.org/zap"

	"github.com/cinegraph/cinegraph/internal/driver"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	Driver     driver.GraphDriver
	BcryptCost int
	log        *zap.Logger
}

func NewService(d driver.GraphDriver, bcryptCost int, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{Driver: d, BcryptCost: bcryptCost, log: log}
}
