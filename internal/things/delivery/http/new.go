package http

import (
	"github.com/kiki830621/che-things-mcp/internal/things"
	"github.com/kiki830621/che-things-mcp/pkg/log"
)

type handler struct {
	l  log.Logger
	uc things.UseCase
}

// New creates the HTTP handler for the Things tool catalog.
func New(l log.Logger, uc things.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
