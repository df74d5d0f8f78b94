package usecase

import (
	"github.com/kiki830621/che-things-mcp/internal/things"
	"github.com/kiki830621/che-things-mcp/internal/things/repository"
	"github.com/kiki830621/che-things-mcp/pkg/log"
	"github.com/kiki830621/che-things-mcp/pkg/thingsurl"
)

type implUseCase struct {
	l    log.Logger
	repo repository.ThingsRepository
	urls *thingsurl.Client
}

var _ things.UseCase = &implUseCase{}

// New builds the Things use case on top of the scripting repository and
// the URL-scheme client.
func New(l log.Logger, repo repository.ThingsRepository, urls *thingsurl.Client) things.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		urls: urls,
	}
}
