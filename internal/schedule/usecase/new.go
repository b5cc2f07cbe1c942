package usecase

import (
	"pharmacy-ops/internal/holiday"
	"pharmacy-ops/internal/recurrence"
	"pharmacy-ops/internal/schedule/repository"
	"pharmacy-ops/pkg/civil"
	pkgLog "pharmacy-ops/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	engine   *recurrence.Engine
	repo     repository.Repository
	holidays *holiday.Resolver
	region   string
	clock    civil.Clock
}

// New creates a new schedule UseCase instance.
func New(
	l pkgLog.Logger,
	engine *recurrence.Engine,
	repo repository.Repository,
	holidays *holiday.Resolver,
	region string,
	clock civil.Clock,
) *implUseCase {
	return &implUseCase{
		l:        l,
		engine:   engine,
		repo:     repo,
		holidays: holidays,
		region:   region,
		clock:    clock,
	}
}
