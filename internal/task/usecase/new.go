package usecase

import (
	"sync"
	"time"

	"task-list-manager/internal/model"
	"task-list-manager/internal/task/repository"
	"task-list-manager/pkg/datemath"
	pkgLog "task-list-manager/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	dates *datemath.Parser
	now   func() time.Time

	mu    sync.Mutex
	tasks []model.Task
	ids   *idGenerator
}

// New creates a new task UseCase. A nil clock means time.Now.
// Call Load before serving to read the stored collection.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dates *datemath.Parser,
	clock func() time.Time,
) *implUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &implUseCase{
		l:     l,
		repo:  repo,
		dates: dates,
		now:   clock,
		tasks: []model.Task{},
		ids:   newIDGenerator(clock),
	}
}
