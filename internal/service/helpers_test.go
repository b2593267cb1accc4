package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/praxis/internal/repository"
	"github.com/alexanderramin/praxis/internal/testutil"
)

// recordingObserver collects use-case events for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type repos struct {
	db          *sql.DB
	employees   *repository.SQLiteEmployeeRepo
	therapies   *repository.SQLiteTherapyRepo
	performance *repository.SQLitePerformanceRepo
}

func newRepos(t *testing.T) repos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repos{
		db:          database,
		employees:   repository.NewSQLiteEmployeeRepo(database),
		therapies:   repository.NewSQLiteTherapyRepo(database),
		performance: repository.NewSQLitePerformanceRepo(database),
	}
}
