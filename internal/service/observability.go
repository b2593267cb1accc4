package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/repository"
)

// UseCaseEvent describes one finished service call.
type UseCaseEvent struct {
	Name      string
	StartedAt time.Time
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
}

// UseCaseObserver receives an event after every mutating service call.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// UseCaseObservers fans an event out to each observer in order.
type UseCaseObservers []UseCaseObserver

func (obs UseCaseObservers) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, o := range obs {
		o.ObserveUseCase(ctx, event)
	}
}

// combineObservers drops nil entries and avoids the fan-out for zero or
// one observer.
func combineObservers(observers []UseCaseObserver) UseCaseObserver {
	var live UseCaseObservers
	for _, o := range observers {
		if o != nil {
			live = append(live, o)
		}
	}
	switch len(live) {
	case 0:
		return NoopUseCaseObserver{}
	case 1:
		return live[0]
	}
	return live
}

type slogUseCaseObserver struct {
	logger *slog.Logger
}

// NewSlogUseCaseObserver logs each event as a "use_case" record. Calls
// rejected for bad input, a missing row or a conflict log at warn; other
// failures at error.
func NewSlogUseCaseObserver(logger *slog.Logger) UseCaseObserver {
	if logger == nil {
		return NoopUseCaseObserver{}
	}
	return &slogUseCaseObserver{logger: logger}
}

func (o *slogUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []slog.Attr{
		slog.String("name", event.Name),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
		slog.Bool("success", event.Success),
	}
	if len(event.Fields) > 0 {
		fields := make([]any, 0, len(event.Fields)*2)
		for k, v := range event.Fields {
			fields = append(fields, k, v)
		}
		attrs = append(attrs, slog.Group("fields", fields...))
	}

	level := slog.LevelInfo
	if event.Err != nil {
		attrs = append(attrs, slog.String("error", event.Err.Error()))
		level = slog.LevelError
		if rejected(event.Err) {
			level = slog.LevelWarn
		}
	}
	o.logger.LogAttrs(ctx, level, "use_case", attrs...)
}

func rejected(err error) bool {
	return errors.Is(err, domain.ErrInvalid) ||
		errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, repository.ErrConflict)
}

// useCase times a single mutating call:
//
//	uc := startUseCase(s.observer, "delete-employee", fields)
//	defer func() { uc.finish(ctx, err) }()
//
// Fields added to uc.fields before finish are reported with the event.
type useCase struct {
	observer  UseCaseObserver
	name      string
	fields    map[string]any
	startedAt time.Time
}

func startUseCase(observer UseCaseObserver, name string, fields map[string]any) *useCase {
	if fields == nil {
		fields = make(map[string]any)
	}
	return &useCase{observer: observer, name: name, fields: fields, startedAt: time.Now().UTC()}
}

func (u *useCase) finish(ctx context.Context, err error) {
	u.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      u.name,
		StartedAt: u.startedAt,
		Duration:  time.Since(u.startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    u.fields,
	})
}
