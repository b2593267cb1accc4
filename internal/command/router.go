package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/importer"
	"github.com/alexanderramin/praxis/internal/service"
	"github.com/google/uuid"
)

// Handler runs one command against decoded parameters. The returned value is
// encoded as the command result.
type Handler func(ctx context.Context, params json.RawMessage) (any, error)

// Services are the use cases the router dispatches to.
type Services struct {
	Employees   service.EmployeeService
	Therapies   service.TherapyService
	Performance service.PerformanceService
	Stats       service.StatsService
	Export      service.ExportService
	Import      service.ImportService
}

// Error is what callers see when a command fails: the command name and a
// human-readable message, nothing else.
type Error struct {
	Command string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Router dispatches commands by name.
type Router struct {
	handlers map[string]Handler
	logger   *slog.Logger
}

// NewRouter registers every backend command. A nil logger discards
// invocation logs.
func NewRouter(svc Services, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Router{handlers: map[string]Handler{}, logger: logger}

	r.Handle(contract.CmdGetEmployees, func(ctx context.Context, _ json.RawMessage) (any, error) {
		return svc.Employees.List(ctx)
	})
	r.Handle(contract.CmdGetEmployee, bind(contract.CmdGetEmployee, func(ctx context.Context, p contract.IDParams) (any, error) {
		return svc.Employees.GetByID(ctx, p.ID)
	}))
	r.Handle(contract.CmdAddEmployee, bind(contract.CmdAddEmployee, func(ctx context.Context, p contract.AddEmployeeParams) (any, error) {
		return nil, svc.Employees.Create(ctx, p.Employee())
	}))
	r.Handle(contract.CmdUpdateEmployee, bind(contract.CmdUpdateEmployee, func(ctx context.Context, p contract.UpdateEmployeeParams) (any, error) {
		if err := p.Check(); err != nil {
			return nil, err
		}
		return nil, svc.Employees.Update(ctx, p.Employee())
	}))
	r.Handle(contract.CmdDeleteEmployee, bind(contract.CmdDeleteEmployee, func(ctx context.Context, p contract.EmployeeRefParams) (any, error) {
		return nil, svc.Employees.Delete(ctx, p.EmployeeID)
	}))
	r.Handle(contract.CmdGetEmployeeName, bind(contract.CmdGetEmployeeName, func(ctx context.Context, p contract.IDParams) (any, error) {
		e, err := svc.Employees.GetByID(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		return e.Name, nil
	}))
	r.Handle(contract.CmdGetEmployeeAvgHours, bind(contract.CmdGetEmployeeAvgHours, func(ctx context.Context, p contract.IDParams) (any, error) {
		e, err := svc.Employees.GetByID(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		return strconv.FormatFloat(e.AvgHours, 'f', -1, 64), nil
	}))

	r.Handle(contract.CmdGetAllTherapies, func(ctx context.Context, _ json.RawMessage) (any, error) {
		return svc.Therapies.List(ctx)
	})
	r.Handle(contract.CmdAddTherapy, bind(contract.CmdAddTherapy, func(ctx context.Context, p contract.TherapyParams) (any, error) {
		return nil, svc.Therapies.Create(ctx, p.Therapy())
	}))
	r.Handle(contract.CmdUpdateTherapy, bind(contract.CmdUpdateTherapy, func(ctx context.Context, p contract.UpdateTherapyParams) (any, error) {
		return nil, svc.Therapies.Update(ctx, p.Therapy())
	}))

	r.Handle(contract.CmdGetAllPerformance, bind(contract.CmdGetAllPerformance, func(ctx context.Context, p contract.EmployeeRefParams) (any, error) {
		return svc.Performance.ListByEmployee(ctx, p.EmployeeID)
	}))
	r.Handle(contract.CmdGetPerformance, bind(contract.CmdGetPerformance, func(ctx context.Context, p contract.EmployeeDateParams) (any, error) {
		return svc.Performance.ListByEmployeeDate(ctx, p.EmployeeID, p.Date)
	}))
	r.Handle(contract.CmdAddPerformance, bind(contract.CmdAddPerformance, func(ctx context.Context, p contract.PerformanceParams) (any, error) {
		return nil, svc.Performance.Create(ctx, p.Record())
	}))
	r.Handle(contract.CmdUpdatePerformance, bind(contract.CmdUpdatePerformance, func(ctx context.Context, p contract.UpdatePerformanceParams) (any, error) {
		return nil, svc.Performance.Update(ctx, p.Record())
	}))
	r.Handle(contract.CmdGetMonthlyStats, bind(contract.CmdGetMonthlyStats, func(ctx context.Context, p contract.StatsRequest) (any, error) {
		return svc.Stats.Monthly(ctx, p)
	}))
	if svc.Export != nil {
		r.Handle(contract.CmdExportMonthlyStats, bind(contract.CmdExportMonthlyStats, func(ctx context.Context, p contract.ExportRequest) (any, error) {
			return svc.Export.MonthlyStats(ctx, p)
		}))
	}
	if svc.Import != nil {
		r.Handle(contract.CmdImportData, bind(contract.CmdImportData, func(ctx context.Context, p importer.ImportSchema) (any, error) {
			return svc.Import.Import(ctx, &p)
		}))
	}

	return r
}

// Handle registers h under name, replacing any previous handler.
func (r *Router) Handle(name string, h Handler) {
	r.handlers[name] = h
}

// Names returns the registered command names, sorted.
func (r *Router) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for n := range r.handlers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the named command. Parameters are a JSON object (empty or
// null for commands without any); the result is JSON. Any failure is
// returned as *Error.
func (r *Router) Invoke(ctx context.Context, name string, params json.RawMessage) (json.RawMessage, error) {
	requestID := uuid.NewString()
	ctx = WithRequestID(ctx, requestID)
	start := time.Now()
	log := r.logger.With("request_id", requestID, "command", name)

	out, err := r.invoke(ctx, name, params)
	if err != nil {
		log.ErrorContext(ctx, "command_failed",
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err.Error())
		return nil, &Error{Command: name, Message: err.Error()}
	}
	log.InfoContext(ctx, "command_completed",
		"duration_ms", time.Since(start).Milliseconds(),
		"result_bytes", len(out))
	return out, nil
}

func (r *Router) invoke(ctx context.Context, name string, params json.RawMessage) (json.RawMessage, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", name)
	}
	result, err := h(ctx, params)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encoding result of %s: %w", name, err)
	}
	return out, nil
}

// bind decodes the parameter object into T before calling fn.
func bind[T any](name string, fn func(ctx context.Context, params T) (any, error)) Handler {
	return func(ctx context.Context, raw json.RawMessage) (any, error) {
		var p T
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
			if err := json.Unmarshal(trimmed, &p); err != nil {
				return nil, fmt.Errorf("invalid parameters for %s: %v", name, err)
			}
		}
		return fn(ctx, p)
	}
}

type ctxKey struct{}

// WithRequestID tags ctx with the id of the command invocation it serves.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the invocation id carried by ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
