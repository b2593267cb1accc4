package editor

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alexanderramin/praxis/internal/app"
	"github.com/alexanderramin/praxis/internal/command"
	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/testutil"
	"github.com/stretchr/testify/require"
)

// recordingInvoker notes every command name before forwarding it.
type recordingInvoker struct {
	next  command.Invoker
	calls []string
}

func (r *recordingInvoker) Invoke(ctx context.Context, name string, params json.RawMessage) (json.RawMessage, error) {
	r.calls = append(r.calls, name)
	return r.next.Invoke(ctx, name, params)
}

func (r *recordingInvoker) reset() { r.calls = nil }

// failingInvoker fails the named commands and forwards the rest.
type failingInvoker struct {
	next command.Invoker
	fail map[string]error
}

func (f *failingInvoker) Invoke(ctx context.Context, name string, params json.RawMessage) (json.RawMessage, error) {
	if err, ok := f.fail[name]; ok {
		return nil, err
	}
	return f.next.Invoke(ctx, name, params)
}

// blockingInvoker holds the named command until release is closed.
// entered receives once the call is waiting.
type blockingInvoker struct {
	next    command.Invoker
	name    string
	entered chan struct{}
	release chan struct{}
}

func newBlockingInvoker(next command.Invoker, name string) *blockingInvoker {
	return &blockingInvoker{next: next, name: name, entered: make(chan struct{}, 1), release: make(chan struct{})}
}

func (b *blockingInvoker) Invoke(ctx context.Context, name string, params json.RawMessage) (json.RawMessage, error) {
	if name == b.name {
		b.entered <- struct{}{}
		<-b.release
	}
	return b.next.Invoke(ctx, name, params)
}

// readsDuring runs call in the background and, while the backend holds it,
// checks that read returns within a second.
func readsDuring(t *testing.T, b *blockingInvoker, call func() error, read func()) {
	t.Helper()
	errc := make(chan error, 1)
	go func() { errc <- call() }()

	select {
	case <-b.entered:
	case <-time.After(time.Second):
		t.Fatal("backend call never started")
	}

	done := make(chan struct{})
	go func() {
		read()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		close(b.release)
		t.Fatal("state read blocked while the backend call was in flight")
	}

	close(b.release)
	require.NoError(t, <-errc)
}

type harness struct {
	router *command.Router
	rec    *recordingInvoker
	client *command.Client
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	b := app.New(testutil.NewTestDB(t), app.Options{ExportDir: t.TempDir()})
	rec := &recordingInvoker{next: b.Router}
	return &harness{router: b.Router, rec: rec, client: command.NewClient(rec)}
}

// failing returns a client over the same backend whose listed commands fail.
func (h *harness) failing(fail map[string]error) *command.Client {
	return command.NewClient(&failingInvoker{next: h.router, fail: fail})
}

func (h *harness) addEmployee(t *testing.T, name string) int64 {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, h.client.AddEmployee(ctx, contract.AddEmployeeParams{
		Name: name, JoinDate: "2024-01-15", MonthlyRate: 3000,
	}))
	emps, err := h.client.Employees(ctx)
	require.NoError(t, err)
	for _, e := range emps {
		if e.Name == name {
			h.rec.reset()
			return e.ID
		}
	}
	t.Fatalf("employee %q not found after add", name)
	return 0
}

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}
