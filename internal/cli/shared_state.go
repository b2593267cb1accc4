package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
)

// Screen rows taken by the title with its rule, the hint line with its
// rule, and the command bar.
const chromeRows = 2 + 2 + 1

// SharedState is handed to every view by pointer.
type SharedState struct {
	App *App

	Width  int
	Height int
}

// ctx is the context backend calls from views run under.
func (s *SharedState) ctx() context.Context {
	return context.Background()
}

// ContentHeight is the number of rows left for the active view.
func (s *SharedState) ContentHeight() int {
	return max(s.Height-chromeRows, 1)
}

func (s *SharedState) rule() string {
	return formatter.Dim(strings.Repeat("─", max(s.Width, 20)))
}
