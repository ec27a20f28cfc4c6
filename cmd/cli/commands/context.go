package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/Penny-Liu/parttime/internal/config"
	"github.com/Penny-Liu/parttime/internal/ui"
	"github.com/Penny-Liu/parttime/pkg/clients/gasclient"
	"github.com/Penny-Liu/parttime/pkg/core/model"
	"github.com/Penny-Liu/parttime/pkg/core/state"
)

// AppContext holds the application dependencies shared by all commands.
type AppContext struct {
	Ctx    context.Context
	Cfg    *config.Config
	Logger *zap.Logger
	Remote *gasclient.Client
	Store  *state.Store
	Theme  ui.Theme

	stdin *bufio.Reader
	busy  bool
}

// NewAppContext wires the command dependencies together.
func NewAppContext(ctx context.Context, cfg *config.Config, logger *zap.Logger, remote *gasclient.Client, store *state.Store) *AppContext {
	return &AppContext{
		Ctx:    ctx,
		Cfg:    cfg,
		Logger: logger,
		Remote: remote,
		Store:  store,
		Theme:  ui.DefaultTheme(),
		stdin:  bufio.NewReader(os.Stdin),
	}
}

// beginNetwork marks a network operation in flight, rejecting re-entrant
// submissions (the CLI equivalent of disabling the sync/save buttons).
func (app *AppContext) beginNetwork() error {
	if app.busy {
		return fmt.Errorf("another save or sync is still running")
	}
	app.busy = true
	return nil
}

func (app *AppContext) endNetwork() {
	app.busy = false
}

// Confirm prompts for a yes/no answer and returns true only on an explicit
// yes.
func (app *AppContext) Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := app.stdin.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// RequireUser returns the session user or an error telling the caller to log
// in first.
func (app *AppContext) RequireUser() (model.User, error) {
	user, ok := app.Store.CurrentUser()
	if !ok {
		return model.User{}, fmt.Errorf("not logged in (run 'login' inside an interactive session)")
	}
	return user, nil
}

// RequireAdmin returns the session user when it is the administrator.
func (app *AppContext) RequireAdmin() (model.User, error) {
	user, err := app.RequireUser()
	if err != nil {
		return model.User{}, err
	}
	if user.Role != model.RoleAdmin {
		return model.User{}, fmt.Errorf("administrator login required")
	}
	return user, nil
}

// monthFromArgs parses an optional YYYY-MM argument, defaulting to the
// current month.
func monthFromArgs(args []string) (int, time.Month, error) {
	if len(args) == 0 {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (want YYYY-MM): %w", args[0], err)
	}
	return t.Year(), t.Month(), nil
}

// parseCommandLine splits an interactive input line into fields, respecting
// single and double quotes.
func parseCommandLine(line string) ([]string, error) {
	var parts []string
	var current strings.Builder
	var quote rune

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
		case unicode.IsSpace(r):
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote")
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts, nil
}
