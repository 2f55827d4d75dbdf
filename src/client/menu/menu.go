// Package menu runs the interactive search and profile loop.
//
// The loop has no quit action; it ends when a prompt is aborted, a search
// fails, or the context is cancelled. Failed profile lookups are printed
// and the loop continues.
package menu

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/apimgr/ghuser/src/client/api"
	"github.com/apimgr/ghuser/src/client/apperr"
	"github.com/apimgr/ghuser/src/client/tui"
)

// Action is a top-level menu entry
type Action int

const (
	ActionSearch Action = iota
	ActionUserInfo
)

// Actions lists the menu entries in display order
var Actions = []Action{ActionSearch, ActionUserInfo}

// String returns the menu label
func (a Action) String() string {
	switch a {
	case ActionSearch:
		return "Search users..."
	case ActionUserInfo:
		return "User profile"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Finder is the subset of the API client the loop needs
type Finder interface {
	SearchUsers(ctx context.Context, query string) (*api.SearchResult, error)
	User(ctx context.Context, login string) (*api.UserProfile, error)
}

// Loop drives the menu
type Loop struct {
	finder   Finder
	prompt   tui.Prompter
	out      io.Writer
	username string
	pageSize int
}

// New creates a loop. username is offered as the default in the
// profile prompt.
func New(finder Finder, prompt tui.Prompter, out io.Writer, username string, pageSize int) *Loop {
	return &Loop{
		finder:   finder,
		prompt:   prompt,
		out:      out,
		username: username,
		pageSize: pageSize,
	}
}

// Run repeats Step until it fails or ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.Step(ctx); err != nil {
			return err
		}
	}
}

// Step shows the menu once and runs the chosen flow
func (l *Loop) Step(ctx context.Context) error {
	labels := make([]string, len(Actions))
	for i, a := range Actions {
		labels[i] = a.String()
	}

	idx, err := l.prompt.Select(ctx, "GitHub", labels, len(labels))
	if err != nil {
		return apperr.Input(err)
	}

	switch action := Actions[idx]; action {
	case ActionSearch:
		return l.search(ctx)
	case ActionUserInfo:
		return l.userInfo(ctx)
	default:
		return fmt.Errorf("unknown action %v", action)
	}
}

func (l *Loop) search(ctx context.Context) error {
	query, err := l.prompt.Text(ctx, "User Id", "")
	if err != nil {
		return apperr.Input(err)
	}

	l.println(tui.RenderInfo("Loading..."))
	res, err := l.finder.SearchUsers(ctx, query)
	if err != nil {
		slog.Error("search failed", "query", query, "error", err)
		return apperr.API(err)
	}
	slog.Info("search", "query", query, "total_count", res.TotalCount, "items", len(res.Items))

	if res.TotalCount == 0 || len(res.Items) == 0 {
		l.println(tui.RenderNoMatch(query))
		return nil
	}

	l.println(fmt.Sprintf("Total Count: %d", res.TotalCount))
	logins := make([]string, len(res.Items))
	for i, item := range res.Items {
		logins[i] = item.String()
	}

	idx, err := l.prompt.Select(ctx, "Search Result", logins, l.pageSize)
	if err != nil {
		return apperr.Input(err)
	}

	l.println(tui.RenderInfo("Loading..."))
	l.showUser(ctx, res.Items[idx].Login)
	return nil
}

func (l *Loop) userInfo(ctx context.Context) error {
	login, err := l.prompt.Text(ctx, "Username", l.username)
	if err != nil {
		return apperr.Input(err)
	}

	l.println(tui.RenderInfo(fmt.Sprintf("Loading info for %s...", login)))
	l.showUser(ctx, login)
	return nil
}

// showUser prints the profile or the lookup error. Lookup errors do not
// end the loop.
func (l *Loop) showUser(ctx context.Context, login string) {
	profile, err := l.finder.User(ctx, login)
	if err != nil {
		slog.Warn("user lookup failed", "login", login, "not_found", api.IsNotFound(err), "error", err)
		l.println(tui.RenderError(apperr.API(err)))
		return
	}
	l.println(tui.RenderProfile(profile))
}

func (l *Loop) println(s string) {
	fmt.Fprintln(l.out, s)
}
