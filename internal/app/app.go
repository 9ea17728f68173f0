package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/golang/glog"
	"golang.org/x/term"

	"github.com/five82/roster/internal/command"
	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/employee"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/restapi"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/ui"
	"github.com/five82/roster/internal/view"
)

// Options configure the roster application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/roster/prefs.toml
	PollEvery  int    // seconds; overrides reload_interval when positive
	APIURL     string // overrides api_url when set
	Plain      bool   // print the list and exit even on a terminal
	Output     io.Writer
}

// Run loads the employee list and hands it to the TUI, or prints it when
// stdout is not a terminal. It blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PollEvery > 0 {
		cfg.ReloadInterval = time.Duration(opts.PollEvery) * time.Second
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}

	client, err := restapi.NewClient(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}
	glog.Infof("roster starting: api=%s page_size=%d reload=%s", client.BaseURL(), cfg.PageSize, cfg.ReloadInterval)

	store := &state.Store{}
	loadErr := refresh(ctx, store, client)
	if loadErr != nil {
		glog.Errorf("initial load from %s failed: %v", client.BaseURL(), loadErr)
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Plain || !isTerminal(out) {
		if loadErr != nil {
			return loadErr
		}
		return printPlain(out, store.All())
	}

	ctrl := view.NewController(store, cfg.PageSize)
	defer ctrl.Close()

	coord := command.New(store, client, nil, command.Options{Timeout: cfg.RequestTimeout})
	defer waitForRemote(coord, cfg.RequestTimeout)

	StartPoller(ctx, store, client, cfg.ReloadInterval)

	userPrefs := prefs.Load(opts.PrefsPath)
	return ui.Run(ui.Options{
		Context:     ctx,
		Controller:  ctrl,
		Coordinator: coord,
		Store:       store,
		Reload: func(ctx context.Context) error {
			return refresh(ctx, store, client)
		},
		APIURL:     client.BaseURL(),
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
		LogPath:    cfg.InfoLogPath(),
		StartupErr: loadErr,
	})
}

// waitForRemote gives in-flight remote calls up to limit to finish before
// the process exits.
func waitForRemote(coord *command.Coordinator, limit time.Duration) {
	done := make(chan struct{})
	go func() {
		coord.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(limit):
		glog.Warningf("exiting with remote calls still in flight after %s", limit)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printPlain writes records as a bordered table in store order.
func printPlain(w io.Writer, records []employee.Record) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "SALARY", "AGE").
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if col == 2 || col == 3 {
				s = s.Align(lipgloss.Right)
			}
			return s
		})
	for _, r := range records {
		t.Row(
			strconv.FormatInt(r.ID, 10),
			r.Name,
			employee.FormatNumber(r.Salary),
			strconv.Itoa(r.Age),
		)
	}
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("write listing: %w", err)
	}
	_, err := fmt.Fprintf(w, "%d employees\n", len(records))
	return err
}
