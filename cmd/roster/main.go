package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/golang/glog"

	"github.com/five82/roster/internal/app"
	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/logtail"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/roster/config.toml)")
	pollSeconds := flag.Int("poll", 0, "reload the list every N seconds (optional, defaults to reload_interval)")
	apiURL := flag.String("api", "", "override the employee API base URL (optional)")
	plain := flag.Bool("plain", false, "print the employee list and exit")
	logLines := flag.Int("logs", 0, "print the last N lines of roster's log and exit")
	logLevel := flag.String("log-level", "info", "minimum severity shown by -logs (info, warning, error)")
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roster: load config: %v\n", err)
		return 1
	}

	if *logLines > 0 {
		return printLogs(cfg, *logLines, *logLevel)
	}

	if err := setupLogging(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PollEvery:  *pollSeconds,
		APIURL:     *apiURL,
		Plain:      *plain,
	}
	if err := app.Run(ctx, opts); err != nil {
		glog.Errorf("roster exited: %v", err)
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		return 1
	}
	return 0
}

// setupLogging points glog at the configured log directory and keeps it off
// the terminal the TUI owns, unless the user chose otherwise on the command
// line.
func setupLogging(cfg config.Config) error {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["log_dir"] {
		if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		if err := flag.Set("log_dir", cfg.LogDir); err != nil {
			return fmt.Errorf("set log_dir: %w", err)
		}
	}
	if !set["stderrthreshold"] {
		if err := flag.Set("stderrthreshold", "FATAL"); err != nil {
			return fmt.Errorf("set stderrthreshold: %w", err)
		}
	}
	return nil
}

func printLogs(cfg config.Config, n int, level string) int {
	minLevel, ok := logtail.ParseSeverity(level)
	if !ok {
		fmt.Fprintf(os.Stderr, "roster: unknown log level %q\n", level)
		return 2
	}
	path := cfg.InfoLogPath()
	lines, err := logtail.Read(path, n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		return 1
	}
	if lines == nil {
		fmt.Fprintf(os.Stderr, "roster: no log at %s\n", path)
		return 1
	}

	styles := map[logtail.Severity]lipgloss.Style{
		logtail.SeverityWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB86C")),
		logtail.SeverityError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true),
		logtail.SeverityFatal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true),
	}
	current := logtail.SeverityUnknown
	for _, line := range logtail.Filter(lines, minLevel) {
		if e, ok := logtail.Parse(line); ok {
			current = e.Severity
		}
		if style, ok := styles[current]; ok {
			line = style.Render(line)
		}
		fmt.Println(line)
	}
	return 0
}
