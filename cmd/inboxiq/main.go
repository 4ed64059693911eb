package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/inboxiq/inboxiq/internal/config"
	"github.com/inboxiq/inboxiq/internal/intent"
	"github.com/inboxiq/inboxiq/internal/mailbox"
	"github.com/inboxiq/inboxiq/internal/session"
	"github.com/inboxiq/inboxiq/internal/tui"
)

var version = "dev"

// drainTimeout bounds the wait for in-flight assistant responses on exit.
const drainTimeout = 3 * time.Second

var (
	configPath string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:          "inboxiq",
	Short:        "Terminal email client with a built-in assistant",
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "plain", false, "disable colored output")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}

// responseDelay parses the configured assistant latency, falling back to
// the default when the duration string does not parse.
func responseDelay(cfg config.Config) time.Duration {
	d, err := time.ParseDuration(cfg.Chat.ResponseDelay)
	if err != nil {
		slog.Warn("invalid response delay, using default",
			"value", cfg.Chat.ResponseDelay, "error", err)
		return session.DefaultDelay
	}
	return d
}

func runApp() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Initialize structured logging.
	logLevel := slog.LevelInfo
	if strings.EqualFold(cfg.Log.Level, "debug") {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	mgr := session.NewManager(session.NewResponder(cfg.Router(), responseDelay(cfg)))
	defer mgr.Close()

	model := tui.NewModel(mailbox.Seed(), mgr, intent.ExampleQueries(), cfg.User.Name)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running interface: %w", err)
	}

	// Let an in-flight assistant response land before Close cancels it.
	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := mgr.Drain(drainCtx); err != nil {
		slog.Debug("pending responses abandoned", "error", err)
	}
	return nil
}
