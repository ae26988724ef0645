package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/evanschultz/tasklane/internal/adapters/storage/memory"
	"github.com/evanschultz/tasklane/internal/adapters/storage/sqlite"
	"github.com/evanschultz/tasklane/internal/app"
	"github.com/evanschultz/tasklane/internal/config"
	"github.com/evanschultz/tasklane/internal/platform"
	"github.com/evanschultz/tasklane/internal/tui"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = ""
)

// program is the part of tea.Program the CLI drives.
type program interface {
	Run() (tea.Model, error)
}

// programFactory builds the program loop; tests swap it for a fake.
var programFactory = func(m tea.Model) program {
	return tea.NewProgram(m)
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// cliOptions holds the resolved root flags.
type cliOptions struct {
	configPath string
	appName    string
	devMode    bool
	storage    string
}

// run builds the command tree and executes it against args.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	root := newRootCommand(stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	opts := []fang.Option{
		fang.WithVersion(version),
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
	}
	if commit != "" {
		opts = append(opts, fang.WithCommit(commit))
	}
	return fang.Execute(ctx, root, opts...)
}

// newRootCommand wires the root TUI command and its subcommands.
func newRootCommand(stderr io.Writer) *cobra.Command {
	opts := &cliOptions{appName: "tasklane"}
	defaultDevMode := version == "dev"
	if envDev, ok := parseBoolEnv("TASKLANE_DEV_MODE"); ok {
		defaultDevMode = envDev
	}
	if envApp := strings.TrimSpace(os.Getenv("TASKLANE_APP_NAME")); envApp != "" {
		opts.appName = envApp
	}

	root := &cobra.Command{
		Use:   "tasklane",
		Short: "A three-list terminal task board",
		Long: `tasklane keeps To-Do, In Progress and Done lists in the terminal.
Add tasks, select rows, edit them inline and validate or cancel the edit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBoard(cmd.Context(), opts, stderr)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to config TOML")
	flags.StringVar(&opts.appName, "app", opts.appName, "application name for config/data path resolution")
	flags.BoolVar(&opts.devMode, "dev", defaultDevMode, "use dev mode paths (<app>-dev)")
	flags.StringVar(&opts.storage, "storage", "", "storage driver override (memory|sqlite)")

	root.AddCommand(&cobra.Command{
		Use:   "paths",
		Short: "Print resolved config and log paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printPaths(cmd.OutOrStdout(), opts)
		},
	})
	return root
}

// printPaths writes the resolved runtime paths.
func printPaths(out io.Writer, opts *cliOptions) error {
	paths, err := platform.Default(platform.Options{
		AppName: opts.appName,
		DevMode: opts.devMode,
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "app: %s\n", opts.appName)
	_, _ = fmt.Fprintf(out, "dev_mode: %t\n", opts.devMode)
	_, _ = fmt.Fprintf(out, "config: %s\n", resolveConfigPath(opts, paths))
	_, _ = fmt.Fprintf(out, "log_dir: %s\n", paths.LogDir)
	return nil
}

// resolveConfigPath picks the flag, then TASKLANE_CONFIG, then the platform default.
func resolveConfigPath(opts *cliOptions, paths platform.Paths) string {
	if p := strings.TrimSpace(opts.configPath); p != "" {
		return p
	}
	if envPath := strings.TrimSpace(os.Getenv("TASKLANE_CONFIG")); envPath != "" {
		return envPath
	}
	return paths.ConfigPath
}

// runBoard loads config, opens storage and runs the TUI.
func runBoard(ctx context.Context, opts *cliOptions, stderr io.Writer) error {
	paths, err := platform.Default(platform.Options{
		AppName: opts.appName,
		DevMode: opts.devMode,
	})
	if err != nil {
		return err
	}
	configPath := resolveConfigPath(opts, paths)

	cfg, err := config.Load(configPath, config.Default())
	if err != nil {
		return fmt.Errorf("load config %q: %w", configPath, err)
	}
	if driver := strings.TrimSpace(opts.storage); driver != "" {
		cfg.Storage.Driver = config.StorageDriver(strings.ToLower(driver))
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("storage flag: %w", err)
		}
	}

	logger, err := newRuntimeLogger(stderr, opts.appName, opts.devMode, cfg.Logging, paths.LogDir, time.Now)
	if err != nil {
		return fmt.Errorf("configure runtime logger: %w", err)
	}
	// The board owns the terminal; runtime logs go to the dev file only.
	logger.SetConsoleEnabled(false)
	defer func() {
		_ = logger.Close()
	}()

	logger.Info("startup configuration resolved", "app", opts.appName, "dev_mode", opts.devMode)
	logger.Debug("runtime paths resolved", "config_path", configPath, "log_dir", paths.LogDir)
	logger.Info("configuration loaded", "config_path", configPath, "storage", cfg.Storage.Driver, "log_level", cfg.Logging.Level)
	if devPath := logger.DevLogPath(); devPath != "" {
		logger.Info("dev file logging enabled", "path", devPath)
	}

	repo, closeRepo, err := openRepository(cfg.Storage.Driver)
	if err != nil {
		logger.Error("storage open failed", "driver", cfg.Storage.Driver, "err", err)
		return fmt.Errorf("open %s repository: %w", cfg.Storage.Driver, err)
	}
	defer func() {
		if closeErr := closeRepo(); closeErr != nil {
			logger.Warn("storage close failed", "driver", cfg.Storage.Driver, "err", closeErr)
		}
	}()
	logger.Info("storage ready", "driver", cfg.Storage.Driver)

	svc := app.NewService(repo, uuid.NewString, nil, app.ServiceConfig{
		PreselectStatus: cfg.Edit.PreselectStatus,
		Logger:          logger,
	})
	logger.Debug("application service initialized", "preselect_status", cfg.Edit.PreselectStatus)

	m := tui.NewModel(svc, tui.WithRuntimeConfig(toTUIRuntimeConfig(cfg)))
	logger.Info("starting tui program loop")
	if _, err := programFactory(m).Run(); err != nil {
		logger.Error("tui program terminated with error", "err", err)
		return fmt.Errorf("run tui program: %w", err)
	}
	if ctx.Err() != nil {
		logger.Info("command flow interrupted", "err", ctx.Err())
	}
	logger.Info("command flow complete", "command", "tui")
	return nil
}

// openRepository returns the store for driver plus its close func.
func openRepository(driver config.StorageDriver) (app.Repository, func() error, error) {
	switch driver {
	case config.StorageSQLite:
		repo, err := sqlite.OpenInMemory()
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	case config.StorageMemory, "":
		return memory.New(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

// toTUIRuntimeConfig maps config values into model options.
func toTUIRuntimeConfig(cfg config.Config) tui.RuntimeConfig {
	return tui.RuntimeConfig{
		Keys: tui.KeyConfig{
			Add:      cfg.Keys.Add,
			Edit:     cfg.Keys.Edit,
			Delete:   cfg.Keys.Delete,
			Validate: cfg.Keys.Validate,
			Cancel:   cfg.Keys.Cancel,
			Select:   cfg.Keys.Select,
			Info:     cfg.Keys.Info,
			Copy:     cfg.Keys.Copy,
		},
		Titles: tui.ListTitles{
			Todo:       cfg.Board.TodoTitle,
			InProgress: cfg.Board.InProgressTitle,
			Done:       cfg.Board.DoneTitle,
		},
	}
}

// parseBoolEnv reads a boolean env var; ok is false when unset or malformed.
func parseBoolEnv(name string) (bool, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
