// Package commands implements the shipit command tree.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aki/shipit/internal/cli/prompt"
	"github.com/aki/shipit/internal/cli/ui"
	"github.com/aki/shipit/internal/core/clipboard"
	"github.com/aki/shipit/internal/core/config"
	"github.com/aki/shipit/internal/core/forge"
	"github.com/aki/shipit/internal/core/git"
	"github.com/aki/shipit/internal/core/lock"
	"github.com/aki/shipit/internal/core/logger"
	"github.com/aki/shipit/internal/core/message"
	"github.com/aki/shipit/internal/core/runner"
	"github.com/aki/shipit/internal/core/workflow"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "shipit",
	Short: "Commit, branch and open pull requests without the ceremony",

	Long: `Shipit automates a personal git workflow: on a feature branch it commits
and pushes your work in progress; on a default branch it cuts a new feature
branch, pushes it, opens a pull request and optionally arms auto-merge,
switches back and cleans up. Answers default to your persisted preferences,
so a run is usually just hitting enter a few times.`,

	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWorkflow,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging and drop a debug marker")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(aliasCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the run logger; debug runs carry a run ID so their
// lines can be correlated.
func newLogger() logger.Logger {
	if !debugFlag {
		return logger.New(logger.WithLevel(slog.LevelWarn))
	}
	return logger.New(logger.WithDebug()).With("run", uuid.NewString())
}

// forwardInterrupts makes sure an operator interrupt terminates the
// process even while a blocking prompt owns stdin.
func forwardInterrupts() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ch
		os.Exit(130)
	}()
}

func runWorkflow(cmd *cobra.Command, args []string) error {
	forwardInterrupts()
	log := newLogger()

	if debugFlag {
		if err := dropDebugMarker(); err != nil {
			log.Warn("failed to write debug marker", "error", err)
		}
	}

	ask := prompt.New()

	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	mgr := config.NewManager(cfgPath, log)

	cfg, err := mgr.Load()
	if errors.Is(err, config.ErrNotFound) {
		// First run configures and stops; the workflow starts next time.
		return runFirstTimeSetup(mgr, ask)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	if !git.IsRepository(cwd) {
		return fmt.Errorf("not a git repository")
	}
	root, err := git.Root(cwd)
	if err != nil {
		return err
	}

	state, err := git.Inspect(cwd)
	if err != nil {
		return err
	}
	log.Debug("repository state", "branch", state.Branch, "clean", state.Clean)

	lk := lock.New(root)
	if err := lk.Acquire(); err != nil {
		return err
	}
	defer func() { _ = lk.Release() }()

	poolPath, err := message.PoolPath()
	if err != nil {
		return err
	}

	run := runner.New(root)
	orch := workflow.New(
		cfg,
		state,
		git.NewClient(run),
		forge.NewClient(run),
		message.NewProvider(poolPath, ask),
		ask,
		clipboard.System{},
		log,
	)

	return orch.Run(cmd.Context())
}

// dropDebugMarker appends a marker character to the local debug file.
// Diagnostic only; it never influences the workflow.
func dropDebugMarker() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(home, ".shipit.debug"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = f.WriteString("*")
	return err
}

func runFirstTimeSetup(mgr *config.Manager, ask *prompt.Terminal) error {
	ui.Info("No configuration found, running first-time setup")

	if _, err := mgr.Setup(ask); err != nil {
		return err
	}

	poolPath, err := message.PoolPath()
	if err != nil {
		return err
	}
	if err := message.Seed(poolPath); err != nil {
		return err
	}

	ui.Success("Configuration written to %s", mgr.Path())
	ui.Info("Run shipit again to start a workflow")
	return nil
}
