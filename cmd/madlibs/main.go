package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/madlibs"
	"github.com/fwojciec/madlibs/bubbletea"
	"github.com/fwojciec/madlibs/clipboard"
	"github.com/fwojciec/madlibs/memory"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App encapsulates the application logic for testing.
type App struct {
	Player madlibs.Player
}

// Run plays the interactive form until the user exits.
func (a *App) Run(ctx context.Context) error {
	return a.Player.Play(ctx)
}

// Teller fills a story without a terminal UI.
type Teller struct {
	Out    io.Writer
	Story  madlibs.Story
	Logger *zap.Logger
}

// Tell submits values through the controller and writes the finished story.
func (t *Teller) Tell(values map[string]string) error {
	page := memory.NewStoryPage(t.Story)
	if err := madlibs.Verify(page); err != nil {
		return err
	}
	c := madlibs.NewController(page, madlibs.WithLogger(t.Logger))
	page.Fill(values)
	c.Submit()

	_, err := fmt.Fprintf(t.Out, "%s\n\n%s\n", t.Story.Title, t.Story.Render(page.Slot))
	return err
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := ParseConfig(env.ToMap(os.Environ()))
	if err != nil {
		return err
	}
	return newRootCmd(cfg, os.Stdout).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. cfg holds environment defaults that
// flags may override.
func newRootCmd(cfg Config, out io.Writer) *cobra.Command {
	var logger *zap.Logger

	root := &cobra.Command{
		Use:           "madlibs",
		Short:         "Fill in the blanks and read the story",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = cfg.NewLogger()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := cfg.ResolveTheme()
			if err != nil {
				return err
			}
			opts := []bubbletea.ModelOption{
				bubbletea.WithTheme(theme),
				bubbletea.WithLogger(logger),
			}
			if cb, err := clipboard.Detect(); err == nil {
				opts = append(opts, bubbletea.WithClipboard(cb))
			} else {
				logger.Debug("clipboard disabled", zap.Error(err))
			}
			app := &App{Player: bubbletea.NewPlayer(opts...)}
			return app.Run(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme (dark or light)")
	root.PersistentFlags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")
	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "enable debug logging")

	root.AddCommand(newTellCmd(out, &logger))
	return root
}

func newTellCmd(out io.Writer, logger **zap.Logger) *cobra.Command {
	values := make(map[string]*string)
	cmd := &cobra.Command{
		Use:   "tell",
		Short: "Print the story filled with the given words",
		Example: `  madlibs tell --person Sam --adjective silly --noun lamp \
    --insect bee --plural-noun ducks --verb jump`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filled := make(map[string]string, len(values))
			for field, v := range values {
				filled[field] = *v
			}
			t := &Teller{Out: out, Story: madlibs.DefaultStory(), Logger: *logger}
			return t.Tell(filled)
		},
	}
	for _, b := range madlibs.Bindings() {
		values[b.Field] = cmd.Flags().String(b.Field, "", madlibs.Labels[b.Field])
	}
	return cmd
}
