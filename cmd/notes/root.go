package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/notes"
	"github.com/aretw0/notes/internal/config"
	"github.com/aretw0/notes/pkg/core"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	logger  *slog.Logger
}

// flagKeys maps viper settings to their persistent flags.
var flagKeys = map[string]string{
	"dir":          "dir",
	"verbose":      "verbose",
	"delete_delay": "delete-delay",
	"memory":       "memory",
	"read_only":    "read-only",
	"theme":        "theme",
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "notes",
		Short: "Take, tag and search short notes from the terminal",
		Long: `Notes keeps short titled notes with comma separated tags in a single
slot of your profile directory. Run it without a command for the
interactive view, or script it with the commands below.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runTUI,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("dir", "", "Profile directory (default: nearest .notes, else the user config dir)")
	flags.BoolP("verbose", "v", false, "Enable verbose logging")
	flags.Duration("delete-delay", core.DefaultDeleteDelay, "How long a deleted note stays visible before removal")
	flags.Bool("memory", false, "Keep notes in memory only")
	flags.Bool("read-only", false, "Never write the notes slot")
	flags.String("theme", "dark", "Color theme: dark, light or mono")
	flags.StringVar(&a.cfgFile, "config", "", "Config file (default: notes.yaml in the profile dir)")

	for key, name := range flagKeys {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		newAddCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newListCmd(a),
		newTagsCmd(a),
		newExportCmd(a),
		newStatusCmd(a),
		newTUICmd(a),
		newWatchCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup resolves configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	// The profile dir is also where notes.yaml is looked up, so resolve it
	// from flags and env first.
	dir, err := notes.ResolveDir(a.v.GetString("dir"), cwd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.v, a.cfgFile, dir)
	if err != nil {
		return err
	}
	if cfg.Dir, err = notes.ResolveDir(cfg.Dir, cwd); err != nil {
		return err
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)
	return nil
}

// open builds the storage for the configured profile and loads a store over it.
func (a *app) open(ctx context.Context, extra ...notes.Option) (*notes.Store, core.Storage, error) {
	opts := []notes.Option{
		notes.WithLogger(a.logger),
		notes.WithDeleteDelay(a.cfg.DeleteDelay),
		notes.WithReadOnly(a.cfg.ReadOnly),
		notes.WithMustExist(a.cfg.ReadOnly),
	}
	if a.cfg.Memory {
		opts = append(opts, notes.WithAdapter("memory"))
	}
	opts = append(opts, extra...)

	storage, err := notes.Init(ctx, a.cfg.Dir, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open profile %s: %w", a.cfg.Dir, err)
	}

	store, err := notes.Open(ctx, a.cfg.Dir, append(opts, notes.WithStorage(storage))...)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("profile opened", "path", a.cfg.Dir, "notes", store.Len())
	return store, storage, nil
}

// Execute runs the command tree against os.Args.
func Execute() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.ExecuteContext(ctx)
}
