package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"navdir/internal/config"
	"navdir/internal/console"
	"navdir/internal/favourites"
	"navdir/internal/history"
	"navdir/internal/logging"
	"navdir/internal/nav"
)

// app carries what every command needs once the config is loaded.
type app struct {
	configPath string
	modeFlag   string
	verbose    bool

	stdout io.Writer
	stderr io.Writer

	cfg  *config.Config
	mode console.Mode
	favs *favourites.Store
	hist *history.Stack
	nav  *nav.Navigator
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	if err := logging.Init(logging.Config{Level: cfg.LogLevel, Format: "console"}); err != nil {
		return fmt.Errorf("failed to init logging: %w", err)
	}
	if a.verbose {
		logging.SetLevel("debug")
	}

	// Only a real file can be a terminal; anything else is treated as a pipe.
	var outFile *os.File
	if f, ok := a.stdout.(*os.File); ok {
		outFile = f
	}
	a.mode, err = console.Resolve(a.modeFlag, outFile)
	if err != nil {
		return err
	}

	paths := cfg.Paths()
	a.favs = favourites.New(paths.FavouritesFile)
	a.hist = history.New(paths.HistoryFile)
	a.nav = nav.New(a.favs, a.hist)

	logging.Debug("loaded config",
		logging.String("config", a.configPath),
		logging.String("state_dir", cfg.StateDir),
		logging.String("mode", a.mode.String()))
	return nil
}

func (a *app) visual() bool {
	return a.mode == console.ModeVisual
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	var (
		cwd      string
		complete string
	)

	root := &cobra.Command{
		Use:   "navdir [TARGET]",
		Short: "Jump to favourite directories and back",
		Long: `navdir resolves a favourite name or a path and prints the directory to
change into. Source the output of "navdir init" in your shell to get the nd
function that does the cd for you.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("complete") {
				return a.runComplete(complete)
			}
			if len(args) == 0 {
				fmt.Fprintln(a.stderr, "No target specified")
				return nil
			}
			return a.runGo(cwd, args[0])
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.DefaultConfigPath(), "Config file path")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log debug information to stderr")
	flags.StringVar(&a.modeFlag, "mode", "auto", "Output mode: auto, visual or pipe")
	_ = flags.MarkHidden("mode")

	root.Flags().StringVar(&cwd, "cwd", defaultCwd(), "Directory the shell is currently in")
	root.Flags().StringVar(&complete, "complete", "", "Print favourite names starting with the given prefix")
	_ = root.Flags().MarkHidden("cwd")
	_ = root.Flags().MarkHidden("complete")

	root.AddCommand(
		a.newListCmd(),
		a.newEditCmd(),
		a.newAddCmd(),
		a.newRemoveCmd(),
		a.newTreeCmd(),
		a.newBackCmd(),
		newInitCmd(),
	)

	return root
}

func defaultCwd() string {
	if pwd := os.Getenv("PWD"); pwd != "" {
		return pwd
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// shortCommands are flag-style spellings of subcommands. They are only
// recognised in first position so that favourites named "t" or "b" stay
// reachable as plain targets.
var shortCommands = map[string]string{
	"-t": "tree",
	"-b": "back",
}

func expandShortCommands(args []string) []string {
	if len(args) == 0 {
		return args
	}
	name, ok := shortCommands[args[0]]
	if !ok {
		return args
	}

	expanded := make([]string, 0, len(args))
	expanded = append(expanded, name)
	return append(expanded, args[1:]...)
}

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	root.SetArgs(expandShortCommands(os.Args[1:]))
	err := root.Execute()
	_ = logging.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
