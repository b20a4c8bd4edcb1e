package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/kn327/NetworkLocationInfo/internal/docs"
	"github.com/kn327/NetworkLocationInfo/internal/version"
	"github.com/kn327/NetworkLocationInfo/pkg/cobrax/topics"
	"github.com/kn327/NetworkLocationInfo/pkg/commands/genconfig"
	"github.com/kn327/NetworkLocationInfo/pkg/commands/label"
	"github.com/kn327/NetworkLocationInfo/pkg/commands/list"
	"github.com/kn327/NetworkLocationInfo/pkg/commands/status"
	"github.com/kn327/NetworkLocationInfo/pkg/commands/watch"
	"github.com/kn327/NetworkLocationInfo/pkg/config"
	"github.com/kn327/NetworkLocationInfo/pkg/display"
	"github.com/kn327/NetworkLocationInfo/pkg/errors"
	"github.com/kn327/NetworkLocationInfo/pkg/logging"
	"github.com/kn327/NetworkLocationInfo/pkg/paths"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity    int
		shortcutsDir string
		format       string
	)

	rootCmd := &cobra.Command{
		Use:   "netloc",
		Short: "Inspect Windows network location shortcuts",
		Long: `netloc works with the "network location" shortcuts Windows keeps in the
user's NetHood container. It parses UNC paths, resolves which shortcut
entry maps a share, reads and renames entry labels, and reports whether
shares are currently reachable.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flags override the config file and environment
			overrides := map[string]interface{}{}
			if shortcutsDir != "" {
				overrides["shortcuts.dir"] = shortcutsDir
			}
			if format != "" {
				overrides["output.format"] = format
			}
			if verbosity > 0 {
				overrides["logging.verbosity"] = verbosity
			}

			cfg, err := config.Load(overrides)
			if err != nil {
				return err
			}
			config.Initialize(cfg)

			logging.SetupLogger(cfg.Logging.Verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&shortcutsDir, "shortcuts-dir", "", "Network shortcuts container directory")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "Output format: auto, term, text, json, yaml")

	// Disable automatic help command (we'll use our custom one from topics)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Add all commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newLabelCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))

	// Topic-based help served from the embedded docs. The topics ship
	// inside the binary, so initialization only fails on a bad build.
	_ = topics.InitializeWithOptions(rootCmd, docs.Topics, topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})

	return rootCmd
}

// initShortcutsDir resolves the shortcuts container directory and warns
// when the stand-in fallback is in use
func initShortcutsDir() (string, error) {
	p, err := paths.New(config.Get().Shortcuts.Dir)
	if err != nil {
		return "", err
	}

	if p.UsedFallback() {
		fmt.Fprintf(os.Stderr, "Warning: no network shortcuts folder was found for this user.\n")
		fmt.Fprintf(os.Stderr, "Using stand-in directory: %s\n", p.ShortcutsDir())
		fmt.Fprintf(os.Stderr, "To point at a real container, either:\n")
		fmt.Fprintf(os.Stderr, "  - Pass --shortcuts-dir or set NETLOC_SHORTCUTS_DIR\n")
		fmt.Fprintf(os.Stderr, "  - Set shortcuts.dir in %s\n\n", config.FilePath())
	}

	return p.ShortcutsDir(), nil
}

// resolveFormat turns the configured output format into a concrete one
func resolveFormat() (display.Format, error) {
	format, err := display.ParseFormat(config.Get().Output.Format)
	if err != nil {
		return display.FormatText, err
	}

	if format == display.FormatAuto {
		if !config.Get().Output.Color {
			return display.FormatText, nil
		}
		format = display.DetectFormat(os.Stdout)
	}

	return format, nil
}

// printResult writes a command result to stdout in the active format.
// The render callback produces the human-readable form; JSON and YAML
// serialize the result itself.
func printResult(result interface{}, render func(display.Renderer) string) error {
	format, err := resolveFormat()
	if err != nil {
		return err
	}

	switch format {
	case display.FormatJSON:
		return display.WriteJSON(os.Stdout, result)
	case display.FormatYAML:
		return display.WriteYAML(os.Stdout, result)
	default:
		fmt.Print(render(display.NewRenderer(format)))
		return nil
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("netloc version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all network locations",
		Long: `List enumerates the network-shortcuts container and prints one row per
mapped location: its state, root path, and label. Entries that are not
network location shortcuts are skipped.`,
		Example: `  # List all network locations
  netloc list

  # Machine-readable listing
  netloc list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := initShortcutsDir()
			if err != nil {
				return err
			}

			result, err := list.Locations(list.Options{ShortcutsDir: dir})
			if err != nil {
				return err
			}

			return printResult(result, func(r display.Renderer) string {
				return r.RenderList(result)
			})
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <unc-path>...",
		Short: "Show mapping and reachability of network paths",
		Long: `Status checks each given UNC path: whether a shortcut entry maps it,
what that entry is labeled, and whether the share's root directory
exists right now. Paths that cannot be parsed get an error row instead
of failing the whole run.`,
		Example: `  # Check one share
  netloc status \\fileserver\projects

  # Check several at once; trailing components are ignored
  netloc status \\fileserver\projects\2024 \\nas\media`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := initShortcutsDir()
			if err != nil {
				return err
			}

			result, err := status.Check(status.Options{Paths: args, ShortcutsDir: dir})
			if err != nil {
				return err
			}

			if err := printResult(result, func(r display.Renderer) string {
				return r.RenderStatus(result)
			}); err != nil {
				return err
			}

			// Unparseable paths are reported per row but still fail the run
			if result.Failed > 0 {
				return errors.Newf(errors.ErrInvalidInput,
					"%d of %d paths could not be checked", result.Failed, len(result.Rows))
			}
			return nil
		},
	}
}

func newLabelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "label <unc-path> [new-label]",
		Short: "Read or change a network location's label",
		Long: `Label prints the display name of the shortcut entry mapped to a network
location. With a second argument the entry is renamed to the new label.

The location must already be mapped; netloc never creates or deletes
shortcut entries.`,
		Example: `  # Read the label
  netloc label \\fileserver\projects

  # Rename it
  netloc label \\fileserver\projects "Team Projects"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := initShortcutsDir()
			if err != nil {
				return err
			}

			opts := label.Options{Path: args[0], ShortcutsDir: dir}
			if len(args) == 2 {
				opts.NewLabel = args[1]
			}

			result, err := label.Run(opts)
			if err != nil {
				return err
			}

			return printResult(result, func(r display.Renderer) string {
				return r.RenderLabel(result)
			})
		},
	}
}

func newWatchCmd() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the shortcuts container and report changes",
		Long: `Watch follows the network-shortcuts container and prints one line per
settled change: entries added, relabeled or rewritten, and removed.
Rapid bursts of writes to one entry coalesce into a single event.`,
		Example: `  # Watch until interrupted
  netloc watch

  # Stream events as JSON, one object per event
  netloc watch --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := initShortcutsDir()
			if err != nil {
				return err
			}

			format, err := resolveFormat()
			if err != nil {
				return err
			}
			renderer := display.NewRenderer(format)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler := func(event watch.Event) {
				switch format {
				case display.FormatJSON:
					_ = display.WriteJSON(os.Stdout, event)
				case display.FormatYAML:
					// Separate events into a multi-document stream
					fmt.Println("---")
					_ = display.WriteYAML(os.Stdout, event)
				default:
					fmt.Println(renderer.RenderEvent(string(event.Op), event.Entry, event.Location))
				}
			}

			fmt.Fprintf(os.Stderr, "Watching %s (ctrl-c to stop)\n", dir)
			return watch.Watch(ctx, watch.Options{ShortcutsDir: dir, Debounce: debounce}, handler)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 0, "How long an entry must stay quiet before its event fires")

	return cmd
}

func newGenConfigCmd() *cobra.Command {
	var (
		write     bool
		effective bool
	)

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: "Generate a config file with the default settings",
		Long: `Gen-config prints a commented configuration file describing every
setting. With --effective it prints the resolved configuration
currently in force instead.`,
		Example: `  # Print a commented starter config
  netloc gen-config

  # Install it as the user config file
  netloc gen-config --write

  # Show the settings the current run would use
  netloc gen-config --effective`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := genconfig.Run(genconfig.Options{Effective: effective, Write: write})
			if err != nil {
				return err
			}

			if write {
				if result.Written {
					fmt.Printf("Wrote %s\n", result.Path)
				} else {
					fmt.Printf("Config file already exists at %s, not overwriting\n", result.Path)
				}
				return nil
			}

			fmt.Print(result.Content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Write the config file instead of printing it")
	cmd.Flags().BoolVar(&effective, "effective", false, "Render the resolved configuration currently in force")

	return cmd
}

func newManCmd(rootCmd *cobra.Command) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:    "man",
		Short:  "Generate man pages",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "NETLOC",
				Section: "1",
				Source:  "netloc " + version.Version,
				Manual:  "netloc manual",
			}
			return doc.GenManTree(rootCmd, header, outDir)
		},
	}

	cmd.Flags().StringVar(&outDir, "dir", ".", "Directory to write man pages into")

	return cmd
}
