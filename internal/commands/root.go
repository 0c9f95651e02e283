package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/qifreader/internal/config"
)

// globalFlags are shared by every subcommand. Flags given explicitly
// override the config file.
type globalFlags struct {
	configPath string
	dateFormat string
	encoding   string
	output     string
	recursive  bool
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(version string) *cobra.Command {
	var g globalFlags

	rootCmd := &cobra.Command{
		Use:     "qifreader",
		Short:   "Read Quicken Interchange Format (QIF) files",
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "path to "+config.FileName)
	pf.StringVar(&g.dateFormat, "date-format", "", "date format when the file has no !Option:MDY header (e.g. dd/MM/yyyy)")
	pf.StringVar(&g.encoding, "encoding", "", "character encoding of the input files (e.g. utf-8, windows-1252)")
	pf.StringVar(&g.output, "format", "", "output format: text or csv")
	pf.BoolVarP(&g.recursive, "recursive", "r", false, "descend into subdirectories")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(newReadCommand(&g))
	rootCmd.AddCommand(newCodesCommand(&g))
	rootCmd.AddCommand(newInitConfigCommand())

	return rootCmd
}

// resolve loads the config file, if any, and applies flag overrides.
func (g *globalFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if g.configPath != "" {
		loaded, err := config.Load(g.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("date-format") {
		cfg.DateFormat = g.dateFormat
	}
	if flags.Changed("encoding") {
		cfg.Encoding = g.encoding
	}
	if flags.Changed("format") {
		cfg.Output = g.output
	}
	if flags.Changed("recursive") {
		cfg.Recursive = g.recursive
	}
	if g.verbose {
		cfg.LogLevel = slog.LevelDebug.String()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	lvl, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
}
