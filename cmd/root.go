package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tyriadev/tyria/config"
	"github.com/tyriadev/tyria/filter"
	"github.com/tyriadev/tyria/gw2"
)

var (
	cfgFile  string
	cfg      *config.Config
	logger   zerolog.Logger
	client   *gw2.Client
	compiler *filter.Compiler

	appVersion   = "dev"
	appBuildTime = "unknown"

	// Command flags
	filterExpr string
	preset     string
	lang       string
	token      string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tyria",
	Short: "A command line client for the Guild Wars 2 API",
	Long: `tyria is a CLI for the Guild Wars 2 API. It can inspect your account,
characters, achievement progress and trading post activity, and look up
game data such as professions, skills and traits.

Account-bound commands need an API token with the matching permissions,
created at https://account.arena.net/applications and configured in the
config file or the TYRIA_API_TOKEN environment variable.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build information stamped into the binary.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "response language (en, es, de, fr, ko, zh)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "API token (overrides config and environment)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Command line overrides config and environment
	if cmd.Flags().Changed("lang") {
		cfg.API.Lang = lang
	}
	if cmd.Flags().Changed("token") {
		cfg.API.Token = token
	}

	// Create API client
	opts := []gw2.Option{
		gw2.WithLogger(logger),
		gw2.WithTimeout(time.Duration(cfg.API.Timeout) * time.Second),
	}
	if cfg.API.Token != "" {
		opts = append(opts, gw2.WithToken(cfg.API.Token))
	}
	if cfg.API.URL != "" {
		opts = append(opts, gw2.WithBaseURL(cfg.API.URL))
	}
	client = gw2.NewClient(cfg.API.Lang, opts...)

	compiler = filter.NewCompiler()

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; colors only when stderr is a terminal
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// requireToken fails early with a usable message instead of surfacing
// gw2.ErrNoToken from deep inside a fetch.
func requireToken() error {
	if !client.HasToken() {
		return fmt.Errorf("this command needs an API token; set api.token in the config or TYRIA_API_TOKEN")
	}
	return nil
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if presetFilter, ok := cfg.Filter.Presets[preset]; ok {
			return presetFilter, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	if cfg.Filter.Default != "" {
		return cfg.Filter.Default, nil
	}

	return "", nil
}
