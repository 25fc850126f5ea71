package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tigermax139/sportradar-sdk/config"
	"github.com/tigermax139/sportradar-sdk/sportradar"
)

var (
	cfgFile string
	envFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  sportradar.SportClient

	// Persistent overrides
	sportFlag       string
	accessLevelFlag string
	localeFlag      string
	outputFlag      string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sportradar",
	Short: "Query the Sportradar sports data APIs",
	Long: `sportradar is a CLI for the Sportradar soccer, basketball, ice hockey and
volleyball APIs. API keys are read from SPORTRADAR_<SPORT>_<LEVEL>_API_KEY,
for example SPORTRADAR_SOCCER_TRIAL_API_KEY, or from a .env file.`,
	SilenceUsage: true,
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
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with API keys")
	rootCmd.PersistentFlags().StringVarP(&sportFlag, "sport", "s", "", "sport to query (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&accessLevelFlag, "access-level", "a", "", "trial or production (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&localeFlag, "locale", "l", "", "response language (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: json or yaml (overrides config)")
}

// initializeConfig loads the environment file and configuration and sets up logging
func initializeConfig(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := applyFlagOverrides(cfg); err != nil {
		return err
	}

	logger = setupLogger(cfg.Logging)
	return nil
}

// applyFlagOverrides copies the persistent flags over cfg and validates the result
func applyFlagOverrides(cfg *config.Config) error {
	if sportFlag != "" {
		cfg.Sport = sportFlag
	}
	if accessLevelFlag != "" {
		cfg.AccessLevel = accessLevelFlag
	}
	if localeFlag != "" {
		cfg.Locale = localeFlag
	}
	if outputFlag != "" {
		cfg.Output.Format = outputFlag
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

// initializeApp loads the configuration and creates the sport client
func initializeApp(cmd *cobra.Command, args []string) error {
	if err := initializeConfig(cmd, args); err != nil {
		return err
	}

	var err error
	client, err = newClient(cfg, logger)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("sport", client.Sport()).
		Str("base_url", client.BaseURL()).
		Str("locale", client.Locale()).
		Msg("Client initialized")
	return nil
}

// newClient resolves the constructor and API key for cfg.Sport
func newClient(cfg *config.Config, logger zerolog.Logger) (sportradar.SportClient, error) {
	newSportClient, ok := sportradar.ResolveClientConstructor(cfg.Sport)
	if !ok {
		return nil, fmt.Errorf("%w: %s", sportradar.ErrUnknownSport, cfg.Sport)
	}

	level, err := sportradar.ParseAccessLevel(cfg.AccessLevel)
	if err != nil {
		return nil, err
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		sport := strings.ToLower(strings.TrimSpace(cfg.Sport))
		key, found := sportradar.ResolveAPIKey(sport, level)
		if !found {
			return nil, fmt.Errorf("%w: set %s", sportradar.ErrMissingAPIKey, sportradar.APIKeyEnvVar(sport, level))
		}
		apiKey = key
	}

	return newSportClient(sportradar.Config{
		APIKey:      apiKey,
		AccessLevel: level,
		Locale:      cfg.Locale,
	},
		sportradar.WithTimeout(cfg.Timeout),
		sportradar.WithLogger(logger),
	)
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

	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
