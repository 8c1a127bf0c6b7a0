// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the seekspot CLI.
// It wires configuration, secrets, and logging, then hands off to the
// search, geocode, categories, session, and serve subcommands.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/seekspot/internal/geocode"
	"github.com/pdiddy/seekspot/internal/provider"
	"github.com/pdiddy/seekspot/internal/search"
	"github.com/pdiddy/seekspot/internal/secrets"
	"github.com/pdiddy/seekspot/internal/session"
	"github.com/pdiddy/seekspot/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// loadedSecrets holds API keys loaded from the secrets directory at startup.
	loadedSecrets map[string]string

	// logger is built from --verbose before any subcommand runs.
	logger = zap.NewNop()
)

// rootCmd is the base command for the seekspot CLI.
var rootCmd = &cobra.Command{
	Use:   "seekspot",
	Short: "Find places near a location that match your preferences and budget",
	Long: `seekspot searches for nearby places (cafes, bars, restaurants, gyms, ...)
that match free-text preferences and a budget. It geocodes the location,
queries Google Maps Places for the mapped categories, ranks and normalizes
the results, and falls back to generated sample places when no API key is
configured or the provider returns too little.

Configure the API key in seekspot.yaml (provider.api_key), the
SEEKSPOT_PROVIDER_API_KEY or SEEKSPOT_GOOGLE_MAPS_API_KEY environment
variables, or .secrets/google-maps-api-key.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		l, err := newLogger(verbose)
		if err != nil {
			return err
		}
		logger = l

		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir, logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			logger.Info("loaded secrets", zap.Strings("keys", keys))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./seekspot.yaml or ~/.config/seekspot/seekspot.yaml)")
	rootCmd.PersistentFlags().String("secrets-dir", ".secrets", "directory of secret files")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log pipeline progress to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("seekspot")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "seekspot"))
		}
	}

	viper.SetEnvPrefix("SEEKSPOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults(types.DefaultConfig())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every config key so environment variables bind
// during Unmarshal.
func setDefaults(def types.Config) {
	viper.SetDefault("provider.api_key", "")
	viper.SetDefault("provider.language", "")
	viper.SetDefault("provider.timeout", def.Provider.Timeout)
	viper.SetDefault("provider.max_retries", def.Provider.MaxRetries)
	viper.SetDefault("geocoder.timeout", def.Geocoder.Timeout)
	viper.SetDefault("geocoder.cache_ttl", def.Geocoder.CacheTTL)
	viper.SetDefault("search.max_category_queries", def.Search.MaxCategoryQueries)
	viper.SetDefault("search.max_secondary_queries", def.Search.MaxSecondaryQueries)
	viper.SetDefault("search.query_timeout", def.Search.QueryTimeout)
	viper.SetDefault("search.filter_threshold", def.Search.FilterThreshold)
	viper.SetDefault("search.min_score", def.Search.MinScore)
	viper.SetDefault("search.secondary_threshold", def.Search.SecondaryThreshold)
	viper.SetDefault("search.min_raw_results", def.Search.MinRawResults)
	viper.SetDefault("search.seed", def.Search.Seed)
	viper.SetDefault("session.backend", string(def.Session.Backend))
	viper.SetDefault("session.path", def.Session.Path)
	viper.SetDefault("server.addr", def.Server.Addr)
}

// loadConfig decodes the merged file, environment, and default settings and
// fills the API key from secrets when none is configured.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Provider.APIKey = secrets.Resolve(cfg.Provider.APIKey, loadedSecrets, secrets.GoogleMapsKey, "SEEKSPOT_GOOGLE_MAPS_API_KEY")
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zcfg.DisableStacktrace = !verbose
	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return l, nil
}

// newSearcher builds the provider, geocoder, and search pipeline from cfg.
func newSearcher(cfg types.Config) (*search.Searcher, *geocode.Geocoder, error) {
	p, err := provider.New(cfg.Provider)
	if err != nil {
		return nil, nil, err
	}
	if !provider.IsAvailable(p) {
		logger.Warn("no Google Maps API key configured; results are generated samples")
	}
	g := geocode.New(p, cfg.Geocoder, logger)
	return search.New(p, g, cfg.Search, logger), g, nil
}

// openSession opens the configured session store. The returned close func
// releases database handles.
func openSession(cfg types.Config) (*session.Session, func(), error) {
	store, err := session.NewStore(cfg.Session)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {}
	if sq, ok := store.(*session.SQLiteStore); ok {
		closer = func() { sq.Close() }
	}
	sess, err := session.Open(store, session.WithLogger(logger))
	if err != nil {
		closer()
		return nil, nil, err
	}
	return sess, closer, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
