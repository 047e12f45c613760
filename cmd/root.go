package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Bitlatte/brochure/internal/config"
)

var cfgFile string
var debug bool
var appConfig config.Config
var configUsed string
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "brochure",
	Short: "Builds the church brochure page",
	Long: `brochure reads the church's events data file and slideshow folder and
writes a single static HTML page with the sidebar tabs, rotating messages and
background slideshow. Running it without a subcommand performs a build.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(cmd); err != nil {
			return err
		}
		return initializeLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd.Context())
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./brochure.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func initializeConfig(_ *cobra.Command) error {
	// A .env file is optional; it only feeds the BROCHURE_ variables below.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	v := newViper()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("brochure")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	} else {
		configUsed = v.ConfigFileUsed()
	}

	cfg, err := decodeConfig(v)
	if err != nil {
		return err
	}
	if debug {
		cfg.Debug = true
	}
	appConfig = cfg
	return nil
}

// newViper returns a viper instance with every default set and environment
// overrides enabled, e.g. BROCHURE_OUTPUTFILE=public/index.html.
func newViper() *viper.Viper {
	v := viper.New()

	d := config.Defaults()
	v.SetDefault("dataFile", d.DataFile)
	v.SetDefault("imagesDir", d.ImagesDir)
	v.SetDefault("outputFile", d.OutputFile)
	v.SetDefault("announcementsDir", d.AnnouncementsDir)
	v.SetDefault("logoPath", d.LogoPath)
	v.SetDefault("videosDir", d.VideosDir)
	v.SetDefault("mapURL", d.MapURL)
	v.SetDefault("testimonyEmail", d.TestimonyEmail)
	v.SetDefault("markdown", d.Markdown)
	v.SetDefault("debug", d.Debug)

	v.SetEnvPrefix("BROCHURE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func decodeConfig(v *viper.Viper) (config.Config, error) {
	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return cfg, nil
}

func initializeLogger() error {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	zc.DisableStacktrace = true
	if appConfig.Debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	logger = l
	if configUsed != "" {
		logger.Info("Using config file", zap.String("path", configUsed))
	}
	return nil
}
