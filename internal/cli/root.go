package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/argstruct/internal/model"
)

// Version is set at build time
var Version = "v0.1.0"

var (
	cfgFile    string
	verbose    bool
	runTimeout time.Duration

	// cfg is the effective configuration, loaded before every command
	cfg   *model.Config
	runID string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "argstruct",
	Short: "Argstruct - argument structure statistics for SSF treebanks",
	Long: `Argstruct extracts argument structures from a dependency treebank in
SSF notation (Hindi Dependency Treebank, InterChunk layer).

It lists unmarked (non-DOM) objects, ergative subjects and intransitive
verbs, estimates how likely the subject of an intransitive verb is animate,
and counts the light verbs combining with intransitive verbs.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "argstruct %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.argstruct/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.String("corpus", "./HDTB/InterChunk/SSF/utf", "treebank root directory")
	flags.String("output-dir", ".", "directory for result files")
	flags.Int("workers", runtime.NumCPU(), "number of concurrent file workers")
	flags.Bool("cache", false, "cache per-file extractions on disk")
	flags.Bool("normalize", false, "apply Unicode NFC to vocabulary lists and corpus text")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "log file (default: stderr)")
	flags.DurationVar(&runTimeout, "timeout", 30*time.Minute, "total timeout for corpus processing")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("corpus.root", flags.Lookup("corpus"))
	_ = viper.BindPFlag("output.dir", flags.Lookup("output-dir"))
	_ = viper.BindPFlag("concurrency.workers", flags.Lookup("workers"))
	_ = viper.BindPFlag("cache.enabled", flags.Lookup("cache"))
	_ = viper.BindPFlag("lexicon.normalize", flags.Lookup("normalize"))
	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("log.file", flags.Lookup("log-file"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(filepath.Join(home, ".argstruct"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match ARGSTRUCT_* (ARGSTRUCT_OUTPUT_DIR, ...)
	viper.SetEnvPrefix("ARGSTRUCT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig merges defaults, config file, environment and flags
func loadConfig(v *viper.Viper) (*model.Config, error) {
	c := model.DefaultConfig()
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	if c.Concurrency.Workers <= 0 {
		c.Concurrency.Workers = 1
	}
	return c, nil
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	cfg = c

	logging.SetupLogging(cfg.Log.File, logging.LogLevel(cfg.Log.Level))
	runID = uuid.New().String()
	log.Logger = log.Logger.With().Str("run", runID).Logger()
	log.Debug().Str("command", cmd.Name()).Msg("configuration loaded")
	return nil
}
