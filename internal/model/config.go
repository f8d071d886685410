package model

import (
	"runtime"
	"time"
)

// Config holds the complete argstruct configuration
type Config struct {
	Corpus      CorpusConfig      `yaml:"corpus" mapstructure:"corpus"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	IO          IOConfig          `yaml:"io" mapstructure:"io"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Lexicon     LexiconConfig     `yaml:"lexicon" mapstructure:"lexicon"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
}

// CorpusConfig locates the treebank files
type CorpusConfig struct {
	Root       string   `yaml:"root" mapstructure:"root"`             // Directory walked recursively
	Extensions []string `yaml:"extensions" mapstructure:"extensions"` // File extensions to keep (empty = all files)
}

// OutputConfig controls where results are written
type OutputConfig struct {
	Dir     string `yaml:"dir" mapstructure:"dir"`
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
}

// ConcurrencyConfig controls the file worker pool
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// IOConfig throttles corpus reads (0 = unlimited)
type IOConfig struct {
	FilesPerSecond float64 `yaml:"files_per_second" mapstructure:"files_per_second"`
	Burst          int     `yaml:"burst" mapstructure:"burst"`
}

// CacheConfig controls the per-file result cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// LexiconConfig controls how vocabulary lists are read
type LexiconConfig struct {
	Normalize bool `yaml:"normalize" mapstructure:"normalize"` // Apply Unicode NFC to list entries and extracted items
}

// LogConfig is passed to the zerolog setup
type LogConfig struct {
	File  string `yaml:"file" mapstructure:"file"` // Empty = stderr
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Root: "./HDTB/InterChunk/SSF/utf",
		},
		Output: OutputConfig{
			Dir: ".",
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		IO: IOConfig{
			FilesPerSecond: 0,
			Burst:          5,
		},
		Cache: CacheConfig{
			Enabled:   false,
			Dir:       ".argstruct-cache",
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   7 * 24 * time.Hour,
		},
		Lexicon: LexiconConfig{
			Normalize: false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
