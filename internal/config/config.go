package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/example/go-mini-bpe/internal/tokenizer"
)

type Config struct {
	Vocab    VocabConfig  `mapstructure:"vocab"`
	Corpus   CorpusConfig `mapstructure:"corpus"`
	LogLevel string       `mapstructure:"log_level"`
}

type VocabConfig struct {
	// Size is the target vocabulary size, counting the 256 byte symbols.
	Size int `mapstructure:"size"`
	// Path is where trained vocabularies are saved and loaded from.
	Path string `mapstructure:"path"`
}

type CorpusConfig struct {
	// Repo is the default dataset repository for corpus fetches.
	Repo string `mapstructure:"repo"`
	// Dir is the local directory fetched corpora land in.
	Dir string `mapstructure:"dir"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Vocab: VocabConfig{
			Size: tokenizer.DefaultVocabSize,
			Path: "vocab.bin",
		},
		Corpus: CorpusConfig{
			Repo: "phiyodr/coco2017",
			Dir:  "corpus",
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.Int("vocab-size", defaults.Vocab.Size, "Target vocabulary size including the 256 byte symbols")
	fs.String("vocab-path", defaults.Vocab.Path, "Path of the vocabulary file to save/load")
	fs.String("corpus-repo", defaults.Corpus.Repo, "Dataset repository for corpus fetches")
	fs.String("corpus-dir", defaults.Corpus.Dir, "Local directory for fetched corpora")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("MINIBPE")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("minibpe")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("vocab.size", c.Vocab.Size)
	v.SetDefault("vocab.path", c.Vocab.Path)
	v.SetDefault("corpus.repo", c.Corpus.Repo)
	v.SetDefault("corpus.dir", c.Corpus.Dir)
	v.SetDefault("log_level", c.LogLevel)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("vocab.size", "vocab-size")
	v.RegisterAlias("vocab.path", "vocab-path")
	v.RegisterAlias("corpus.repo", "corpus-repo")
	v.RegisterAlias("corpus.dir", "corpus-dir")
	v.RegisterAlias("log_level", "log-level")
}
