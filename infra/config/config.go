package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudcopper/cardlist/lib"
	"github.com/cloudcopper/cardlist/lib/types"
	"github.com/cloudcopper/cardlist/ports"
	tpl "github.com/cloudcopper/misc/env/template"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Deck DeckConfig `yaml:"deck"`
	View ViewConfig `yaml:"view"`
	Api  ApiConfig  `yaml:"api"`
}

type DeckConfig struct {
	Count   int            `yaml:"count" validate:"min=0,max=10000"`
	Keep    int            `yaml:"keep" validate:"min=1,max=100"`
	Refresh types.Duration `yaml:"refresh" validate:"min=0"` // 0 - never
	Seed    int64          `yaml:"seed"`                     // 0 - by time
}

type ViewConfig struct {
	PerPage     int `yaml:"perPage" validate:"min=1,max=1000"`
	FixedHeight int `yaml:"fixedHeight" validate:"min=40,max=2000"` // px
}

type ApiConfig struct {
	MaxCount int `yaml:"maxCount" validate:"min=1,max=100000"`
}

func (c *Config) String() string {
	s := ""
	s += "deck:\n"
	s += fmt.Sprintf("    count: %v\n", c.Deck.Count)
	s += fmt.Sprintf("    keep: %v\n", c.Deck.Keep)
	s += fmt.Sprintf("    refresh: %v\n", c.Deck.Refresh)
	if c.Deck.Seed == 0 {
		s += fmt.Sprintf("    #seed: %v\n", c.Deck.Seed)
	} else {
		s += fmt.Sprintf("    seed: %v\n", c.Deck.Seed)
	}
	s += "view:\n"
	s += fmt.Sprintf("    perPage: %v\n", c.View.PerPage)
	s += fmt.Sprintf("    fixedHeight: %v\n", c.View.FixedHeight)
	s += "api:\n"
	s += fmt.Sprintf("    maxCount: %v\n", c.Api.MaxCount)
	return strings.TrimSuffix(s, "\n")
}

var (
	Listen                = ":8080"
	ConfigFileName        = "cardlist.yml"
	TopRootFileSystemPath = ""
)

// Default returns configuration used when there is no config file
func Default() *Config {
	return &Config{
		Deck: DeckConfig{
			Count: 30,
			Keep:  2,
		},
		View: ViewConfig{
			PerPage:     20,
			FixedHeight: 120,
		},
		Api: ApiConfig{
			MaxCount: 1000,
		},
	}
}

// LoadConfig reads ConfigFileName from current directory or from given fs.
// Missing file gives default configuration.
func LoadConfig(log ports.Logger, f fs.ReadFileFS) (*Config, error) {
	config, err := loadConfig(log, f, ConfigFileName)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("no config file - use defaults", slog.String("fileName", ConfigFileName))
		config, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}
	if err := lib.NewValidator().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// dump effective config
	dump := strings.Split(config.String(), "\n")
	for _, s := range dump {
		log.Debug(s)
	}
	return config, nil
}

// ConfigFilePath returns abs path of config file in os filesystem
// or empty string when the config is not there (embedded or missing)
func ConfigFilePath() string {
	path, err := filepath.Abs(ConfigFileName)
	if err != nil {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// The loadConfig reads named config file from os or from given fs,
// execute file as env template,
// and unmarshal result over the default config
func loadConfig(log ports.Logger, f fs.ReadFileFS, fileName string) (*Config, error) {
	log.Info("loading config", slog.String("fileName", fileName))
	blob, err := os.ReadFile(fileName)
	if err != nil {
		blob, err = f.ReadFile(fileName)
		if err != nil {
			return nil, err
		}
	}

	// parse config as template
	t, err := tpl.Parse(string(blob))
	if err != nil {
		return nil, err
	}
	// execute template
	s, err := t.Execute()
	if err != nil {
		return nil, err
	}

	// unmrashal config
	cfg := Default()
	err = yaml.Unmarshal([]byte(s), cfg)
	return cfg, err
}
