package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "MAZEHUNT"

	cfgKeyDataDir           = "data_dir"
	cfgKeyRows              = "rows"
	cfgKeyCols              = "cols"
	cfgKeySeed              = "seed"
	cfgKeyCapacity          = "capacity"
	cfgKeyAlgorithm         = "algorithm"
	cfgKeyEntrance          = "entrance"
	cfgKeyExit              = "exit"
	cfgKeyOut               = "out"
	cfgKeyMaxRecursiveItems = "max_recursive_items"
	cfgKeyMaxTableCells     = "max_table_cells"
	cfgKeyCount             = "treasures.count"
	cfgKeyMinWeight         = "treasures.min_weight"
	cfgKeyMaxWeight         = "treasures.max_weight"
	cfgKeyMinValue          = "treasures.min_value"
	cfgKeyMaxValue          = "treasures.max_value"
	cfgKeyCommonProb        = "treasures.common_prob"
)

// flagKeys maps command-line flags to the config keys they override.
var flagKeys = map[string]string{
	"data-dir":            cfgKeyDataDir,
	"rows":                cfgKeyRows,
	"cols":                cfgKeyCols,
	"seed":                cfgKeySeed,
	"capacity":            cfgKeyCapacity,
	"algorithm":           cfgKeyAlgorithm,
	"entrance":            cfgKeyEntrance,
	"exit":                cfgKeyExit,
	"out":                 cfgKeyOut,
	"max-recursive-items": cfgKeyMaxRecursiveItems,
	"max-table-cells":     cfgKeyMaxTableCells,
	"items":               cfgKeyCount,
	"min-weight":          cfgKeyMinWeight,
	"max-weight":          cfgKeyMaxWeight,
	"min-value":           cfgKeyMinValue,
	"max-value":           cfgKeyMaxValue,
	"common-prob":         cfgKeyCommonProb,
}

type treasureConfig struct {
	Count      int     `yaml:"count"`
	MinWeight  int     `yaml:"min_weight"`
	MaxWeight  int     `yaml:"max_weight"`
	MinValue   int     `yaml:"min_value"`
	MaxValue   int     `yaml:"max_value"`
	CommonProb float32 `yaml:"common_prob"`
}

// fileConfig is the layout of config.yaml.
type fileConfig struct {
	DataDir           string         `yaml:"data_dir"`
	Rows              int            `yaml:"rows"`
	Cols              int            `yaml:"cols"`
	Seed              int64          `yaml:"seed"`
	Capacity          int            `yaml:"capacity"`
	Algorithm         string         `yaml:"algorithm"`
	Entrance          string         `yaml:"entrance"`
	Exit              string         `yaml:"exit"` // empty means the corner opposite (0, 0)
	Out               string         `yaml:"out"`  // diagnostics directory, empty to skip
	MaxRecursiveItems int            `yaml:"max_recursive_items"`
	MaxTableCells     int            `yaml:"max_table_cells"`
	Treasures         treasureConfig `yaml:"treasures"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		DataDir:           ".mazehunt",
		Rows:              10,
		Cols:              10,
		Seed:              1,
		Capacity:          20,
		Algorithm:         "dynamic",
		Entrance:          "0,0",
		MaxRecursiveItems: 22,
		MaxTableCells:     4_000_000,
		Treasures: treasureConfig{
			Count:      10,
			MinWeight:  1,
			MaxWeight:  10,
			MinValue:   5,
			MaxValue:   50,
			CommonProb: 0.9,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := defaultFileConfig()
	v.SetDefault(cfgKeyDataDir, d.DataDir)
	v.SetDefault(cfgKeyRows, d.Rows)
	v.SetDefault(cfgKeyCols, d.Cols)
	v.SetDefault(cfgKeySeed, d.Seed)
	v.SetDefault(cfgKeyCapacity, d.Capacity)
	v.SetDefault(cfgKeyAlgorithm, d.Algorithm)
	v.SetDefault(cfgKeyEntrance, d.Entrance)
	v.SetDefault(cfgKeyExit, d.Exit)
	v.SetDefault(cfgKeyOut, d.Out)
	v.SetDefault(cfgKeyMaxRecursiveItems, d.MaxRecursiveItems)
	v.SetDefault(cfgKeyMaxTableCells, d.MaxTableCells)
	v.SetDefault(cfgKeyCount, d.Treasures.Count)
	v.SetDefault(cfgKeyMinWeight, d.Treasures.MinWeight)
	v.SetDefault(cfgKeyMaxWeight, d.Treasures.MaxWeight)
	v.SetDefault(cfgKeyMinValue, d.Treasures.MinValue)
	v.SetDefault(cfgKeyMaxValue, d.Treasures.MaxValue)
	v.SetDefault(cfgKeyCommonProb, d.Treasures.CommonProb)
}

// loadConfig resolves settings with the precedence flag > MAZEHUNT_* env >
// config file > defaults. An explicit path must exist; without one a missing
// config.yaml in the working directory is not an error.
func loadConfig(path string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
				bindErr = v.BindPFlag(key, f)
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("bind flags: %w", bindErr)
		}
	}

	return v, nil
}

// writeDefaultConfig writes the default settings as YAML. An existing file is
// only replaced when force is set.
func writeDefaultConfig(path string, force bool) error {
	if path == "" {
		path = configFileExt
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	out, err := yaml.Marshal(defaultFileConfig())
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, out, 0o644)
}
