package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Loaded bundles both typed configs as read from a single source.
type Loaded struct {
	Parser    ParserConfig
	Directory DirectoryConfig
}

// Load reads ParserConfig and DirectoryConfig from an optional config file
// (path may be empty to skip it), environment variables prefixed CRI_ (the
// section and key joined by "_", e.g. CRI_PARSER_MAX_FILE_SIZE), and the
// defaults in this package, in that precedence order: defaults < file < env. It never touches the core's own behavior — only collaborator-side
// config loading, per spec §6.
func Load(configPath string) (Loaded, error) {
	v := viper.New()
	v.SetEnvPrefix("CRI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("parser", structToMap(DefaultParserConfig()))
	v.SetDefault("directory", structToMap(DefaultDirectoryConfig()))

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Loaded{}, fmt.Errorf("config: read %s: %w", configPath, err)
		}
	}

	// Unmarshal goes through AllSettings, which resolves every leaf key
	// separately, so a file that sets only some keys of a section keeps the
	// defaults for the rest.
	var out Loaded
	if err := v.Unmarshal(&out); err != nil {
		return Loaded{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return out, nil
}

// structToMap round-trips a config struct through JSON so viper's default
// layer sees plain map keys matching the mapstructure tags, without a
// reflection dependency of its own.
func structToMap(value any) map[string]any {
	data, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	out := map[string]any{}
	_ = json.Unmarshal(data, &out)
	return out
}
