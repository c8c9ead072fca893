package main

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/yacobolo/debugscreens"
)

const defaultConfigPath = ".debugscreens.yaml"

var k = koanf.New(".")

// Flags read straight from the flag set: they are ordered lists of
// name=value pairs that koanf would flatten.
var pairFlags = map[string]bool{
	"screen": true,
	"style":  true,
}

// loadConfig loads configuration with precedence: flags > env > .env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence, only flags that were explicitly set)
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed || pairFlags[f.Name] {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. .env file; never overrides variables set before the first load
	if err := loadDotEnv(".env"); err != nil {
		return err
	}

	// 3. Environment variables (DEBUGSCREENS_* prefix)
	if err := k.Load(env.Provider("DEBUGSCREENS_", ".", func(s string) string {
		// DEBUGSCREENS_PREFIX -> prefix
		// DEBUGSCREENS_GENERATE_OUTPUT -> generate.output
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "DEBUGSCREENS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

var (
	// Variables set before the first .env load; .env never overrides them
	presetEnv     map[string]bool
	presetEnvOnce sync.Once

	// Keys currently applied from .env
	dotEnvKeys = map[string]bool{}
)

// loadDotEnv applies the variables of a .env file to the process
// environment. It can be called again after the file changes: edited keys
// take their new value and keys removed from the file are unset.
func loadDotEnv(path string) error {
	presetEnvOnce.Do(func() {
		presetEnv = make(map[string]bool)
		for _, kv := range os.Environ() {
			name, _, _ := strings.Cut(kv, "=")
			presetEnv[name] = true
		}
	})

	vars := map[string]string{}
	if _, err := os.Stat(path); err == nil {
		read, err := godotenv.Read(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		vars = read
	}

	for key := range dotEnvKeys {
		if _, ok := vars[key]; !ok {
			_ = os.Unsetenv(key)
			delete(dotEnvKeys, key)
		}
	}

	for key, value := range vars {
		if presetEnv[key] {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		dotEnvKeys[key] = true
	}
	return nil
}

// loadScreensFromPath reads the ordered "screens" mapping from the config
// file. koanf stores mappings as Go maps, which lose breakpoint order.
func loadScreensFromPath(configPath string) (debugscreens.Screens, error) {
	// #nosec G304 - path comes from the --config flag
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	var doc struct {
		Screens debugscreens.Screens `yaml:"screens"`
	}
	if err := yamlv3.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing screens in %s: %w", configPath, err)
	}
	return doc.Screens, nil
}

// generateConfig is everything the generate and screens commands need
type generateConfig struct {
	Screens    debugscreens.Screens // From the config file, then --screen flags
	Themes     []string             // Tailwind v4 theme stylesheets (globs)
	Options    debugscreens.Options
	Output     string // "" or "-" writes to stdout
	Format     debugscreens.OutputFormat
	Production bool
	Verbose    bool
	Quiet      bool
	Color      bool
}

// buildGenerateConfig constructs the generate settings from koanf state,
// the ordered screens of the config file and the pair flags of cmd.
func buildGenerateConfig(cmd *cobra.Command, configPath string) (generateConfig, error) {
	screens, err := loadScreensFromPath(configPath)
	if err != nil {
		return generateConfig{}, err
	}

	flagScreens, err := screenFlags(cmd)
	if err != nil {
		return generateConfig{}, err
	}
	for _, s := range flagScreens {
		screens.Set(s.Name, s.Size)
	}

	opts, err := buildOptions(cmd)
	if err != nil {
		return generateConfig{}, err
	}

	return generateConfig{
		Screens:    screens,
		Themes:     getListWithFallback("theme", "generate.themes"),
		Options:    opts,
		Output:     getStringWithFallback("output", "generate.output", ""),
		Format:     debugscreens.DetermineOutputFormat(getStringWithFallback("format", "generate.format", "css")),
		Production: isProduction(),
		Verbose:    getBoolWithFallback("verbose", "verbose", false),
		Quiet:      getBoolWithFallback("quiet", "quiet", false),
		Color:      getBoolWithFallback("color", "color", false),
	}, nil
}

// buildOptions resolves the overlay options. Unset fields stay zero so
// debugscreens.Options.Resolve applies the documented defaults.
func buildOptions(cmd *cobra.Command) (debugscreens.Options, error) {
	opts := debugscreens.Options{
		Selector: getStringWithFallback("selector", "debugScreens.selector", ""),
	}

	if k.Exists("prefix") {
		opts.Prefix = debugscreens.StringPtr(k.String("prefix"))
	} else if k.Exists("debugScreens.prefix") {
		opts.Prefix = debugscreens.StringPtr(k.String("debugScreens.prefix"))
	}

	if k.Exists("ignore") || k.Exists("debugScreens.ignore") {
		opts.Ignore = getListWithFallback("ignore", "debugScreens.ignore")
	}

	if pos := getListWithFallback("position", "debugScreens.position"); len(pos) > 0 {
		opts.Position.Y = pos[0]
		if len(pos) > 1 {
			opts.Position.X = pos[1]
		}
	}

	style := map[string]string{}
	for prop, val := range k.StringMap("debugScreens.style") {
		style[prop] = val
	}
	pairs, err := cmd.Flags().GetStringArray("style")
	if err != nil {
		return opts, fmt.Errorf("reading --style: %w", err)
	}
	for _, pair := range pairs {
		prop, val, err := splitPair(pair, "--style")
		if err != nil {
			return opts, err
		}
		style[prop] = val
	}
	if len(style) > 0 {
		opts.Style = style
	}

	return opts, nil
}

// screenFlags parses repeated --screen name=size flags, in order
func screenFlags(cmd *cobra.Command) (debugscreens.Screens, error) {
	pairs, err := cmd.Flags().GetStringArray("screen")
	if err != nil {
		return nil, fmt.Errorf("reading --screen: %w", err)
	}

	var screens debugscreens.Screens
	for _, pair := range pairs {
		name, size, err := splitPair(pair, "--screen")
		if err != nil {
			return nil, err
		}
		screens.Set(name, size)
	}
	return screens, nil
}

// splitPair splits "name=value"; the value may be empty
func splitPair(pair, flag string) (string, string, error) {
	name, value, ok := strings.Cut(pair, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", fmt.Errorf("invalid %s %q: expected name=value", flag, pair)
	}
	return name, strings.TrimSpace(value), nil
}

// isProduction reports whether generation is disabled for production builds
func isProduction() bool {
	if getBoolWithFallback("production", "production", false) {
		return true
	}
	return os.Getenv("NODE_ENV") == "production"
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getListWithFallback checks the flag key first, then the config file key.
// Comma-separated strings (from env vars) are split.
func getListWithFallback(flagKey, configKey string) []string {
	for _, key := range []string{flagKey, configKey} {
		if !k.Exists(key) {
			continue
		}
		return toList(k.Get(key))
	}
	return nil
}

func toList(v interface{}) []string {
	switch v := v.(type) {
	case string:
		if v == "" {
			return []string{}
		}
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return []string{}
	}
}
