package debugscreens

import (
	"fmt"
	"sort"
)

// PluginAPI is the part of the host build tool the overlay needs
type PluginAPI interface {
	// Theme returns the theme value at a dotted path, or def when absent
	Theme(path string, def any) any
	// AddComponents registers generated rules keyed by selector
	AddComponents(components map[string]*StyleTree)
}

// Theme paths read by the plugin
const (
	ThemeScreens  = "screens"
	ThemeStyle    = "debugScreens.style"
	ThemeIgnore   = "debugScreens.ignore"
	ThemePrefix   = "debugScreens.prefix"
	ThemeSelector = "debugScreens.selector"
	ThemePosition = "debugScreens.position"
)

// Plugin is a host plugin function
type Plugin func(api PluginAPI)

// Handler is the direct-call plugin entry: it reads the theme, generates the
// overlay and registers it exactly once.
func Handler(api PluginAPI) {
	New()(api)
}

// PluginOption configures a Plugin built with New
type PluginOption func(*pluginConfig)

type pluginConfig struct {
	defaults   Options
	production bool
	warn       func(string)
}

// WithOptions sets defaults used when the theme has no value for a field
func WithOptions(opts Options) PluginOption {
	return func(c *pluginConfig) {
		c.defaults = opts
	}
}

// WithProduction disables registration entirely when production is true
func WithProduction(production bool) PluginOption {
	return func(c *pluginConfig) {
		c.production = production
	}
}

// WithWarn receives host diagnostics such as an empty breakpoint set
func WithWarn(fn func(string)) PluginOption {
	return func(c *pluginConfig) {
		c.warn = fn
	}
}

// New returns a plugin in the factory style, for hosts that expect the
// plugin to be configured up front and called later with the API.
func New(opts ...PluginOption) Plugin {
	cfg := pluginConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(api PluginAPI) {
		if cfg.production {
			return
		}

		screens, options := optionsFromTheme(api, cfg.defaults.Resolve())
		if len(screens) == 0 && cfg.warn != nil {
			cfg.warn("debug screens: no screens found in theme, only the base rule is generated")
		}

		tree := Generate(screens, options)
		api.AddComponents(map[string]*StyleTree{tree.Selector: tree})
	}
}

// OptionsFromTheme reads the breakpoint set and presentation options from
// the host theme, falling back on the documented defaults.
func OptionsFromTheme(api PluginAPI) (Screens, Options) {
	return optionsFromTheme(api, Options{}.Resolve())
}

func optionsFromTheme(api PluginAPI, def Options) (Screens, Options) {
	screens := toScreens(api.Theme(ThemeScreens, Screens{}))

	opts := def
	if style, ok := toStringMap(api.Theme(ThemeStyle, def.Style)); ok {
		opts.Style = style
	}
	if ignore, ok := toStrings(api.Theme(ThemeIgnore, def.Ignore)); ok {
		opts.Ignore = ignore
	}
	if prefix, ok := api.Theme(ThemePrefix, *def.Prefix).(string); ok {
		opts.Prefix = &prefix
	}
	if selector, ok := api.Theme(ThemeSelector, def.Selector).(string); ok && selector != "" {
		opts.Selector = selector
	}
	if pos, ok := toStrings(api.Theme(ThemePosition, []string{def.Position.Y, def.Position.X})); ok {
		opts.Position = Position{}
		if len(pos) > 0 {
			opts.Position.Y = pos[0]
		}
		if len(pos) > 1 {
			opts.Position.X = pos[1]
		}
		if opts.Position.Y == "" {
			opts.Position.Y = def.Position.Y
		}
		if opts.Position.X == "" {
			opts.Position.X = def.Position.X
		}
	}

	return screens, opts
}

// toScreens accepts the shapes a host may hand back for "screens".
// Plain maps carry no order, so they are sorted by pixel width, then name.
func toScreens(v any) Screens {
	switch s := v.(type) {
	case Screens:
		return s
	case []Screen:
		return Screens(s)
	case map[string]string:
		m := make(map[string]any, len(s))
		for k, size := range s {
			m[k] = size
		}
		return screensFromMap(m)
	case map[string]any:
		return screensFromMap(s)
	default:
		return nil
	}
}

func screensFromMap(m map[string]any) Screens {
	out := make(Screens, 0, len(m))
	for name, v := range m {
		size, _ := v.(string)
		out = append(out, Screen{Name: name, Size: size})
	}

	sort.SliceStable(out, func(i, j int) bool {
		wi, wj := pixelWidth(out[i].Size), pixelWidth(out[j].Size)
		if wi != wj {
			return wi < wj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// pixelWidth is a sort key only; sizes it cannot read sort last
func pixelWidth(size string) int {
	if px := SizeInPixels(size); px != "" {
		size = px
	}
	if n, ok := leadingInt(size); ok {
		return n
	}
	return int(^uint(0) >> 1)
}

func toStringMap(v any) (map[string]string, bool) {
	switch m := v.(type) {
	case map[string]string:
		return m, true
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, val := range m {
			switch val := val.(type) {
			case string:
				out[k] = val
			case int, int64, float64:
				out[k] = fmt.Sprint(val)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func toStrings(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case [2]string:
		return s[:], true
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			// Non-strings keep their slot so position pairs stay aligned
			str, _ := item.(string)
			out = append(out, str)
		}
		return out, true
	default:
		return nil, false
	}
}
