// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/bencyn-cli/bencyn/color"
	"github.com/bencyn-cli/bencyn/constant"
	"github.com/bencyn-cli/bencyn/key"
	"github.com/bencyn-cli/bencyn/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string

	// Rule constrains accepted values, in validator tag syntax. Empty means anything of the right type.
	Rule string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Bencyn + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Rule        string `json:"rule,omitempty"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Rule:        f.Rule,
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, rule, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc, Rule: rule}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.APIBaseURL, "http://localhost:8000", "required,http_url", "Base URL of the content API.\nEvery resource path is appended to it, e.g. <base>/api/blog-posts/")
	register(key.APITimeout, 30, "min=1,max=600", "Request timeout in seconds.\nA request that has not settled after this long fails with a timeout")
	register(key.ThumbnailEnable, true, "", "Extract thumbnails for uploaded gallery videos that have none")
	register(key.ThumbnailFFmpeg, "ffmpeg", "required", "ffmpeg executable used to decode video frames")
	register(key.ThumbnailFFprobe, "ffprobe", "required", "ffprobe executable used to read video dimensions")
	register(key.ThumbnailQuality, 80, "min=1,max=100", "JPEG quality of generated thumbnails. From 1 to 100")
	register(key.IconsVariant, "plain", "oneof=emoji kaomoji plain squares nerd", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "", "Write logs")
	register(key.LogsLevel, "info", "oneof=panic fatal error warn info debug trace", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "", "Use json format for logs")
	register(key.TUIItemSpacing, 1, "min=0,max=4", "Spacing between items in the TUI")
	register(key.TUIShowURLs, true, "", "Show URLs under list items")
	register(key.CliColored, true, "", "Enable colored CLI output")
	register(key.CliVersionCheck, true, "", "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}{{ if .Rule }}
{{ blue "Rule:" }}    {{ cyan .Rule }}{{ end }}`))
