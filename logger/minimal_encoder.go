package logger

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// palette holds the ANSI codes for one console theme
type palette struct {
	fg        string
	time      string
	component string
	path      string
	number    string
	warn      string
	warnBg    string
	err       string
	errBg     string
}

// Gruvbox Dark (warm, muted)
var gruvbox = palette{
	fg:        "\x1b[38;5;223m",
	time:      "\x1b[38;5;108m",
	component: "\x1b[38;5;208m",
	path:      "\x1b[38;5;109m",
	number:    "\x1b[38;5;175m",
	warn:      "\x1b[38;5;214m",
	warnBg:    "\x1b[48;5;58m",
	err:       "\x1b[38;5;167m",
	errBg:     "\x1b[48;5;88m",
}

// Everforest Dark (natural greens)
var everforest = palette{
	fg:        "\x1b[38;5;223m",
	time:      "\x1b[38;5;107m",
	component: "\x1b[38;5;108m",
	path:      "\x1b[38;5;109m",
	number:    "\x1b[38;5;108m",
	warn:      "\x1b[38;5;179m",
	warnBg:    "\x1b[48;5;58m",
	err:       "\x1b[38;5;167m",
	errBg:     "\x1b[48;5;52m",
}

// Themes lists the accepted log.theme values
var Themes = []string{"everforest", "gruvbox"}

var currentTheme = "everforest"

// SetTheme configures the color scheme for log output. Unknown names are ignored.
func SetTheme(theme string) {
	if IsTheme(theme) {
		currentTheme = theme
	}
}

// IsTheme reports whether name is a known console theme
func IsTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

func colors() palette {
	if currentTheme == "gruvbox" {
		return gruvbox
	}
	return everforest
}

// minimalEncoder implements a calm, compact console encoder with theme support
// Format: "13:04:35  j.load  Loaded jobs  path=/home/me/jobs.json count=12"
type minimalEncoder struct {
	zapcore.Encoder // Embed a base encoder for field serialization
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{Encoder: enc.Encoder.Clone()}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	c := colors()
	final := buffer.NewPool().Get()

	final.AppendString(c.time)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only shown for WARN and above
	if ent.Level >= zapcore.WarnLevel {
		final.AppendString("  ")
		final.AppendString(levelColorString(ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(c.component)
		final.AppendString(abbreviateName(ent.LoggerName))
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(c.fg)
	final.AppendString(ent.Message)
	final.AppendString(colorReset)

	if len(fields) > 0 {
		if rendered := renderFields(fields); rendered != "" {
			final.AppendString("  ")
			final.AppendString(rendered)
		}
	}

	final.AppendString("\n")
	return final, nil
}

// levelColorString returns bold + colored + background for WARN/ERROR
func levelColorString(level zapcore.Level) string {
	c := colors()
	switch level {
	case zapcore.WarnLevel:
		return colorBold + c.warnBg + c.warn + "WARN" + colorReset
	default:
		return colorBold + c.errBg + c.err + level.CapitalString() + colorReset
	}
}

// abbreviateName shortens component names: jobs.watch -> j.watch
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 && parts[0] != "" {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

// renderFields writes every field as key=value, in key order.
// Fields must never be dropped.
func renderFields(fields []zapcore.Field) string {
	c := colors()

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	if len(enc.Fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := fmt.Sprintf("%v", enc.Fields[k])
		color := c.fg
		switch k {
		case FieldPath, FieldSource:
			color = c.path
		case FieldCount, FieldSize, FieldDurationMS:
			color = c.number
		case FieldError:
			color = c.err
		}
		parts = append(parts, k+"="+color+v+colorReset)
	}
	return strings.Join(parts, " ")
}
