package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/sstring"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls the rendition of a dump.
type Config struct {
	// Width is the maximum display width of the content part in ‘en’s.
	// Values <= 0 mean unlimited.
	Width int
	// Context is the East Asian width context used for measuring text.
	// If nil, uax11.LatinContext is used.
	Context *uax11.Context
}

// Palette maps the parts of a dump line to colors.
type Palette struct {
	Frame   *color.Color // braces, labels and quotes
	Address *color.Color
	Content *color.Color
	Escape  *color.Color // escaped non-printable bytes
	Number  *color.Color
}

// DefaultPalette returns the palette used if none is given.
func DefaultPalette() *Palette {
	return &Palette{
		Frame:   color.New(color.Reset),
		Address: color.New(color.Faint),
		Content: color.New(color.FgGreen),
		Escape:  color.New(color.FgYellow),
		Number:  color.New(color.FgCyan),
	}
}

// Dumper writes colored dump lines.
type Dumper struct {
	palette *Palette
	config  *Config
}

// NewDumper creates a dumper. If palette is nil, DefaultPalette is used.
// If config is nil, a configuration is derived from the terminal.
func NewDumper(palette *Palette, config *Config) *Dumper {
	if palette == nil {
		palette = DefaultPalette()
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	return &Dumper{palette: palette, config: config}
}

// Dump writes a dump line for s to stderr, using a terminal-derived
// configuration and the default palette.
func Dump(s *sstring.Str) {
	NewDumper(nil, nil).Dump(os.Stderr, s)
}

// Dump writes a dump line for s to w.
func (d *Dumper) Dump(w io.Writer, s *sstring.Str) {
	p := d.palette
	p.Frame.Fprint(w, "{ sstr(")
	p.Address.Fprint(w, s.Address())
	p.Frame.Fprint(w, "): \"")
	for _, tok := range d.truncate(tokenize(s.Bytes())) {
		if tok.escaped {
			p.Escape.Fprint(w, tok.text)
		} else {
			p.Content.Fprint(w, tok.text)
		}
	}
	p.Frame.Fprint(w, "\", cap: ")
	p.Number.Fprint(w, s.Cap())
	p.Frame.Fprint(w, ", len: ")
	p.Number.Fprint(w, s.Len())
	p.Frame.Fprint(w, " }\n")
}

// --- Content tokens --------------------------------------------------------

type token struct {
	text    string
	escaped bool
	width   int
}

var setupGraphemes sync.Once

// tokenize splits content into printable runs of UTF-8 and escape sequences
// for bytes which are not printable or not valid UTF-8.
func tokenize(b []byte) []token {
	var toks []token
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			toks = append(toks, token{text: run.String()})
			run.Reset()
		}
	}
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if (r == utf8.RuneError && size <= 1) || !unicode.IsPrint(r) || r == '"' || r == '\\' {
			flush()
			for _, c := range b[:size] {
				esc := escape(c)
				toks = append(toks, token{text: esc, escaped: true, width: len(esc)})
			}
		} else {
			run.Write(b[:size])
		}
		b = b[size:]
	}
	flush()
	return toks
}

func escape(c byte) string {
	switch c {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	case 0:
		return `\0`
	case '"':
		return `\"`
	case '\\':
		return `\\`
	}
	return fmt.Sprintf(`\x%02x`, c)
}

// truncate cuts tokens to the configured display width. If anything has to
// be cut off, one cell is kept for the trailing ellipsis.
func (d *Dumper) truncate(toks []token) []token {
	limit := d.config.Width
	if limit <= 0 {
		return toks
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	total := 0
	for i := range toks {
		if !toks[i].escaped {
			toks[i].width = d.width(toks[i].text)
		}
		total += toks[i].width
	}
	if total <= limit {
		return toks
	}
	room := limit - 1
	used := 0
	out := make([]token, 0, len(toks))
	for i, tok := range toks {
		if used+tok.width <= room {
			used += tok.width
			out = append(out, tok)
			continue
		}
		if !tok.escaped {
			if prefix := d.prefix(tok.text, room-used); prefix != "" {
				out = append(out, token{text: prefix})
			}
		}
		tracer().Debugf("console: content truncated at token %d of %d", i, len(toks))
		break
	}
	return append(out, token{text: "…", escaped: true, width: 1})
}

func (d *Dumper) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), d.config.Context)
}

// prefix returns the longest prefix of s, cut at a rune boundary, which
// has a display width of at most w.
func (d *Dumper) prefix(s string, w int) string {
	if w <= 0 {
		return ""
	}
	best := ""
	for i := range s {
		if i == 0 {
			continue
		}
		if d.width(s[:i]) > w {
			break
		}
		best = s[:i]
	}
	if d.width(s) <= w {
		best = s
	}
	return best
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a dump Config.
// It checks whether stderr is a terminal, and if so it reads the terminal's
// width and sets Config.Width to leave room for the frame of a dump line.
func ConfigFromTerminal() *Config {
	config := &Config{Context: uax11.ContextFromEnvironment()}
	fd := int(os.Stderr.Fd())
	if !term.IsTerminal(fd) {
		return config // not interactive: do not truncate
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		config.Width = 65
	} else if w > 80 {
		config.Width = w - 50
	} else {
		config.Width = 30
	}
	tracer().Infof("console: setting dump width to %d en", config.Width)
	return config
}
