// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Success, Warning, Error, etc.) rather than visual (RedBold, etc.).
//
// Styling applies to text mk itself prints: help and error lines. The
// output of the external toolchain is never touched.
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/footprint-tools/mk/internal/domain"
)

type role int

const (
	roleSuccess role = iota
	roleWarning
	roleError
	roleInfo
	roleMuted
	roleHeader
	roleCount
)

// Styler implements domain.Styler for one output stream.
//
// The palette is resolved on the first styled render, so a run that never
// prints styled text never queries the terminal.
type Styler struct {
	enabled bool
	out     io.Writer
	palette func() ColorConfig

	once   sync.Once
	styles [roleCount]lipgloss.Style
}

// New creates a Styler with a fixed palette. It respects the NO_COLOR
// convention: if NO_COLOR is set (to any non-empty value), styling is
// disabled regardless of enable.
func New(enable bool, colors ColorConfig) *Styler {
	return NewDeferred(enable, os.Stdout, func() ColorConfig { return colors })
}

// NewDeferred creates a Styler rendering for out whose palette is chosen by
// palette the first time text is styled.
func NewDeferred(enable bool, out io.Writer, palette func() ColorConfig) *Styler {
	if os.Getenv("NO_COLOR") != "" {
		enable = false
	}
	return &Styler{enabled: enable, out: out, palette: palette}
}

func (s *Styler) build() {
	renderer := lipgloss.NewRenderer(s.out)
	// Force ANSI256 regardless of TTY detection; the caller already decided.
	renderer.SetColorProfile(termenv.ANSI256)

	colors := s.palette()
	s.styles[roleSuccess] = makeStyle(renderer, colors.Success)
	s.styles[roleWarning] = makeStyle(renderer, colors.Warning)
	s.styles[roleError] = makeStyle(renderer, colors.Error)
	s.styles[roleInfo] = makeStyle(renderer, colors.Info)
	s.styles[roleMuted] = makeStyle(renderer, colors.Muted)
	s.styles[roleHeader] = makeStyle(renderer, colors.Header)
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(r *lipgloss.Renderer, value string) lipgloss.Style {
	if value == "bold" {
		return r.NewStyle().Bold(true)
	}
	return r.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func (s *Styler) Enabled() bool {
	return s.enabled
}

// Success styles text for successful operations.
func (s *Styler) Success(text string) string {
	return s.render(roleSuccess, text)
}

// Warning styles text for warning messages.
func (s *Styler) Warning(text string) string {
	return s.render(roleWarning, text)
}

// Error styles text for error messages.
func (s *Styler) Error(text string) string {
	return s.render(roleError, text)
}

// Info styles text for informational messages.
func (s *Styler) Info(text string) string {
	return s.render(roleInfo, text)
}

// Muted styles text for secondary information.
func (s *Styler) Muted(text string) string {
	return s.render(roleMuted, text)
}

// Header styles text for section headers or titles.
func (s *Styler) Header(text string) string {
	return s.render(roleHeader, text)
}

func (s *Styler) render(r role, text string) string {
	if !s.enabled {
		return text
	}
	s.once.Do(s.build)
	return s.styles[r].Render(text)
}

// NopStyler is a no-op styler that returns text unchanged.
type NopStyler struct{}

func (NopStyler) Enabled() bool              { return false }
func (NopStyler) Success(text string) string { return text }
func (NopStyler) Warning(text string) string { return text }
func (NopStyler) Error(text string) string   { return text }
func (NopStyler) Info(text string) string    { return text }
func (NopStyler) Muted(text string) string   { return text }
func (NopStyler) Header(text string) string  { return text }

// Verify Styler and NopStyler implement domain.Styler
var _ domain.Styler = (*Styler)(nil)
var _ domain.Styler = NopStyler{}
