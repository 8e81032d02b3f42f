package render

import (
	"context"
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontPack owns the embedded typefaces used for every text draw. Text must
// never be drawn before Ensure has succeeded, so the pipeline calls Ensure
// up front, before any asset decoding.
type FontPack struct {
	once    sync.Once
	loadErr error
	regular *text.FontSource
	bold    *text.FontSource

	mu    sync.Mutex
	faces map[faceKey]text.Face
}

type faceKey struct {
	bold bool
	size float64
}

var defaultFonts = &FontPack{}

// DefaultFonts returns the process-wide font pack.
func DefaultFonts() *FontPack {
	return defaultFonts
}

// Ensure parses the embedded fonts exactly once. It is the font-readiness
// gate: callers await it before emitting any text instruction.
func (p *FontPack) Ensure(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.once.Do(func() {
		regular, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			p.loadErr = fmt.Errorf("parsing regular font: %w", err)
			return
		}
		bold, err := text.NewFontSource(gobold.TTF)
		if err != nil {
			p.loadErr = fmt.Errorf("parsing bold font: %w", err)
			return
		}
		p.regular = regular
		p.bold = bold
		p.faces = make(map[faceKey]text.Face)
	})
	return p.loadErr
}

// Face returns a cached face for the style. Ensure must have succeeded.
func (p *FontPack) Face(style FontStyle) text.Face {
	p.mu.Lock()
	defer p.mu.Unlock()
	key := faceKey{bold: style.Bold, size: style.Size}
	if f, ok := p.faces[key]; ok {
		return f
	}
	src := p.regular
	if style.Bold {
		src = p.bold
	}
	f := src.Face(style.Size)
	p.faces[key] = f
	return f
}

// Measure returns the width and line height of s in the given style,
// including letter spacing between glyphs. The pipeline sizes label boxes
// from this before any surface exists.
func (p *FontPack) Measure(style FontStyle, s string, letterSpacing float64) (w, h float64) {
	face := p.Face(style)
	w, h = text.Measure(s, face)
	if letterSpacing != 0 {
		runes := []rune(s)
		if n := len(runes); n > 1 {
			w += letterSpacing * float64(n-1)
		}
	}
	return w, h
}
