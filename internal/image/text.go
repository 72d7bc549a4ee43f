package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// baselineRatio places the baseline this many font sizes below the vertical
// center of the text box.
const baselineRatio = 0.35

type Weight int

const (
	Regular Weight = iota
	Bold
	// Heavy is bold with a second pass one pixel to the right.
	Heavy
)

type Align int

const (
	Left Align = iota
	Center
	Right
)

type TextOptions struct {
	Size          float64
	Weight        Weight
	Color         color.NRGBA
	Align         Align
	LetterSpacing float64
}

var (
	regularFont = sync.OnceValues(func() (*opentype.Font, error) { return opentype.Parse(goregular.TTF) })
	boldFont    = sync.OnceValues(func() (*opentype.Font, error) { return opentype.Parse(gobold.TTF) })
)

func newFace(size float64, w Weight) (font.Face, error) {
	load := regularFont
	if w != Regular {
		load = boldFont
	}
	f, err := load()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

// DrawText renders s on a transparent w x h image as a single line. The line
// is vertically centered with a baseline offset proportional to the font size
// and horizontally placed per the alignment. Glyphs outside the box are clipped.
func DrawText(w, h int, s string, o TextOptions) (*image.NRGBA, error) {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if s == "" || o.Size <= 0 {
		return dst, nil
	}
	// Faces are not safe for concurrent use, so each call gets its own.
	face, err := newFace(o.Size, o.Weight)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	spacing := toFixed(o.LetterSpacing)
	width := measure(face, s, spacing)

	var x fixed.Int26_6
	switch o.Align {
	case Center:
		x = (fixed.I(w) - width) / 2
	case Right:
		x = fixed.I(w) - width
	}
	y := toFixed(float64(h)/2 + o.Size*baselineRatio)

	src := image.NewUniform(o.Color)
	drawRun(dst, src, face, s, fixed.Point26_6{X: x, Y: y}, spacing)
	if o.Weight == Heavy {
		drawRun(dst, src, face, s, fixed.Point26_6{X: x + fixed.I(1), Y: y}, spacing)
	}
	return dst, nil
}

// measure sums glyph advances, kerning and letter spacing between glyphs.
func measure(face font.Face, s string, spacing fixed.Int26_6) fixed.Int26_6 {
	var adv fixed.Int26_6
	prev := rune(-1)
	n := 0
	for _, r := range s {
		if prev >= 0 {
			adv += face.Kern(prev, r)
		}
		a, ok := face.GlyphAdvance(r)
		if ok {
			adv += a
		}
		prev = r
		n++
	}
	if n > 1 {
		adv += spacing * fixed.Int26_6(n-1)
	}
	return adv
}

func drawRun(dst *image.NRGBA, src image.Image, face font.Face, s string, dot fixed.Point26_6, spacing fixed.Int26_6) {
	d := &font.Drawer{Dst: dst, Src: src, Face: face, Dot: dot}
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			d.Dot.X += face.Kern(prev, r) + spacing
		}
		d.DrawString(string(r))
		prev = r
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
