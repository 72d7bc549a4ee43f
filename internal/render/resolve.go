package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/postgen/postgen/internal/listing"
	"github.com/postgen/postgen/internal/templates"
)

// Fallbacks for brands that leave a color unset.
const (
	DefaultPrimaryColor   = "#1a365d"
	DefaultSecondaryColor = "#e2e8f0"
)

// glyphWidthRatio is the average glyph width, in font sizes, used to estimate
// how many characters fit on one line.
const glyphWidthRatio = 0.55

const ellipsis = "…"

// Position is a slide's 1-based place in the rendered sequence.
type Position struct {
	Index int
	Total int
}

// Bindings is everything a layer can be bound to.
type Bindings struct {
	Texts    listing.PostTexts
	Brand    listing.BrandConfig
	Property listing.PropertyData
	Slide    Position
}

// ResolveColor maps a brand token to the brand's color (or its default) and
// passes anything else through as a literal.
func ResolveColor(token string, brand listing.BrandConfig) string {
	switch token {
	case templates.BrandPrimary:
		if brand.PrimaryColor != "" {
			return brand.PrimaryColor
		}
		return DefaultPrimaryColor
	case templates.BrandSecondary:
		if brand.SecondaryColor != "" {
			return brand.SecondaryColor
		}
		return DefaultSecondaryColor
	default:
		return token
	}
}

// ResolveText produces the string a text layer draws. An empty result means
// the layer draws nothing.
func ResolveText(l templates.TextLayer, b Bindings) string {
	text := boundValue(l, b)
	if text == "" {
		text = l.DefaultText
	}
	if text == "" {
		return ""
	}

	switch l.Style.TextTransform {
	case templates.TransformUppercase:
		text = strings.ToUpper(text)
	case templates.TransformLowercase:
		text = strings.ToLower(text)
	}

	// Only single line layers are clamped. Longer text in multi-line layers
	// is drawn as is and may run past its box.
	if l.Style.MaxLines == 1 {
		text = Truncate(text, l.Rect.Width, l.Style.FontSize)
	}
	return text
}

func boundValue(l templates.TextLayer, b Bindings) string {
	switch l.Field {
	case templates.FieldTitle:
		return b.Texts.Title
	case templates.FieldPrice:
		return b.Texts.Price
	case templates.FieldLocation:
		return b.Texts.Location
	case templates.FieldFeatures:
		return b.Texts.Features
	case templates.FieldCTA:
		return b.Texts.CTA
	case templates.FieldCustom:
		return customText(l, b)
	}
	return l.DefaultText
}

func customText(l templates.TextLayer, b Bindings) string {
	switch l.ID {
	case templates.LayerOperationText, templates.LayerBadgeText:
		if b.Property.IsRental() {
			return "EN ALQUILER"
		}
		return "EN VENTA"
	case templates.LayerCarouselIndicator, templates.LayerIndicatorText:
		total, current := b.Slide.Total, b.Slide.Index
		if total < 1 {
			total = 1
		}
		if current < 1 {
			current = 1
		}
		return fmt.Sprintf("%d/%d", current, total)
	}
	return l.DefaultText
}

// MaxChars estimates how many characters of fontSize fit in width.
func MaxChars(width int, fontSize float64) int {
	if fontSize <= 0 {
		return math.MaxInt
	}
	return int(math.Floor(float64(width) / (fontSize * glyphWidthRatio)))
}

// Truncate shortens text to the estimated single line capacity, ending with
// an ellipsis. Text that fits is returned unchanged.
func Truncate(text string, width int, fontSize float64) string {
	limit := MaxChars(width, fontSize)
	runes := []rune(text)
	if limit < 1 || len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + ellipsis
}
