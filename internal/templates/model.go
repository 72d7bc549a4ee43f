package templates

import (
	"encoding/json"
	"image"
)

// CanvasFormat names the fixed output dimensions of a slide.
type CanvasFormat string

const (
	FormatSquare   CanvasFormat = "1080x1080"
	FormatPortrait CanvasFormat = "1080x1350"
	FormatStory    CanvasFormat = "1080x1920"
)

// Formats lists every canvas format in display order.
var Formats = []CanvasFormat{FormatSquare, FormatPortrait, FormatStory}

type CanvasSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

var canvasSizes = map[CanvasFormat]CanvasSize{
	FormatSquare:   {Width: 1080, Height: 1080},
	FormatPortrait: {Width: 1080, Height: 1350},
	FormatStory:    {Width: 1080, Height: 1920},
}

// Size returns the pixel dimensions of the format. ok is false for unknown formats.
func (f CanvasFormat) Size() (CanvasSize, bool) {
	s, ok := canvasSizes[f]
	return s, ok
}

func (f CanvasFormat) Valid() bool {
	_, ok := canvasSizes[f]
	return ok
}

// Rect is an axis-aligned box in canvas pixels.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (r Rect) Min() image.Point { return image.Pt(r.X, r.Y) }

func (r Rect) Size() (int, int) { return r.Width, r.Height }

// Fit is the policy used to size a source image into a rect.
type Fit string

const (
	FitCover   Fit = "cover"
	FitContain Fit = "contain"
	FitFill    Fit = "fill"
)

type LayerKind string

const (
	KindImage LayerKind = "image"
	KindText  LayerKind = "text"
	KindShape LayerKind = "shape"
	KindLogo  LayerKind = "logo"
)

// Layer is a closed union over ImageLayer, TextLayer, ShapeLayer and LogoLayer.
// Consumers dispatch with a type switch; the unexported method keeps the set closed.
type Layer interface {
	Kind() LayerKind
	LayerID() string
	Bounds() Rect
	Z() int
	layer()
}

type ImageLayer struct {
	ID           string `json:"id"`
	ImageIndex   int    `json:"imageIndex"`
	Rect         Rect   `json:"rect"`
	Fit          Fit    `json:"fit"`
	BorderRadius int    `json:"borderRadius,omitempty"`
	ZIndex       int    `json:"zIndex"`
}

// Field is the text binding vocabulary.
type Field string

const (
	FieldTitle    Field = "title"
	FieldPrice    Field = "price"
	FieldLocation Field = "location"
	FieldFeatures Field = "features"
	FieldCTA      Field = "cta"
	FieldCustom   Field = "custom"
)

// Layer ids that carry computed text when bound to FieldCustom.
const (
	LayerOperationText     = "operation-text"
	LayerBadgeText         = "badge-text"
	LayerCarouselIndicator = "carousel-indicator"
	LayerIndicatorText     = "indicator-text"
)

type FontWeight string

const (
	WeightNormal FontWeight = "normal"
	WeightBold   FontWeight = "bold"
	WeightBlack  FontWeight = "black"
)

type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

type TextTransform string

const (
	TransformNone      TextTransform = "none"
	TransformUppercase TextTransform = "uppercase"
	TransformLowercase TextTransform = "lowercase"
)

type TextStyle struct {
	FontFamily    string        `json:"fontFamily"`
	Color         string        `json:"color"`
	FontSize      float64       `json:"fontSize"`
	FontWeight    FontWeight    `json:"fontWeight"`
	TextAlign     TextAlign     `json:"textAlign"`
	LineHeight    float64       `json:"lineHeight,omitempty"`
	LetterSpacing float64       `json:"letterSpacing,omitempty"`
	TextTransform TextTransform `json:"textTransform,omitempty"`
	MaxLines      int           `json:"maxLines,omitempty"`
}

type TextLayer struct {
	ID          string    `json:"id"`
	Field       Field     `json:"field"`
	Rect        Rect      `json:"rect"`
	Style       TextStyle `json:"style"`
	DefaultText string    `json:"defaultText,omitempty"`
	ZIndex      int       `json:"zIndex"`
}

type ShapeKind string

const (
	ShapeRect     ShapeKind = "rect"
	ShapeGradient ShapeKind = "gradient-overlay"
)

type GradientDirection string

const (
	ToBottom GradientDirection = "to-bottom"
	ToTop    GradientDirection = "to-top"
	ToRight  GradientDirection = "to-right"
	ToLeft   GradientDirection = "to-left"
)

type GradientStop struct {
	Offset  float64 `json:"offset"`
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

type Gradient struct {
	Type      string            `json:"type"`
	Direction GradientDirection `json:"direction"`
	Stops     []GradientStop    `json:"stops"`
}

type ShapeLayer struct {
	ID           string    `json:"id"`
	Shape        ShapeKind `json:"shape"`
	Rect         Rect      `json:"rect"`
	Fill         string    `json:"fill,omitempty"`
	Opacity      *float64  `json:"opacity,omitempty"`
	BorderRadius int       `json:"borderRadius,omitempty"`
	Gradient     *Gradient `json:"gradient,omitempty"`
	ZIndex       int       `json:"zIndex"`
}

// Alpha returns the declared opacity, defaulting to fully opaque.
func (s ShapeLayer) Alpha() float64 {
	if s.Opacity == nil {
		return 1
	}
	return *s.Opacity
}

// LogoLayer is bound to the brand logo.
type LogoLayer struct {
	ID     string `json:"id"`
	Rect   Rect   `json:"rect"`
	Fit    Fit    `json:"fit"`
	ZIndex int    `json:"zIndex"`
}

func (ImageLayer) Kind() LayerKind { return KindImage }
func (TextLayer) Kind() LayerKind  { return KindText }
func (ShapeLayer) Kind() LayerKind { return KindShape }
func (LogoLayer) Kind() LayerKind  { return KindLogo }

func (l ImageLayer) LayerID() string { return l.ID }
func (l TextLayer) LayerID() string  { return l.ID }
func (l ShapeLayer) LayerID() string { return l.ID }
func (l LogoLayer) LayerID() string  { return l.ID }

func (l ImageLayer) Bounds() Rect { return l.Rect }
func (l TextLayer) Bounds() Rect  { return l.Rect }
func (l ShapeLayer) Bounds() Rect { return l.Rect }
func (l LogoLayer) Bounds() Rect  { return l.Rect }

func (l ImageLayer) Z() int { return l.ZIndex }
func (l TextLayer) Z() int  { return l.ZIndex }
func (l ShapeLayer) Z() int { return l.ZIndex }
func (l LogoLayer) Z() int  { return l.ZIndex }

func (ImageLayer) layer() {}
func (TextLayer) layer()  {}
func (ShapeLayer) layer() {}
func (LogoLayer) layer()  {}

// MarshalJSON methods add the "type" discriminator next to the layer fields.

func (l ImageLayer) MarshalJSON() ([]byte, error) {
	type plain ImageLayer
	return json.Marshal(struct {
		Type LayerKind `json:"type"`
		plain
	}{KindImage, plain(l)})
}

func (l TextLayer) MarshalJSON() ([]byte, error) {
	type plain TextLayer
	return json.Marshal(struct {
		Type LayerKind `json:"type"`
		plain
	}{KindText, plain(l)})
}

func (l ShapeLayer) MarshalJSON() ([]byte, error) {
	type plain ShapeLayer
	return json.Marshal(struct {
		Type LayerKind `json:"type"`
		plain
	}{KindShape, plain(l)})
}

func (l LogoLayer) MarshalJSON() ([]byte, error) {
	type plain LogoLayer
	return json.Marshal(struct {
		Type LayerKind `json:"type"`
		plain
	}{KindLogo, plain(l)})
}

// Slide is one page of a post.
type Slide struct {
	ID              string  `json:"id"`
	Layers          []Layer `json:"layers"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
}

type Category string

const (
	CategoryHero     Category = "hero"
	CategoryCollage  Category = "collage"
	CategoryCarousel Category = "carousel"
)

// SafeArea is the advisory margin reserved for platform UI.
type SafeArea struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// Definition is an immutable catalog entry. Nothing may write to a Definition
// (or anything it points to) after the catalog is built.
type Definition struct {
	ID               string                   `json:"id"`
	Version          string                   `json:"version"`
	Name             string                   `json:"name"`
	Description      string                   `json:"description"`
	Category         Category                 `json:"category"`
	ImageCount       int                      `json:"imageCount"`
	MaxImages        int                      `json:"maxImages,omitempty"`
	SupportedFormats []CanvasFormat           `json:"supportedFormats"`
	Slides           map[CanvasFormat][]Slide `json:"slides"`
	SafeArea         SafeArea                 `json:"safeArea"`
	ThumbnailURL     string                   `json:"thumbnailUrl,omitempty"`
	Tags             []string                 `json:"tags,omitempty"`
}

// SlidesFor returns the declared slide list for f, which may be empty.
func (d *Definition) SlidesFor(f CanvasFormat) []Slide {
	return d.Slides[f]
}

// Supports reports whether f has at least one declared slide.
func (d *Definition) Supports(f CanvasFormat) bool {
	return len(d.Slides[f]) > 0
}

// AvailableFormats is the subset of SupportedFormats with non-empty slide lists.
func (d *Definition) AvailableFormats() []CanvasFormat {
	out := make([]CanvasFormat, 0, len(d.SupportedFormats))
	for _, f := range d.SupportedFormats {
		if d.Supports(f) {
			out = append(out, f)
		}
	}
	return out
}

func (d *Definition) IsCarousel() bool {
	return d.Category == CategoryCarousel
}

func opacity(v float64) *float64 { return &v }

// Brand color tokens. Any other color string is a hex literal.
const (
	BrandPrimary   = "brand.primary"
	BrandSecondary = "brand.secondary"
)

func rect(x, y, w, h int) Rect { return Rect{X: x, Y: y, Width: w, Height: h} }
