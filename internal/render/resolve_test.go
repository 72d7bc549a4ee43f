package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/postgen/postgen/internal/listing"
	"github.com/postgen/postgen/internal/templates"
)

func TestResolveColor(t *testing.T) {
	brand := listing.BrandConfig{PrimaryColor: "#112233", SecondaryColor: "#e2e8f0"}

	assert.Equal(t, "#112233", ResolveColor(templates.BrandPrimary, brand))
	assert.Equal(t, "#e2e8f0", ResolveColor(templates.BrandSecondary, brand))
	assert.Equal(t, "#abcdef", ResolveColor("#abcdef", brand))

	empty := listing.BrandConfig{}
	assert.Equal(t, DefaultPrimaryColor, ResolveColor(templates.BrandPrimary, empty))
	assert.Equal(t, "#e2e8f0", ResolveColor(templates.BrandSecondary, empty))
}

func TestTruncate(t *testing.T) {
	// floor(300 / (40 * 0.55)) = 13
	assert.Equal(t, 13, MaxChars(300, 40))

	short := "Depto 2 amb"
	assert.Equal(t, short, Truncate(short, 300, 40))

	exact := "1234567890123"
	assert.Equal(t, exact, Truncate(exact, 300, 40))

	got := Truncate("Departamento luminoso en Palermo", 300, 40)
	assert.Equal(t, "Departamento…", got)
	assert.Len(t, []rune(got), 13)
}

func TestTruncateCountsRunes(t *testing.T) {
	got := Truncate("ñññññññññññññññ", 300, 40)
	assert.Equal(t, strings.Repeat("ñ", 12)+"…", got)
}

func newTextLayer(id string, field templates.Field, def string) templates.TextLayer {
	return templates.TextLayer{
		ID:          id,
		Field:       field,
		Rect:        templates.Rect{Width: 300, Height: 50},
		DefaultText: def,
		Style:       templates.TextStyle{FontSize: 40},
	}
}

func TestResolveTextFields(t *testing.T) {
	b := Bindings{Texts: listing.PostTexts{
		Title:    "Depto 2 amb",
		Price:    "USD 195.000",
		Location: "Palermo, CABA",
		Features: "2 amb • 55 m²",
		CTA:      "Consultá",
	}}

	tests := []struct {
		field templates.Field
		want  string
	}{
		{templates.FieldTitle, "Depto 2 amb"},
		{templates.FieldPrice, "USD 195.000"},
		{templates.FieldLocation, "Palermo, CABA"},
		{templates.FieldFeatures, "2 amb • 55 m²"},
		{templates.FieldCTA, "Consultá"},
	}
	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveText(newTextLayer("x", tt.field, ""), b))
		})
	}
}

func TestResolveTextDefaults(t *testing.T) {
	b := Bindings{}
	assert.Equal(t, "Escribinos", ResolveText(newTextLayer("cta", templates.FieldCTA, "Escribinos"), b))
	assert.Equal(t, "", ResolveText(newTextLayer("cta", templates.FieldCTA, ""), b))
	assert.Equal(t, "fijo", ResolveText(newTextLayer("other", templates.FieldCustom, "fijo"), b))
}

func TestResolveTextOperationBadge(t *testing.T) {
	for _, id := range []string{templates.LayerOperationText, templates.LayerBadgeText} {
		l := newTextLayer(id, templates.FieldCustom, "EN VENTA")

		rent := Bindings{Property: listing.PropertyData{Operation: listing.OperationRental}}
		assert.Equal(t, "EN ALQUILER", ResolveText(l, rent), id)

		sale := Bindings{Property: listing.PropertyData{Operation: listing.OperationSale}}
		assert.Equal(t, "EN VENTA", ResolveText(l, sale), id)

		assert.Equal(t, "EN VENTA", ResolveText(l, Bindings{}), id)
	}
}

func TestResolveTextIndicator(t *testing.T) {
	for _, id := range []string{templates.LayerCarouselIndicator, templates.LayerIndicatorText} {
		l := newTextLayer(id, templates.FieldCustom, "N/N")
		assert.Equal(t, "1/4", ResolveText(l, Bindings{Slide: Position{Index: 1, Total: 4}}))
		assert.Equal(t, "3/4", ResolveText(l, Bindings{Slide: Position{Index: 3, Total: 4}}))
		assert.Equal(t, "1/1", ResolveText(l, Bindings{}))
	}
}

func TestResolveTextTransformAndClamp(t *testing.T) {
	l := newTextLayer("title", templates.FieldTitle, "")
	l.Style.TextTransform = templates.TransformUppercase
	l.Style.MaxLines = 1

	got := ResolveText(l, Bindings{Texts: listing.PostTexts{Title: "casa con jardín y pileta"}})
	assert.Equal(t, "CASA CON JAR…", got)

	// Multi-line layers are not clamped.
	l.Style.MaxLines = 3
	got = ResolveText(l, Bindings{Texts: listing.PostTexts{Title: "casa con jardín y pileta"}})
	assert.Equal(t, "CASA CON JARDÍN Y PILETA", got)
}
