package render

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postgen/postgen/internal/listing"
	"github.com/postgen/postgen/internal/templates"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
)

func pixel(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func assertNear(t *testing.T, want, got color.NRGBA, msgAndArgs ...interface{}) {
	t.Helper()
	const tol = 3
	near := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -tol && d <= tol
	}
	if !near(want.R, got.R) || !near(want.G, got.G) || !near(want.B, got.B) || !near(want.A, got.A) {
		assert.Fail(t, "color mismatch", "want %v, got %v %v", want, got, msgAndArgs)
	}
}

func TestSortLayersStable(t *testing.T) {
	layers := []templates.Layer{
		templates.ShapeLayer{ID: "a", ZIndex: 2},
		templates.ShapeLayer{ID: "b", ZIndex: 1},
		templates.ShapeLayer{ID: "c", ZIndex: 2},
		templates.ShapeLayer{ID: "d", ZIndex: 0},
	}
	var ids []string
	for _, l := range SortLayers(layers) {
		ids = append(ids, l.LayerID())
	}
	assert.Equal(t, []string{"d", "b", "a", "c"}, ids)
	assert.Equal(t, "a", layers[0].LayerID())
}

func TestRenderSlideZOrder(t *testing.T) {
	slide := templates.Slide{
		ID: "z",
		Layers: []templates.Layer{
			templates.ShapeLayer{ID: "top", Shape: templates.ShapeRect, Rect: templates.Rect{X: 0, Y: 0, Width: 100, Height: 100}, Fill: "#0000ff", ZIndex: 5},
			templates.ShapeLayer{ID: "bottom", Shape: templates.ShapeRect, Rect: templates.Rect{X: 0, Y: 0, Width: 200, Height: 200}, Fill: "#ff0000", ZIndex: 1},
		},
	}
	c := NewCompositor(newStubFetcher(nil), nil, 70)
	img, err := c.RenderSlide(context.Background(), slide, SlideContext{Format: templates.FormatSquare})
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 1080, 1080), img.Bounds())
	assert.Equal(t, blue, pixel(img, 50, 50))
	assert.Equal(t, red, pixel(img, 150, 150))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pixel(img, 500, 500))
}

func TestRenderSlideBrandColors(t *testing.T) {
	slide := templates.Slide{
		ID:              "brand",
		BackgroundColor: templates.BrandPrimary,
		Layers: []templates.Layer{
			templates.ShapeLayer{ID: "box", Shape: templates.ShapeRect, Rect: templates.Rect{Width: 100, Height: 100}, Fill: templates.BrandSecondary},
		},
	}
	c := NewCompositor(newStubFetcher(nil), nil, 70)

	img, err := c.RenderSlide(context.Background(), slide, SlideContext{Format: templates.FormatSquare})
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x1a, G: 0x36, B: 0x5d, A: 255}, pixel(img, 500, 500))
	assert.Equal(t, color.NRGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 255}, pixel(img, 50, 50))

	img, err = c.RenderSlide(context.Background(), slide, SlideContext{
		Format:   templates.FormatSquare,
		Bindings: Bindings{Brand: listing.BrandConfig{PrimaryColor: "#000000", SecondaryColor: "#00ff00"}},
	})
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{A: 255}, pixel(img, 500, 500))
	assert.Equal(t, green, pixel(img, 50, 50))
}

func TestRenderSlideSecondaryText(t *testing.T) {
	slide := templates.Slide{
		ID: "text",
		Layers: []templates.Layer{
			templates.TextLayer{
				ID:          "headline",
				Field:       templates.FieldCustom,
				Rect:        templates.Rect{Width: 1000, Height: 300},
				DefaultText: "MMMM",
				Style:       templates.TextStyle{Color: templates.BrandSecondary, FontSize: 200, FontWeight: templates.WeightBold},
			},
		},
	}
	c := NewCompositor(newStubFetcher(nil), nil, 70)
	img, err := c.RenderSlide(context.Background(), slide, SlideContext{Format: templates.FormatSquare})
	require.NoError(t, err)

	want := color.NRGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 255}
	found := false
	for y := 0; y < 300 && !found; y++ {
		for x := 0; x < 1000; x++ {
			if pixel(img, x, y) == want {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "no glyph pixel painted with the default secondary color")
}

func TestRenderSlideImagePlaceholder(t *testing.T) {
	slide := templates.Slide{
		ID: "photo",
		Layers: []templates.Layer{
			templates.ImageLayer{ID: "img", ImageIndex: 0, Rect: templates.Rect{Width: 400, Height: 400}, Fit: templates.FitCover},
		},
	}
	f := newStubFetcher(nil)
	c := NewCompositor(f, nil, 70)
	img, err := c.RenderSlide(context.Background(), slide, SlideContext{
		Format: templates.FormatSquare,
		Images: []listing.SelectedImage{{URL: "https://example.com/missing.jpg"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.total())
	assert.Equal(t, color.NRGBA{R: 200, G: 200, B: 200, A: 255}, pixel(img, 200, 200))
}

func TestRenderSlideImageOutOfRange(t *testing.T) {
	slide := templates.Slide{
		ID: "photo",
		Layers: []templates.Layer{
			templates.ImageLayer{ID: "img", ImageIndex: 3, Rect: templates.Rect{Width: 400, Height: 400}, Fit: templates.FitCover},
		},
	}
	f := newStubFetcher(map[string]color.NRGBA{"a": red})
	c := NewCompositor(f, nil, 70)
	img, err := c.RenderSlide(context.Background(), slide, SlideContext{
		Format: templates.FormatSquare,
		Images: []listing.SelectedImage{{URL: "a"}},
	})
	require.NoError(t, err)
	assert.Zero(t, f.total())
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pixel(img, 200, 200))
}

func TestRenderSlideRoundedImage(t *testing.T) {
	slide := templates.Slide{
		ID: "photo",
		Layers: []templates.Layer{
			templates.ImageLayer{ID: "img", ImageIndex: 0, Rect: templates.Rect{X: 100, Y: 100, Width: 400, Height: 400}, Fit: templates.FitCover, BorderRadius: 40},
		},
	}
	c := NewCompositor(newStubFetcher(map[string]color.NRGBA{"a": red}), nil, 70)
	img, err := c.RenderSlide(context.Background(), slide, SlideContext{
		Format: templates.FormatSquare,
		Images: []listing.SelectedImage{{URL: "a"}},
	})
	require.NoError(t, err)

	// The corner pixel shows the white background through the mask.
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pixel(img, 100, 100))
	assertNear(t, red, pixel(img, 300, 300))
}

func TestRenderSlideLogoFallbacks(t *testing.T) {
	slide := templates.Slide{
		ID: "logo",
		Layers: []templates.Layer{
			templates.ShapeLayer{ID: "bg", Shape: templates.ShapeRect, Rect: templates.Rect{Width: 400, Height: 200}, Fill: "#000000"},
			templates.LogoLayer{ID: "logo", Rect: templates.Rect{Width: 400, Height: 200}, Fit: templates.FitContain, ZIndex: 1},
		},
	}
	countWhite := func(img image.Image) int {
		n := 0
		for y := 0; y < 200; y++ {
			for x := 0; x < 400; x++ {
				if p := pixel(img, x, y); p.R > 200 && p.G > 200 && p.B > 200 {
					n++
				}
			}
		}
		return n
	}
	ctx := context.Background()

	t.Run("agency name", func(t *testing.T) {
		c := NewCompositor(newStubFetcher(nil), nil, 70)
		img, err := c.RenderSlide(ctx, slide, SlideContext{
			Format:   templates.FormatSquare,
			Bindings: Bindings{Brand: listing.BrandConfig{AgencyName: "Inmobiliaria Sur"}},
		})
		require.NoError(t, err)
		assert.Positive(t, countWhite(img))
	})

	t.Run("nothing to draw", func(t *testing.T) {
		c := NewCompositor(newStubFetcher(nil), nil, 70)
		img, err := c.RenderSlide(ctx, slide, SlideContext{Format: templates.FormatSquare})
		require.NoError(t, err)
		assert.Zero(t, countWhite(img))
	})

	t.Run("broken logo is omitted", func(t *testing.T) {
		f := newStubFetcher(nil)
		c := NewCompositor(f, nil, 70)
		img, err := c.RenderSlide(ctx, slide, SlideContext{
			Format:   templates.FormatSquare,
			Bindings: Bindings{Brand: listing.BrandConfig{LogoURL: "https://example.com/logo.png", AgencyName: "Sur"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, f.count("https://example.com/logo.png"))
		assert.Zero(t, countWhite(img))
	})

	t.Run("logo image", func(t *testing.T) {
		c := NewCompositor(newStubFetcher(map[string]color.NRGBA{"logo": green}), nil, 70)
		img, err := c.RenderSlide(ctx, slide, SlideContext{
			Format:   templates.FormatSquare,
			Bindings: Bindings{Brand: listing.BrandConfig{LogoURL: "logo"}},
		})
		require.NoError(t, err)
		// 64x48 contained in 400x200 scales to 266x200 at the top left.
		assertNear(t, green, pixel(img, 100, 100))
		assert.Equal(t, color.NRGBA{A: 255}, pixel(img, 390, 100))
	})
}

func TestRenderSlideUnknownFormat(t *testing.T) {
	c := NewCompositor(newStubFetcher(nil), nil, 70)
	_, err := c.RenderSlide(context.Background(), templates.Slide{ID: "x"}, SlideContext{Format: "800x600"})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRenderSlideSkipsEmptyRects(t *testing.T) {
	slide := templates.Slide{
		ID: "empty",
		Layers: []templates.Layer{
			templates.ImageLayer{ID: "img", ImageIndex: 0, Rect: templates.Rect{Width: 0, Height: 100}},
		},
	}
	f := newStubFetcher(map[string]color.NRGBA{"a": red})
	c := NewCompositor(f, nil, 70)
	_, err := c.RenderSlide(context.Background(), slide, SlideContext{
		Format: templates.FormatSquare,
		Images: []listing.SelectedImage{{URL: "a"}},
	})
	require.NoError(t, err)
	assert.Zero(t, f.total())
}
