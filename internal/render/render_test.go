package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postgen/postgen/internal/listing"
	"github.com/postgen/postgen/internal/templates"
)

var palette = []color.NRGBA{
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
	{R: 255, G: 255, A: 255},
	{R: 255, B: 255, A: 255},
	{G: 255, B: 255, A: 255},
	{R: 128, A: 255},
	{G: 128, A: 255},
	{B: 128, A: 255},
	{R: 128, G: 128, A: 255},
	{R: 64, G: 32, B: 16, A: 255},
	{R: 16, G: 32, B: 64, A: 255},
}

// photos returns n image URLs the fetcher serves with distinct colors.
func photos(n int) ([]listing.SelectedImage, *stubFetcher) {
	colors := map[string]color.NRGBA{}
	imgs := make([]listing.SelectedImage, n)
	for i := range imgs {
		url := fmt.Sprintf("https://cdn.example.com/photo-%d.jpg", i)
		colors[url] = palette[i%len(palette)]
		imgs[i] = listing.SelectedImage{URL: url, Order: i}
	}
	return imgs, newStubFetcher(colors)
}

func sampleRequest(templateID string, format templates.CanvasFormat, imgs []listing.SelectedImage) Request {
	return Request{
		TemplateID: templateID,
		Format:     format,
		Images:     imgs,
		Texts: listing.PostTexts{
			Title:    "Departamento 3 ambientes con balcón",
			Price:    "USD 185.000",
			Location: "Palermo, CABA",
			Features: "3 amb • 2 baños • 75 m²",
			CTA:      "Consultanos por WhatsApp",
		},
		Property: listing.PropertyData{Operation: listing.OperationSale},
	}
}

func decode(t *testing.T, b []byte) image.Image {
	t.Helper()
	img, err := imaging.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	return img
}

func TestRenderCollage2(t *testing.T) {
	imgs, f := photos(2)
	r := NewRenderer(nil, f, nil, DefaultOptions())

	out, err := r.Render(context.Background(), sampleRequest("collage-2", templates.FormatSquare, imgs), false)
	require.NoError(t, err)
	require.Equal(t, 1, out.SlideCount())
	assert.Equal(t, "image/png", out.ContentType)
	assert.Equal(t, "png", out.Ext)

	img := decode(t, out.Slides[0])
	assert.Equal(t, image.Rect(0, 0, 1080, 1080), img.Bounds())
	assertNear(t, palette[0], pixel(img, 200, 300), "left photo")
	assertNear(t, palette[1], pixel(img, 800, 300), "right photo")
	assert.Equal(t, color.NRGBA{R: 0x1a, G: 0x36, B: 0x5d, A: 255}, pixel(img, 1060, 1060), "bottom bar")
}

func TestRenderCarouselCover(t *testing.T) {
	imgs, f := photos(5)
	r := NewRenderer(nil, f, nil, DefaultOptions())

	out, err := r.Render(context.Background(), sampleRequest("carousel-cover", templates.FormatPortrait, imgs), false)
	require.NoError(t, err)
	require.Equal(t, 5, out.SlideCount())

	for i, b := range out.Slides {
		img := decode(t, b)
		assert.Equal(t, image.Rect(0, 0, 1080, 1350), img.Bounds(), "slide %d", i+1)
		assertNear(t, palette[i], pixel(img, 500, 400), "slide %d shows photo %d", i+1, i)
	}
	for _, img := range imgs {
		assert.Equal(t, 1, f.count(img.URL), img.URL)
	}
}

func TestRenderCarouselCapsAtMaxImages(t *testing.T) {
	imgs, f := photos(12)
	r := NewRenderer(nil, f, nil, DefaultOptions())

	out, err := r.Render(context.Background(), sampleRequest("carousel-cover", templates.FormatSquare, imgs), true)
	require.NoError(t, err)
	assert.Equal(t, 10, out.SlideCount())
	assert.Zero(t, f.count(imgs[10].URL))
	assert.Zero(t, f.count(imgs[11].URL))
}

func TestRenderSlideCounts(t *testing.T) {
	imgs, f := photos(4)
	r := NewRenderer(nil, f, nil, DefaultOptions())

	for _, def := range templates.Default().All() {
		for _, format := range def.AvailableFormats() {
			t.Run(def.ID+"/"+string(format), func(t *testing.T) {
				out, err := r.Render(context.Background(), sampleRequest(def.ID, format, imgs), true)
				require.NoError(t, err)
				want := len(def.SlidesFor(format))
				if def.IsCarousel() {
					want = 4
				}
				assert.Equal(t, want, out.SlideCount())
			})
		}
	}
}

func TestRenderValidation(t *testing.T) {
	tests := []struct {
		name     string
		template string
		format   templates.CanvasFormat
		images   int
		want     error
	}{
		{"unknown template", "does-not-exist", templates.FormatSquare, 4, ErrTemplateNotFound},
		{"unsupported format", "collage-2", templates.FormatStory, 2, ErrUnsupportedFormat},
		{"invalid format", "hero-minimal", "1920x1080", 1, ErrUnsupportedFormat},
		{"too few images", "collage-4", templates.FormatSquare, 2, ErrInsufficientImages},
		{"carousel needs two", "carousel-cover", templates.FormatSquare, 1, ErrInsufficientImages},
		{"no images", "hero-minimal", templates.FormatSquare, 0, ErrInsufficientImages},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imgs, f := photos(tt.images)
			r := NewRenderer(nil, f, nil, DefaultOptions())

			for _, preview := range []bool{false, true} {
				out, err := r.Render(context.Background(), sampleRequest(tt.template, tt.format, imgs), preview)
				assert.ErrorIs(t, err, tt.want)
				assert.Nil(t, out)
			}
			assert.Zero(t, f.total(), "no image may be fetched for a rejected request")
		})
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	imgs, f := photos(3)
	r := NewRenderer(nil, f, nil, DefaultOptions())
	req := sampleRequest("collage-3", templates.FormatSquare, imgs)
	req.Brand = listing.BrandConfig{AgencyName: "Inmobiliaria Sur", PrimaryColor: "#2b6cb0"}

	first, err := r.Render(context.Background(), req, false)
	require.NoError(t, err)
	second, err := r.Render(context.Background(), req, false)
	require.NoError(t, err)

	require.Equal(t, first.SlideCount(), second.SlideCount())
	for i := range first.Slides {
		assert.True(t, bytes.Equal(first.Slides[i], second.Slides[i]), "slide %d differs", i+1)
	}
}

func TestRenderPreview(t *testing.T) {
	imgs, f := photos(1)
	r := NewRenderer(nil, f, nil, DefaultOptions())

	out, err := r.Render(context.Background(), sampleRequest("hero-overlay", templates.FormatStory, imgs), true)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", out.ContentType)
	assert.Equal(t, "jpg", out.Ext)
	require.Equal(t, 1, out.SlideCount())

	img := decode(t, out.Slides[0])
	assert.Equal(t, 540, img.Bounds().Dx())
	assert.Equal(t, 960, img.Bounds().Dy())
}

func TestRenderFailedImageUsesPlaceholder(t *testing.T) {
	imgs, _ := photos(2)
	f := newStubFetcher(map[string]color.NRGBA{imgs[0].URL: palette[0]})
	r := NewRenderer(nil, f, nil, DefaultOptions())

	out, err := r.Render(context.Background(), sampleRequest("collage-2", templates.FormatSquare, imgs), false)
	require.NoError(t, err)
	img := decode(t, out.Slides[0])
	assertNear(t, palette[0], pixel(img, 200, 300))
	assert.Equal(t, color.NRGBA{R: 200, G: 200, B: 200, A: 255}, pixel(img, 800, 300))
	assert.Equal(t, 1, f.count(imgs[1].URL))
}
