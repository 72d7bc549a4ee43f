package render

import (
	"fmt"

	"github.com/postgen/postgen/internal/templates"
)

// Planned is a concrete slide and its place in the output sequence.
type Planned struct {
	Slide    templates.Slide
	Position Position
}

// Expand derives the concrete slide sequence for def in format.
//
// Carousels render the cover (bound to image 0) followed by one copy of the
// photo pattern per remaining image, with every image layer rebound to that
// image. Images past MaxImages are ignored. Other categories render their
// declared slides once each.
//
// The catalog is never modified: rebound slides get fresh layer slices.
func Expand(def *templates.Definition, format templates.CanvasFormat, imageCount int) []Planned {
	slides := def.SlidesFor(format)
	if len(slides) == 0 {
		return nil
	}
	if !def.IsCarousel() {
		out := make([]Planned, len(slides))
		for i, s := range slides {
			out[i] = Planned{Slide: s, Position: Position{Index: i + 1, Total: len(slides)}}
		}
		return out
	}

	n := imageCount
	if def.MaxImages > 0 && n > def.MaxImages {
		n = def.MaxImages
	}
	if n < 1 {
		n = 1
	}

	out := make([]Planned, 0, n)
	out = append(out, Planned{Slide: slides[0], Position: Position{Index: 1, Total: n}})
	// Without a photo pattern only the cover renders, but its indicator
	// still counts every supplied image.
	if len(slides) < 2 {
		return out
	}
	for i := 1; i < n; i++ {
		out = append(out, Planned{
			Slide:    rebind(slides[1], i, fmt.Sprintf("%s-%d", slides[1].ID, i+1)),
			Position: Position{Index: i + 1, Total: n},
		})
	}
	return out
}

// rebind copies s with every image layer pointing at imageIndex.
func rebind(s templates.Slide, imageIndex int, id string) templates.Slide {
	layers := make([]templates.Layer, len(s.Layers))
	for i, l := range s.Layers {
		if img, ok := l.(templates.ImageLayer); ok {
			img.ImageIndex = imageIndex
			l = img
		}
		layers[i] = l
	}
	return templates.Slide{ID: id, Layers: layers, BackgroundColor: s.BackgroundColor}
}
