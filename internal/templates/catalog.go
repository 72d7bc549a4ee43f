package templates

import "sync"

// Summary is the selection metadata exposed to template pickers. It never
// carries the slide/layer graph.
type Summary struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Category         Category       `json:"category"`
	ImageCount       int            `json:"imageCount"`
	MaxImages        int            `json:"maxImages,omitempty"`
	SupportedFormats []CanvasFormat `json:"supportedFormats"`
	Tags             []string       `json:"tags,omitempty"`
}

// Catalog is a read-only, ordered set of template definitions. It is safe for
// concurrent use because it is never written after construction.
type Catalog struct {
	defs []*Definition
	byID map[string]*Definition
}

// NewCatalog builds a catalog in the given order. Ids must be unique; on a
// duplicate the first entry wins.
func NewCatalog(defs ...*Definition) *Catalog {
	c := &Catalog{byID: make(map[string]*Definition, len(defs))}
	for _, d := range defs {
		if _, dup := c.byID[d.ID]; dup {
			continue
		}
		c.defs = append(c.defs, d)
		c.byID[d.ID] = d
	}
	return c
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return NewCatalog(
		heroOverlay(),
		heroMinimal(),
		collage2(),
		collage3(),
		collage4(),
		carouselCover(),
	)
})

// Default returns the built-in catalog, assembling it on first use.
func Default() *Catalog {
	return defaultCatalog()
}

// Get looks a template up by exact id.
func (c *Catalog) Get(id string) (*Definition, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// All returns the definitions in catalog order. The slice is a copy; the
// definitions are shared and must not be modified.
func (c *Catalog) All() []*Definition {
	out := make([]*Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

func (c *Catalog) Summaries() []Summary {
	out := make([]Summary, 0, len(c.defs))
	for _, d := range c.defs {
		out = append(out, Summarize(d))
	}
	return out
}

// ForImageCount returns templates whose minimum image count is satisfied by n.
func (c *Catalog) ForImageCount(n int) []*Definition {
	var out []*Definition
	for _, d := range c.defs {
		if n >= d.ImageCount {
			out = append(out, d)
		}
	}
	return out
}

// ForFormat returns templates that declare f and have slides for it.
func (c *Catalog) ForFormat(f CanvasFormat) []*Definition {
	var out []*Definition
	for _, d := range c.defs {
		if containsFormat(d.SupportedFormats, f) && d.Supports(f) {
			out = append(out, d)
		}
	}
	return out
}

func Summarize(d *Definition) Summary {
	var tags []string
	if len(d.Tags) > 0 {
		tags = append(tags, d.Tags...)
	}
	return Summary{
		ID:               d.ID,
		Name:             d.Name,
		Description:      d.Description,
		Category:         d.Category,
		ImageCount:       d.ImageCount,
		MaxImages:        d.MaxImages,
		SupportedFormats: d.AvailableFormats(),
		Tags:             tags,
	}
}

func containsFormat(fs []CanvasFormat, f CanvasFormat) bool {
	for _, x := range fs {
		if x == f {
			return true
		}
	}
	return false
}
