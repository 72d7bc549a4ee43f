package api

import (
	"bytes"
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/postgen/postgen/internal/export"
	imagepkg "github.com/postgen/postgen/internal/image"
	"github.com/postgen/postgen/internal/listing"
	"github.com/postgen/postgen/internal/render"
	"github.com/postgen/postgen/internal/templates"
)

type Handler struct {
	renderer *render.Renderer
	log      *zap.Logger
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// templates lists summaries, optionally filtered by format and image count,
// or returns one full definition when id is given.
func (h *Handler) templates(c *gin.Context) {
	cat := h.renderer.Catalog()
	if id := c.Query("id"); id != "" {
		def, found := cat.Get(id)
		if !found {
			fail(c, http.StatusNotFound, `Template "`+id+`" no encontrado.`)
			return
		}
		ok(c, def)
		return
	}

	defs := cat.All()
	if f := c.Query("format"); f != "" {
		defs = intersect(defs, cat.ForFormat(templates.CanvasFormat(f)))
	}
	if n := c.Query("images"); n != "" {
		count, err := strconv.Atoi(n)
		if err != nil {
			fail(c, http.StatusBadRequest, "images must be a number")
			return
		}
		defs = intersect(defs, cat.ForImageCount(count))
	}
	out := make([]templates.Summary, 0, len(defs))
	for _, d := range defs {
		out = append(out, templates.Summarize(d))
	}
	ok(c, out)
}

func intersect(a, b []*templates.Definition) []*templates.Definition {
	keep := make(map[string]bool, len(b))
	for _, d := range b {
		keep[d.ID] = true
	}
	var out []*templates.Definition
	for _, d := range a {
		if keep[d.ID] {
			out = append(out, d)
		}
	}
	return out
}

// renderBody shadows texts and brand with pointers so a missing object can be
// told apart from an empty one.
type renderBody struct {
	render.Request
	Texts *listing.PostTexts   `json:"texts"`
	Brand *listing.BrandConfig `json:"brand"`
}

func bindRequest(c *gin.Context) (render.Request, bool) {
	var body renderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return render.Request{}, false
	}
	req := body.Request
	if req.TemplateID == "" || req.Format == "" || len(req.Images) == 0 || body.Texts == nil || body.Brand == nil {
		fail(c, http.StatusBadRequest, "Faltan campos requeridos: templateId, format, images, texts, brand.")
		return req, false
	}
	req.Texts = *body.Texts
	req.Brand = *body.Brand
	return req, true
}

// renderError maps engine errors onto HTTP statuses.
func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, render.ErrTemplateNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, render.ErrUnsupportedFormat), errors.Is(err, render.ErrInsufficientImages):
		fail(c, http.StatusBadRequest, err.Error())
	default:
		h.log.Error("render failed", zap.Error(err), zap.String("request_id", c.GetString("request_id")))
		fail(c, http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) preview(c *gin.Context) {
	req, valid := bindRequest(c)
	if !valid {
		return
	}
	out, err := h.renderer.Render(c.Request.Context(), req, true)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.Header("ETag", `"`+export.Digest(bytes.Join(out.Slides, nil))+`"`)
	slides := make([]string, len(out.Slides))
	for i, b := range out.Slides {
		slides[i] = "data:" + out.ContentType + ";base64," + base64.StdEncoding.EncodeToString(b)
	}
	ok(c, gin.H{"slides": slides, "slideCount": out.SlideCount()})
}

// export renders full resolution slides and returns them as base64 JSON, or
// as a zip archive with bundle=zip.
func (h *Handler) export(c *gin.Context) {
	req, valid := bindRequest(c)
	if !valid {
		return
	}
	out, err := h.renderer.Render(c.Request.Context(), req, false)
	if err != nil {
		h.renderError(c, err)
		return
	}
	res := export.Build(req.TemplateID, out.Slides, out.Ext)

	if c.Query("bundle") == "zip" {
		var buf bytes.Buffer
		if err := res.WriteZip(&buf); err != nil {
			h.renderError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="post-`+req.TemplateID+`.zip"`)
		c.Data(http.StatusOK, "application/zip", buf.Bytes())
		return
	}

	files := make([]gin.H, len(res.Files))
	for i, f := range res.Files {
		files[i] = gin.H{
			"name":       f.Name,
			"data":       base64.StdEncoding.EncodeToString(f.Data),
			"size":       f.Size,
			"slideIndex": f.SlideIndex,
			"digest":     f.Digest,
		}
	}
	ok(c, gin.H{
		"exportId":   res.ExportID,
		"files":      files,
		"slideCount": res.SlideCount,
	})
}

// qrHandler returns a PNG of a QR for the "text" query param.
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		fail(c, http.StatusBadRequest, "text is required")
		return
	}
	size := 400
	if s := c.Query("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			size = v
		}
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// brandQR encodes the brand's best contact link.
func brandQR(c *gin.Context) {
	var brand listing.BrandConfig
	if err := c.ShouldBindJSON(&brand); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	link := brand.ContactLink()
	if link == "" {
		fail(c, http.StatusBadRequest, "brand has no website, whatsapp or instagram handle")
		return
	}
	b, err := imagepkg.GenerateQRPNG(link, 400)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
