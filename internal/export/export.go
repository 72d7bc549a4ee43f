package export

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zip"
	"github.com/zeebo/blake3"
)

// File is one rendered slide ready for download.
type File struct {
	Name       string `json:"name"`
	Data       []byte `json:"-"`
	Size       int    `json:"size"`
	SlideIndex int    `json:"slideIndex"`
	Digest     string `json:"digest"`
}

// Result is a packaged render: one file per slide, in display order.
type Result struct {
	ExportID   string `json:"exportId"`
	TemplateID string `json:"templateId"`
	Files      []File `json:"files"`
	SlideCount int    `json:"slideCount"`
}

// Build names and digests slides. A single slide is named post-<id>.<ext>;
// carousels are numbered post-<id>-slide-<n>.<ext> from 1.
func Build(templateID string, slides [][]byte, ext string) *Result {
	files := make([]File, len(slides))
	for i, b := range slides {
		files[i] = File{
			Name:       FileName(templateID, i, len(slides), ext),
			Data:       b,
			Size:       len(b),
			SlideIndex: i,
			Digest:     Digest(b),
		}
	}
	return &Result{
		ExportID:   uuid.NewString(),
		TemplateID: templateID,
		Files:      files,
		SlideCount: len(files),
	}
}

func FileName(templateID string, index, total int, ext string) string {
	if total == 1 {
		return fmt.Sprintf("post-%s.%s", templateID, ext)
	}
	return fmt.Sprintf("post-%s-slide-%d.%s", templateID, index+1, ext)
}

// Digest is the hex BLAKE3-256 of b.
func Digest(b []byte) string {
	sum := blake3.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// WriteZip writes every file into a zip archive on w. Images are already
// compressed, so entries are stored rather than deflated.
func (r *Result) WriteZip(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, f := range r.Files {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: f.Name, Method: zip.Store})
		if err != nil {
			return fmt.Errorf("zip %s: %w", f.Name, err)
		}
		if _, err := fw.Write(f.Data); err != nil {
			return fmt.Errorf("zip %s: %w", f.Name, err)
		}
	}
	return zw.Close()
}
