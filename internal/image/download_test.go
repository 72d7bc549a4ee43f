package imagepkg

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadImage(t *testing.T) {
	var png bytes.Buffer
	require.NoError(t, imaging.Encode(&png, imaging.New(30, 20, red), imaging.PNG))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.UserAgent() != "postgen-test" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		switch r.URL.Path {
		case "/photo.png":
			_, _ = w.Write(png.Bytes())
		case "/text":
			_, _ = w.Write([]byte("not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5*time.Second, "postgen-test")
	ctx := context.Background()

	img, err := DownloadImage(ctx, f, srv.URL+"/photo.png")
	require.NoError(t, err)
	assert.Equal(t, 30, img.Bounds().Dx())

	_, err = DownloadImage(ctx, f, srv.URL+"/text")
	assert.Error(t, err)

	_, err = DownloadImage(ctx, f, srv.URL+"/missing.png")
	assert.Error(t, err)
}
