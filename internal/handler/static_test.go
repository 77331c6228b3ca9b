package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatic_contentTypes(t *testing.T) {
	h := newHTTPHandler(t, nil)

	cases := map[string]string{
		"/static/css/site.css":             "text/css",
		"/static/icons/mountain.svg":       "image/svg+xml",
		"/static/img/ladakh-mountains.svg": "image/svg+xml",
	}
	for path, want := range cases {
		t.Run(path, func(t *testing.T) {
			rec := get(h, path)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), want),
				"got content type %q", rec.Header().Get("Content-Type"))
			assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
			assert.NotZero(t, rec.Body.Len())
		})
	}
}

func TestGetStatic_404(t *testing.T) {
	h := newHTTPHandler(t, nil)

	for _, path := range []string{"/static/missing.css", "/static/icons", "/static/"} {
		rec := get(h, path)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}
