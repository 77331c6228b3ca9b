package middleware

import (
	"io"
	"net/http"

	"github.com/andybalholm/brotli"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// compressibleTypes are the response content types worth compressing.
// PDFs and raster images are already compressed and are left alone.
var compressibleTypes = []string{
	"text/html",
	"text/css",
	"text/plain",
	"application/json",
	"application/xml",
	"image/svg+xml",
}

// NewCompressor returns chi's Compress middleware with brotli registered
// alongside the built-in gzip and deflate encoders. Clients that accept "br"
// get brotli; others fall back to gzip.
func NewCompressor(level int) func(http.Handler) http.Handler {
	c := chimiddleware.NewCompressor(level, compressibleTypes...)
	c.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return c.Handler
}
