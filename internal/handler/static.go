package handler

import (
	"bytes"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"

	"github.com/wanderpeak/tours/web"
)

// staticFS is the static/ subtree of the embedded web assets.
var staticFS = mustSub(web.Static, "static")

// startedAt stands in for the modification time of embedded files, which
// carry none; it changes on every deploy.
var startedAt = time.Now()

// GetStatic handles GET /static/*.
// The content type is sniffed from the file contents; generic text and binary
// results defer to the file extension (CSS sniffs as text/plain).
func (s *Server) GetStatic(w http.ResponseWriter, r *http.Request) {
	name := path.Clean(chi.URLParam(r, "*"))
	if !fs.ValidPath(name) || name == "." {
		s.notFound(w, r)
		return
	}

	data, err := fs.ReadFile(staticFS, name)
	if err != nil {
		s.notFound(w, r)
		return
	}

	sniffed := mimetype.Detect(data)
	ctype := sniffed.String()
	if sniffed.Is("text/plain") || sniffed.Is("application/octet-stream") {
		if byExt := mime.TypeByExtension(path.Ext(name)); byExt != "" {
			ctype = byExt
		}
	}
	w.Header().Set("Content-Type", ctype)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	http.ServeContent(w, r, name, startedAt, bytes.NewReader(data))
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic("handler: embedded assets: " + err.Error())
	}
	return sub
}
