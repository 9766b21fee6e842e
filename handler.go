package schemadirectives

import (
	"io"
	"net/http"

	"github.com/shyptr/schemadirectives/printer"
)

type Handler struct {
	Schema  *Schema
	Options []printer.Option
}

// HTTPHandler serves the schema SDL, directives included, to GET and HEAD
// requests.
func HTTPHandler(schema *Schema, opts ...printer.Option) http.Handler {
	return &Handler{Schema: schema, Options: opts}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "must be get", http.StatusMethodNotAllowed)
		return
	}
	sdl, err := h.Schema.PrintSchemaWithDirectives(h.Options...)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = io.WriteString(w, sdl)
	}
}
