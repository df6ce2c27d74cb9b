package server

import (
	"net/http"
	"sort"
	"strings"
)

// RouteDoc describes one registered endpoint for the admin routes page.
type RouteDoc struct {
	Method      string `json:"method"`
	Pattern     string `json:"pattern"`
	Summary     string `json:"summary,omitempty"`
	ExampleBody string `json:"example_body,omitempty"`
}

// RouteRegistry collects endpoint docs as handlers are mounted.
type RouteRegistry struct {
	docs []RouteDoc
}

func (rr *RouteRegistry) Add(doc RouteDoc) {
	rr.docs = append(rr.docs, doc)
}

// List returns the registered routes sorted by pattern, then method.
func (rr *RouteRegistry) List() []RouteDoc {
	out := make([]RouteDoc, len(rr.docs))
	copy(out, rr.docs)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pattern != out[j].Pattern {
			return out[i].Pattern < out[j].Pattern
		}
		return out[i].Method < out[j].Method
	})
	return out
}

// Handle mounts h on mux and records it in the registry. methodAndPattern
// uses the "METHOD /path" form understood by net/http.
func Handle(mux *http.ServeMux, rr *RouteRegistry, methodAndPattern, summary, exampleBody string, h http.HandlerFunc) {
	method, pattern, found := strings.Cut(methodAndPattern, " ")
	if !found {
		pattern = method
		method = ""
	}
	rr.Add(RouteDoc{Method: method, Pattern: pattern, Summary: summary, ExampleBody: exampleBody})
	mux.HandleFunc(methodAndPattern, h)
}
