package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/game-reviews-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler, graphQL nethttp.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.Handle("/query", graphQL)
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/", handler.NotFound)
	return mux
}
