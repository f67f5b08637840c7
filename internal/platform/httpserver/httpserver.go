package httpserver

import (
	"net/http"
	"time"
)

// New builds the check-in API server. ReadHeaderTimeout guards against slow
// clients holding connections open; scan terminals on venue wifi disconnect
// ungracefully all the time.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
