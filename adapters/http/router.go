package http

import (
	"time"

	"github.com/cloudcopper/cardlist/lib"
	"github.com/cloudcopper/cardlist/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	slogchi "github.com/samber/slog-chi"
)

// NewRouter returns chi router with request id, access log,
// panic recovery and (non development) request timeout middlewares
func NewRouter(log ports.Logger) ports.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(slogchi.New(log))
	r.Use(middleware.Recoverer)
	if !lib.IsDevelopment() {
		r.Use(middleware.Timeout(10 * time.Second))
	}

	return r
}
