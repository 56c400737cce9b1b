package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"envelope/internal/ledger"
)

type Server struct {
	engine   *ledger.Engine
	router   chi.Router
	validate *validator.Validate
	log      *zap.SugaredLogger
	addr     string
}

func New(engine *ledger.Engine, addr string, log *zap.SugaredLogger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogging(log))

	s := &Server{
		engine:   engine,
		router:   r,
		validate: validator.New(),
		log:      log,
		addr:     addr,
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Categories
		r.Post("/categories", s.createCategory)
		r.Get("/categories", s.listCategories)
		r.Delete("/categories/{name}", s.deleteCategory)
		r.Get("/categories/{name}/transactions", s.listCategoryTransactions)

		// Transactions
		r.Post("/transactions", s.createTransaction)
		r.Get("/transactions", s.listTransactions)

		// Transfers
		r.Post("/transfers", s.createTransfer)

		// Report export
		r.Get("/reports/export", s.exportReport)
	})

	return s
}

func (s *Server) ListenAndServe() error {
	s.log.Infow("server listening", "addr", s.addr)
	return http.ListenAndServe(s.addr, s.router)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// requestLogging logs one line per request with method, path, status and
// latency.
func requestLogging(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.Infow("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"latency_ms", time.Since(start).Milliseconds(),
				"remote", r.RemoteAddr,
			)
		})
	}
}
