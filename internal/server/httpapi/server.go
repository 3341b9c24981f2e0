// Package httpapi exposes the storefront over HTTP JSON: registration,
// login, catalog reads, and the authenticated order endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cookiecravings/api/internal/logging"
	"github.com/cookiecravings/api/internal/server/models"
	"github.com/cookiecravings/api/internal/server/services"
)

// shutdownTimeout caps how long in-flight requests may run after the server
// is asked to stop.
const shutdownTimeout = 5 * time.Second

// AuthService is the credential workflow consumed by the auth endpoints.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
}

// OrderService is the order workflow consumed by the order endpoints.
type OrderService interface {
	Create(ctx context.Context, userID int64, lines []services.OrderLine) (*models.Order, error)
	ListMine(ctx context.Context, userID int64) ([]*models.Order, error)
}

// CatalogService serves the public catalog listing.
type CatalogService interface {
	List(ctx context.Context) ([]*models.CatalogItem, error)
}

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     AuthService
	orders    OrderService
	catalog   CatalogService
	jwtSecret []byte
}

func NewHTTPServer(address string, l logging.Logger, us AuthService, os OrderService, cs CatalogService, secretKey string) *HTTPServer {
	return &HTTPServer{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		orders:    os,
		catalog:   cs,
		jwtSecret: []byte(secretKey),
	}
}

// Handler builds the routing table wrapped with the request-log middleware.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("GET /api/catalog", s.handleCatalog)
	mux.HandleFunc("POST /api/orders", s.requireAuth(s.handleCreateOrder))
	mux.HandleFunc("GET /api/orders/mine", s.requireAuth(s.handleMyOrders))

	return s.withRequestLog(mux)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
