package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type WebhookRegistrar interface {
	SetWebhook(ctx context.Context, url, secret string) error
}

type webhookServer struct {
	addr       string
	handler    http.Handler
	registrar  WebhookRegistrar
	webhookURL string
	secret     string
}

func NewWebhookServer(
	addr string,
	handler http.Handler,
	registrar WebhookRegistrar,
	webhookURL string,
	secret string,
) *webhookServer {
	return &webhookServer{
		addr:       addr,
		handler:    handler,
		registrar:  registrar,
		webhookURL: webhookURL,
		secret:     secret,
	}
}

func (s *webhookServer) Name() string { return "webhook_server_worker" }

// Start listens first and registers the webhook after, so the first delivery
// always finds the server up.
func (s *webhookServer) Start(ctx context.Context) error {
	slog.Info("Starting worker", "name", s.Name(), "addr", s.addr)
	defer slog.Info("Worker stopped", "name", s.Name())

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	if err := s.registrar.SetWebhook(ctx, s.webhookURL, s.secret); err != nil {
		srv.Close()
		return fmt.Errorf("registering webhook: %w", err)
	}

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving webhook: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down webhook server: %w", err)
	}
	return nil
}
