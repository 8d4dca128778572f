package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"insurance-renewal-assistant/internal/middleware"
	paymentHTTP "insurance-renewal-assistant/internal/payment/delivery/http"
	paymentUC "insurance-renewal-assistant/internal/payment/usecase"
)

// setupPaymentDomain initializes the payment record store and registers
// its routes.
func (srv *HTTPServer) setupPaymentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository was built in main (backend switch lives there).

	// 2. UseCase
	pendingTTL, err := time.ParseDuration(srv.config.Payment.PendingTTL)
	if err != nil {
		srv.l.Warnf(ctx, "Invalid payment.pending_ttl %q, using default: %v", srv.config.Payment.PendingTTL, err)
		pendingTTL = 0
	}
	uc := paymentUC.New(srv.l, srv.paymentRepo, pendingTTL, srv.config.Payment.ConfirmSecret)

	// 3. HTTP Handler
	h := paymentHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/payment/{process,status,confirm}
	paymentHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Payment domain registered (backend: %s)", srv.config.Payment.StoreBackend)
	return nil
}
