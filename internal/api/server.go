package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/adboardhq/adboard-api/internal/api/handler"
	"github.com/adboardhq/adboard-api/internal/api/handler/router"
	"github.com/adboardhq/adboard-api/internal/config"
	"github.com/adboardhq/adboard-api/internal/scheduler"
	"github.com/adboardhq/adboard-api/internal/usecases/campaigning"
	"github.com/adboardhq/adboard-api/internal/usecases/identifying"
	"github.com/adboardhq/adboard-api/internal/usecases/media"
	"github.com/adboardhq/adboard-api/internal/usecases/notifying"
	"github.com/adboardhq/adboard-api/internal/usecases/paying"
	"github.com/adboardhq/adboard-api/internal/usecases/placing"
	"github.com/adboardhq/adboard-api/internal/usecases/pricing"
	"github.com/adboardhq/adboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	pricingService pricing.PricingStore,
	engine campaigning.Engine,
	paymentService paying.Coordinator,
	placementService placing.Scheduler,
	notificationService notifying.Dispatcher,
	mediaService media.Uploader,
	verifier identifying.Verifier,
	sweepService *scheduler.CampaignSweepService,
	tariffCache handler.TariffCache,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		CampaignSweepService: sweepService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(tariffCache)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Pricing(pricingService)...),
		router.WithRoutes(handler.AdRequests(engine)...),
		router.WithRoutes(handler.Payments(paymentService)...),
		router.WithRoutes(handler.Placements(placementService)...),
		router.WithRoutes(handler.Notifications(notificationService)...),
		router.WithRoutes(handler.Media(mediaService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(verifier),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
