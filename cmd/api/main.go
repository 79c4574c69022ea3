package main

import (
	"context"
	"encoding/json"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adboardhq/adboard-api/infrastructure/database/postgres"
	"github.com/adboardhq/adboard-api/infrastructure/integrator/gateway"
	"github.com/adboardhq/adboard-api/infrastructure/integrator/storage"
	"github.com/adboardhq/adboard-api/infrastructure/realtime"
	"github.com/adboardhq/adboard-api/infrastructure/repository"
	"github.com/adboardhq/adboard-api/internal/api"
	"github.com/adboardhq/adboard-api/internal/config"
	"github.com/adboardhq/adboard-api/internal/domain"
	"github.com/adboardhq/adboard-api/internal/scheduler"
	"github.com/adboardhq/adboard-api/internal/usecases/campaigning"
	"github.com/adboardhq/adboard-api/internal/usecases/identifying"
	"github.com/adboardhq/adboard-api/internal/usecases/media"
	"github.com/adboardhq/adboard-api/internal/usecases/notifying"
	"github.com/adboardhq/adboard-api/internal/usecases/paying"
	"github.com/adboardhq/adboard-api/internal/usecases/placing"
	"github.com/adboardhq/adboard-api/internal/usecases/pricing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	tariffRepo := repository.NewTariffRepository(pgConn)
	adRequestRepo := repository.NewAdRequestRepository(pgConn)
	paymentRepo := repository.NewPaymentRepository(pgConn)
	placementRepo := repository.NewPlacementRepository(pgConn)
	notificationRepo := repository.NewNotificationRepository(pgConn)

	gatewayClient := gateway.NewClient(cfg)
	storageClient := storage.NewClient(cfg)

	publisher := realtime.NewPublisher(pgConn, cfg.Realtime.Channel)

	verifier := identifying.NewService(cfg)
	notificationService := notifying.NewService(notificationRepo, publisher)
	pricingService := pricing.NewService(cfg, tariffRepo, adRequestRepo, notificationService)
	engine := campaigning.NewService(cfg, adRequestRepo, placementRepo, notificationService)
	paymentService := paying.NewService(cfg, adRequestRepo, paymentRepo, engine, gatewayClient, notificationService)
	placementService := placing.NewService(cfg, placementRepo)
	mediaService := media.NewService(cfg, storageClient)

	// O cache quente de tarifas assina o canal de tempo real. LISTEN/NOTIFY
	// é o transporte padrão; polling sobre o histórico de preços é o
	// fallback para ambientes sem suporte a NOTIFY (pools, pgbouncer)
	syncClient := realtime.NewSyncClient(
		realtimeTransport(cfg, tariffRepo),
		cfg.Realtime.Channel,
		pricingService.GetCurrentPricing,
	)
	if err := syncClient.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o cliente de sincronização de tarifas")
	} else {
		logrus.Info("Cliente de sincronização de tarifas iniciado com sucesso")
	}
	defer syncClient.Close()

	sweepService := scheduler.NewCampaignSweepService(engine, placementService, cfg)
	if err := sweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de varredura de campanhas")
	} else {
		logrus.Info("Agendador de varredura de campanhas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pricingService,
		engine,
		paymentService,
		placementService,
		notificationService,
		mediaService,
		verifier,
		sweepService,
		syncClient,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// realtimeTransport escolhe o transporte do canal de tempo real conforme a
// configuração
func realtimeTransport(cfg *config.Config, tariffRepo repository.TariffRepository) realtime.Transport {
	if cfg.Realtime.Transport == "listener" {
		return realtime.NewListenerTransport(cfg.Database.DSN)
	}

	interval := time.Duration(cfg.Realtime.PollIntervalSeconds) * time.Second
	return realtime.NewPollingTransport(interval, pollPriceChanges(tariffRepo))
}

// pollPriceChanges converte o histórico de preços em eventos incrementais
// para o transporte de polling
func pollPriceChanges(tariffRepo repository.TariffRepository) realtime.PollFunc {
	return func(ctx context.Context, since time.Time) ([]realtime.Event, error) {
		entries, err := tariffRepo.ListHistorySince(ctx, since)
		if err != nil {
			return nil, err
		}

		events := make([]realtime.Event, 0, len(entries))
		for _, entry := range entries {
			payload, err := json.Marshal(domain.PriceChangeEvent{
				AdTypeID:  entry.AdTypeID,
				OldPrice:  entry.OldPrice.String(),
				NewPrice:  entry.NewPrice.String(),
				ChangedAt: entry.CreatedAt,
			})
			if err != nil {
				continue
			}

			events = append(events, realtime.Event{
				Kind:    realtime.EventPricingChanged,
				Payload: payload,
				At:      entry.CreatedAt,
			})
		}

		return events, nil
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
