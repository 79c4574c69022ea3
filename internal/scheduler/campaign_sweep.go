// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/adboardhq/adboard-api/internal/config"
	"github.com/adboardhq/adboard-api/internal/usecases/campaigning"
	"github.com/adboardhq/adboard-api/internal/usecases/placing"
)

type CampaignSweepConfig struct {
	CronSchedule string
	SweepEnabled bool
}

// CampaignSweepService encerra campanhas active cuja data final já passou e
// desativa os placements correspondentes. A varredura roda no cron
// configurado e também pode ser disparada manualmente pelo endpoint do admin.
type CampaignSweepService struct {
	scheduler *gocron.Scheduler
	engine    campaigning.Engine
	placer    placing.Scheduler
	config    CampaignSweepConfig

	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
	lastSweepCompleted   int
	lastSweepDeactivated int64
}

func NewCampaignSweepService(
	engine campaigning.Engine,
	placer placing.Scheduler,
	cfg *config.Config,
) *CampaignSweepService {
	sweepConfig := CampaignSweepConfig{
		CronSchedule: cfg.CampaignSweep.CronSchedule, // Default: meia-noite todos os dias
		SweepEnabled: cfg.CampaignSweep.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
	}).Info("Configuração do agendador de encerramento de campanhas carregada")

	return &CampaignSweepService{
		scheduler: gocron.NewScheduler(time.Local),
		engine:    engine,
		placer:    placer,
		config:    sweepConfig,
	}
}

func (s *CampaignSweepService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Cron de encerramento de campanhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de encerramento de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSweep(); err != nil {
			logrus.WithError(err).Error("Erro na varredura de encerramento de campanhas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de encerramento de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de encerramento de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSweep executa uma varredura completa. Execuções concorrentes são
// serializadas: uma varredura já em andamento faz a nova chamada retornar
// sem fazer nada.
func (s *CampaignSweepService) RunSweep() error {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	if s.sweepRunning {
		logrus.Warn("Varredura de encerramento de campanhas já está em execução")
		return nil
	}

	s.sweepRunning = true
	s.lastSweepStartedAt = time.Now()
	defer func() {
		s.sweepRunning = false
		s.lastSweepCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando varredura de encerramento de campanhas")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	now := time.Now()

	completed, err := s.engine.CompleteExpired(ctx, now)
	if err != nil {
		logrus.WithError(err).Error("Erro ao encerrar campanhas expiradas")
		return err
	}

	deactivated, err := s.placer.DeactivateExpired(ctx, now)
	if err != nil {
		logrus.WithError(err).Error("Erro ao desativar placements expirados")
		return err
	}

	s.lastSweepCompleted = len(completed)
	s.lastSweepDeactivated = deactivated

	logrus.WithFields(logrus.Fields{
		"campaigns_completed":    len(completed),
		"placements_deactivated": deactivated,
	}).Info("Varredura de encerramento de campanhas concluída")

	return nil
}

// TriggerManualRun inicia manualmente uma varredura de encerramento
func (s *CampaignSweepService) TriggerManualRun() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura já em andamento, ignorando solicitação manual")
		return
	}
	s.sweepMutex.Unlock()

	logrus.Info("Iniciando varredura manual de encerramento de campanhas")
	go func() {
		if err := s.RunSweep(); err != nil {
			logrus.WithError(err).Error("Erro na varredura manual de encerramento de campanhas")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *CampaignSweepService) GetStatus() map[string]any {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	return map[string]any{
		"sweep_enabled":               s.config.SweepEnabled,
		"sweep_cron":                  s.config.CronSchedule,
		"sweep_running":               s.sweepRunning,
		"last_sweep_started_at":       s.lastSweepStartedAt,
		"last_sweep_completed_at":     s.lastSweepCompletedAt,
		"last_campaigns_completed":    s.lastSweepCompleted,
		"last_placements_deactivated": s.lastSweepDeactivated,
	}
}
