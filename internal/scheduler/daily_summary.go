// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/returns-report-api/internal/config"
	"github.com/vfg2006/returns-report-api/internal/usecases/reporting"
	"github.com/vfg2006/returns-report-api/pkg/utils"
)

type DailySummaryConfig struct {
	CronSchedule string
	LookbackDays int
	Enabled      bool
}

// DailySummaryService gera diariamente o relatório do dia anterior e registra
// o resumo em log. Operação só de leitura: nada é persistido — o objetivo é
// ter um sinal operacional diário de que a pipeline de relatórios está sã.
type DailySummaryService struct {
	scheduler     *gocron.Scheduler
	reportService reporting.ReportGenerator
	config        DailySummaryConfig

	runMutex        sync.Mutex
	running         bool
	lastRunID       string
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
}

func NewDailySummaryService(
	reportService reporting.ReportGenerator,
	cfg *config.Config,
) *DailySummaryService {
	summaryConfig := DailySummaryConfig{
		CronSchedule: cfg.DailySummary.CronSchedule, // Default: 6h da manhã todos os dias
		LookbackDays: cfg.DailySummary.LookbackDays,
		Enabled:      cfg.DailySummary.Enabled, // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": summaryConfig.CronSchedule,
		"lookback_days": summaryConfig.LookbackDays,
	}).Info("Configuração do agendador de resumo diário carregada")

	return &DailySummaryService{
		scheduler:     gocron.NewScheduler(time.Local),
		reportService: reportService,
		config:        summaryConfig,
	}
}

func (s *DailySummaryService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de resumo diário de devoluções desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de resumo diário de devoluções")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSummary(); err != nil {
			logrus.WithError(err).Error("Erro na geração do resumo diário de devoluções")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo diário de devoluções: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do resumo diário de devoluções")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSummary gera o relatório da janela de lookback terminando ontem e loga o
// resumo. Também é acionável manualmente pelo endpoint de cron.
func (s *DailySummaryService) RunSummary() error {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Warn("Resumo diário de devoluções já está em execução")
		return nil
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.lastError = ""

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}
	s.lastRunID = runID
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.lastCompletedAt = time.Now()
		s.runMutex.Unlock()
	}()

	lookback := s.config.LookbackDays
	if lookback < 1 {
		lookback = 1
	}

	hasta := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)
	desde := time.Now().AddDate(0, 0, -lookback).Format(time.DateOnly)

	logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"desde":  desde,
		"hasta":  hasta,
	}).Info("Gerando resumo diário de devoluções")

	report, err := s.reportService.Generate(desde, hasta, "Dia", nil)
	if err != nil {
		s.runMutex.Lock()
		s.lastError = err.Error()
		s.runMutex.Unlock()
		return err
	}

	if report.Error != "" {
		s.runMutex.Lock()
		s.lastError = report.Error
		s.runMutex.Unlock()
		return fmt.Errorf("resumo diário devolveu erro de validação: %s", report.Error)
	}

	fields := logrus.Fields{
		"run_id":             runID,
		"piezas_total":       report.Summary.TotalPieces,
		"devoluciones_total": report.Summary.TotalReturns,
	}
	if report.Summary.TotalAmount != nil {
		fields["importe_total"] = *report.Summary.TotalAmount
	}

	logrus.WithFields(fields).Info("Resumo diário de devoluções gerado com sucesso")
	return nil
}

// Status devolve o estado corrente do job para o endpoint de cron.
func (s *DailySummaryService) Status() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := map[string]any{
		"enabled":  s.config.Enabled,
		"cron":     s.config.CronSchedule,
		"running":  s.running,
		"last_run": s.lastRunID,
	}
	if !s.lastStartedAt.IsZero() {
		status["last_started_at"] = s.lastStartedAt.Format(time.RFC3339)
	}
	if !s.lastCompletedAt.IsZero() {
		status["last_completed_at"] = s.lastCompletedAt.Format(time.RFC3339)
	}
	if s.lastError != "" {
		status["last_error"] = s.lastError
	}
	return status
}
