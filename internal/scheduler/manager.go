package scheduler

import (
	"github.com/SWEConnect/backend/internal/config"
	"github.com/SWEConnect/backend/internal/logger"
	"github.com/SWEConnect/backend/internal/service"
	"github.com/go-co-op/gocron/v2"
)

type Manager struct {
	scheduler  gocron.Scheduler
	appService *service.ApplicationService
	cfg        *config.Config
}

func NewManager(appService *service.ApplicationService, cfg *config.Config) (*Manager, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &Manager{
		scheduler:  s,
		appService: appService,
		cfg:        cfg,
	}, nil
}

func (m *Manager) RegisterJobs() {
	job := NewApplicationDeadlineJob(m.appService, m.cfg)
	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("register job %s: %v", job.GetName(), err)
	}
}

func (m *Manager) Start() {
	m.RegisterJobs()
	m.scheduler.Start()
	logger.Info("scheduler started")
}

func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("shutdown scheduler: %v", err)
	}
	logger.Info("scheduler stopped")
}
