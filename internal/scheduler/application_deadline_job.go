package scheduler

import (
	"time"

	"github.com/SWEConnect/backend/internal/config"
	"github.com/SWEConnect/backend/internal/logger"
	"github.com/SWEConnect/backend/internal/service"
	"github.com/go-co-op/gocron/v2"
)

// ApplicationDeadlineJob periodically closes OPEN applications whose
// deadline has passed. Read paths apply the same reconcile lazily; the
// sweep just keeps rows nobody is reading from going stale forever.
type ApplicationDeadlineJob struct {
	appService *service.ApplicationService
	cfg        *config.Config
}

func NewApplicationDeadlineJob(appService *service.ApplicationService, cfg *config.Config) *ApplicationDeadlineJob {
	return &ApplicationDeadlineJob{
		appService: appService,
		cfg:        cfg,
	}
}

func (j *ApplicationDeadlineJob) GetName() string {
	return "application_deadline_sweep"
}

func (j *ApplicationDeadlineJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.cfg.Scheduler.SweepIntervalSeconds) * time.Second)
}

func (j *ApplicationDeadlineJob) Execute() {
	closed, err := j.appService.CloseExpired()
	if err != nil {
		logger.Error("deadline sweep failed: %v", err)
		return
	}
	if closed > 0 {
		logger.Info("deadline sweep closed %d applications", closed)
	}
}
