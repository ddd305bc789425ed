package audit

import (
	"context"
	"fmt"

	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/validation"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Auditor runs one integrity check over the project.
type Auditor interface {
	Audit(ctx context.Context) validation.Report
}

// Scheduler runs the reference audit on a cron schedule (seconds field
// included, e.g. "0 */15 * * * *").
type Scheduler struct {
	cron    *cron.Cron
	auditor Auditor
	log     *zap.Logger
}

func NewScheduler(spec string, auditor Auditor, log *zap.Logger) (*Scheduler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		auditor: auditor,
		log:     log,
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid audit schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start begins running scheduled audits in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("reference audit scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop halts the schedule and waits for a running audit to finish or
// ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

func (s *Scheduler) run() {
	report := s.auditor.Audit(context.Background())
	s.log.Info("reference audit finished",
		zap.Bool("valid", report.Valid),
		zap.Int("findings", len(report.Errors)),
	)
}
