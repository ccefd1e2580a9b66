package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"homework_backend/internals/features/progress/daily_rankings/dto"
)

type Snapshotter interface {
	SnapshotAll(ctx context.Context) (dto.SnapshotResult, error)
}

type Scheduler struct {
	cron    *cron.Cron
	svc     Snapshotter
	timeout time.Duration
}

// New registers the snapshot job on spec (standard 5-field cron syntax) in loc.
func New(spec string, loc *time.Location, svc Snapshotter) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger), cron.Recover(cron.DefaultLogger)),
		),
		svc:     svc,
		timeout: 4 * time.Minute,
	}
	if _, err := s.cron.AddFunc(spec, s.Run); err != nil {
		return nil, err
	}
	log.Printf("[CRON] ranking snapshot scheduled spec=%q tz=%s", spec, loc)
	return s, nil
}

func (s *Scheduler) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	started := time.Now()
	res, err := s.svc.SnapshotAll(ctx)
	if err != nil {
		log.Printf("[CRON] ranking snapshot date=%s finished with error: %v", res.Date, err)
	}
	log.Printf("[CRON] ranking snapshot date=%s classrooms=%d rows=%d took=%s",
		res.Date, res.Classrooms, res.Rows, time.Since(started).Round(time.Millisecond))
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running job until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
		log.Println("[CRON] scheduler stopped")
	case <-ctx.Done():
		log.Println("[CRON] scheduler stop timed out")
	}
}
