package refresher

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/devfolio/stats-service/internal/core/service"
)

// Refresher re-aggregates every cached profile on a cron schedule. It owns
// its timer resource: Start arms it, Stop cancels it and waits for a running
// pass to finish.
type Refresher struct {
	service  *service.CachedProfileService
	schedule string
	cron     *cron.Cron
}

func New(svc *service.CachedProfileService, schedule string) *Refresher {
	return &Refresher{
		service:  svc,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start registers the schedule and begins running passes in the background.
func (r *Refresher) Start() error {
	if _, err := r.cron.AddFunc(r.schedule, func() {
		r.RunOnce(context.Background())
	}); err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

// Stop cancels the schedule and blocks until an in-flight pass completes.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
}

// RunOnce refreshes every cached username sequentially. Per-user failures
// are logged and skipped so one broken account does not stall the rest.
func (r *Refresher) RunOnce(ctx context.Context) {
	usernames, err := r.service.Usernames(ctx)
	if err != nil {
		log.Printf("refresh pass failed to list cached usernames: %v", err)
		return
	}

	for _, username := range usernames {
		if _, err := r.service.Refresh(ctx, username); err != nil {
			log.Printf("refresh failed for %q: %v", username, err)
		}
	}
	if len(usernames) > 0 {
		log.Printf("refreshed %d cached profiles", len(usernames))
	}
}
