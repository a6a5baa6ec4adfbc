package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/color-picker/api/datastore"
)

// Scheduler periodically drops expired picker sessions.
type Scheduler struct {
	SessionRepo datastore.SessionRepository
	interval    time.Duration
	ticker      *time.Ticker
	done        chan bool
	stopOnce    sync.Once
	now         func() time.Time
}

func NewScheduler(repo datastore.SessionRepository, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Scheduler{
		SessionRepo: repo,
		interval:    interval,
		done:        make(chan bool),
		now:         time.Now,
	}
}

// Start begins sweeping every interval
func (s *Scheduler) Start() {
	log.Printf("Scheduler started. Sweeping expired sessions every %v", s.interval)

	s.ticker = time.NewTicker(s.interval)
	go func() {
		for {
			select {
			case <-s.ticker.C:
				s.SweepExpired()
			case <-s.done:
				return
			}
		}
	}()
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.ticker != nil {
			s.ticker.Stop()
		}
		close(s.done)
		log.Println("Scheduler stopped")
	})
}

// SweepExpired removes every session past its expiry
func (s *Scheduler) SweepExpired() int {
	removed := s.SessionRepo.DeleteExpired(s.now())
	if removed > 0 {
		log.Printf("Removed %d expired sessions, %d active", removed, s.SessionRepo.Count())
	}
	return removed
}
