package authwatch

import (
	"context"
	"sync"
	"time"

	"github.com/aevohorology/storefront-service/internal/domain"
	"github.com/aevohorology/storefront-service/internal/repository"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// Watcher polls the remote auth service for the current session and
// emits an AuthChange whenever it differs from the previous poll. It is
// the change-subscription the store consumes; Shutdown tears the
// subscription down.
type Watcher struct {
	repo      repository.AuthRepository
	scheduler gocron.Scheduler
	events    chan domain.AuthChange

	mu        sync.Mutex
	lastToken string
	seeded    bool
}

func CreateNewWatcher(repo repository.AuthRepository, interval time.Duration) (*Watcher, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		repo:      repo,
		scheduler: scheduler,
		events:    make(chan domain.AuthChange, 8),
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(w.Poll),
	)
	if err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Watcher) Events() <-chan domain.AuthChange {
	return w.events
}

func (w *Watcher) Start() {
	w.scheduler.Start()
}

func (w *Watcher) Shutdown() error {
	return w.scheduler.Shutdown()
}

// Poll checks the session once. It also runs outside the schedule right
// after sign-in/sign-out so the store hears about the change without
// waiting a full interval.
func (w *Watcher) Poll() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sess, user, err := w.repo.GetSession(ctx)
	if err != nil {
		// Unreachable auth service is not a session change.
		log.Debug().Err(err).Str("component", "authwatch").Msg("session poll failed")
		return
	}

	w.mu.Lock()
	changed := !w.seeded || sess.AccessToken != w.lastToken
	w.lastToken = sess.AccessToken
	w.seeded = true
	w.mu.Unlock()

	if !changed {
		return
	}

	isAdmin := false
	if sess.AccessToken != "" {
		// Profile lookup failure silently means not an administrator.
		isAdmin, _ = w.repo.IsAdmin(ctx, user.ID)
	}

	select {
	case w.events <- domain.AuthChange{Session: sess, User: user, IsAdmin: isAdmin}:
	default:
		log.Warn().Str("component", "authwatch").Msg("auth event dropped, consumer is behind")
	}
}
