package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/volunteerhub/api/internal/model"
	"github.com/volunteerhub/api/internal/service"
)

// reminderSender delivers reminders for one event. Implemented by the
// notification service.
type reminderSender interface {
	SendEventReminders(ctx context.Context, event *model.Event) (int, error)
}

// EventReminder periodically scans for upcoming events and sends reminder
// notifications to well-matched volunteers.
type EventReminder struct {
	eventRepo service.EventRepository
	sender    reminderSender
	interval  time.Duration
	window    time.Duration
	stopCh    chan struct{}
	wg        sync.WaitGroup
	running   bool
	mu        sync.Mutex
}

// maxEventsPerSweep caps how many upcoming events one sweep considers.
const maxEventsPerSweep = 100

// NewEventReminder creates a new event reminder job. interval controls how
// often the sweep runs; window controls how far ahead it looks for events.
func NewEventReminder(eventRepo service.EventRepository, sender reminderSender, interval, window time.Duration) *EventReminder {
	if interval == 0 {
		interval = 15 * time.Minute
	}
	if window == 0 {
		window = 24 * time.Hour
	}
	return &EventReminder{
		eventRepo: eventRepo,
		sender:    sender,
		interval:  interval,
		window:    window,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the reminder job
func (j *EventReminder) Start() {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return
	}
	j.running = true
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run()
	slog.Info("event reminder job started",
		slog.Duration("interval", j.interval),
		slog.Duration("window", j.window),
	)
}

// Stop gracefully stops the reminder job
func (j *EventReminder) Stop() {
	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return
	}
	j.running = false
	j.mu.Unlock()

	close(j.stopCh)
	j.wg.Wait()
	slog.Info("event reminder job stopped")
}

// IsRunning returns whether the job is running
func (j *EventReminder) IsRunning() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}

func (j *EventReminder) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.sweep()
		case <-j.stopCh:
			return
		}
	}
}

func (j *EventReminder) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := j.RunOnce(ctx); err != nil {
		slog.Error("event reminder sweep failed", slog.String("error", err.Error()))
	}
}

// RunOnce performs a single reminder sweep. Failures on individual events
// are logged and do not stop the sweep.
func (j *EventReminder) RunOnce(ctx context.Context) error {
	events, err := j.eventRepo.ListUpcoming(ctx, j.window, maxEventsPerSweep)
	if err != nil {
		return err
	}

	for _, event := range events {
		if event.Status != model.EventStatusPublished {
			continue
		}
		sent, err := j.sender.SendEventReminders(ctx, event)
		if err != nil {
			slog.Error("failed to send event reminders",
				slog.String("event_id", event.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		if sent > 0 {
			slog.Info("event reminders sent",
				slog.String("event_id", event.ID),
				slog.Int("count", sent),
			)
		}
	}

	return nil
}
