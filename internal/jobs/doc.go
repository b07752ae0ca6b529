// Package jobs implements background jobs for the VolunteerHub API.
//
// Jobs run independently of HTTP request handling on their own tickers and
// are started from main alongside the server.
//
// # Jobs
//
//   - EventReminder: periodically scans for upcoming published events and
//     sends reminder notifications to well-matched volunteers
//   - TokenCleanup: removes expired refresh tokens on an hourly sweep
//
// # Lifecycle
//
// Each job exposes Start and Stop:
//
//	reminder := jobs.NewEventReminder(eventRepo, notificationService, interval, window)
//	reminder.Start()
//	defer reminder.Stop()
package jobs
