// Package jobs runs scheduled background work with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OutboxRelayJob runs one outbox relay pass per tick: pending order events
// are published to the broker and marked published. A pass that is still
// running when the next tick fires makes that tick a no-op.
//
// # Usage
//
//	manager := jobs.NewJobManager(logger, relayJob)
//	if err := manager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and retried on the next tick. Failed job starts
// stop any already running jobs.
package jobs
