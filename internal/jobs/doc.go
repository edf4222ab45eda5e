// Package jobs implements background job processing for Muster.
//
// The jobs package contains scheduled tasks that run independently of
// interactive callback handling.
//
// # Job Types
//
//   - SessionReaper: expires pagination sessions whose idle window elapsed
//
// # Job Pattern
//
// Jobs run a ticker loop on their own goroutine:
//
//	reaper := jobs.NewSessionReaper(registry, 30*time.Second, logger)
//	reaper.Start()
//	defer reaper.Stop()
//
// Start and Stop are idempotent; Stop blocks until the loop exits.
package jobs
