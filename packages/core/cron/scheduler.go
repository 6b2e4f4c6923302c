package cron

import (
	"log"

	"core/services"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron               *cron.Cron
	autoAdvanceService *services.AutoAdvanceService
}

func NewScheduler(autoAdvanceService *services.AutoAdvanceService) *Scheduler {
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:               c,
		autoAdvanceService: autoAdvanceService,
	}
}

// Start registers and starts all scheduled jobs.
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	// Run the auto-advance job at minute 0 of every hour.
	_, err := s.cron.AddFunc("0 0 * * * *", s.runAutoAdvance)
	if err != nil {
		log.Printf("Error scheduling auto-advance job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

// runAutoAdvance generates the next round for tournaments whose current
// round has been fully scored for more than 24 hours.
func (s *Scheduler) runAutoAdvance() {
	log.Println("Running auto-advance job...")

	count, err := s.autoAdvanceService.GetAdvanceableCount()
	if err != nil {
		log.Printf("Error checking advanceable tournaments: %v", err)
		return
	}

	if count == 0 {
		log.Println("No completed rounds to advance")
		return
	}

	log.Printf("Found %d tournament(s) with a completed stale round", count)

	if err := s.autoAdvanceService.AdvanceCompletedRounds(); err != nil {
		log.Printf("Error during auto-advance: %v", err)
		return
	}

	log.Println("Auto-advance job completed successfully")
}

// RunNow manually triggers the auto-advance job (useful for testing).
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering auto-advance job...")
	s.runAutoAdvance()
}
