package core

import (
	"log"

	"core/cron"
	"core/handlers"
	"core/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	TournamentHandler  *handlers.TournamentHandler
	TournamentService  *services.TournamentService
	PlayerHandler      *handlers.PlayerHandler
	PlayerService      *services.PlayerService
	MatchHandler       *handlers.MatchHandler
	MatchService       *services.MatchService
	StandingsHandler   *handlers.StandingsHandler
	StandingsService   *services.StandingsService
	ExportService      *services.ExportService
	AutoAdvanceService *services.AutoAdvanceService
	Scheduler          *cron.Scheduler
	db                 *gorm.DB
}

func NewModule(db *gorm.DB) *Module {
	tournamentService := services.NewTournamentService(db)

	playerService := services.NewPlayerService(db)
	playerHandler := handlers.NewPlayerHandler(playerService)

	matchService := services.NewMatchService(db)
	matchHandler := handlers.NewMatchHandler(matchService)

	standingsService := services.NewStandingsService(db)
	standingsHandler := handlers.NewStandingsHandler(standingsService)

	exportService := services.NewExportService(db, standingsService, matchService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService, exportService)

	autoAdvanceService := services.NewAutoAdvanceService(db, tournamentService)
	scheduler := cron.NewScheduler(autoAdvanceService)

	return &Module{
		TournamentHandler:  tournamentHandler,
		TournamentService:  tournamentService,
		PlayerHandler:      playerHandler,
		PlayerService:      playerService,
		MatchHandler:       matchHandler,
		MatchService:       matchService,
		StandingsHandler:   standingsHandler,
		StandingsService:   standingsService,
		ExportService:      exportService,
		AutoAdvanceService: autoAdvanceService,
		Scheduler:          scheduler,
		db:                 db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	tournaments := r.Group("/tournaments")
	{
		tournaments.POST("", m.TournamentHandler.CreateTournament)
		tournaments.GET("", m.TournamentHandler.GetTournaments)
		tournaments.GET("/:id", m.TournamentHandler.GetTournament)
		tournaments.PATCH("/:id", m.TournamentHandler.UpdateTournament)
		tournaments.DELETE("/:id", m.TournamentHandler.DeleteTournament)
		tournaments.POST("/:id/reset", m.TournamentHandler.ResetTournament)
		tournaments.GET("/:id/export", m.TournamentHandler.ExportTournament)

		tournaments.POST("/:id/players", m.PlayerHandler.AddPlayer)
		tournaments.GET("/:id/players", m.PlayerHandler.GetPlayers)
		tournaments.DELETE("/:id/players/:playerId", m.PlayerHandler.RemovePlayer)
		tournaments.PATCH("/:id/players/:playerId/rating", m.PlayerHandler.SetPlayerRating)

		tournaments.POST("/:id/rounds", m.TournamentHandler.AdvanceRound)
		tournaments.GET("/:id/rounds/:round/resting", m.MatchHandler.GetRestingPlayers)

		tournaments.GET("/:id/matches", m.MatchHandler.GetMatches)
		tournaments.DELETE("/:id/matches", m.TournamentHandler.ResetMatches)
		tournaments.PUT("/:id/matches/:matchId/result", m.MatchHandler.RecordResult)

		tournaments.GET("/:id/standings", m.StandingsHandler.GetStandings)
	}
}

// StartScheduler starts the cron scheduler for round auto-advance
func (m *Module) StartScheduler() error {
	log.Println("Starting core module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping core module scheduler...")
	m.Scheduler.Stop()
}

// RunAutoAdvanceNow manually triggers round auto-advance (useful for testing)
func (m *Module) RunAutoAdvanceNow() {
	log.Println("Manually triggering auto-advance...")
	m.Scheduler.RunNow()
}
