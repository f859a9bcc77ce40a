package api

import (
	"net/http"

	"draft-value/internal/api/handlers"
	"draft-value/internal/api/middleware"
	"draft-value/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Deps are the services the router wires into handlers.
type Deps struct {
	Session     *handlers.Session
	Store       handlers.SnapshotStore
	Logger      *logrus.Logger
	CORSOrigins []string
}

// NewRouter builds the gin engine serving the draft API.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.ErrorHandler(d.Logger))
	router.Use(middleware.CORS(d.CORSOrigins))
	router.Use(middleware.RequestLogger(d.Logger))
	router.Use(middleware.ErrorLogger(d.Logger))

	leagueHandler := handlers.NewLeagueHandler(d.Session, d.Logger)
	playerHandler := handlers.NewPlayerHandler(d.Session)
	teamHandler := handlers.NewTeamHandler(d.Session)
	draftHandler := handlers.NewDraftHandler(d.Session, d.Logger)
	strategyHandler := handlers.NewStrategyHandler(d.Session, d.Logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/league", leagueHandler.GetLeague)
		api.PUT("/settings", leagueHandler.UpdateSettings)
		api.POST("/recalculate", leagueHandler.Recalculate)
		api.GET("/positions", leagueHandler.Positions)

		api.GET("/players", playerHandler.BestAvailable)
		api.GET("/players/search", playerHandler.Search)
		api.GET("/players/lookup", playerHandler.Lookup)
		api.GET("/players/:id", playerHandler.Get)

		api.GET("/teams", teamHandler.List)
		api.GET("/teams/:id", teamHandler.Get)
		api.GET("/teams/:id/best-pick", teamHandler.BestPick)

		api.POST("/draft", draftHandler.Draft)
		api.POST("/undraft", draftHandler.Undraft)

		api.GET("/strategies", strategyHandler.ListStrategies)
		api.POST("/mock", strategyHandler.RunMock)

		if d.Store != nil {
			persistence := handlers.NewPersistenceHandler(d.Session, d.Store, d.Logger)
			api.GET("/leagues", persistence.List)
			api.POST("/leagues/:name/save", persistence.Save)
			api.POST("/leagues/:name/load", persistence.Load)
			api.DELETE("/leagues/:name", persistence.Delete)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: models.ErrorDetail{Code: "NOT_FOUND", Message: "Not found"}})
	})

	return router
}
