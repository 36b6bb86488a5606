package routes

import (
	"context"
	"net/http"

	"maua-esports-backend/internal/api/handlers"
	"maua-esports-backend/internal/api/middleware"
	"maua-esports-backend/internal/auth"
	"maua-esports-backend/internal/config"
	"maua-esports-backend/internal/database"
	"maua-esports-backend/internal/logger"
	"maua-esports-backend/internal/repository"
	"maua-esports-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	log := logger.WithComponent("routes")

	// Create router
	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadMB << 20

	// Add middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.BodyLimit((cfg.MaxUploadMB + 1) << 20))

	// Initialize validator
	validator := service.NewValidator()

	// Outbound client shared by the upstream proxies
	upstream := &http.Client{Timeout: cfg.HTTPTimeout()}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	tournamentRepo := repository.NewTournamentRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	rankingRepo := repository.NewRankingRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	newsItemRepo := repository.NewNewsItemRepository(db)
	presentationRepo := repository.NewPresentationRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, validator)
	playerService := service.NewPlayerService(playerRepo, teamRepo, validator)
	teamService := service.NewTeamService(teamRepo, playerRepo, validator)
	tournamentService := service.NewTournamentService(tournamentRepo, validator)
	adminService := service.NewAdminService(adminRepo, validator)
	rankingService := service.NewRankingService(rankingRepo, validator)
	policyService := service.NewPolicyService(policyRepo, validator)
	newsItemService := service.NewNewsItemService(newsItemRepo)
	presentationService := service.NewPresentationService(presentationRepo)
	modalityService := service.NewModalityService(upstream, cfg.ModalityAPIURL, cfg.ModalityAPIToken)
	if !modalityService.Configured() {
		log.Warn("MODALITY_API_URL not set, training endpoints return empty data")
	}
	paeService := service.NewPAEService(modalityService, userRepo, clockwork.NewRealClock(), cfg.Location())
	reportService := service.NewReportService(upstream, cfg.ReportServiceURL, cfg.ReportServiceToken)

	// Initialize Discord linking; without credentials the endpoints answer 503
	discordConfig := auth.NewDiscordConfig(cfg)
	var discordProvider auth.DiscordProvider
	if err := discordConfig.ValidateConfig(); err != nil {
		log.WithError(err).Warn("Discord linking disabled")
	} else {
		discordProvider = auth.NewDiscordClient(discordConfig)
	}
	linkService := auth.NewLinkService(discordProvider, userService, cfg.FrontendURL)
	authHandler := auth.NewAuthHandler(linkService)
	tokenMiddleware := auth.NewTokenMiddleware(cfg.FrontendToken)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(Version,
		map[string]bool{
			"modality": modalityService.Configured(),
			"report":   reportService.Configured(),
			"discord":  discordProvider != nil,
		},
		handlers.HealthCheck{Name: "database", Check: func(ctx context.Context) error { return database.Ping(ctx, db) }},
	)
	userHandler := handlers.NewUserHandler(userService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	teamHandler := handlers.NewTeamHandler(teamService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)
	adminHandler := handlers.NewAdminHandler(adminService)
	rankingHandler := handlers.NewRankingHandler(rankingService)
	policyHandler := handlers.NewPolicyHandler(policyService)
	contentHandler := handlers.NewContentHandler(newsItemService, presentationService)
	modalityHandler := handlers.NewModalityHandler(modalityService)
	paeHandler := handlers.NewPAEHandler(paeService, reportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Discord account linking
	discord := router.Group("/auth/discord")
	{
		discord.GET("/login", authHandler.Login)
		discord.GET("/callback", authHandler.Callback)
	}

	users := router.Group("/usuarios")
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/por-email", userHandler.GetUserByEmail)
		users.GET("/por-discord-ids", userHandler.GetUsersByDiscordIDs)
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
		users.GET("/:id/foto", userHandler.GetProfilePhoto)
	}

	players := router.Group("/jogadores")
	{
		players.GET("", playerHandler.ListPlayers)
		players.POST("", playerHandler.CreatePlayer)
		players.GET("/:id", playerHandler.GetPlayer)
		players.PUT("/:id", playerHandler.UpdatePlayer)
		players.DELETE("/:id", playerHandler.DeletePlayer)
		players.GET("/:id/imagem", playerHandler.GetPlayerPhoto)
	}

	teams := router.Group("/times")
	{
		teams.GET("", teamHandler.ListTeams)
		teams.POST("", teamHandler.CreateTeam)
		teams.GET("/:id", teamHandler.GetTeam)
		teams.PUT("/:id", teamHandler.UpdateTeam)
		teams.DELETE("/:id", teamHandler.DeleteTeam)
		teams.GET("/:id/foto", teamHandler.GetTeamPhoto)
		teams.GET("/:id/jogo", teamHandler.GetTeamGameLogo)
		teams.GET("/:id/jogadores", teamHandler.GetTeamPlayers)
	}

	tournaments := router.Group("/campeonatos")
	{
		tournaments.GET("", tournamentHandler.ListTournaments)
		tournaments.POST("", tournamentHandler.CreateTournament)
		tournaments.GET("/:id", tournamentHandler.GetTournament)
		tournaments.PUT("/:id", tournamentHandler.UpdateTournament)
		tournaments.PATCH("/:id/move", tournamentHandler.MoveTournament)
		tournaments.DELETE("/:id", tournamentHandler.DeleteTournament)
		tournaments.GET("/:id/image", tournamentHandler.GetTournamentImage(service.TournamentImageBanner))
		tournaments.GET("/:id/gameIcon", tournamentHandler.GetTournamentImage(service.TournamentImageGameIcon))
		tournaments.GET("/:id/organizerImage", tournamentHandler.GetTournamentImage(service.TournamentImageOrganizer))
	}

	admins := router.Group("/admins")
	{
		admins.GET("", adminHandler.ListAdmins)
		admins.POST("", adminHandler.CreateAdmin)
		admins.GET("/:id", adminHandler.GetAdmin)
		admins.PUT("/:id", adminHandler.UpdateAdmin)
		admins.DELETE("/:id", adminHandler.DeleteAdmin)
		admins.GET("/:id/foto", adminHandler.GetAdminPhoto)
	}

	rankings := router.Group("/rankings")
	{
		rankings.GET("", rankingHandler.ListRankings)
		rankings.POST("", rankingHandler.CreateRanking)
		rankings.PUT("/:id", rankingHandler.UpdateRanking)
		rankings.DELETE("/:id", rankingHandler.DeleteRanking)
		rankings.GET("/:id/imagem", rankingHandler.GetRankingImage)
	}

	policies := router.Group("/politicas")
	{
		policies.GET("", policyHandler.ListPolicies)
		policies.POST("", policyHandler.CreatePolicy)
		policies.PUT("/:id", policyHandler.UpdatePolicy)
		policies.DELETE("/:id", policyHandler.DeletePolicy)
	}

	content := router.Group("/api")
	{
		content.GET("/homeNovidade", contentHandler.GetNewsItem)
		content.POST("/homeNovidade", contentHandler.SaveNewsItem)
		content.GET("/apresentacao", contentHandler.GetPresentation)
		content.POST("/apresentacao", contentHandler.SavePresentation)
	}

	// Routes that require the frontend token
	gated := router.Group("")
	gated.Use(tokenMiddleware.RequireToken())
	{
		gated.GET("/trains/all", modalityHandler.ListTrains)
		gated.GET("/modality/all", modalityHandler.ListModalities)
		gated.PATCH("/modality", modalityHandler.UpdateModality)
		gated.GET("/pae/horas", paeHandler.GetHours)
		gated.POST("/pae/relatorio/:format", paeHandler.GenerateReport)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rota não encontrada"})
	})

	return router
}
