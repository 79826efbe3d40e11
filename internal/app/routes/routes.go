package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/ritikkamerkar15/residential-security-system/internal/app/controllers"
	"github.com/ritikkamerkar15/residential-security-system/internal/app/middleware"
	"github.com/ritikkamerkar15/residential-security-system/internal/domain/services/container"
	"github.com/ritikkamerkar15/residential-security-system/internal/infrastructure/config"
)

// SetupRouter initializes the engine with its middleware and routes. The
// returned container is handed back so the caller can shut services down.
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) (*gin.Engine, *container.ServiceContainer) {
	r := gin.Default()

	// CORS for the browser consoles
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	middleware.InitAuthMiddleware(cfg)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r, serviceContainer
}

// registerRoutes configures all API routes
func registerRoutes(r *gin.Engine, container *container.ServiceContainer) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers the routes reachable without a token
func registerPublicRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	api.Use(middleware.IPRateLimiter(30, 60))

	healthController := controllers.NewHealthCheckController()
	api.GET("/ping", healthController.Ping)
	api.GET("/health", healthController.Ping) // docker healthcheck path

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.LoginRateLimiter(5, 20))
	authGroup.POST("/login", controllers.HandleAuthFunc(container, "login"))
	authGroup.POST("/register", controllers.HandleAuthFunc(container, "register"))
}

// registerAuthenticatedRoutes registers the routes behind the token check
func registerAuthenticatedRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	// Session endpoints accept any authenticated principal
	session := api.Group("/auth")
	session.Use(middleware.Authentication())
	session.POST("/logout", controllers.HandleAuthFunc(container, "logout"))
	session.GET("/me", controllers.HandleAuthFunc(container, "currentUser"))

	// Live event stream for the consoles
	stream := api.Group("/events")
	stream.Use(middleware.Authentication())
	stream.GET("", controllers.HandleEventStreamFunc(container))

	// Gate console: guards register visitors and manage duty status
	gate := api.Group("/")
	gate.Use(middleware.AuthenticateGuard())
	gate.GET("/residents/:flat_number", controllers.HandleGuardFunc(container, "getResident"))
	gate.POST("/visitors", controllers.HandleGuardFunc(container, "createVisitorRequest"))
	gate.GET("/visitors", controllers.HandleGuardFunc(container, "getVisitorRequests"))
	gate.GET("/guards", controllers.HandleGuardFunc(container, "getGuards"))
	gate.PUT("/guards/:employee_id/status", controllers.HandleGuardFunc(container, "updateGuardStatus"))

	// Resident console: approve or reject requests for the own flat
	resident := api.Group("/")
	resident.Use(middleware.AuthenticateResident())
	resident.GET("/flats/:flat_number/visitors", controllers.HandleResidentFunc(container, "getFlatVisitors"))
	resident.PUT("/visitors/:id/status", controllers.HandleResidentFunc(container, "updateVisitorStatus"))

	// Admin console: directory management, aggregates and exports
	admin := api.Group("/")
	admin.Use(middleware.AuthenticateAdmin())
	admin.GET("/statistics", controllers.HandleAdminFunc(container, "getStatistics"))
	admin.GET("/residents", controllers.HandleAdminFunc(container, "getResidents"))
	admin.POST("/residents", controllers.HandleAdminFunc(container, "createResident"))
	admin.PUT("/residents/:flat_number", controllers.HandleAdminFunc(container, "updateResident"))
	admin.POST("/guards", controllers.HandleAdminFunc(container, "createGuard"))
	admin.GET("/users", controllers.HandleAdminFunc(container, "getUsers"))
	admin.PUT("/users/:id/status", controllers.HandleAdminFunc(container, "updateUserStatus"))
	admin.GET("/alerts", controllers.HandleAdminFunc(container, "getAlerts"))
	admin.POST("/alerts", controllers.HandleAdminFunc(container, "createAlert"))
	admin.GET("/export", controllers.HandleAdminFunc(container, "exportCSV"))
}
