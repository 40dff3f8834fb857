package setup

import (
	"net/http"

	"github.com/campushub/club-directory/cmd/app"
	"github.com/campushub/club-directory/internal/adapters/controller/http/handlers"
	"github.com/campushub/club-directory/internal/adapters/database/postgres"
	"github.com/campushub/club-directory/internal/adapters/logger"
	"github.com/campushub/club-directory/internal/domain/service"
	"github.com/gin-gonic/gin"
)

// Setup wires storages, services and handlers onto the app's router.
func Setup(a *app.App) error {
	serviceLogger, err := logger.Named("service")
	if err != nil {
		return err
	}

	clubStorage := postgres.NewClubStorage(a.DB)
	userService := service.NewUserService(postgres.NewUserStorage(a.DB))
	clubService := service.NewClubService(clubStorage, userService, a.Redis.Clubs, serviceLogger)
	clubHandler := handlers.NewClubHandler(clubService, a.Logger)

	a.Engine.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	api := a.Engine.Group("/api/v1")
	{
		api.POST("/clubs", clubHandler.Create)
		api.PUT("/clubs/:id", clubHandler.Update)
		api.DELETE("/clubs/:id", clubHandler.Delete)
		api.GET("/clubs/:id", clubHandler.Get)
		api.GET("/clubs", clubHandler.GetAll)
	}

	return nil
}
