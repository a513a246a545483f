package httpserver

import (
	"context"

	"task-list-manager/internal/model"
	pkgErrors "task-list-manager/pkg/errors"
	"task-list-manager/pkg/response"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	srv.gin.NoRoute(func(c *gin.Context) {
		response.Error(c, pkgErrors.ErrNotFound)
	})

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	// Request ids are assigned before recovery so a panic log can be correlated.
	srv.gin.Use(srv.mw.RequestLogger())
	srv.gin.Use(gin.CustomRecovery(srv.recoverPanic))
	srv.gin.Use(srv.mw.RateLimit())
}

func (srv HTTPServer) recoverPanic(c *gin.Context, rec any) {
	srv.l.Errorf(c.Request.Context(), "httpserver.recoverPanic: %s %s: %v", c.Request.Method, c.Request.URL.Path, rec)
	response.InternalError(c, pkgErrors.ErrInternalServerError)
	c.Abort()
}

func (srv HTTPServer) production() bool {
	return srv.environment == string(model.EnvironmentProduction)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	ctx := context.Background()
	if srv.production() {
		srv.l.Infof(ctx, "Swagger UI disabled in production")
		return
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
	srv.l.Infof(ctx, "Swagger UI registered at /swagger/index.html (environment: %s)", srv.environment)
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	return srv.setupTaskDomain(context.Background())
}
