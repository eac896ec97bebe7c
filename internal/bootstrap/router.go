package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/taskboard-io/taskboard-backend/config"
	httpapi "github.com/taskboard-io/taskboard-backend/internal/api/http"
	authhttp "github.com/taskboard-io/taskboard-backend/internal/auth/http"
	authmw "github.com/taskboard-io/taskboard-backend/internal/auth/middleware"
	authrepo "github.com/taskboard-io/taskboard-backend/internal/auth/repository"
	authservice "github.com/taskboard-io/taskboard-backend/internal/auth/service"
	projecthttp "github.com/taskboard-io/taskboard-backend/internal/projects/http"
	projectrepo "github.com/taskboard-io/taskboard-backend/internal/projects/repository"
	projectservice "github.com/taskboard-io/taskboard-backend/internal/projects/service"
	taskhttp "github.com/taskboard-io/taskboard-backend/internal/tasks/http"
	taskrepo "github.com/taskboard-io/taskboard-backend/internal/tasks/repository"
	taskservice "github.com/taskboard-io/taskboard-backend/internal/tasks/service"
)

// SetGinMode switches gin to release mode outside development.
func SetGinMode(env string) {
	switch env {
	case "production", "staging":
		gin.SetMode(gin.ReleaseMode)
	}
}

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
	Redis       *redis.Client
	Auth        config.AuthConfig
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(httpapi.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	userRepo := authrepo.NewUserRepository(dep.DB)
	tokenStore := authrepo.NewTokenStore(dep.Redis, dep.Auth.TokenTTL)
	authSvc := authservice.NewAuthService(userRepo, tokenStore, dep.Auth.BcryptCost)
	authHandler := authhttp.New(authSvc)

	public := r.Group("")
	public.Use(httpapi.RateLimitMiddleware(rate.Limit(5), 10))
	authHandler.RegisterPublic(public)

	protected := r.Group("")
	protected.Use(authmw.RequireAuth(authSvc))
	authHandler.RegisterProtected(protected)

	projRepo := projectrepo.NewProjectRepository(dep.DB)
	projSvc := projectservice.NewProjectService(projRepo)
	projectsGroup := protected.Group("/projects")
	projecthttp.New(projSvc).Register(projectsGroup)

	tskRepo := taskrepo.NewTaskRepository(dep.DB)
	tskSvc := taskservice.NewTaskService(tskRepo, projRepo)
	taskhttp.New(tskSvc).RegisterProjectSubroutes(projectsGroup)

	return r
}
