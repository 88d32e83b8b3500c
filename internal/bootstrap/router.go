package bootstrap

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/nirvixtech/nirvix-tracker/internal/api/http"
	"github.com/nirvixtech/nirvix-tracker/internal/clients"
	"github.com/nirvixtech/nirvix-tracker/internal/domains"
	"github.com/nirvixtech/nirvix-tracker/internal/notify/dispatcher"
	notifyhttp "github.com/nirvixtech/nirvix-tracker/internal/notify/http"
	"github.com/nirvixtech/nirvix-tracker/internal/projects"
	"github.com/nirvixtech/nirvix-tracker/internal/servers"
	"github.com/nirvixtech/nirvix-tracker/internal/team"
	upcominghttp "github.com/nirvixtech/nirvix-tracker/internal/upcoming/http"
	upcomingrepo "github.com/nirvixtech/nirvix-tracker/internal/upcoming/repository"
	upcomingsvc "github.com/nirvixtech/nirvix-tracker/internal/upcoming/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins string
	DB          *pgxpool.Pool
	Logger      *slog.Logger
	Notifier    upcomingsvc.Notifier
	Dispatcher  *dispatcher.Dispatcher
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		httpapi.Fail(c, http.StatusMethodNotAllowed, "Method not allowed")
	})
	r.NoRoute(func(c *gin.Context) {
		httpapi.Fail(c, http.StatusNotFound, "Not found")
	})

	corsCfg := cors.DefaultConfig()
	if dep.CORSOrigins == "" || dep.CORSOrigins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = strings.Split(dep.CORSOrigins, ",")
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	upRepo := upcomingrepo.NewRepo(dep.DB)
	upSvc := upcomingsvc.New(upRepo, dep.Notifier, dep.Logger)
	upcominghttp.New(upSvc).Register(r)

	projRepo := projects.NewRepo(dep.DB)
	projSvc := projects.NewService(projRepo, dep.Notifier, dep.Logger)
	projects.NewHandler(projSvc).Register(r)

	team.NewHandler(team.NewRepo(dep.DB)).Register(r)
	clients.NewHandler(clients.NewRepo(dep.DB)).Register(r)
	servers.NewHandler(servers.NewRepo(dep.DB)).Register(r)
	domains.NewHandler(domains.NewRepo(dep.DB)).Register(r)

	notifyhttp.New(dep.Dispatcher).Register(r)

	return r
}
