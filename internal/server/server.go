package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "planhub/docs"
	"planhub/internal/api"
	"planhub/internal/auth"
	"planhub/internal/catalog"
	"planhub/internal/config"
	"planhub/internal/plan"
	"planhub/internal/subscription"
)

type Server struct {
	router     *gin.Engine
	store      *catalog.Store
	config     *config.Config
	httpServer *http.Server
}

func New(store *catalog.Store, cfg *config.Config) *Server {
	api.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	planHandler := plan.NewHandler(plan.NewService(store))
	subHandler := subscription.NewHandler(subscription.NewService(store))

	public := router.Group("/")
	{
		public.GET("/plans", planHandler.ListPlans)
		public.GET("/plans/:slug", planHandler.GetPlanBySlug)
		public.GET("/me", subHandler.GetMe)
		public.POST("/subscribe", subHandler.Subscribe)
		public.PATCH("/progress", subHandler.UpdateProgress)
	}

	admin := router.Group("/admin")
	admin.Use(auth.AdminToken(cfg.AdminToken))
	{
		admin.GET("/plans", planHandler.ListAllPlans)
		admin.POST("/plans", planHandler.CreatePlan)
		admin.PATCH("/plans/:id", planHandler.UpdatePlan)
		admin.DELETE("/plans/:id", planHandler.DeletePlan)
	}

	router.GET("/health", Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &Server{
		router: router,
		store:  store,
		config: cfg,
	}
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start(port string) error {
	s.httpServer = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Admin-Token, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
