package server

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/api"
	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/config"
	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/data"
	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/loader"
)

//go:embed all:dist
var staticFiles embed.FS

// Server HTTP服务器
type Server struct {
	router *gin.Engine
	api    *api.Handler
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Fatalf("Failed to prepare data directory: %v", err)
	}

	// 首次启动释放内置示例报表
	samplesDir := filepath.Join(dataDir, "samples")
	if cfg.Data.SeedSamples {
		if n, err := data.Seed(samplesDir); err != nil {
			log.Printf("释放示例数据失败: %v", err)
		} else if n > 0 {
			log.Printf("已释放 %d 份示例报表到 %s", n, samplesDir)
		}
	}

	ttl := time.Duration(cfg.Export.DownloadTTLMinutes) * time.Minute
	ldr := loader.New(samplesDir, loader.NewMemoryCache())
	apiHandler := api.NewHandler(ldr, filepath.Join(dataDir, "exports"), ttl)

	s := &Server{
		router: gin.Default(),
		api:    apiHandler,
	}

	s.setupRoutes(devMode)

	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API 路由
	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	// 静态资源
	if devMode {
		// 开发模式：代理到前端开发服务器
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		// 生产模式：使用embed的静态资源
		sub, _ := fs.Sub(staticFiles, "dist")

		// favicon
		s.router.GET("/favicon.svg", func(c *gin.Context) {
			icon, err := fs.ReadFile(sub, "favicon.svg")
			if err != nil {
				c.Status(http.StatusNotFound)
				return
			}
			c.Data(http.StatusOK, "image/svg+xml", icon)
		})

		// 首页
		s.router.GET("/", func(c *gin.Context) {
			page, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", page)
		})

		// SPA 路由 fallback
		s.router.NoRoute(func(c *gin.Context) {
			page, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", page)
		})
	}
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router 获取路由（用于测试）
func (s *Server) Router() *gin.Engine {
	return s.router
}
