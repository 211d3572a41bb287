package web

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/http"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/go-while/go-sampleweb/internal/config"
)

// Page templates parsed at startup, each wrapped by base.html
const (
	tmplIndex = "index.html"
	tmplError = "error.html"
)

// allowedMethods is the Allow header of the page and API routes
const allowedMethods = "GET, HEAD, OPTIONS"

// WebServer represents the web server
type WebServer struct {
	Router     *gin.Engine
	Config     *config.WebConfig
	templates  map[string]*template.Template
	httpServer *http.Server
}

// TemplateData represents common template data
type TemplateData struct {
	Title      template.HTML
	AppVersion string
	Port       int
	Debug      bool
}

// ErrorPageData represents data for the error page
type ErrorPageData struct {
	TemplateData
	Error      string
	Detail     string
	StatusCode int
}

// NewServer creates a new web server instance.
// The gin mode (debug/release/test) is expected to be set by the caller.
func NewServer(webconfig *config.WebConfig) (*WebServer, error) {
	if err := webconfig.Validate(); err != nil {
		return nil, err
	}

	templates, err := parsePageTemplates(tmplIndex, tmplError)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	// "/api/hello/" is a different route and answers 404, not a redirect
	router.RedirectTrailingSlash = false

	// Configure Gin to trust reverse proxy headers
	if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}

	server := &WebServer{
		Router:    router,
		Config:    webconfig,
		templates: templates,
	}

	if webconfig.Debug {
		router.Use(server.ApacheLogFormat())
	}
	router.Use(gin.CustomRecovery(server.recoverPanic))
	router.Use(secure.New(server.secureConfig()))

	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:              webconfig.Addr(),
		Handler:           router,
		ReadHeaderTimeout: webconfig.ReadHeaderTimeout,
		ReadTimeout:       webconfig.ReadTimeout,
		WriteTimeout:      webconfig.WriteTimeout,
		IdleTimeout:       webconfig.IdleTimeout,
	}
	return server, nil
}

// secureConfig configures security headers based on SSL setup
func (s *WebServer) secureConfig() secure.Config {
	secureConfig := secure.Config{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
	}

	// Only add SSL-specific headers if SSL is enabled on the application itself
	// (not when running behind a reverse proxy with SSL)
	if s.Config.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	return secureConfig
}

// setupRoutes configures all HTTP routes
func (s *WebServer) setupRoutes() {
	s.Router.GET("/static/*filepath", EmbeddedStaticHandler("/static"))
	s.Router.HEAD("/static/*filepath", EmbeddedStaticHandler("/static"))

	// no icon is shipped, answer without a body so browsers stop asking
	s.Router.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	s.Router.GET("/robots.txt", func(c *gin.Context) {
		c.String(http.StatusOK, "User-agent: *\nDisallow:\n")
	})
	s.Router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	s.Router.GET("/", s.homePage)
	s.Router.HEAD("/", s.homePage)
	s.Router.OPTIONS("/", s.allowOptions)

	api := s.Router.Group("/api")
	{
		api.GET("/hello", s.getHello)
		api.HEAD("/hello", s.getHello)
		api.OPTIONS("/hello", s.allowOptions)
		api.GET("/data", s.getData)
		api.HEAD("/data", s.getData)
		api.OPTIONS("/data", s.allowOptions)
	}

	s.Router.NoRoute(s.notFound)
	s.Router.NoMethod(s.methodNotAllowed)
}

// allowOptions answers OPTIONS for the page and API routes
func (s *WebServer) allowOptions(c *gin.Context) {
	c.Header("Allow", allowedMethods)
	c.Status(http.StatusOK)
}

// Start listens on the configured address and serves until Shutdown is called.
// It returns http.ErrServerClosed after a clean shutdown.
func (s *WebServer) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ln)
}

// Serve serves HTTP (or HTTPS if configured) on an existing listener
func (s *WebServer) Serve(ln net.Listener) error {
	if s.Config.SSL {
		log.Printf("[WEB]: Starting HTTPS server on %s", ln.Addr())
		return s.httpServer.ServeTLS(ln, s.Config.CertFile, s.Config.KeyFile)
	}
	log.Printf("[WEB]: Starting HTTP server on %s", ln.Addr())
	return s.httpServer.Serve(ln)
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *WebServer) Shutdown(ctx context.Context) error {
	log.Printf("[WEB]: Shutting down web server...")
	return s.httpServer.Shutdown(ctx)
}

// ApacheLogFormat logs every request in Apache combined log format
func (s *WebServer) ApacheLogFormat() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d "%s" "%s"`+"\n",
			param.ClientIP,
			param.TimeStamp.Format("02/Jan/2006:15:04:05 -0700"),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.BodySize,
			param.Request.Referer(),
			param.Request.UserAgent(),
		)
	})
}
