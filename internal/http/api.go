package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"schoolify/internal/auth"
	"schoolify/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users       service.UserService
	tasks       service.TaskService
	tokens      *auth.Issuer
	transport   auth.CookieTransport
	logger      *logrus.Logger
	allowOrigin string
}

type Options struct {
	Users       service.UserService
	Tasks       service.TaskService
	Tokens      *auth.Issuer
	Transport   auth.CookieTransport
	Logger      *logrus.Logger
	AllowOrigin string
}

func NewHandler(opts Options) *Handler {
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	if opts.Transport.MaxAge == 0 && opts.Tokens != nil {
		opts.Transport.MaxAge = opts.Tokens.TTL()
	}
	if opts.AllowOrigin == "" {
		opts.AllowOrigin = "*"
	}
	return &Handler{
		users:       opts.Users,
		tasks:       opts.Tasks,
		tokens:      opts.Tokens,
		transport:   opts.Transport,
		logger:      opts.Logger,
		allowOrigin: opts.AllowOrigin,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestID(), requestLogger(h.logger), corsMiddleware(h.allowOrigin))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API Schoolify fonctionne correctement")
	})

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		authGroup := api.Group("/auth")
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
		authGroup.POST("/logout", h.logout)

		me := authGroup.Group("", h.requireAuth())
		me.GET("/me", h.me)
		me.PUT("/profile", h.updateProfile)
		me.PUT("/password", h.changePassword)

		tasks := api.Group("/tasks", h.requireAuth())
		tasks.GET("", h.listTasks)
		tasks.GET("/dates", h.markedDates)
		tasks.GET("/date/:date", h.listTasksByDate)
		tasks.POST("", h.createTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.DELETE("/:id", h.deleteTask)
	}
}

// corsMiddleware answers with a literal "*" and no credentials when origin is
// "*". Any other value is a comma-separated allow-list; a listed request
// Origin is echoed back with credentials allowed.
func corsMiddleware(origin string) gin.HandlerFunc {
	wildcard := strings.TrimSpace(origin) == "*"
	allowed := make(map[string]struct{})
	if !wildcard {
		for _, o := range strings.Split(origin, ",") {
			if o = strings.TrimSpace(o); o != "" {
				allowed[o] = struct{}{}
			}
		}
	}

	return func(c *gin.Context) {
		header := c.Writer.Header()
		if wildcard {
			header.Set("Access-Control-Allow-Origin", "*")
		} else {
			header.Add("Vary", "Origin")
			if reqOrigin := c.GetHeader("Origin"); reqOrigin != "" {
				if _, ok := allowed[reqOrigin]; ok {
					header.Set("Access-Control-Allow-Origin", reqOrigin)
					header.Set("Access-Control-Allow-Credentials", "true")
				}
			}
		}
		header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
