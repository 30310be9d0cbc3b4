package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"quartz/internal/model"
	"quartz/pkg/log"
	"quartz/pkg/response"
)

// Config tunes the shared HTTP middleware.
type Config struct {
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

type Middleware struct {
	l       log.Logger
	config  Config
	limiter *rate.Limiter
}

func New(l log.Logger, cfg Config) Middleware {
	if cfg.RateLimitRPS <= 0 {
		cfg.RateLimitRPS = 20
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = 40
	}
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	}
}

// CORS allows the browser client to call the API from its own origin.
func (mw Middleware) CORS() gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	if len(mw.config.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = mw.config.AllowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, identityHeader, usernameHeader)
	return cors.New(corsCfg)
}

// RateLimit applies a process-wide token bucket. The chat endpoint fronts an
// LLM call, so runaway clients get 429 before they get expensive.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !mw.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests, slow down",
			})
			return
		}
		c.Next()
	}
}

const (
	identityHeader = "X-User-ID"
	usernameHeader = "X-Username"

	scopeKey = "quartz.scope"

	// defaultUserID backs the single-user browser deployment, where the
	// client sends no identity headers at all.
	defaultUserID = "local"
)

// Identity resolves the request's scope from headers, defaulting to the
// single local user.
func (mw Middleware) Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			UserID:   c.GetHeader(identityHeader),
			Username: c.GetHeader(usernameHeader),
		}
		if sc.UserID == "" {
			sc.UserID = defaultUserID
		}
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// ScopeFromContext returns the scope Identity stored on the request.
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{UserID: defaultUserID}
}
