package handlers

import (
	"log/slog"
	"regexp"
	"time"

	"github.com/SergioDaniel16/mipymes/cmd/docs"
	portssvc "github.com/SergioDaniel16/mipymes/internal/core/ports/services"
	"github.com/SergioDaniel16/mipymes/internal/middleware"
	"github.com/SergioDaniel16/mipymes/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// accountCodeRe matches catalog codes: digit groups, the first identifying
// the account class (e.g. 1101, 5101.01).
var accountCodeRe = regexp.MustCompile(`^[1-9][0-9]{0,5}(\.[0-9]{1,4})*$`)

// RegisterRoutes sets up all application routes, injecting dependencies
// using the service interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Health check stays outside the rate-limited group
	r.GET("/health", GetHome)

	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// registerCustomValidators hooks domain-specific validations into gin's
// binding validator.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("accountcode", func(fl validator.FieldLevel) bool {
			return accountCodeRe.MatchString(fl.Field().String())
		})
	}
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the entity
// route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", cors.New(corsConfig(cfg)), middleware.RateLimit(newRateLimiter(cfg)))

	registerAccountRoutes(v1, services.Account)
	registerJournalRoutes(v1, services.Journal)
	registerReportRoutes(v1, services.Reporting)
	registerBankRoutes(v1, services.Bank)
	registerInventoryRoutes(v1, services.Inventory)
	registerPartyRoutes(v1, services.Party)
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if cfg.IsProduction && len(cfg.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	return corsCfg
}

// newRateLimiter builds an in-memory IP rate limiter from the configuration.
func newRateLimiter(cfg *config.Config) *limiter.Limiter {
	period, err := time.ParseDuration(cfg.RateLimitPeriod)
	if err != nil {
		slog.Warn("Invalid rate limit period, falling back to 1m", slog.String("period", cfg.RateLimitPeriod))
		period = time.Minute
	}
	rate := limiter.Rate{Period: period, Limit: cfg.RateLimitCount}
	return limiter.New(memory.NewStore(), rate)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
