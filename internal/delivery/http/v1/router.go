package v1

import (
	"net/http"

	"go-marketplace-backend/config"
	"go-marketplace-backend/internal/delivery/http/middleware"
	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/auth"
	"go-marketplace-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC    domain.AuthUsecase
	ProjectUC domain.ProjectUsecase
	BidUC     domain.BidUsecase
	MessageUC domain.MessageUsecase
	ReviewUC  domain.ReviewUsecase
	UserUC    domain.UserUsecase
	SkillUC   domain.SkillUsecase
	Tokens    *auth.TokenManager
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Custom binding validators (future_date, valid_name)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(middleware.GlobalRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold, deps.Config.RateLimitWindowSeconds)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Stricter budget on credential endpoints
	v1.Use(rateLimitAuthPaths(deps.Config))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC)
		NewProjectHandler(v1, protected, deps.ProjectUC)
		NewBidHandler(protected, deps.BidUC)
		NewMessageHandler(protected, deps.MessageUC)
		NewReviewHandler(v1, protected, deps.ReviewUC)
		NewUserHandler(v1, protected, deps.UserUC, deps.SkillUC)
	}

	return r
}

// rateLimitAuthPaths applies the auth rate budget to register/login only.
func rateLimitAuthPaths(cfg *config.Config) gin.HandlerFunc {
	limiter := middleware.RateLimit(middleware.AuthRateLimitConfig(
		cfg.RateLimitAuthThreshold, cfg.RateLimitWindowSeconds))
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "/v1/auth/register" || path == "/v1/auth/login" {
			limiter(c)
			return
		}
		c.Next()
	}
}
