package handlers

import (
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/navabank/account_service/cmd/docs"
	portssvc "github.com/navabank/account_service/internal/core/ports/services"
	"github.com/navabank/account_service/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service port interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, accountService portssvc.AccountSvcFacade) {
	registerCustomValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1")
	RegisterAccountRoutes(v1, accountService)

	setupSwaggerRoutes(r, cfg)
}

// registerCustomValidators wires extra binding validators into gin's
// validator engine. "currency" accepts exactly three letters.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		code := fl.Field().String()
		if len(code) != 3 {
			return false
		}
		for _, r := range code {
			if !unicode.IsLetter(r) {
				return false
			}
		}
		return true
	})
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
