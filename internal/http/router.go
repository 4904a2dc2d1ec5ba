package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/rohitchirag97/HazriPro-Server/internal/http/handlers"
	"github.com/rohitchirag97/HazriPro-Server/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, ch *handlers.CompanyHandlers, sh *handlers.ShiftHandlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/verify-email", ah.VerifyEmail)
	auth.POST("/login", ah.Login)
	auth.POST("/request-otp", ah.RequestOTP)
	auth.POST("/verify-otp", ah.VerifyOTP)
	auth.GET("/me", jwtmw.WithJWT(), ah.Me)

	company := v1.Group("/company").Use(jwtmw.WithJWT(), cb.Enforce())
	company.POST("/create", ch.Create)
	company.GET("/get", ch.GetMine)
	company.GET("/get-by-slug/:slug", ch.GetBySlug)
	company.PUT("/update/:slug", ch.Update)
	company.DELETE("/delete/:slug", ch.Delete)

	shifts := v1.Group("/shifts").Use(jwtmw.WithJWT(), cb.Enforce())
	shifts.POST("/create", sh.Create)
	shifts.GET("/get", sh.List)
	shifts.GET("/get/:id", sh.Get)
	shifts.PUT("/update/:id", sh.Update)
	shifts.DELETE("/delete/:id", sh.Delete)

	return r
}
