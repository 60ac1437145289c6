package handler

import (
	"carlookup/internal/middleware"
	"carlookup/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterDeps bundles everything the route table needs.
type RouterDeps struct {
	Auth   *AuthHandler
	Makes  *CarMakeHandler
	Models *CarModelHandler
	Tokens *utils.TokenService
	Log    *zap.Logger
	IsProd bool
	Extra  []gin.HandlerFunc // mounted before the API group (cors, rate limiting)
}

// NewRouter builds the gin engine with the full middleware chain and the
// /api/v1 route table.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.HSTS(deps.IsProd))
	for _, mw := range deps.Extra {
		router.Use(mw)
	}
	router.Use(middleware.ErrorMapper(deps.Log, deps.IsProd))

	v1 := router.Group("/api/v1")

	v1.POST("/auth/token", deps.Auth.Token)

	authed := v1.Group("")
	authed.Use(middleware.Auth(deps.Tokens))
	{
		makes := authed.Group("/carmakes")
		makes.GET("", middleware.RequireRoles(middleware.ReaderOrAbove), deps.Makes.List)
		makes.GET("/:carMakeId", middleware.RequireRoles(middleware.ReaderOrAbove), deps.Makes.GetByID)
		makes.GET("/:carMakeId/carmodels", middleware.RequireRoles(middleware.ReaderOrAbove), deps.Makes.ListModels)
		makes.POST("", middleware.RequireRoles(middleware.EditorOrAbove), deps.Makes.Create)
		makes.PUT("/:carMakeId", middleware.RequireRoles(middleware.EditorOrAbove), deps.Makes.Update)
		makes.DELETE("/:carMakeId", middleware.RequireRoles(middleware.AdminOnly), deps.Makes.Delete)

		carModels := authed.Group("/carmodels")
		carModels.GET("/:carModelId", middleware.RequireRoles(middleware.ReaderOrAbove), deps.Models.GetByID)
		carModels.POST("", middleware.RequireRoles(middleware.EditorOrAbove), deps.Models.Create)
		carModels.PUT("/:carModelId", middleware.RequireRoles(middleware.EditorOrAbove), deps.Models.Update)
		carModels.DELETE("/:carModelId", middleware.RequireRoles(middleware.AdminOnly), deps.Models.Delete)
	}

	return router
}
