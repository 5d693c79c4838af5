package router

import (
	"github.com/labstack/echo/v4"

	"cropbook/pkg/middleware"
)

func New(
	e *echo.Echo,
	adminUIDs map[string]bool,
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	settingsCtrl interface {
		Get(echo.Context) error
		Put(echo.Context) error
	},
	syncCtrl interface {
		SyncAll(echo.Context) error
		SyncSheet(echo.Context) error
		SyncQualifiers(echo.Context) error
		RemoveField(echo.Context) error
	},
	plantingCtrl interface {
		List(echo.Context) error
		Fields(echo.Context) error
	},
	qualifierCtrl interface {
		List(echo.Context) error
		Universal(echo.Context) error
		Form(echo.Context) error
	},
	logCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Recent(echo.Context) error
		Delete(echo.Context) error
	},
	analyticsCtrl interface{ Overview(echo.Context) error },
	guideCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin(adminUIDs))
	admin := middleware.RequireAdmin()
	api := e.Group("")

	e.GET("/health", healthCtrl.Health)
	api.GET("/devlogin", authCtrl.DevLogin)
	api.GET("/whoami", authCtrl.WhoAmI)

	api.GET("/settings", settingsCtrl.Get)
	api.PUT("/settings", settingsCtrl.Put)

	api.POST("/sync", syncCtrl.SyncAll)
	api.POST("/sync/qualifiers", syncCtrl.SyncQualifiers)
	api.POST("/sync/:sheet", syncCtrl.SyncSheet)
	api.DELETE("/sync/:sheet", syncCtrl.RemoveField, admin)

	api.GET("/plantings", plantingCtrl.List)
	api.GET("/fields", plantingCtrl.Fields)

	api.GET("/qualifiers", qualifierCtrl.List)
	api.GET("/qualifiers/universal", qualifierCtrl.Universal)
	api.GET("/qualifiers/form", qualifierCtrl.Form)

	api.POST("/logs", logCtrl.Create)
	api.GET("/logs", logCtrl.List)
	api.GET("/logs/recent", logCtrl.Recent)
	api.DELETE("/logs/:id", logCtrl.Delete, admin)

	api.GET("/analytics/overview", analyticsCtrl.Overview)

	api.POST("/guides", guideCtrl.IngestText)
	api.POST("/guides/url", guideCtrl.IngestURL)
	api.GET("/guides/search", guideCtrl.Search)

	return e
}
