package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropbook/pkg/auth/controller"
)

type authCtrl struct {
	adminUIDs map[string]bool
}

func NewAuthController(adminUIDs map[string]bool) controller.AuthController {
	return &authCtrl{adminUIDs: adminUIDs}
}

func (h *authCtrl) DevLogin(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		uid = "U_DEV_DEFAULT"
	}
	c.SetCookie(&http.Cookie{Name: "FARM_UID", Value: uid, Path: "/"})
	return c.JSON(http.StatusOK, map[string]any{"uid": uid, "admin": h.adminUIDs[uid]})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	admin, _ := c.Get("admin").(bool)
	return c.JSON(http.StatusOK, map[string]any{"uid": uid, "admin": admin})
}
