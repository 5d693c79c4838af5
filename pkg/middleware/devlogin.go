package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const uidCookie = "FARM_UID"

// DevLogin assigns every request a farm user id from the FARM_UID
// cookie, a ?uid= override, or a development default. adminUIDs marks
// which ids may hit destructive routes.
func DevLogin(adminUIDs map[string]bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(uidCookie); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					uid = q
				} else {
					uid = "U_DEV_DEFAULT"
				}
				c.SetCookie(&http.Cookie{Name: uidCookie, Value: uid, Path: "/"})
			}
			c.Set("uid", uid)
			c.Set("admin", adminUIDs[uid])
			return next(c)
		}
	}
}

// RequireAdmin rejects requests whose uid was not flagged admin by
// DevLogin. Runs after DevLogin in the chain.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if ok, _ := c.Get("admin").(bool); !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin required"})
			}
			return next(c)
		}
	}
}
