package controllerImp

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db          *gorm.DB
	workbookDir string
}

func NewHealthCtrl(db *gorm.DB, workbookDir string) *HealthCtrl {
	return &HealthCtrl{db: db, workbookDir: workbookDir}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := check{OK: true}
	if h.db == nil {
		db = check{Err: "gorm db is nil"}
	} else if sqlDB, err := h.db.DB(); err != nil {
		db = check{Err: "db.DB(): " + err.Error()}
	} else if err := sqlDB.PingContext(ctx); err != nil {
		db = check{Err: "ping: " + err.Error()}
	}

	wb := check{OK: true}
	if fi, err := os.Stat(h.workbookDir); err != nil {
		wb = check{Err: "workbook dir: " + err.Error()}
	} else if !fi.IsDir() {
		wb = check{Err: "workbook dir: not a directory"}
	}

	allOK := db.OK && wb.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database":  db,
			"workbooks": wb,
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
