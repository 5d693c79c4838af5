package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cropbook/pkg/ingest/service"
	settingsRepo "cropbook/pkg/settings/repository"
)

type SyncCtrl struct {
	svc      service.SyncService
	settings settingsRepo.SettingsRepository
}

func New(svc service.SyncService, settings settingsRepo.SettingsRepository) *SyncCtrl {
	return &SyncCtrl{svc: svc, settings: settings}
}

func (h *SyncCtrl) SyncAll(c echo.Context) error {
	results, err := h.svc.SyncAll()
	if errors.Is(err, service.ErrNotConfigured) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "no spreadsheet configured"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"results": results})
}

func (h *SyncCtrl) SyncSheet(c echo.Context) error {
	tab := c.Param("sheet")
	st, err := h.settings.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "no spreadsheet configured"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	var res *service.SyncResult
	if tab == st.QualifiersSheet {
		res, err = h.svc.SyncQualifiers(st.SpreadsheetID, tab)
	} else {
		res, err = h.svc.SyncField(st.SpreadsheetID, tab)
	}
	if errors.Is(err, service.ErrNoSheetName) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *SyncCtrl) SyncQualifiers(c echo.Context) error {
	st, err := h.settings.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "no spreadsheet configured"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	res, err := h.svc.SyncQualifiers(st.SpreadsheetID, st.QualifiersSheet)
	if errors.Is(err, service.ErrNoSheetName) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *SyncCtrl) RemoveField(c echo.Context) error {
	tab := c.Param("sheet")
	if err := h.svc.RemoveField(tab); err != nil {
		if errors.Is(err, service.ErrNoSheetName) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "removed"})
}
