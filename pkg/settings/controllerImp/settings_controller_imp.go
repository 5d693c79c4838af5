package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cropbook/entities"
	repo "cropbook/pkg/settings/repository"
)

type SettingsCtrl struct{ repo repo.SettingsRepository }

func New(repo repo.SettingsRepository) *SettingsCtrl { return &SettingsCtrl{repo} }

func (h *SettingsCtrl) Get(c echo.Context) error {
	st, err := h.repo.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusOK, map[string]any{"configured": false})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"configured": true, "settings": st})
}

type putReq struct {
	SpreadsheetID   string   `json:"spreadsheet_id"`
	SheetNames      []string `json:"sheet_names"`
	QualifiersSheet string   `json:"qualifiers_sheet"`
}

func (h *SettingsCtrl) Put(c echo.Context) error {
	var req putReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(req.SpreadsheetID) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "spreadsheet_id is required"})
	}
	if req.QualifiersSheet == "" {
		req.QualifiersSheet = "Qualifiers"
	}
	var names []string
	for _, n := range req.SheetNames {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	st := &entities.SheetSettings{
		SpreadsheetID:   strings.TrimSpace(req.SpreadsheetID),
		SheetNames:      names,
		QualifiersSheet: req.QualifiersSheet,
	}
	if err := h.repo.Upsert(st); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, st)
}
