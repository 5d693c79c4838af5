package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cropbook/entities"
	repo "cropbook/pkg/qualifier/repository"
)

type QualifierCtrl struct{ repo repo.QualifierRepository }

func New(repo repo.QualifierRepository) *QualifierCtrl { return &QualifierCtrl{repo} }

func (h *QualifierCtrl) List(c echo.Context) error {
	crop := c.QueryParam("crop")
	if crop == "" {
		out, err := h.repo.ListDefinitions()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, out)
	}
	def, err := h.findWithFallback(crop, c.QueryParam("location"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no qualifier for crop"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, def)
}

func (h *QualifierCtrl) Universal(c echo.Context) error {
	out, err := h.repo.ListUniversals()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// Form returns everything needed to render one crop's assessment form:
// the location-matched crop definition plus the universal questions.
func (h *QualifierCtrl) Form(c echo.Context) error {
	crop := c.QueryParam("crop")
	if crop == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop query param required"})
	}
	universals, err := h.repo.ListUniversals()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	var def *entities.QualifierDefinition
	def, err = h.findWithFallback(crop, c.QueryParam("location"))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	resp := map[string]any{"universal": universals}
	if def != nil {
		resp["crop"] = def
	}
	return c.JSON(http.StatusOK, resp)
}

// findWithFallback tries the location-scoped key first, then the
// unscoped one, so a crop without a location-specific question set
// still gets its general form.
func (h *QualifierCtrl) findWithFallback(crop, location string) (*entities.QualifierDefinition, error) {
	if location != "" {
		def, err := h.repo.FindByNameLocation(crop, location)
		if err == nil {
			return def, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return h.repo.FindByNameLocation(crop, "")
}
