package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	repo "cropbook/pkg/planting/repository"
)

type PlantingCtrl struct{ repo repo.PlantingRepository }

func New(repo repo.PlantingRepository) *PlantingCtrl { return &PlantingCtrl{repo} }

func (h *PlantingCtrl) List(c echo.Context) error {
	field := c.QueryParam("field")
	if field == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "field query param required"})
	}
	out, err := h.repo.ListByField(field)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlantingCtrl) Fields(c echo.Context) error {
	out, err := h.repo.Fields()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
