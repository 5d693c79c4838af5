package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cropbook/entities"
	plantingRepo "cropbook/pkg/planting/repository"
	repo "cropbook/pkg/qualitylog/repository"
)

type LogCtrl struct {
	repo      repo.QualityLogRepository
	plantings plantingRepo.PlantingRepository
}

func New(repo repo.QualityLogRepository, plantings plantingRepo.PlantingRepository) *LogCtrl {
	return &LogCtrl{repo: repo, plantings: plantings}
}

type createReq struct {
	PlantingRecordID *uint               `json:"planting_record_id"`
	Crop             string              `json:"crop"`
	Variety          string              `json:"variety"`
	Field            string              `json:"field"`
	Bed              string              `json:"bed"`
	Responses        []entities.Response `json:"responses"`
	Notes            string              `json:"notes"`
}

func (h *LogCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	l := &entities.QualityLog{
		PlantingRecordID: req.PlantingRecordID,
		Crop:             req.Crop,
		Variety:          req.Variety,
		Field:            req.Field,
		Bed:              req.Bed,
		Responses:        req.Responses,
		Notes:            req.Notes,
		// Server-assigned so a skewed client clock can't spoof the
		// assessment time.
		AssessmentDate: time.Now().UTC(),
	}

	// When the log points at a planting record, freeze that record's
	// context into the log now; the record may be resynced or deleted
	// later.
	if req.PlantingRecordID != nil {
		rec, err := h.plantings.FindByID(*req.PlantingRecordID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "planting record not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		if l.Crop == "" {
			l.Crop = rec.Crop
		}
		if l.Variety == "" {
			l.Variety = rec.Variety
		}
		if l.Field == "" {
			l.Field = rec.Field
		}
		if l.Bed == "" {
			l.Bed = rec.Bed
		}
		l.DatePlanted = rec.PlantedDate
		l.TrayCount = rec.TrayCount
		l.RowCount = rec.RowCount
		l.PlantingNotes = rec.Notes
	}

	if l.Crop == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop is required"})
	}
	if err := h.repo.Create(l); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LogCtrl) List(c echo.Context) error {
	if crop := c.QueryParam("crop"); crop != "" {
		out, err := h.repo.ListByCrop(crop)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, out)
	}
	if field := c.QueryParam("field"); field != "" {
		out, err := h.repo.ListByField(field)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, out)
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop or field query param required"})
}

func (h *LogCtrl) Recent(c echo.Context) error {
	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	out, err := h.repo.ListRecent(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LogCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
