package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cropbook/pkg/analytics"
)

type AnalyticsCtrl struct{ agg analytics.Aggregator }

func New(agg analytics.Aggregator) *AnalyticsCtrl { return &AnalyticsCtrl{agg} }

func (h *AnalyticsCtrl) Overview(c echo.Context) error {
	var f analytics.Filters
	if v := c.QueryParam("start"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad start date"})
		}
		f.Start = &d
	}
	if v := c.QueryParam("end"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad end date"})
		}
		f.End = &d
	}
	f.Crop = c.QueryParam("crop")
	f.Field = c.QueryParam("field")

	out, err := h.agg.Overview(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
