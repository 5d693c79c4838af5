package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cropbook/entities"
	qlrepo "cropbook/pkg/qualitylog/repository"
)

type fakeLogs struct {
	logs []entities.QualityLog
}

func (f *fakeLogs) Create(l *entities.QualityLog) error { f.logs = append(f.logs, *l); return nil }

func (f *fakeLogs) ListRecent(int) ([]entities.QualityLog, error)     { return f.logs, nil }
func (f *fakeLogs) ListByCrop(string) ([]entities.QualityLog, error)  { return nil, nil }
func (f *fakeLogs) ListByField(string) ([]entities.QualityLog, error) { return nil, nil }
func (f *fakeLogs) Delete(uint) error                                 { return gorm.ErrRecordNotFound }

func (f *fakeLogs) ListFiltered(flt qlrepo.Filter) ([]entities.QualityLog, error) {
	var out []entities.QualityLog
	for _, l := range f.logs {
		if flt.Start != nil && l.AssessmentDate.Before(*flt.Start) {
			continue
		}
		if flt.End != nil && l.AssessmentDate.After(*flt.End) {
			continue
		}
		if flt.Crop != "" && l.Crop != flt.Crop {
			continue
		}
		if flt.Field != "" && l.Field != flt.Field {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func quantityLog(crop, field, answer string, at time.Time) entities.QualityLog {
	return entities.QualityLog{
		Crop:           crop,
		Field:          field,
		AssessmentDate: at,
		Responses: []entities.Response{
			{Question: "Overall health?", Answer: "good"},
			{Question: "Planting quantity?", Answer: answer},
		},
	}
}

func TestOverview_PlanningBalance(t *testing.T) {
	at := day(2024, 6, 4)
	logs := &fakeLogs{logs: []entities.QualityLog{
		quantityLog("Kale", "Field 1", "too little", at),
		quantityLog("Kale", "Field 1", "too little", at),
		quantityLog("Kale", "Field 1", "too little", at),
		quantityLog("Kale", "Field 1", "just right", at),
	}}

	ov, err := New(logs).Overview(Filters{})
	require.NoError(t, err)

	require.Len(t, ov.PerCrop, 1)
	kale := ov.PerCrop[0]
	assert.Equal(t, "Kale", kale.Key)
	assert.Equal(t, 3, kale.Planning.Under)
	assert.Equal(t, 1, kale.Planning.OnTarget)
	assert.Equal(t, 0, kale.Planning.Over)
	assert.InDelta(t, 75.0, kale.Planning.UnderRate, 1e-9)
	assert.InDelta(t, 0.0, kale.Planning.OverRate, 1e-9)
	assert.InDelta(t, 75.0, kale.Planning.Balance, 1e-9)

	assert.InDelta(t, 75.0, ov.Planning.Balance, 1e-9)
	assert.Equal(t, 4, ov.Totals.TotalLogs)
	assert.Equal(t, 4, ov.Totals.PlanningLogs)
}

func TestOverview_LogWithoutPlanningQuestionCountsInTotalsOnly(t *testing.T) {
	at := day(2024, 6, 4)
	logs := &fakeLogs{logs: []entities.QualityLog{
		quantityLog("Kale", "Field 1", "too much", at),
		{
			Crop: "Kale", Field: "Field 1", AssessmentDate: at,
			Responses: []entities.Response{{Question: "Overall health?", Answer: "good"}},
		},
	}}

	ov, err := New(logs).Overview(Filters{})
	require.NoError(t, err)
	assert.Equal(t, 2, ov.Totals.TotalLogs)
	assert.Equal(t, 1, ov.Totals.PlanningLogs)
	assert.Equal(t, 1, ov.Planning.Over)
	assert.Equal(t, 0, ov.Planning.Unknown)
}

func TestOverview_UnknownBucket(t *testing.T) {
	logs := &fakeLogs{logs: []entities.QualityLog{
		quantityLog("Kale", "Field 1", "green", day(2024, 6, 4)),
	}}
	ov, err := New(logs).Overview(Filters{})
	require.NoError(t, err)
	assert.Equal(t, 1, ov.Planning.Unknown)
	assert.InDelta(t, 100.0, ov.Planning.UnknownRate, 1e-9)
	assert.InDelta(t, 0.0, ov.Planning.Balance, 1e-9)
}

func TestOverview_WeekBucketing(t *testing.T) {
	logs := &fakeLogs{logs: []entities.QualityLog{
		// Sunday 2024-06-09 belongs to the week of Monday 2024-06-03.
		quantityLog("Kale", "Field 1", "just right", time.Date(2024, 6, 9, 10, 0, 0, 0, time.UTC)),
		// Monday 2024-06-10 opens a new week.
		quantityLog("Kale", "Field 1", "just right", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
	}}

	ov, err := New(logs).Overview(Filters{})
	require.NoError(t, err)
	require.Len(t, ov.Weeks, 2)
	assert.Equal(t, "2024-06-03", ov.Weeks[0].Key)
	assert.Equal(t, "2024-06-10", ov.Weeks[1].Key)
	assert.Equal(t, 1, ov.Weeks[0].Logs)
}

func TestOverview_FiltersInclusiveDayBounds(t *testing.T) {
	logs := &fakeLogs{logs: []entities.QualityLog{
		quantityLog("Kale", "Field 1", "just right", time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)),
		quantityLog("Kale", "Field 1", "just right", time.Date(2024, 6, 2, 0, 30, 0, 0, time.UTC)),
		quantityLog("Kale", "Field 1", "just right", time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)),
	}}

	start := time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC) // widened to 00:00
	end := time.Date(2024, 6, 2, 1, 0, 0, 0, time.UTC)    // widened to 23:59:59
	ov, err := New(logs).Overview(Filters{Start: &start, End: &end})
	require.NoError(t, err)
	assert.Equal(t, 2, ov.Totals.TotalLogs)
}

func TestOverview_CropFieldFiltersAndAvailableNames(t *testing.T) {
	at := day(2024, 6, 4)
	logs := &fakeLogs{logs: []entities.QualityLog{
		quantityLog("Kale", "Field 1", "too much", at),
		quantityLog("Basil", "Field 2", "not enough", at),
	}}

	ov, err := New(logs).Overview(Filters{Crop: "Basil"})
	require.NoError(t, err)
	assert.Equal(t, 1, ov.Totals.TotalLogs)
	require.Len(t, ov.PerField, 1)
	assert.Equal(t, "Field 2", ov.PerField[0].Key)

	// Name lists ignore the filters.
	assert.Equal(t, []string{"Basil", "Kale"}, ov.AvailableCrops)
	assert.Equal(t, []string{"Field 1", "Field 2"}, ov.AvailableFields)
}

func TestOverview_QuestionTallies(t *testing.T) {
	at := day(2024, 6, 4)
	logs := &fakeLogs{logs: []entities.QualityLog{
		quantityLog("Kale", "Field 1", "too much", at),
		quantityLog("Kale", "Field 1", "too much", at),
		quantityLog("Kale", "Field 1", "not enough", at),
	}}

	ov, err := New(logs).Overview(Filters{})
	require.NoError(t, err)
	require.Len(t, ov.Questions, 2)

	// Sorted by question; answers by count desc.
	assert.Equal(t, "Overall health?", ov.Questions[0].Question)
	assert.Equal(t, "Planting quantity?", ov.Questions[1].Question)
	require.Len(t, ov.Questions[1].Answers, 2)
	assert.Equal(t, AnswerCount{Answer: "too much", Count: 2}, ov.Questions[1].Answers[0])
}

func TestWeekStartUTC(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), "2024-06-03"},   // Monday
		{time.Date(2024, 6, 8, 23, 59, 0, 0, time.UTC), "2024-06-03"}, // Saturday
		{time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), "2024-06-03"},   // Sunday -> previous Monday
		{time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "2024-06-10"},  // next Monday
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, weekStartUTC(tc.in), "for %s", tc.in)
	}
}
