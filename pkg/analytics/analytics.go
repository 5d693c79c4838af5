package analytics

import (
	"sort"
	"time"

	"cropbook/entities"
	qlrepo "cropbook/pkg/qualitylog/repository"
)

// Filters narrow the aggregation scan. The date range is inclusive and
// widened to UTC day boundaries; crop and field are exact matches. All
// optional, AND-combined.
type Filters struct {
	Start *time.Time
	End   *time.Time
	Crop  string
	Field string
}

// PlanningBreakdown holds under/on-target/over/unknown counts for one
// granularity, rates as percentages of that granularity's planning
// total, and balance = underRate - overRate (positive means net
// underplanting).
type PlanningBreakdown struct {
	Under        int     `json:"under"`
	OnTarget     int     `json:"on_target"`
	Over         int     `json:"over"`
	Unknown      int     `json:"unknown"`
	UnderRate    float64 `json:"under_rate"`
	OnTargetRate float64 `json:"on_target_rate"`
	OverRate     float64 `json:"over_rate"`
	UnknownRate  float64 `json:"unknown_rate"`
	Balance      float64 `json:"balance"`
}

// KeyedPlanning is one per-crop, per-field, or per-week aggregate.
// Logs counts every filtered log in the group, including logs that
// contributed no planning data point.
type KeyedPlanning struct {
	Key      string            `json:"key"`
	Logs     int               `json:"logs"`
	Planning PlanningBreakdown `json:"planning"`
}

type AnswerCount struct {
	Answer string `json:"answer"`
	Count  int    `json:"count"`
}

type QuestionTally struct {
	Question string        `json:"question"`
	Answers  []AnswerCount `json:"answers"`
}

type Totals struct {
	TotalLogs    int `json:"total_logs"`
	PlanningLogs int `json:"planning_logs"`
}

// Overview is the full analytics payload. AvailableCrops and
// AvailableFields come from the unfiltered log set so a consumer can
// populate filter selectors regardless of the current filters.
type Overview struct {
	Totals          Totals            `json:"totals"`
	Planning        PlanningBreakdown `json:"planning"`
	PerCrop         []KeyedPlanning   `json:"per_crop"`
	PerField        []KeyedPlanning   `json:"per_field"`
	Weeks           []KeyedPlanning   `json:"weeks"`
	Questions       []QuestionTally   `json:"questions"`
	AvailableCrops  []string          `json:"available_crops"`
	AvailableFields []string          `json:"available_fields"`
}

// Aggregator computes planning analytics over quality logs. Read-only
// and stateless: safe under concurrent calls.
type Aggregator interface {
	Overview(f Filters) (*Overview, error)
}

type aggregator struct {
	logs qlrepo.QualityLogRepository
}

func New(logs qlrepo.QualityLogRepository) Aggregator { return &aggregator{logs: logs} }

type planningCounts struct {
	under, onTarget, over, unknown int
}

func (c *planningCounts) add(bucket string) {
	switch bucket {
	case BucketUnder:
		c.under++
	case BucketOver:
		c.over++
	case BucketOnTarget:
		c.onTarget++
	default:
		c.unknown++
	}
}

func (c planningCounts) total() int { return c.under + c.onTarget + c.over + c.unknown }

func (c planningCounts) breakdown() PlanningBreakdown {
	b := PlanningBreakdown{Under: c.under, OnTarget: c.onTarget, Over: c.over, Unknown: c.unknown}
	total := c.total()
	if total == 0 {
		return b
	}
	pct := func(n int) float64 { return float64(n) / float64(total) * 100 }
	b.UnderRate = pct(c.under)
	b.OnTargetRate = pct(c.onTarget)
	b.OverRate = pct(c.over)
	b.UnknownRate = pct(c.unknown)
	b.Balance = b.UnderRate - b.OverRate
	return b
}

type group struct {
	logs   int
	counts planningCounts
}

func (a *aggregator) Overview(f Filters) (*Overview, error) {
	// Name lists come from the unfiltered set.
	all, err := a.logs.ListFiltered(qlrepo.Filter{})
	if err != nil {
		return nil, err
	}

	filter := qlrepo.Filter{Crop: f.Crop, Field: f.Field}
	if f.Start != nil {
		s := startOfDayUTC(*f.Start)
		filter.Start = &s
	}
	if f.End != nil {
		e := endOfDayUTC(*f.End)
		filter.End = &e
	}
	logs, err := a.logs.ListFiltered(filter)
	if err != nil {
		return nil, err
	}

	var (
		overall  planningCounts
		perCrop  = map[string]*group{}
		perField = map[string]*group{}
		perWeek  = map[string]*group{}
		tallies  = map[string]map[string]int{}
		planning int
	)
	touch := func(m map[string]*group, key string) *group {
		g, ok := m[key]
		if !ok {
			g = &group{}
			m[key] = g
		}
		return g
	}

	for _, l := range logs {
		week := weekStartUTC(l.AssessmentDate)
		gc := touch(perCrop, l.Crop)
		gf := touch(perField, l.Field)
		gw := touch(perWeek, week)
		gc.logs++
		gf.logs++
		gw.logs++

		for _, r := range l.Responses {
			byAnswer, ok := tallies[r.Question]
			if !ok {
				byAnswer = map[string]int{}
				tallies[r.Question] = byAnswer
			}
			byAnswer[r.Answer]++
		}

		bucket, ok := PlanningSignal(l.Responses)
		if !ok {
			continue
		}
		planning++
		overall.add(bucket)
		gc.counts.add(bucket)
		gf.counts.add(bucket)
		gw.counts.add(bucket)
	}

	out := &Overview{
		Totals:          Totals{TotalLogs: len(logs), PlanningLogs: planning},
		Planning:        overall.breakdown(),
		PerCrop:         keyed(perCrop),
		PerField:        keyed(perField),
		Weeks:           keyed(perWeek),
		Questions:       questionTallies(tallies),
		AvailableCrops:  distinct(all, func(l entities.QualityLog) string { return l.Crop }),
		AvailableFields: distinct(all, func(l entities.QualityLog) string { return l.Field }),
	}
	return out, nil
}

func keyed(m map[string]*group) []KeyedPlanning {
	out := make([]KeyedPlanning, 0, len(m))
	for k, g := range m {
		out = append(out, KeyedPlanning{Key: k, Logs: g.logs, Planning: g.counts.breakdown()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func questionTallies(m map[string]map[string]int) []QuestionTally {
	out := make([]QuestionTally, 0, len(m))
	for q, byAnswer := range m {
		t := QuestionTally{Question: q}
		for a, n := range byAnswer {
			t.Answers = append(t.Answers, AnswerCount{Answer: a, Count: n})
		}
		sort.Slice(t.Answers, func(i, j int) bool {
			if t.Answers[i].Count != t.Answers[j].Count {
				return t.Answers[i].Count > t.Answers[j].Count
			}
			return t.Answers[i].Answer < t.Answers[j].Answer
		})
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Question < out[j].Question })
	return out
}

func distinct(logs []entities.QualityLog, key func(entities.QualityLog) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, l := range logs {
		k := key(l)
		if k != "" && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// weekStartUTC maps a timestamp to the Monday of its UTC week. Sunday
// counts as day 7 of the week that began the previous Monday.
func weekStartUTC(t time.Time) string {
	t = t.UTC()
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(wd - 1))
	return monday.Format("2006-01-02")
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}
