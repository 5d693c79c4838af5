// Package analytics derives planning-balance signals and distribution
// views from quality logs. Every call is a fresh full scan over the
// matching logs; nothing is cached between calls.
package analytics

import (
	"strings"

	"cropbook/entities"
)

// Planning buckets for a quantity-assessment answer.
const (
	BucketUnder    = "under"
	BucketOver     = "over"
	BucketOnTarget = "on_target"
	BucketUnknown  = "unknown"
)

// planningIntentPhrases identify a question as asking about planting
// quantity. Matching is case-insensitive substring. The rules live in
// one table so they can be tested exhaustively and extended without
// touching the aggregation code.
var planningIntentPhrases = []string{
	"planting quantity",
	"quantity planted",
	"quantity?",
	"planted too",
}

// bucketKeywords classify a quantity answer. Order is precedence:
// under, then over, then on-target; anything else is unknown.
var bucketKeywords = []struct {
	bucket   string
	keywords []string
}{
	{BucketUnder, []string{"not enough", "too little", "under"}},
	{BucketOver, []string{"too much", "too many", "over", "excess"}},
	{BucketOnTarget, []string{"just right", "perfect", "ideal", "right amount"}},
}

// IsPlanningIntent reports whether a question asks about planting
// quantity.
func IsPlanningIntent(question string) bool {
	q := strings.ToLower(question)
	for _, phrase := range planningIntentPhrases {
		if strings.Contains(q, phrase) {
			return true
		}
	}
	return false
}

// ClassifyPlanningAnswer maps a free-text quantity answer to exactly
// one bucket.
func ClassifyPlanningAnswer(answer string) string {
	a := strings.ToLower(answer)
	for _, bk := range bucketKeywords {
		for _, kw := range bk.keywords {
			if strings.Contains(a, kw) {
				return bk.bucket
			}
		}
	}
	return BucketUnknown
}

// PlanningSignal extracts a log's single planning data point: the
// first response whose question matches planning intent. Later
// matching questions in the same log are ignored. ok is false when the
// log has no matching question at all.
func PlanningSignal(responses []entities.Response) (bucket string, ok bool) {
	for _, r := range responses {
		if IsPlanningIntent(r.Question) {
			return ClassifyPlanningAnswer(r.Answer), true
		}
	}
	return "", false
}
