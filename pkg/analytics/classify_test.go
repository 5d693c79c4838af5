package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cropbook/entities"
)

func TestClassifyPlanningAnswer(t *testing.T) {
	cases := []struct {
		answer string
		want   string
	}{
		{"too much", BucketOver},
		{"Too many seedlings", BucketOver},
		{"way over what we need", BucketOver},
		{"excess trays left", BucketOver},
		{"not enough", BucketUnder},
		{"too little", BucketUnder},
		{"underplanted this year", BucketUnder},
		{"just right", BucketOnTarget},
		{"Perfect amount", BucketOnTarget},
		{"ideal", BucketOnTarget},
		{"right amount", BucketOnTarget},
		{"green", BucketUnknown},
		{"", BucketUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyPlanningAnswer(tc.answer), "answer %q", tc.answer)
	}
}

func TestClassifyPlanningAnswer_Precedence(t *testing.T) {
	// Under keywords are tested before over, over before on-target.
	assert.Equal(t, BucketUnder, ClassifyPlanningAnswer("not enough here, too much there"))
	assert.Equal(t, BucketOver, ClassifyPlanningAnswer("too much but otherwise just right"))
}

func TestIsPlanningIntent(t *testing.T) {
	assert.True(t, IsPlanningIntent("Planting quantity?"))
	assert.True(t, IsPlanningIntent("How was the QUANTITY PLANTED this season"))
	assert.True(t, IsPlanningIntent("Planted too much or too little?"))
	assert.True(t, IsPlanningIntent("Quantity?"))
	assert.False(t, IsPlanningIntent("Overall health?"))
	assert.False(t, IsPlanningIntent(""))
}

func TestPlanningSignal_FirstMatchingQuestionOnly(t *testing.T) {
	responses := []entities.Response{
		{Question: "Overall health?", Answer: "good"},
		{Question: "Planting quantity?", Answer: "not enough"},
		{Question: "Quantity planted?", Answer: "too much"},
	}
	bucket, ok := PlanningSignal(responses)
	assert.True(t, ok)
	assert.Equal(t, BucketUnder, bucket)
}

func TestPlanningSignal_NoMatchingQuestion(t *testing.T) {
	_, ok := PlanningSignal([]entities.Response{{Question: "Overall health?", Answer: "too much"}})
	assert.False(t, ok)
	_, ok = PlanningSignal(nil)
	assert.False(t, ok)
}
