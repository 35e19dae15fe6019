package summary

import (
	"testing"
	"time"

	"alcyxob/workout-log/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ptr[T any](v T) *T { return &v }

func mustID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}

func record(date time.Time, weight, pbf, smm *float64) domain.InBodyRecord {
	r := domain.InBodyRecord{ReportDate: date, ReportTime: "08:00", BodyComposition: &domain.BodyComposition{}}
	if weight != nil {
		r.BodyComposition.TotalWeight = &domain.Quantity{Value: weight, Unit: "kg"}
	}
	if pbf != nil {
		r.BodyComposition.PBF = &domain.Quantity{Value: pbf, Unit: "%"}
	}
	if smm != nil {
		r.BodyComposition.SkeletalMuscleMass = &domain.Quantity{Value: smm, Unit: "kg"}
	}
	return r
}

func TestComputeInfo_Empty(t *testing.T) {
	info := ComputeInfo(nil, nil)

	assert.Equal(t, Info{}, info)
	assert.Nil(t, info.LatestWorkout.Date)
	assert.Nil(t, info.LatestWorkout.Mood)
	assert.Nil(t, info.LatestInBody.Date)
	assert.Nil(t, info.LatestInBody.Weight)
	assert.Nil(t, info.LatestInBody.WeightDelta)
}

func TestComputeInfo_LatestWorkout(t *testing.T) {
	happy := domain.MoodHappy
	sessions := []domain.WorkoutSession{
		{Date: time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC), Mood: ptr(domain.MoodSad)},
		{Date: time.Date(2025, 7, 26, 0, 0, 0, 0, time.UTC), Mood: &happy},
		{Date: time.Date(2025, 7, 23, 0, 0, 0, 0, time.UTC)},
	}

	info := ComputeInfo(sessions, nil)

	require.NotNil(t, info.LatestWorkout.Date)
	assert.Equal(t, time.Date(2025, 7, 26, 0, 0, 0, 0, time.UTC), *info.LatestWorkout.Date)
	require.NotNil(t, info.LatestWorkout.Mood)
	assert.Equal(t, domain.MoodHappy, *info.LatestWorkout.Mood)
}

func TestComputeInfo_LatestWorkoutWithoutMood(t *testing.T) {
	info := ComputeInfo([]domain.WorkoutSession{{Date: time.Date(2025, 7, 26, 0, 0, 0, 0, time.UTC)}}, nil)

	assert.NotNil(t, info.LatestWorkout.Date)
	assert.Nil(t, info.LatestWorkout.Mood)
}

func TestComputeInfo_DeltaIsLatestMinusPrevious(t *testing.T) {
	records := []domain.InBodyRecord{
		record(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), ptr(72.0), ptr(23.9), ptr(29.0)),
		record(time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), ptr(70.0), ptr(25.4), ptr(28.0)),
	}

	info := ComputeInfo(nil, records).LatestInBody

	require.NotNil(t, info.Date)
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), *info.Date)
	assert.Equal(t, ptr(72.0), info.Weight)
	assert.Equal(t, ptr(2.0), info.WeightDelta)
	assert.Equal(t, ptr(-1.5), info.PBFDelta)
	assert.Equal(t, ptr(1.0), info.SMMDelta)
}

func TestComputeInfo_SortsRecordsWithoutMutatingInput(t *testing.T) {
	older := record(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), ptr(68.0), nil, nil)
	newer := record(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), ptr(66.0), nil, nil)
	records := []domain.InBodyRecord{older, newer}

	info := ComputeInfo(nil, records).LatestInBody

	assert.Equal(t, ptr(66.0), info.Weight)
	assert.Equal(t, ptr(-2.0), info.WeightDelta)
	assert.Equal(t, older.ReportDate, records[0].ReportDate, "input order is untouched")
}

func TestComputeInfo_SingleRecord(t *testing.T) {
	records := []domain.InBodyRecord{record(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), ptr(68.0), ptr(26.5), ptr(28.0))}

	info := ComputeInfo(nil, records).LatestInBody

	assert.Equal(t, ptr(68.0), info.Weight)
	assert.Equal(t, ptr(26.5), info.PBF)
	assert.Equal(t, ptr(28.0), info.SMM)
	assert.Nil(t, info.WeightDelta)
	assert.Nil(t, info.PBFDelta)
	assert.Nil(t, info.SMMDelta)
}

func TestComputeInfo_DeltaNeedsBothValues(t *testing.T) {
	records := []domain.InBodyRecord{
		record(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), ptr(67.0), nil, ptr(29.0)),
		record(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), nil, ptr(25.0), ptr(28.0)),
	}

	info := ComputeInfo(nil, records).LatestInBody

	assert.Nil(t, info.WeightDelta)
	assert.Nil(t, info.PBF)
	assert.Nil(t, info.PBFDelta)
	assert.Equal(t, ptr(1.0), info.SMMDelta)
}

func TestComputeInfo_MissingBodyComposition(t *testing.T) {
	records := []domain.InBodyRecord{
		{ReportDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		record(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), ptr(70.0), nil, nil),
	}

	info := ComputeInfo(nil, records).LatestInBody

	assert.NotNil(t, info.Date)
	assert.Nil(t, info.Weight)
	assert.Nil(t, info.WeightDelta)
}

func TestComputeInfo_MissingReportDateSortsLast(t *testing.T) {
	undated := record(time.Time{}, ptr(90.0), nil, nil)
	dated := record(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), ptr(70.0), nil, nil)

	info := ComputeInfo(nil, []domain.InBodyRecord{undated, dated}).LatestInBody

	assert.Equal(t, ptr(70.0), info.Weight)
	assert.Equal(t, ptr(-20.0), info.WeightDelta)

	onlyUndated := ComputeInfo(nil, []domain.InBodyRecord{undated}).LatestInBody
	assert.Nil(t, onlyUndated.Date)
	assert.Equal(t, ptr(90.0), onlyUndated.Weight)
}

func TestComputeInfo_TieBrokenByID(t *testing.T) {
	same := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	low := record(same, ptr(70.0), nil, nil)
	low.ID = mustID(t, "000000000000000000000001")
	high := record(same, ptr(71.0), nil, nil)
	high.ID = mustID(t, "000000000000000000000002")

	a := ComputeInfo(nil, []domain.InBodyRecord{low, high}).LatestInBody
	b := ComputeInfo(nil, []domain.InBodyRecord{high, low}).LatestInBody

	assert.Equal(t, ptr(71.0), a.Weight)
	assert.Equal(t, a, b)
}

func TestLatestSession_TieBrokenByID(t *testing.T) {
	same := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	sessions := []domain.WorkoutSession{
		{ID: mustID(t, "000000000000000000000002"), Date: same, Notes: "second"},
		{ID: mustID(t, "000000000000000000000001"), Date: same, Notes: "first"},
	}

	assert.Equal(t, "second", LatestSession(sessions).Notes)
	assert.Nil(t, LatestSession(nil))
}

func TestRoundOneDecimal(t *testing.T) {
	assert.Equal(t, 0.1, roundOneDecimal(0.3-0.2))
	assert.Equal(t, -1.5, roundOneDecimal(23.9-25.4))
	assert.Equal(t, 0.0, roundOneDecimal(-0.04))
}
