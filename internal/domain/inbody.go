package domain

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SegmentStatus is the InBody classification of a body segment.
type SegmentStatus string

const (
	SegmentNormal SegmentStatus = "normal"
	SegmentLow    SegmentStatus = "low"
	SegmentHigh   SegmentStatus = "high"
)

// Quantity is an optional measured value with its unit.
type Quantity struct {
	Value *float64 `bson:"value,omitempty" json:"value,omitempty"`
	Unit  string   `bson:"unit,omitempty" json:"unit,omitempty"`
}

// RangedQuantity is a Quantity printed with its reference range on the report.
type RangedQuantity struct {
	Value *float64 `bson:"value,omitempty" json:"value,omitempty"`
	Unit  string   `bson:"unit,omitempty" json:"unit,omitempty"`
	Range string   `bson:"range,omitempty" json:"range,omitempty"`
}

// Segment is a single limb or trunk reading of a segmental analysis.
type Segment struct {
	Weight     *float64      `bson:"weight,omitempty" json:"weight,omitempty"`
	Unit       string        `bson:"unit,omitempty" json:"unit,omitempty"`
	Percentage *float64      `bson:"percentage,omitempty" json:"percentage,omitempty"`
	Status     SegmentStatus `bson:"status,omitempty" json:"status,omitempty"`
}

// SegmentalAnalysis breaks lean or fat mass down by body segment.
type SegmentalAnalysis struct {
	RightArm *Segment `bson:"rightArm,omitempty" json:"rightArm,omitempty"`
	LeftArm  *Segment `bson:"leftArm,omitempty" json:"leftArm,omitempty"`
	Trunk    *Segment `bson:"trunk,omitempty" json:"trunk,omitempty"`
	RightLeg *Segment `bson:"rightLeg,omitempty" json:"rightLeg,omitempty"`
	LeftLeg  *Segment `bson:"leftLeg,omitempty" json:"leftLeg,omitempty"`
}

// BodyComposition holds the headline numbers of an InBody report.
type BodyComposition struct {
	TotalWeight           *Quantity          `bson:"totalWeight,omitempty" json:"totalWeight,omitempty"`
	SkeletalMuscleMass    *Quantity          `bson:"skeletalMuscleMass,omitempty" json:"skeletalMuscleMass,omitempty"`
	BodyFatMass           *Quantity          `bson:"bodyFatMass,omitempty" json:"bodyFatMass,omitempty"`
	BMI                   *Quantity          `bson:"bmi,omitempty" json:"bmi,omitempty"`
	PBF                   *Quantity          `bson:"pbf,omitempty" json:"pbf,omitempty"`
	SegmentalLeanAnalysis *SegmentalAnalysis `bson:"segmentalLeanAnalysis,omitempty" json:"segmentalLeanAnalysis,omitempty"`
	SegmentalFatAnalysis  *SegmentalAnalysis `bson:"segmentalFatAnalysis,omitempty" json:"segmentalFatAnalysis,omitempty"`
}

// BodyCompositionAnalysis is the body water / protein / mineral section of the report.
type BodyCompositionAnalysis struct {
	TotalBodyWater *RangedQuantity `bson:"totalBodyWater,omitempty" json:"totalBodyWater,omitempty"`
	Protein        *RangedQuantity `bson:"protein,omitempty" json:"protein,omitempty"`
	Mineral        *RangedQuantity `bson:"mineral,omitempty" json:"mineral,omitempty"`
	BodyFatMass    *RangedQuantity `bson:"bodyFatMass,omitempty" json:"bodyFatMass,omitempty"`
	Weight         *RangedQuantity `bson:"weight,omitempty" json:"weight,omitempty"`
}

// InBodyRecord is one body-composition measurement. It is a standalone
// time-series point and is not linked to any workout session.
type InBodyRecord struct {
	ID                      primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	UserID                  primitive.ObjectID       `bson:"uid" json:"uid"`
	ReportDate              time.Time                `bson:"reportDate" json:"reportDate"`
	ReportTime              string                   `bson:"reportTime" json:"reportTime"` // "HH:MM"
	OverallScore            *float64                 `bson:"overallScore,omitempty" json:"overallScore,omitempty"`
	BodyComposition         *BodyComposition         `bson:"bodyComposition,omitempty" json:"bodyComposition,omitempty"`
	BodyCompositionAnalysis *BodyCompositionAnalysis `bson:"bodyCompositionAnalysis,omitempty" json:"bodyCompositionAnalysis,omitempty"`
	ScanObjectKey           string                   `bson:"scanObjectKey,omitempty" json:"-"`
	ScanContentType         string                   `bson:"scanContentType,omitempty" json:"scanContentType,omitempty"`
	CreatedAt               time.Time                `bson:"createdAt" json:"createdAt"`
	UpdatedAt               time.Time                `bson:"updatedAt" json:"updatedAt"`
}

// Weight returns bodyComposition.totalWeight.value, or nil at any missing level.
func (r *InBodyRecord) Weight() *float64 {
	if r == nil || r.BodyComposition == nil {
		return nil
	}
	return r.BodyComposition.TotalWeight.value()
}

// PBF returns bodyComposition.pbf.value, or nil at any missing level.
func (r *InBodyRecord) PBF() *float64 {
	if r == nil || r.BodyComposition == nil {
		return nil
	}
	return r.BodyComposition.PBF.value()
}

// SMM returns bodyComposition.skeletalMuscleMass.value, or nil at any missing level.
func (r *InBodyRecord) SMM() *float64 {
	if r == nil || r.BodyComposition == nil {
		return nil
	}
	return r.BodyComposition.SkeletalMuscleMass.value()
}

// HasReportDate reports whether the record carries a report date.
func (r *InBodyRecord) HasReportDate() bool {
	return r != nil && !r.ReportDate.IsZero()
}

// value treats a missing quantity and a non-finite number the same way: absent.
func (q *Quantity) value() *float64 {
	if q == nil || q.Value == nil || !isUsable(*q.Value) {
		return nil
	}
	v := *q.Value
	return &v
}

func isUsable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
