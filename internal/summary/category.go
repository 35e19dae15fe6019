package summary

import (
	"slices"
	"strings"

	"alcyxob/workout-log/internal/domain"
)

// Category is a muscle-group label derived from an exercise name.
type Category string

const (
	CategoryLegs      Category = "Legs"
	CategoryChest     Category = "Chest"
	CategoryShoulders Category = "Shoulders"
	CategoryBack      Category = "Back"
	CategoryArms      Category = "Arms"
	CategoryCore      Category = "Core"
	CategoryOther     Category = "Other"
)

// Categories lists every label in classification precedence order.
var Categories = []Category{
	CategoryLegs,
	CategoryChest,
	CategoryShoulders,
	CategoryBack,
	CategoryArms,
	CategoryCore,
	CategoryOther,
}

type categoryRule struct {
	category Category
	match    func(name string) bool
}

// Rules are evaluated in order and the first match wins.
var categoryRules = []categoryRule{
	{CategoryLegs, containsAny("squat", "leg", "quad", "calf", "glute")},
	{CategoryChest, containsAny("bench", "chest", "pec")},
	{CategoryShoulders, func(name string) bool {
		return containsAny("shoulder", "delt")(name) ||
			(strings.Contains(name, "press") && !strings.Contains(name, "leg"))
	}},
	{CategoryBack, containsAny("back", "row", "pull", "lat")},
	{CategoryArms, func(name string) bool {
		return strings.Contains(name, "bicep") ||
			(strings.Contains(name, "curl") && !strings.Contains(name, "leg"))
	}},
	{CategoryArms, containsAny("tricep", "dip")},
	{CategoryCore, containsAny("core", "ab", "plank")},
}

func containsAny(keywords ...string) func(string) bool {
	return func(name string) bool {
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				return true
			}
		}
		return false
	}
}

// ClassifyExercise maps an exercise name to exactly one category.
func ClassifyExercise(name string) Category {
	lowered := strings.ToLower(name)
	for _, rule := range categoryRules {
		if rule.match(lowered) {
			return rule.category
		}
	}
	return CategoryOther
}

// ClassifyExercises returns the set of categories touched by exercises, each
// label at most once, in order of first appearance. Empty input yields an
// empty result.
func ClassifyExercises(exercises []domain.Exercise) []Category {
	seen := make(map[Category]struct{}, len(Categories))
	categories := make([]Category, 0, len(Categories))
	for _, ex := range exercises {
		c := ClassifyExercise(ex.Name)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}
	return categories
}

// CategoryCount is the number of sessions that trained a category.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// CategoryDistribution counts, per category, how many sessions touched it.
// Ordered by count descending; equal counts keep the order in which the
// categories were first seen.
func CategoryDistribution(sessions []domain.WorkoutSession) []CategoryCount {
	index := make(map[Category]int)
	var dist []CategoryCount
	for _, s := range sessions {
		for _, c := range ClassifyExercises(s.Exercises) {
			i, ok := index[c]
			if !ok {
				i = len(dist)
				index[c] = i
				dist = append(dist, CategoryCount{Category: c})
			}
			dist[i].Count++
		}
	}

	if dist == nil {
		return []CategoryCount{}
	}
	slices.SortStableFunc(dist, func(a, b CategoryCount) int {
		return b.Count - a.Count
	})
	return dist
}
