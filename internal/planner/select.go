package planner

import (
	"math"
	"math/rand"
	"sort"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
)

// closestPoolSize bounds the randomness: the pick is uniform among the 3
// calorie-closest candidates, so regenerating a slot varies the result
// without drifting far from the target.
const closestPoolSize = 3

// SelectForTarget picks a recipe close to targetCalories, skipping ids
// already used today. When every candidate is used it falls back to the
// first unfiltered candidate — a repeated meal beats an empty slot. Returns
// nil only when the candidate list itself is empty.
func SelectForTarget(rng *rand.Rand, candidates []model.Recipe, usedIDs map[int64]bool, targetCalories float64) *model.Recipe {
	if len(candidates) == 0 {
		return nil
	}
	avail := make([]model.Recipe, 0, len(candidates))
	for _, r := range candidates {
		if !usedIDs[r.ID] {
			avail = append(avail, r)
		}
	}
	if len(avail) == 0 {
		fallback := candidates[0]
		return &fallback
	}

	sort.SliceStable(avail, func(i, j int) bool {
		return calorieDistance(avail[i], targetCalories) < calorieDistance(avail[j], targetCalories)
	})
	pool := closestPoolSize
	if len(avail) < pool {
		pool = len(avail)
	}
	pick := avail[rng.Intn(pool)]
	return &pick
}

// Alternatives returns up to count same-category swap candidates, ordered by
// calorie closeness to the chosen recipe.
func Alternatives(chosen model.Recipe, pool []model.Recipe, count int) []model.Recipe {
	candidates := make([]model.Recipe, 0, len(pool))
	for _, r := range pool {
		if r.ID == chosen.ID || r.Category != chosen.Category {
			continue
		}
		candidates = append(candidates, r)
	}
	target := float64(chosen.Nutrition.Calories)
	sort.SliceStable(candidates, func(i, j int) bool {
		return calorieDistance(candidates[i], target) < calorieDistance(candidates[j], target)
	})
	if len(candidates) > count {
		candidates = candidates[:count]
	}
	return candidates
}

func calorieDistance(r model.Recipe, target float64) float64 {
	return math.Abs(float64(r.Nutrition.Calories) - target)
}
