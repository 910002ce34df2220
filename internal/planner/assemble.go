package planner

import (
	"math"
	"math/rand"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/catalog"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/nutrition"
)

const (
	mainSlotRatio   = 0.3
	snackSlotRatio  = 0.1
	maxAlternatives = 2
)

type slotSpec struct {
	slot model.MealSlot
	time string
	main bool
}

// slotOrder fixes both the generation order and the display times of a day.
var slotOrder = []slotSpec{
	{slot: model.SlotBreakfast, time: "07:30", main: true},
	{slot: model.SlotMorningSnack, time: "10:00"},
	{slot: model.SlotLunch, time: "12:30", main: true},
	{slot: model.SlotAfternoonSnack, time: "15:30"},
	{slot: model.SlotDinner, time: "19:00", main: true},
	{slot: model.SlotLateSnack, time: "21:30"},
}

func slotCategory(slot model.MealSlot) model.RecipeCategory {
	switch slot {
	case model.SlotBreakfast:
		return model.CategoryBreakfast
	case model.SlotLunch:
		return model.CategoryLunch
	case model.SlotDinner:
		return model.CategoryDinner
	default:
		return model.CategorySnack
	}
}

// Generator assembles day plans from a catalog cache. The random source is
// injected so callers (and tests) control determinism.
type Generator struct {
	Catalog *catalog.Cache
	Rand    *rand.Rand
}

func NewGenerator(cache *catalog.Cache, rng *rand.Rand) *Generator {
	return &Generator{Catalog: cache, Rand: rng}
}

// BuildDay assembles a full day plan for the profile. A slot whose filtered
// candidate pool is empty is silently omitted; the plan simply has fewer
// meals than toggled.
func (g *Generator) BuildDay(p model.UserProfile, date string) model.DayPlan {
	target := float64(nutrition.PlanningCalories(p))

	mains, snacks := 0, 0
	for _, spec := range slotOrder {
		if !p.ActiveSlots[spec.slot] {
			continue
		}
		if spec.main {
			mains++
		} else {
			snacks++
		}
	}
	totalRatio := float64(mains)*mainSlotRatio + float64(snacks)*snackSlotRatio
	if totalRatio == 0 {
		totalRatio = 1
	}
	mainTarget := target * mainSlotRatio / totalRatio
	snackTarget := target * snackSlotRatio / totalRatio

	used := make(map[int64]bool)
	meals := make([]model.MealPlan, 0, mains+snacks)
	for _, spec := range slotOrder {
		if !p.ActiveSlots[spec.slot] {
			continue
		}
		slotTarget := snackTarget
		if spec.main {
			slotTarget = mainTarget
		}
		pool := g.Catalog.Category(slotCategory(spec.slot))
		candidates := catalog.Filter(pool, p)
		selected := SelectForTarget(g.Rand, candidates, used, slotTarget)
		if selected == nil {
			continue
		}
		used[selected.ID] = true
		scaled := Scale(*selected, int(math.Round(slotTarget)))
		meals = append(meals, model.MealPlan{
			Slot:          spec.slot,
			ScheduledTime: spec.time,
			Recipe:        scaled,
			Alternatives:  Alternatives(*selected, pool, maxAlternatives),
		})
	}

	return model.DayPlan{
		Date:       date,
		Meals:      meals,
		Totals:     Totals(meals),
		WaterGoalL: p.WaterGoalL,
	}
}

// Totals sums the slot nutrition of a day. Day totals are always derived
// from the current slots, never stored.
func Totals(meals []model.MealPlan) model.Nutrition {
	var total model.Nutrition
	for _, m := range meals {
		total = total.Add(m.Recipe.Nutrition)
	}
	return total
}
