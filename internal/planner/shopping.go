package planner

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
)

// categoryRank fixes the shopping-list section order; unknown categories
// sort last.
var categoryRank = map[string]int{
	"produce":   0,
	"meat-fish": 1,
	"dairy":     2,
	"grains":    3,
	"pantry":    4,
	"frozen":    5,
	"beverages": 6,
}

// AggregateShopping merges every ingredient of every meal across the given
// day plans. Names are matched case-insensitively; amounts are summed and
// the unit and category of the first occurrence win — there is deliberately
// no unit conversion, mirroring how the list is assembled by hand.
func AggregateShopping(plans []model.DayPlan) []model.ShoppingItem {
	merged := make(map[string]*model.ShoppingItem)
	order := make([]string, 0)
	for _, plan := range plans {
		for _, meal := range plan.Meals {
			for _, ing := range meal.Recipe.Ingredients {
				key := strings.ToLower(strings.TrimSpace(ing.Name))
				if key == "" {
					continue
				}
				if item, ok := merged[key]; ok {
					item.Amount += ing.Amount
					continue
				}
				merged[key] = &model.ShoppingItem{
					Name:     strings.TrimSpace(ing.Name),
					Amount:   ing.Amount,
					Unit:     ing.Unit,
					Category: ing.Category,
				}
				order = append(order, key)
			}
		}
	}

	items := make([]model.ShoppingItem, 0, len(merged))
	for _, key := range order {
		item := *merged[key]
		item.Amount = math.Round(item.Amount*10) / 10
		items = append(items, item)
	}

	coll := collate.New(language.German)
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := rankCategory(items[i].Category), rankCategory(items[j].Category)
		if ri != rj {
			return ri < rj
		}
		return coll.CompareString(items[i].Name, items[j].Name) < 0
	})
	return items
}

func rankCategory(category string) int {
	if rank, ok := categoryRank[strings.ToLower(category)]; ok {
		return rank
	}
	return len(categoryRank)
}

// FormatAmount renders a display amount, promoting metric amounts of 1000
// or more to the next unit (g to kg, ml to l).
func FormatAmount(amount float64, unit string) (float64, string) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "g":
		if amount >= 1000 {
			return math.Round(amount/100) / 10, "kg"
		}
	case "ml":
		if amount >= 1000 {
			return math.Round(amount/100) / 10, "l"
		}
	}
	return math.Round(amount*10) / 10, unit
}
