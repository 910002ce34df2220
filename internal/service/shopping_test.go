package service_test

import (
	"testing"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/service"
)

func TestBuildShoppingListAggregatesStoredPlans(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	p := saveTestProfile(t, sqldb)
	gen := seededGenerator(t, sqldb, 33)
	for _, date := range []string{"2026-09-07", "2026-09-08", "2026-09-09"} {
		if _, err := service.GeneratePlan(sqldb, gen, *p, date); err != nil {
			t.Fatalf("generate plan %s: %v", date, err)
		}
	}

	items, err := service.BuildShoppingList(sqldb, "2026-09-07", "2026-09-09")
	if err != nil {
		t.Fatalf("build shopping list: %v", err)
	}
	if len(items) == 0 {
		t.Fatalf("expected shopping items from three planned days")
	}
	seen := map[string]bool{}
	for _, item := range items {
		if seen[item.Name] {
			t.Fatalf("ingredient %q appears twice in the aggregated list", item.Name)
		}
		seen[item.Name] = true
		if item.Amount <= 0 {
			t.Fatalf("item %q has non-positive amount %v", item.Name, item.Amount)
		}
	}
}

func TestCheckedStateSurvivesPlanRegeneration(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	p := saveTestProfile(t, sqldb)
	gen := seededGenerator(t, sqldb, 12)
	if _, err := service.GeneratePlan(sqldb, gen, *p, "2026-09-07"); err != nil {
		t.Fatalf("generate plan: %v", err)
	}
	items, err := service.BuildShoppingList(sqldb, "2026-09-07", "2026-09-07")
	if err != nil {
		t.Fatalf("build shopping list: %v", err)
	}
	if len(items) == 0 {
		t.Fatalf("expected items")
	}
	target := items[0].Name
	if err := service.SetChecked(sqldb, target, true); err != nil {
		t.Fatalf("check item: %v", err)
	}

	// Regenerate the plan; checked state is keyed by name, not by plan.
	if _, err := service.GeneratePlan(sqldb, gen, *p, "2026-09-07"); err != nil {
		t.Fatalf("regenerate plan: %v", err)
	}
	items, err = service.BuildShoppingList(sqldb, "2026-09-07", "2026-09-07")
	if err != nil {
		t.Fatalf("rebuild shopping list: %v", err)
	}
	for _, item := range items {
		if item.Name == target && !item.Checked {
			t.Fatalf("checked state lost for %q after regeneration", target)
		}
	}

	if err := service.SetChecked(sqldb, target, false); err != nil {
		t.Fatalf("uncheck item: %v", err)
	}
	items, err = service.BuildShoppingList(sqldb, "2026-09-07", "2026-09-07")
	if err != nil {
		t.Fatalf("rebuild shopping list: %v", err)
	}
	for _, item := range items {
		if item.Name == target && item.Checked {
			t.Fatalf("expected %q unchecked", target)
		}
	}
}

func TestBuildShoppingListEmptyRange(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	items, err := service.BuildShoppingList(sqldb, "2026-09-01", "2026-09-02")
	if err != nil {
		t.Fatalf("build shopping list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list without plans, got %d items", len(items))
	}
}
