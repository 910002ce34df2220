package fitinn

import (
	"database/sql"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/app"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/catalog"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/db"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/planner"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/service"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	if err := catalog.EnsureSeeded(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

// requireProfile loads the stored profile and fails with onboarding guidance
// when none exists yet.
func requireProfile(sqldb *sql.DB) (*model.UserProfile, error) {
	profile, err := service.LoadProfile(sqldb)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("no profile configured yet; run: fitinn profile set")
	}
	return profile, nil
}

// newGenerator builds a plan generator over the current catalog. The seed
// flag wins over the stored plan_seed config; without either the source is
// time-seeded.
func newGenerator(sqldb *sql.DB, seed int64) (*planner.Generator, error) {
	recipes, err := catalog.Load(sqldb)
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		if v, ok, err := service.GetConfig(sqldb, service.ConfigPlanSeed); err != nil {
			return nil, err
		} else if ok {
			seed, err = strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid stored plan seed %q", v)
			}
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return planner.NewGenerator(catalog.NewCache(recipes), rand.New(rand.NewSource(seed))), nil
}

func parseSlot(value string) (model.MealSlot, error) {
	slot := model.MealSlot(strings.ToLower(strings.TrimSpace(value)))
	switch slot {
	case model.SlotBreakfast, model.SlotMorningSnack, model.SlotLunch,
		model.SlotAfternoonSnack, model.SlotDinner, model.SlotLateSnack:
		return slot, nil
	default:
		return "", fmt.Errorf("invalid meal slot %q (use breakfast, morning-snack, lunch, afternoon-snack, dinner, late-snack)", value)
	}
}

func splitCSVFlag(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
