package service

import (
	"database/sql"
	"fmt"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/planner"
)

// BuildShoppingList aggregates every ingredient of every stored plan in the
// date range and overlays the independently persisted checked state. The
// checked set survives plan regeneration by design.
func BuildShoppingList(db *sql.DB, from, to string) ([]model.ShoppingItem, error) {
	plans, err := PlansInRange(db, from, to)
	if err != nil {
		return nil, err
	}
	items := planner.AggregateShopping(plans)
	if len(items) == 0 {
		return items, nil
	}

	checked, err := checkedSet(db)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Checked = checked[normalizeName(items[i].Name)]
	}
	return items, nil
}

func SetChecked(db *sql.DB, name string, checked bool) error {
	key := normalizeName(name)
	if key == "" {
		return fmt.Errorf("item name is required")
	}
	if checked {
		if _, err := db.Exec(`
INSERT INTO shopping_checked(name) VALUES(?)
ON CONFLICT(name) DO UPDATE SET checked_at=CURRENT_TIMESTAMP
`, key); err != nil {
			return fmt.Errorf("check shopping item %q: %w", name, err)
		}
		return nil
	}
	if _, err := db.Exec(`DELETE FROM shopping_checked WHERE name = ?`, key); err != nil {
		return fmt.Errorf("uncheck shopping item %q: %w", name, err)
	}
	return nil
}

func ResetChecked(db *sql.DB) error {
	if _, err := db.Exec(`DELETE FROM shopping_checked`); err != nil {
		return fmt.Errorf("reset checked shopping items: %w", err)
	}
	return nil
}

func checkedSet(db *sql.DB) (map[string]bool, error) {
	rows, err := db.Query(`SELECT name FROM shopping_checked`)
	if err != nil {
		return nil, fmt.Errorf("load checked shopping items: %w", err)
	}
	defer rows.Close()

	out := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan checked item: %w", err)
		}
		out[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checked items: %w", err)
	}
	return out, nil
}
