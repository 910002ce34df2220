package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// TheMealDB's free tier uses the shared developer key "1".
const defaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// Meal is a recipe from TheMealDB flattened out of its numbered
// strIngredient/strMeasure columns.
type Meal struct {
	Name         string
	Category     string
	Area         string
	Instructions []string
	Ingredients  []MealIngredient
}

type MealIngredient struct {
	Name    string
	Amount  float64
	Unit    string
	Measure string
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func (c *Client) SearchByName(ctx context.Context, name string) ([]Meal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("meal name is required")
	}
	endpoint := fmt.Sprintf("%s/search.php?s=%s", c.base(), url.QueryEscape(name))
	var parsed mealsResponse
	if err := c.getJSON(ctx, endpoint, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Meals) == 0 {
		return nil, fmt.Errorf("no meal found for %q", name)
	}
	out := make([]Meal, 0, len(parsed.Meals))
	for _, m := range parsed.Meals {
		out = append(out, convertMeal(m))
	}
	return out, nil
}

func (c *Client) Random(ctx context.Context) (Meal, error) {
	var parsed mealsResponse
	if err := c.getJSON(ctx, c.base()+"/random.php", &parsed); err != nil {
		return Meal{}, err
	}
	if len(parsed.Meals) == 0 {
		return Meal{}, fmt.Errorf("no random meal returned")
	}
	return convertMeal(parsed.Meals[0]), nil
}

func (c *Client) base() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return base
}

func (c *Client) getJSON(ctx context.Context, endpoint string, target any) error {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create mealdb request: %w", err)
	}
	req.Header.Set("User-Agent", "fitinn-cli/1.0 (+https://github.com/markuseichhorn92-netizen/fitinn-cli)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute mealdb request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read mealdb response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mealdb request failed with status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode mealdb response: %w", err)
	}
	return nil
}

func convertMeal(raw map[string]any) Meal {
	meal := Meal{
		Name:     stringField(raw, "strMeal"),
		Category: stringField(raw, "strCategory"),
		Area:     stringField(raw, "strArea"),
	}
	for _, line := range strings.Split(stringField(raw, "strInstructions"), "\n") {
		if line = strings.TrimSpace(strings.TrimSuffix(line, "\r")); line != "" {
			meal.Instructions = append(meal.Instructions, line)
		}
	}
	for i := 1; i <= 20; i++ {
		name := stringField(raw, fmt.Sprintf("strIngredient%d", i))
		if name == "" {
			continue
		}
		measure := stringField(raw, fmt.Sprintf("strMeasure%d", i))
		amount, unit := parseMeasure(measure)
		meal.Ingredients = append(meal.Ingredients, MealIngredient{
			Name:    name,
			Amount:  amount,
			Unit:    unit,
			Measure: measure,
		})
	}
	return meal
}

func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// parseMeasure splits a free-text measure like "200 g" or "2 tbsp" into an
// amount and a unit. Unparseable measures become a single unit of the raw
// text ("pinch", "to taste").
func parseMeasure(measure string) (float64, string) {
	fields := strings.Fields(strings.TrimSpace(measure))
	if len(fields) == 0 {
		return 1, ""
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", "."), 64)
	if err != nil || amount <= 0 {
		return 1, strings.Join(fields, " ")
	}
	return amount, strings.Join(fields[1:], " ")
}

type mealsResponse struct {
	Meals []map[string]any `json:"meals"`
}
