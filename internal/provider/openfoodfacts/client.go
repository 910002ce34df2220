package openfoodfacts

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

const defaultBaseURL = "https://world.openfoodfacts.org"

// Product is an Open Food Facts item reduced to the fields the food log
// needs. Nutrient values are per serving when available, per 100g otherwise.
type Product struct {
	Barcode       string
	Name          string
	Brand         string
	ServingAmount float64
	ServingUnit   string
	Calories      float64
	ProteinG      float64
	CarbsG        float64
	FatG          float64
	FiberG        float64
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func (c *Client) LookupBarcode(ctx context.Context, barcode string) (Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return Product{}, fmt.Errorf("barcode is required")
	}
	endpoint := fmt.Sprintf("%s/api/v2/product/%s.json", c.base(), barcode)
	var parsed productResponse
	if err := c.getJSON(ctx, endpoint, &parsed); err != nil {
		return Product{}, err
	}
	if parsed.Status != 1 || strings.TrimSpace(parsed.Product.ProductName) == "" {
		return Product{}, fmt.Errorf("no product found for barcode %q", barcode)
	}
	return convertProduct(barcode, parsed.Product), nil
}

func (c *Client) Search(ctx context.Context, query string, limit int) ([]Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	if limit <= 0 {
		limit = 10
	}
	endpoint := fmt.Sprintf("%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		c.base(), url.QueryEscape(query), limit)
	var parsed searchResponse
	if err := c.getJSON(ctx, endpoint, &parsed); err != nil {
		return nil, err
	}
	out := make([]Product, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		if strings.TrimSpace(p.ProductName) == "" {
			continue
		}
		out = append(out, convertProduct(strings.TrimSpace(p.Code), p))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no product found for query %q", query)
	}
	return out, nil
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
		return fmt.Errorf("create openfoodfacts request: %w", err)
	}
	req.Header.Set("User-Agent", "fitinn-cli/1.0 (+https://github.com/markuseichhorn92-netizen/fitinn-cli)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode openfoodfacts response: %w", err)
	}
	return nil
}

func convertProduct(barcode string, p offProduct) Product {
	amount, unit := parseServing(p)
	return Product{
		Barcode:       barcode,
		Name:          strings.TrimSpace(p.ProductName),
		Brand:         strings.TrimSpace(p.Brands),
		ServingAmount: amount,
		ServingUnit:   unit,
		Calories:      nutrientValue(p.Nutriments, "energy-kcal"),
		ProteinG:      nutrientValue(p.Nutriments, "proteins"),
		CarbsG:        nutrientValue(p.Nutriments, "carbohydrates"),
		FatG:          nutrientValue(p.Nutriments, "fat"),
		FiberG:        nutrientValue(p.Nutriments, "fiber"),
	}
}

// nutrientValue prefers the per-serving value and falls back to per-100g.
func nutrientValue(n map[string]any, base string) float64 {
	for _, key := range []string{base + "_serving", base + "_100g"} {
		if v, ok := parseFloatAny(n[key]); ok {
			return v
		}
	}
	return 0
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func parseServing(p offProduct) (float64, string) {
	if p.ServingQuantity > 0 {
		unit := strings.TrimSpace(p.ServingQuantityUnit)
		if unit == "" {
			unit = "g"
		}
		return p.ServingQuantity, unit
	}
	if strings.TrimSpace(p.ServingSize) != "" {
		parts := strings.Fields(strings.TrimSpace(p.ServingSize))
		if len(parts) >= 2 {
			if val, err := strconv.ParseFloat(strings.ReplaceAll(parts[0], ",", ""), 64); err == nil && val > 0 {
				return val, parts[1]
			}
		}
	}
	return 100, "g"
}

type productResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

type offProduct struct {
	Code                string         `json:"code"`
	ProductName         string         `json:"product_name"`
	Brands              string         `json:"brands"`
	ServingSize         string         `json:"serving_size"`
	ServingQuantity     float64        `json:"serving_quantity"`
	ServingQuantityUnit string         `json:"serving_quantity_unit"`
	Nutriments          map[string]any `json:"nutriments"`
}

type searchResponse struct {
	Products []offProduct `json:"products"`
}
