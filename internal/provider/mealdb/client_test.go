package mealdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchByNameFlattensIngredients(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "meals": [
    {
      "strMeal": "Chicken Curry",
      "strCategory": "Chicken",
      "strArea": "Indian",
      "strInstructions": "Fry the onion.\r\nAdd the chicken.",
      "strIngredient1": "Chicken",
      "strMeasure1": "400 g",
      "strIngredient2": "Onion",
      "strMeasure2": "1",
      "strIngredient3": "Salt",
      "strMeasure3": "to taste",
      "strIngredient4": "",
      "strMeasure4": ""
    }
  ]
}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	meals, err := c.SearchByName(context.Background(), "chicken curry")
	if err != nil {
		t.Fatalf("search meal: %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("expected 1 meal, got %d", len(meals))
	}
	meal := meals[0]
	if meal.Name != "Chicken Curry" || meal.Category != "Chicken" {
		t.Fatalf("unexpected meal: %+v", meal)
	}
	if len(meal.Instructions) != 2 || meal.Instructions[1] != "Add the chicken." {
		t.Fatalf("instructions not split: %+v", meal.Instructions)
	}
	if len(meal.Ingredients) != 3 {
		t.Fatalf("expected 3 ingredients, got %d", len(meal.Ingredients))
	}
	if meal.Ingredients[0].Amount != 400 || meal.Ingredients[0].Unit != "g" {
		t.Fatalf("measure not parsed: %+v", meal.Ingredients[0])
	}
	if meal.Ingredients[2].Amount != 1 || meal.Ingredients[2].Unit != "to taste" {
		t.Fatalf("unparseable measure not preserved: %+v", meal.Ingredients[2])
	}
}

func TestSearchByNameNotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"meals": null}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	if _, err := c.SearchByName(context.Background(), "nonexistent dish"); err == nil {
		t.Fatalf("expected not-found error")
	}
}
