package catalog

import "github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"

// Cache buckets a loaded catalog by category. It is owned by whoever plans
// with it (no package-level state); call Rebuild after importing recipes.
type Cache struct {
	all        []model.Recipe
	byCategory map[model.RecipeCategory][]model.Recipe
}

func NewCache(recipes []model.Recipe) *Cache {
	c := &Cache{}
	c.Rebuild(recipes)
	return c
}

func (c *Cache) Rebuild(recipes []model.Recipe) {
	c.all = recipes
	c.byCategory = make(map[model.RecipeCategory][]model.Recipe)
	for _, r := range recipes {
		c.byCategory[r.Category] = append(c.byCategory[r.Category], r)
	}
}

func (c *Cache) All() []model.Recipe {
	return c.all
}

func (c *Cache) Category(cat model.RecipeCategory) []model.Recipe {
	return c.byCategory[cat]
}
