package catalog

import "github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"

// builtinRecipes is the bundled catalog, seeded into the database on first
// run. Nutrition values are per the stated serving count. IDs are assigned
// by the database.
var builtinRecipes = []model.Recipe{
	{
		Name:     "Oatmeal with Berries",
		Category: model.CategoryBreakfast,
		Tags:     []string{"quick", "fiber"},
		PrepMin:  5, CookMin: 5, TotalMin: 10,
		Difficulty: model.DifficultyEasy,
		Servings:   1,
		Ingredients: []model.Ingredient{
			{Name: "Rolled oats", Amount: 60, Unit: "g", Category: "grains"},
			{Name: "Milk", Amount: 250, Unit: "ml", Category: "dairy"},
			{Name: "Blueberries", Amount: 80, Unit: "g", Category: "produce"},
			{Name: "Honey", Amount: 1, Unit: "tbsp", Category: "pantry"},
		},
		Nutrition: model.Nutrition{Calories: 420, ProteinG: 16, CarbsG: 68, FatG: 9, FiberG: 8},
		Instructions: []string{
			"Simmer oats in milk for 5 minutes.",
			"Top with berries and honey.",
		},
		Allergens:  []string{"gluten", "lactose"},
		DietFlags:  []string{"vegetarian"},
		MealPrepOK: true, StorageDays: 2,
	},
	{
		Name:     "Scrambled Eggs on Toast",
		Category: model.CategoryBreakfast,
		Tags:     []string{"protein"},
		PrepMin:  5, CookMin: 8, TotalMin: 13,
		Difficulty: model.DifficultyEasy,
		Servings:   1,
		Ingredients: []model.Ingredient{
			{Name: "Eggs", Amount: 3, Unit: "piece", Category: "dairy"},
			{Name: "Whole grain bread", Amount: 2, Unit: "slice", Category: "grains"},
			{Name: "Butter", Amount: 10, Unit: "g", Category: "dairy"},
			{Name: "Chives", Amount: 5, Unit: "g", Category: "produce"},
		},
		Nutrition: model.Nutrition{Calories: 460, ProteinG: 26, CarbsG: 32, FatG: 24, FiberG: 4},
		Instructions: []string{
			"Whisk and scramble the eggs in butter.",
			"Serve on toasted bread with chives.",
		},
		Allergens: []string{"egg", "gluten", "lactose"},
		DietFlags: []string{"vegetarian"},
	},
	{
		Name:     "Greek Yogurt Granola Bowl",
		Category: model.CategoryBreakfast,
		Tags:     []string{"quick", "protein"},
		PrepMin:  5, CookMin: 0, TotalMin: 5,
		Difficulty: model.DifficultyEasy,
		Servings:   1,
		Ingredients: []model.Ingredient{
			{Name: "Greek yogurt", Amount: 250, Unit: "g", Category: "dairy"},
			{Name: "Granola", Amount: 50, Unit: "g", Category: "grains"},
			{Name: "Banana", Amount: 1, Unit: "piece", Category: "produce"},
		},
		Nutrition: model.Nutrition{Calories: 430, ProteinG: 25, CarbsG: 58, FatG: 11, FiberG: 5},
		Instructions: []string{
			"Layer yogurt, granola and sliced banana.",
		},
		Allergens:  []string{"lactose", "nuts"},
		DietFlags:  []string{"vegetarian"},
		MealPrepOK: true, StorageDays: 1,
	},
	{
		Name:     "Tofu Veggie Scramble",
		Category: model.CategoryBreakfast,
		Tags:     []string{"plant-based"},
		PrepMin:  10, CookMin: 10, TotalMin: 20,
		Difficulty: model.DifficultyEasy,
		Servings:   1,
		Ingredients: []model.Ingredient{
			{Name: "Firm tofu", Amount: 200, Unit: "g", Category: "pantry"},
			{Name: "Bell pepper", Amount: 1, Unit: "piece", Category: "produce"},
			{Name: "Spinach", Amount: 60, Unit: "g", Category: "produce"},
			{Name: "Olive oil", Amount: 1, Unit: "tbsp", Category: "pantry"},
		},
		Nutrition: model.Nutrition{Calories: 380, ProteinG: 28, CarbsG: 14, FatG: 24, FiberG: 5},
		Instructions: []string{
			"Crumble tofu into a hot oiled pan.",
			"Add vegetables and fry until soft.",
		},
		Allergens: []string{"soy"},
		DietFlags: []string{"vegan", "gluten-free"},
	},
	{
		Name:     "Chicken Rice Bowl",
		Category: model.CategoryLunch,
		Tags:     []string{"meal-prep", "protein"},
		PrepMin:  10, CookMin: 20, TotalMin: 30,
		Difficulty: model.DifficultyEasy,
		Servings:   1,
		Ingredients: []model.Ingredient{
			{Name: "Chicken breast", Amount: 180, Unit: "g", Category: "meat-fish"},
			{Name: "Rice", Amount: 80, Unit: "g", Category: "grains"},
			{Name: "Broccoli", Amount: 150, Unit: "g", Category: "produce"},
			{Name: "Soy sauce", Amount: 2, Unit: "tbsp", Category: "pantry"},
		},
		Nutrition: model.Nutrition{Calories: 620, ProteinG: 52, CarbsG: 72, FatG: 12, FiberG: 6},
		Instructions: []string{
			"Cook the rice.",
			"Pan-fry the chicken, steam the broccoli.",
			"Combine and season with soy sauce.",
		},
		Allergens:  []string{"soy"},
		MealPrepOK: true, StorageDays: 3,
	},
	{
		Name:     "Lentil Curry",
		Category: model.CategoryLunch,
		Tags:     []string{"plant-based", "budget"},
		PrepMin:  10, CookMin: 25, TotalMin: 35,
		Difficulty: model.DifficultyMedium,
		Servings:   2,
		Ingredients: []model.Ingredient{
			{Name: "Red lentils", Amount: 200, Unit: "g", Category: "pantry"},
			{Name: "Coconut milk", Amount: 400, Unit: "ml", Category: "pantry"},
			{Name: "Onion", Amount: 1, Unit: "piece", Category: "produce"},
			{Name: "Tomato", Amount: 2, Unit: "piece", Category: "produce"},
			{Name: "Curry paste", Amount: 2, Unit: "tbsp", Category: "pantry"},
		},
		Nutrition: model.Nutrition{Calories: 1040, ProteinG: 44, CarbsG: 110, FatG: 46, FiberG: 22},
		Instructions: []string{
			"Sweat the onion, add curry paste.",
			"Add lentils, tomato and coconut milk; simmer 25 minutes.",
		},
		DietFlags:  []string{"vegan", "gluten-free"},
		MealPrepOK: true, StorageDays: 4,
	},
	{
		Name:     "Tuna Salad Wrap",
		Category: model.CategoryLunch,
		Tags:     []string{"quick"},
		PrepMin:  10, CookMin: 0, TotalMin: 10,
		Difficulty: model.DifficultyEasy,
		Servings:   1,
		Ingredients: []model.Ingredient{
			{Name: "Canned tuna", Amount: 140, Unit: "g", Category: "meat-fish"},
			{Name: "Tortilla wrap", Amount: 1, Unit: "piece", Category: "grains"},
			{Name: "Cucumber", Amount: 100, Unit: "g", Category: "produce"},
			{Name: "Yogurt dressing", Amount: 2, Unit: "tbsp", Category: "dairy"},
		},
		Nutrition: model.Nutrition{Calories: 450, ProteinG: 38, CarbsG: 38, FatG: 14, FiberG: 4},
		Instructions: []string{
			"Mix tuna with dressing and cucumber.",
			"Fill and roll the wrap.",
		},
		Allergens: []string{"fish", "gluten", "lactose"},
	},
	{
		Name:     "Quinoa Veggie Salad",
		Category: model.CategoryLunch,
		Tags:     []string{"plant-based", "meal-prep"},
		PrepMin:  10, CookMin: 15, TotalMin: 25,
		Difficulty: model.DifficultyEasy,
		Servings:   1,
		Ingredients: []model.Ingredient{
			{Name: "Quinoa", Amount: 80, Unit: "g", Category: "grains"},
			{Name: "Chickpeas", Amount: 120, Unit: "g", Category: "pantry"},
			{Name: "Tomato", Amount: 2, Unit: "piece", Category: "produce"},
			{Name: "Olive oil", Amount: 1, Unit: "tbsp", Category: "pantry"},
			{Name: "Lemon", Amount: 0.5, Unit: "piece", Category: "produce"},
		},
		Nutrition: model.Nutrition{Calories: 520, ProteinG: 20, CarbsG: 70, FatG: 18, FiberG: 12},
		Instructions: []string{
			"Cook and cool the quinoa.",
			"Toss with chickpeas, tomato, oil and lemon juice.",
		},
		DietFlags:  []string{"vegan", "gluten-free"},
		MealPrepOK: true, StorageDays: 3,
	},
	{
		Name:     "Baked Salmon with Potatoes",
		Category: model.CategoryDinner,
		Tags:     []string{"omega-3"},
		PrepMin:  10, CookMin: 25, TotalMin: 35,
		Difficulty: model.DifficultyMedium,
		Servings:   1,
		Ingredients: []model.Ingredient{
			{Name: "Salmon fillet", Amount: 180, Unit: "g", Category: "meat-fish"},
			{Name: "Potatoes", Amount: 300, Unit: "g", Category: "produce"},
			{Name: "Green beans", Amount: 150, Unit: "g", Category: "produce"},
			{Name: "Olive oil", Amount: 1, Unit: "tbsp", Category: "pantry"},
		},
		Nutrition: model.Nutrition{Calories: 680, ProteinG: 44, CarbsG: 52, FatG: 32, FiberG: 8},
		Instructions: []string{
			"Bake salmon and potatoes at 200°C for 25 minutes.",
			"Steam the green beans.",
		},
		Allergens: []string{"fish"},
		DietFlags: []string{"gluten-free"},
	},
	{
		Name:     "Beef Stir-Fry with Noodles",
		Category: model.CategoryDinner,
		Tags:     []string{"wok"},
		PrepMin:  15, CookMin: 12, TotalMin: 27,
		Difficulty: model.DifficultyMedium,
		Servings:   1,
		Ingredients: []model.Ingredient{
			{Name: "Beef strips", Amount: 160, Unit: "g", Category: "meat-fish"},
			{Name: "Egg noodles", Amount: 100, Unit: "g", Category: "grains"},
			{Name: "Bell pepper", Amount: 1, Unit: "piece", Category: "produce"},
			{Name: "Soy sauce", Amount: 2, Unit: "tbsp", Category: "pantry"},
		},
		Nutrition: model.Nutrition{Calories: 650, ProteinG: 42, CarbsG: 74, FatG: 18, FiberG: 5},
		Instructions: []string{
			"Sear the beef in a hot wok.",
			"Add vegetables and cooked noodles; finish with soy sauce.",
		},
		Allergens: []string{"gluten", "soy", "egg"},
	},
	{
		Name:     "Vegetable Chili sin Carne",
		Category: model.CategoryDinner,
		Tags:     []string{"plant-based", "budget", "meal-prep"},
		PrepMin:  10, CookMin: 30, TotalMin: 40,
		Difficulty: model.DifficultyEasy,
		Servings:   2,
		Ingredients: []model.Ingredient{
			{Name: "Kidney beans", Amount: 250, Unit: "g", Category: "pantry"},
			{Name: "Corn", Amount: 150, Unit: "g", Category: "pantry"},
			{Name: "Tomato", Amount: 4, Unit: "piece", Category: "produce"},
			{Name: "Onion", Amount: 1, Unit: "piece", Category: "produce"},
			{Name: "Rice", Amount: 120, Unit: "g", Category: "grains"},
		},
		Nutrition: model.Nutrition{Calories: 980, ProteinG: 38, CarbsG: 180, FatG: 10, FiberG: 28},
		Instructions: []string{
			"Simmer beans, corn, tomato and onion for 30 minutes.",
			"Serve over rice.",
		},
		DietFlags:  []string{"vegan", "gluten-free"},
		MealPrepOK: true, StorageDays: 4,
	},
	{
		Name:     "Caprese Omelette",
		Category: model.CategoryDinner,
		Tags:     []string{"low-carb", "quick"},
		PrepMin:  5, CookMin: 10, TotalMin: 15,
		Difficulty: model.DifficultyEasy,
		Servings:   1,
		Ingredients: []model.Ingredient{
			{Name: "Eggs", Amount: 3, Unit: "piece", Category: "dairy"},
			{Name: "Mozzarella", Amount: 80, Unit: "g", Category: "dairy"},
			{Name: "Tomato", Amount: 2, Unit: "piece", Category: "produce"},
			{Name: "Basil", Amount: 5, Unit: "g", Category: "produce"},
		},
		Nutrition: model.Nutrition{Calories: 520, ProteinG: 36, CarbsG: 10, FatG: 36, FiberG: 2},
		Instructions: []string{
			"Cook the omelette until just set.",
			"Fill with mozzarella, tomato and basil.",
		},
		Allergens: []string{"egg", "lactose"},
		DietFlags: []string{"vegetarian", "gluten-free"},
	},
	{
		Name:     "Apple with Peanut Butter",
		Category: model.CategorySnack,
		Tags:     []string{"quick"},
		PrepMin:  3, CookMin: 0, TotalMin: 3,
		Difficulty: model.DifficultyEasy,
		Servings:   1,
		Ingredients: []model.Ingredient{
			{Name: "Apple", Amount: 1, Unit: "piece", Category: "produce"},
			{Name: "Peanut butter", Amount: 25, Unit: "g", Category: "pantry"},
		},
		Nutrition: model.Nutrition{Calories: 240, ProteinG: 6, CarbsG: 28, FatG: 13, FiberG: 5},
		Instructions: []string{
			"Slice the apple and dip.",
		},
		Allergens: []string{"nuts"},
		DietFlags: []string{"vegan", "gluten-free"},
	},
	{
		Name:     "Protein Shake",
		Category: model.CategorySnack,
		Tags:     []string{"protein", "quick"},
		PrepMin:  2, CookMin: 0, TotalMin: 2,
		Difficulty: model.DifficultyEasy,
		Servings:   1,
		Ingredients: []model.Ingredient{
			{Name: "Whey protein", Amount: 30, Unit: "g", Category: "pantry"},
			{Name: "Milk", Amount: 300, Unit: "ml", Category: "dairy"},
		},
		Nutrition: model.Nutrition{Calories: 260, ProteinG: 32, CarbsG: 18, FatG: 6, FiberG: 0},
		Instructions: []string{
			"Shake well.",
		},
		Allergens: []string{"lactose"},
		DietFlags: []string{"vegetarian", "gluten-free"},
	},
	{
		Name:     "Hummus with Carrot Sticks",
		Category: model.CategorySnack,
		Tags:     []string{"plant-based"},
		PrepMin:  5, CookMin: 0, TotalMin: 5,
		Difficulty: model.DifficultyEasy,
		Servings:   1,
		Ingredients: []model.Ingredient{
			{Name: "Hummus", Amount: 80, Unit: "g", Category: "pantry"},
			{Name: "Carrot", Amount: 2, Unit: "piece", Category: "produce"},
		},
		Nutrition: model.Nutrition{Calories: 220, ProteinG: 7, CarbsG: 22, FatG: 12, FiberG: 7},
		Instructions: []string{
			"Peel the carrots, cut into sticks.",
		},
		Allergens: []string{"sesame"},
		DietFlags: []string{"vegan", "gluten-free"},
	},
	{
		Name:     "Cottage Cheese with Pineapple",
		Category: model.CategorySnack,
		Tags:     []string{"protein"},
		PrepMin:  4, CookMin: 0, TotalMin: 4,
		Difficulty: model.DifficultyEasy,
		Servings:   1,
		Ingredients: []model.Ingredient{
			{Name: "Cottage cheese", Amount: 200, Unit: "g", Category: "dairy"},
			{Name: "Pineapple", Amount: 100, Unit: "g", Category: "produce"},
		},
		Nutrition: model.Nutrition{Calories: 230, ProteinG: 24, CarbsG: 20, FatG: 6, FiberG: 2},
		Instructions: []string{
			"Combine and serve chilled.",
		},
		Allergens: []string{"lactose"},
		DietFlags: []string{"vegetarian", "gluten-free"},
	},
}
