package catalog

import (
	"nutrialarm/internal/models"
)

// The fixed catalog of iron-rich meals and diets seeded on first run. All rows
// are tagged is_preloaded so re-seeding never touches user-authored data.

func preloadedMeals() []models.Meal {
	type entry struct {
		id, name, description string
		ingredients           []string
		mealType              models.MealType
		iron, calories        float64
		prepTime              int
		vitaminC, folate      float64
	}

	entries := []entry{
		{
			"breakfast_1", "Avena con sangrecita", "Porridge de avena reforzado con sangrecita de pollo",
			[]string{"avena", "sangrecita de pollo", "leche", "canela"},
			models.MealBreakfast, 14.2, 380, 20, 4.0, 45,
		},
		{
			"breakfast_2", "Pan con higado encebollado", "Pan frances con higado de res salteado y cebolla",
			[]string{"pan frances", "higado de res", "cebolla", "limon"},
			models.MealBreakfast, 9.8, 420, 25, 12.0, 180,
		},
		{
			"breakfast_3", "Quinua con manzana", "Quinua cocida con manzana rallada y pasas",
			[]string{"quinua", "manzana", "pasas", "miel"},
			models.MealBreakfast, 4.5, 340, 30, 6.0, 78,
		},
		{
			"school_snack_1", "Habas tostadas con naranja", "Habas tostadas acompanadas de jugo de naranja",
			[]string{"habas", "naranja"},
			models.MealSchoolSnack, 3.2, 210, 5, 60.0, 96,
		},
		{
			"school_snack_2", "Pan con queso y mandarina", "Pan integral con queso fresco y una mandarina",
			[]string{"pan integral", "queso fresco", "mandarina"},
			models.MealSchoolSnack, 1.8, 260, 5, 32.0, 40,
		},
		{
			"lunch_1", "Lentejas con arroz y bistec", "Guiso de lentejas con arroz y bistec a la plancha",
			[]string{"lentejas", "arroz", "bistec de res", "tomate", "cebolla"},
			models.MealLunch, 8.6, 650, 45, 18.0, 220,
		},
		{
			"lunch_2", "Higado saltado", "Saltado de higado de res con papas doradas",
			[]string{"higado de res", "papa", "cebolla", "tomate", "aji amarillo"},
			models.MealLunch, 12.4, 580, 35, 25.0, 260,
		},
		{
			"lunch_3", "Frejoles con pescado frito", "Frejoles canario con pescado frito y ensalada criolla",
			[]string{"frejol canario", "pescado bonito", "arroz", "cebolla", "limon"},
			models.MealLunch, 6.9, 620, 50, 22.0, 180,
		},
		{
			"afternoon_snack_1", "Mazamorra de quinua", "Mazamorra de quinua con pina",
			[]string{"quinua", "pina", "chancaca"},
			models.MealAfternoonSnack, 2.8, 230, 25, 18.0, 42,
		},
		{
			"afternoon_snack_2", "Sanguche de pollo con espinaca", "Pan con pollo deshilachado y hojas de espinaca",
			[]string{"pan", "pechuga de pollo", "espinaca", "mayonesa"},
			models.MealAfternoonSnack, 2.4, 310, 15, 10.0, 85,
		},
		{
			"dinner_1", "Tortilla de espinaca", "Tortilla de huevos con espinaca y arroz",
			[]string{"huevo", "espinaca", "arroz", "cebolla"},
			models.MealDinner, 4.8, 430, 20, 14.0, 150,
		},
		{
			"dinner_2", "Sopa de sangrecita", "Sopa criolla con sangrecita, fideos y verduras",
			[]string{"sangrecita de pollo", "fideos", "zanahoria", "apio"},
			models.MealDinner, 13.1, 390, 30, 9.0, 70,
		},
		{
			"optional_snack_1", "Maní con pasas", "Porcion de mani tostado con pasas",
			[]string{"mani", "pasas"},
			models.MealOptionalSnack, 1.6, 180, 0, 0.5, 30,
		},
		{
			"optional_snack_2", "Yogurt con kiwicha", "Yogurt natural con kiwicha pop",
			[]string{"yogurt natural", "kiwicha"},
			models.MealOptionalSnack, 2.1, 190, 5, 2.0, 24,
		},
	}

	meals := make([]models.Meal, 0, len(entries))
	for _, e := range entries {
		m := models.Meal{
			ID:              e.id,
			Name:            e.name,
			Description:     e.description,
			MealType:        e.mealType,
			IronContent:     e.iron,
			Calories:        e.calories,
			PreparationTime: e.prepTime,
			VitaminC:        e.vitaminC,
			Folate:          e.folate,
			IsPreloaded:     true,
		}
		_ = m.SetIngredients(e.ingredients)
		meals = append(meals, m)
	}
	return meals
}

func preloadedDiets() []models.Diet {
	return []models.Diet{
		{
			ID:              "diet_low",
			Name:            "Dieta preventiva",
			Description:     "Mantenimiento para riesgo bajo de anemia",
			AnemiaRiskLevel: models.RiskLow,
			IronContent:     10,
			Calories:        2000,
			IsPreloaded:     true,
		},
		{
			ID:              "diet_medium",
			Name:            "Dieta de refuerzo",
			Description:     "Refuerzo de hierro para riesgo medio",
			AnemiaRiskLevel: models.RiskMedium,
			IronContent:     14,
			Calories:        2200,
			IsPreloaded:     true,
		},
		{
			ID:              "diet_high",
			Name:            "Dieta intensiva",
			Description:     "Alto aporte de hierro hemo para riesgo alto",
			AnemiaRiskLevel: models.RiskHigh,
			IronContent:     18,
			Calories:        2400,
			IsPreloaded:     true,
		},
	}
}

func preloadedCrossRefs() []models.DietMealCrossRef {
	links := map[string][]string{
		"diet_low":    {"breakfast_3", "school_snack_2", "lunch_3", "afternoon_snack_1", "dinner_1", "optional_snack_2"},
		"diet_medium": {"breakfast_1", "school_snack_1", "lunch_1", "afternoon_snack_2", "dinner_1", "optional_snack_1"},
		"diet_high":   {"breakfast_2", "school_snack_1", "lunch_2", "afternoon_snack_2", "dinner_2", "optional_snack_1"},
	}

	var refs []models.DietMealCrossRef
	for dietID, mealIDs := range links {
		for _, mealID := range mealIDs {
			refs = append(refs, models.DietMealCrossRef{DietID: dietID, MealID: mealID})
		}
	}
	return refs
}
