// Package catalog holds the static, read-only game data: habit categories,
// the rank ladder, the predefined era catalog and the passive skill tree.
// Nothing in here is ever mutated at runtime; per-user state lives on the
// profile and its sub-collections.
package catalog

// Habit categories with their fixed XP rewards. The reward is copied onto a
// habit at creation time, so retuning these values never rewrites history.
const (
	HabitCategoryPhysicalHealth = "Salud Física"
	HabitCategoryMentalHealth   = "Salud Mental"
	HabitCategoryProductivity   = "Productividad"
	HabitCategoryLearning       = "Aprendizaje"
	HabitCategorySocial         = "Social"
	HabitCategoryFinance        = "Finanzas"
)

var habitCategoryXP = map[string]int{
	HabitCategoryPhysicalHealth: 20,
	HabitCategoryMentalHealth:   15,
	HabitCategoryProductivity:   25,
	HabitCategoryLearning:       20,
	HabitCategorySocial:         10,
	HabitCategoryFinance:        15,
}

// HabitCategories returns the fixed category names in display order.
func HabitCategories() []string {
	return []string{
		HabitCategoryPhysicalHealth,
		HabitCategoryMentalHealth,
		HabitCategoryProductivity,
		HabitCategoryLearning,
		HabitCategorySocial,
		HabitCategoryFinance,
	}
}

// HabitCategoryXP returns the fixed XP reward for a category and whether the
// category exists.
func HabitCategoryXP(category string) (int, bool) {
	xp, ok := habitCategoryXP[category]

	return xp, ok
}
