package models

import "sort"

// Category is the closed set of menu sections a product belongs to
type Category int

const (
	CategorySalad Category = iota + 1
	CategorySoup
	CategoryMainCourse
	CategoryDessert
	CategoryDrink
)

// Unit labels for product quantities
const (
	UnitGrams       = "grams"
	UnitMilliliters = "milliliters"
)

var allCategories = []Category{
	CategorySalad,
	CategorySoup,
	CategoryMainCourse,
	CategoryDessert,
	CategoryDrink,
}

// CategoryDescriptor is the display record of a category
type CategoryDescriptor struct {
	Category   Category
	Token      string
	Annotation string
	Unit       string
}

// ResolveCategory maps an input token to its category.
// The token must match exactly; no case folding or trimming is applied.
func ResolveCategory(token string) (Category, bool) {
	switch token {
	case "salad":
		return CategorySalad, true
	case "soup":
		return CategorySoup, true
	case "main_course":
		return CategoryMainCourse, true
	case "dessert":
		return CategoryDessert, true
	case "drink":
		return CategoryDrink, true
	}
	return 0, false
}

// Categories returns every category descriptor sorted by token
func Categories() []CategoryDescriptor {
	descriptors := make([]CategoryDescriptor, 0, len(allCategories))
	for _, c := range allCategories {
		descriptors = append(descriptors, c.Descriptor())
	}
	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].Token < descriptors[j].Token
	})
	return descriptors
}

// Valid reports whether c is one of the five known categories
func (c Category) Valid() bool {
	return c >= CategorySalad && c <= CategoryDrink
}

// Token returns the input keyword of the category
func (c Category) Token() string {
	switch c {
	case CategorySalad:
		return "salad"
	case CategorySoup:
		return "soup"
	case CategoryMainCourse:
		return "main_course"
	case CategoryDessert:
		return "dessert"
	case CategoryDrink:
		return "drink"
	}
	return ""
}

// Annotation returns the human readable label of the category
func (c Category) Annotation() string {
	switch c {
	case CategorySalad:
		return "Salad"
	case CategorySoup:
		return "Soup"
	case CategoryMainCourse:
		return "Main course"
	case CategoryDessert:
		return "Dessert"
	case CategoryDrink:
		return "Drink"
	}
	return ""
}

// Unit returns the label the quantity of a product is measured in
func (c Category) Unit() string {
	if c == CategoryDrink {
		return UnitMilliliters
	}
	return UnitGrams
}

// Calories derives the calorie value of quantity units of this category
func (c Category) Calories(quantity int) float64 {
	switch c {
	case CategoryMainCourse:
		return float64(quantity) * 1
	case CategoryDessert:
		return float64(quantity) * 3
	case CategoryDrink:
		return float64(quantity) * 1.5
	default:
		return 0
	}
}

// Descriptor returns the display record of the category
func (c Category) Descriptor() CategoryDescriptor {
	return CategoryDescriptor{
		Category:   c,
		Token:      c.Token(),
		Annotation: c.Annotation(),
		Unit:       c.Unit(),
	}
}

func (c Category) String() string {
	return c.Token()
}
