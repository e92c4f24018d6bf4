package models

// MealType is one of the six fixed daily meal slots.
type MealType string

const (
	MealBreakfast      MealType = "BREAKFAST"
	MealSchoolSnack    MealType = "SCHOOL_SNACK"
	MealLunch          MealType = "LUNCH"
	MealAfternoonSnack MealType = "AFTERNOON_SNACK"
	MealDinner         MealType = "DINNER"
	MealOptionalSnack  MealType = "OPTIONAL_SNACK"
)

// AllMealTypes is ordered by time of day; next-meal scanning depends on this
// order matching the default time slots.
var AllMealTypes = []MealType{
	MealBreakfast,
	MealSchoolSnack,
	MealLunch,
	MealAfternoonSnack,
	MealDinner,
	MealOptionalSnack,
}

type mealTypeInfo struct {
	timeSlot string
	label    string
	color    string
}

var mealTypeDefaults = map[MealType]mealTypeInfo{
	MealBreakfast:      {timeSlot: "06:30", label: "Desayuno", color: "#FF9800"},
	MealSchoolSnack:    {timeSlot: "09:30", label: "Refrigerio escolar", color: "#4CAF50"},
	MealLunch:          {timeSlot: "13:30", label: "Almuerzo", color: "#F44336"},
	MealAfternoonSnack: {timeSlot: "17:00", label: "Merienda", color: "#9C27B0"},
	MealDinner:         {timeSlot: "19:30", label: "Cena", color: "#3F51B5"},
	MealOptionalSnack:  {timeSlot: "21:00", label: "Snack opcional", color: "#607D8B"},
}

func (m MealType) Valid() bool {
	_, ok := mealTypeDefaults[m]
	return ok
}

// DefaultTimeSlot is the canonical "HH:MM" for the slot, used when a new
// preference does not carry an explicit time.
func (m MealType) DefaultTimeSlot() string {
	return mealTypeDefaults[m].timeSlot
}

// Label is the user-facing Spanish name of the slot.
func (m MealType) Label() string {
	return mealTypeDefaults[m].label
}

// Color is the slot's accent color as shown in clients.
func (m MealType) Color() string {
	return mealTypeDefaults[m].color
}
