package models

// Category is a main COICOP consumption category.
type Category string

const (
	// CategoryFood covers food and non-alcoholic beverages.
	CategoryFood Category = "Food"
	// CategoryHousingEnergy covers housing, water, electricity, gas and other fuels.
	CategoryHousingEnergy Category = "Housing & Energy"
	// CategoryTransport covers transport goods and services.
	CategoryTransport Category = "Transport"
	// CategoryOther is the fallback for sheets outside the known index ranges.
	CategoryOther Category = "Other"
)
