package store

import "github.com/MKhiriev/expense-tracker/models"

func strPtr(s string) *string { return &s }

// defaultCategories is the fixed category set inserted once at first
// startup, when the categories table is still empty.
var defaultCategories = []models.Category{
	{Name: "Food", Description: strPtr("Food and dining expenses")},
	{Name: "Transportation", Description: strPtr("Travel and commuting costs")},
	{Name: "Entertainment", Description: strPtr("Movies, games, and fun activities")},
	{Name: "Utilities", Description: strPtr("Electricity, water, gas bills")},
	{Name: "Healthcare", Description: strPtr("Medical and health expenses")},
	{Name: "Shopping", Description: strPtr("Clothing, electronics, and purchases")},
	{Name: "Rent", Description: strPtr("Housing and accommodation costs")},
	{Name: "Clubbing", Description: strPtr("Nightlife and club expenses")},
	{Name: "Groceries", Description: strPtr("Food shopping and household items")},
	{Name: "Travel", Description: strPtr("Vacation and travel expenses")},
	{Name: "Education", Description: strPtr("Learning and educational costs")},
	{Name: "Insurance", Description: strPtr("Insurance premiums and coverage")},
	{Name: "Phone", Description: strPtr("Mobile and phone bills")},
	{Name: "Internet", Description: strPtr("Internet and data services")},
	{Name: "Gym", Description: strPtr("Fitness and gym memberships")},
	{Name: "Other", Description: strPtr("Miscellaneous expenses")},
}
