package entity

// CategoryTaxonomy maps each top-level spending category to its known
// subcategory labels. Budget scope matching expands a configured category
// to this full set, so a "Food & Dining" budget also counts "Groceries"
// and "Restaurants" spending. Kept as data so tests can assert exact
// expansion lists.
var CategoryTaxonomy = map[string][]string{
	"Food & Dining":     {"Food & Dining", "Restaurants", "Groceries", "Takeout", "Coffee & Tea", "Alcohol & Bars"},
	"Transportation":    {"Transportation", "Gas & Fuel", "Parking", "Car Maintenance", "Public Transport", "Taxi & Rideshare"},
	"Shopping":          {"Shopping", "Clothing", "Electronics", "Books", "Gifts", "Home & Garden"},
	"Entertainment":     {"Entertainment", "Movies & Shows", "Music", "Games", "Sports", "Travel"},
	"Bills & Utilities": {"Bills & Utilities", "Rent", "Electricity", "Water", "Internet", "Phone", "Insurance"},
	"Healthcare":        {"Healthcare", "Doctor", "Pharmacy", "Dental", "Vision", "Medical Equipment"},
	"Personal Care":     {"Personal Care", "Salon & Spa", "Gym & Fitness", "Personal Items"},
	"Business":          {"Business", "Office Supplies", "Business Travel", "Professional Services"},
	"Education":         {"Education", "Tuition", "Books & Supplies", "Online Courses"},
	"Income":            {"Income", "Salary", "Freelance", "Investment", "Business", "Other Income"},
	"Transfer":          {"Transfer", "Account Transfer", "Payment", "Withdrawal"},
	"Other":             {"Other", "Miscellaneous", "Uncategorized"},
}

// ExpandCategories expands each configured category to itself plus its
// known subcategories. Categories without a taxonomy entry pass through
// literally.
func ExpandCategories(categories []string) []string {
	expanded := make([]string, 0, len(categories))
	for _, category := range categories {
		if subs, ok := CategoryTaxonomy[category]; ok {
			expanded = append(expanded, subs...)
		} else {
			expanded = append(expanded, category)
		}
	}
	return expanded
}
