package model

// Category is a spending category label.
type Category string

const (
	CategoryMobileData    Category = "Mobile Data"
	CategoryAirtime       Category = "Airtime"
	CategoryShopping      Category = "Shopping"
	CategoryHelpingOthers Category = "Helping Others"
	CategoryGambling      Category = "Gambling"
	CategoryBillPayment   Category = "Bill Payment"
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategorySalary        Category = "Salary" // inflow only
	CategoryTransfer      Category = "Transfer"
	CategoryMiscellaneous Category = "Miscellaneous"
)

// Categories returns every category label.
func Categories() []Category {
	return []Category{
		CategoryMobileData,
		CategoryAirtime,
		CategoryShopping,
		CategoryHelpingOthers,
		CategoryGambling,
		CategoryBillPayment,
		CategoryFood,
		CategoryTransport,
		CategoryEntertainment,
		CategorySalary,
		CategoryTransfer,
		CategoryMiscellaneous,
	}
}

// Valid reports whether c is a known category label.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
