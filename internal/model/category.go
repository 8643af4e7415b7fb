package model

// CategoryCode identifies an expense's spending category. The set is
// closed; values outside it still flow through filtering verbatim but
// display as their raw code.
type CategoryCode string

const (
	// CategoryInvestment covers stocks, funds, and other investments.
	CategoryInvestment CategoryCode = "investment"
	// CategoryFood covers meals, groceries, and dining out.
	CategoryFood CategoryCode = "food"
	// CategoryTransport covers commuting, fuel, and ride hailing.
	CategoryTransport CategoryCode = "transport"
	// CategoryShopping covers retail purchases.
	CategoryShopping CategoryCode = "shopping"
	// CategoryLoan covers loan and EMI repayments.
	CategoryLoan CategoryCode = "loan"
	// CategoryMedical covers healthcare spending.
	CategoryMedical CategoryCode = "medical"
	// CategoryBill covers utilities and recurring bills.
	CategoryBill CategoryCode = "bill"
	// CategoryTravel covers trips and vacations.
	CategoryTravel CategoryCode = "travel"
	// CategoryHouseExpense covers rent, furniture, and home upkeep.
	CategoryHouseExpense CategoryCode = "houseExpense"
	// CategoryOthers is the catch-all category.
	CategoryOthers CategoryCode = "others"
)

// CategoryInfo ties a category code to its display label, icon tag, and
// the keywords the lexical extractor matches against free text.
type CategoryInfo struct {
	Code     CategoryCode
	Label    string
	Icon     string
	Keywords []string
}

// categoryTable is the one authoritative copy of the category metadata.
// Order matters twice: it is the extractor's scan order (first category
// whose first keyword matches wins) and the display order of the
// `categories` command. Keywords are substring-matched, so they must not
// collide with month names, relative-period words, or the common carrier
// vocabulary ("expenses", "costs", "spending", "current", ...).
var categoryTable = []CategoryInfo{
	{
		Code:  CategoryFood,
		Label: "Food",
		Icon:  "🍔",
		Keywords: []string{
			"food", "dining", "restaurant", "meal", "lunch", "dinner",
			"breakfast", "snack", "grocery", "groceries", "eating", "cafe",
		},
	},
	{
		Code:  CategoryTransport,
		Label: "Transport",
		Icon:  "🚗",
		Keywords: []string{
			"transport", "commute", "uber", "taxi", "cab", "fuel", "petrol",
			"diesel", "bus", "train", "metro", "parking",
		},
	},
	{
		Code:  CategoryShopping,
		Label: "Shopping",
		Icon:  "🛍️",
		Keywords: []string{
			"shopping", "shop", "clothes", "clothing", "apparel", "amazon",
			"flipkart", "purchase",
		},
	},
	{
		Code:  CategoryLoan,
		Label: "Loan",
		Icon:  "💰",
		Keywords: []string{
			"loan", "emi", "debt", "borrowed", "repayment",
		},
	},
	{
		Code:  CategoryMedical,
		Label: "Medical",
		Icon:  "🏥",
		Keywords: []string{
			"medical", "medicine", "doctor", "hospital", "pharmacy",
			"health", "clinic", "dental",
		},
	},
	{
		Code:  CategoryBill,
		Label: "Bill",
		Icon:  "🧾",
		Keywords: []string{
			"bill", "electricity", "internet", "wifi", "recharge",
			"subscription", "utility", "utilities", "phone",
		},
	},
	{
		Code:  CategoryTravel,
		Label: "Travel",
		Icon:  "✈️",
		Keywords: []string{
			"travel", "trip", "vacation", "holiday", "flight", "hotel",
			"tour",
		},
	},
	{
		Code:  CategoryHouseExpense,
		Label: "House Expense",
		Icon:  "🏠",
		Keywords: []string{
			"house", "home", "furniture", "appliance", "maintenance",
			"plumbing",
		},
	},
	{
		Code:  CategoryInvestment,
		Label: "Investment",
		Icon:  "📈",
		Keywords: []string{
			"investment", "invest", "stock", "mutual fund", "trading",
			"shares", "crypto",
		},
	},
	{
		Code:  CategoryOthers,
		Label: "Others",
		Icon:  "📦",
		Keywords: []string{
			"miscellaneous", "misc", "other",
		},
	},
}

// Categories returns the category metadata in scan order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categoryTable))
	copy(out, categoryTable)
	return out
}

// IsKnownCategory reports whether code belongs to the closed enumeration.
func IsKnownCategory(code string) bool {
	for _, info := range categoryTable {
		if string(info.Code) == code {
			return true
		}
	}
	return false
}

// CategoryLabel resolves a category code to its display label. Unknown
// codes display as themselves so legacy values stay visible.
func CategoryLabel(code string) string {
	for _, info := range categoryTable {
		if string(info.Code) == code {
			return info.Label
		}
	}
	return code
}

// CategoryIcon resolves a category code to its icon tag, falling back to
// the catch-all icon for unknown codes.
func CategoryIcon(code string) string {
	for _, info := range categoryTable {
		if string(info.Code) == code {
			return info.Icon
		}
	}
	return "📦"
}
