package model

// Category is a fixed expense category. The catalogue is static; category
// ids are referenced by Expense.CategoryID.
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	ID    int64  `json:"id"`
}

// Well-known category ids used by ledger side effects.
const (
	// CategoryDebtPayment is assigned to companion expenses created by debt
	// payments.
	CategoryDebtPayment int64 = 3
	// CategoryInvestment is assigned to savings contributions and transfer
	// companion expenses.
	CategoryInvestment int64 = 8
)

// Categories is the fixed catalogue.
var Categories = []Category{
	{ID: 1, Name: "Food & Dining", Color: "#f43f5e"},
	{ID: 2, Name: "Transportation", Color: "#3b82f6"},
	{ID: 3, Name: "Housing", Color: "#8b5cf6"},
	{ID: 4, Name: "Entertainment", Color: "#eab308"},
	{ID: 5, Name: "Shopping", Color: "#ec4899"},
	{ID: 6, Name: "Utilities", Color: "#06b6d4"},
	{ID: 7, Name: "Health", Color: "#10b981"},
	{ID: 8, Name: "Investment", Color: "#6366f1"},
}

// CategoryByID returns the catalogue entry for id, or false when unknown.
func CategoryByID(id int64) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
