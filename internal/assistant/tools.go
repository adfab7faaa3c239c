package assistant

import (
	"google.golang.org/genai"

	"github.com/thevaultapp/vault/internal/dispatch"
)

// toolDeclarations describes the dispatcher's action catalogue to the model.
// The names must match the dispatch constants; the parameter shapes must
// match the dispatcher's schemas.
func toolDeclarations() []*genai.FunctionDeclaration {
	str := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: desc}
	}
	num := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeNumber, Description: desc}
	}
	object := func(required []string, props map[string]*genai.Schema) *genai.Schema {
		return &genai.Schema{Type: genai.TypeObject, Properties: props, Required: required}
	}

	return []*genai.FunctionDeclaration{
		{
			Name:        dispatch.ActionRememberFact,
			Description: "Save a specific fact, preference, or detail about the user to long-term memory. Use this when the user says 'remember that' or shares personal info.",
			Parameters: object([]string{"fact"}, map[string]*genai.Schema{
				"fact": str("The fact to remember (e.g. 'User is saving for a wedding in 2026')"),
			}),
		},
		{
			Name:        dispatch.ActionGetFinancialSummary,
			Description: "Get a high-level summary of net worth, total assets, and total liabilities.",
			Parameters:  object(nil, map[string]*genai.Schema{}),
		},
		{
			Name:        dispatch.ActionGetAccounts,
			Description: "Get a detailed list of all bank, credit, cash, and investment accounts.",
			Parameters:  object(nil, map[string]*genai.Schema{}),
		},
		{
			Name:        dispatch.ActionGetRecentTransactions,
			Description: "Get the last 15 transactions (expenses and income).",
			Parameters:  object(nil, map[string]*genai.Schema{}),
		},
		{
			Name:        dispatch.ActionGetDebts,
			Description: "Get a list of all active debts, loans, and credit card liabilities.",
			Parameters:  object(nil, map[string]*genai.Schema{}),
		},
		{
			Name:        dispatch.ActionGetSavingsGoals,
			Description: "Get a list of all savings goals and current progress.",
			Parameters:  object(nil, map[string]*genai.Schema{}),
		},
		{
			Name:        dispatch.ActionAddAccount,
			Description: "Create a new financial account (Bank, Cash, Credit, Investment). REQUIRED if the user wants to open an account.",
			Parameters: object([]string{"name"}, map[string]*genai.Schema{
				"name": str("Name of the account (e.g. Chase Checking)"),
				"type": {
					Type:        genai.TypeString,
					Enum:        []string{"BANK", "CASH", "CREDIT", "INVESTMENT", "OTHER"},
					Description: "Type of account",
				},
				"balance": num("Starting balance in dollars"),
			}),
		},
		{
			Name:        dispatch.ActionEditAccount,
			Description: "Edit details of an existing account (name, balance, notes).",
			Parameters: object([]string{"currentName"}, map[string]*genai.Schema{
				"currentName": str("The current name of the account to find (fuzzy match)"),
				"newName":     str("New name for the account (optional)"),
				"newBalance":  num("New balance in dollars (optional)"),
				"newNotes":    str("New notes (optional)"),
			}),
		},
		{
			Name:        dispatch.ActionDeleteAccount,
			Description: "Delete an account.",
			Parameters: object([]string{"name"}, map[string]*genai.Schema{
				"name": str("Name of the account to delete"),
			}),
		},
		{
			Name:        dispatch.ActionAddTransaction,
			Description: "Create a new expense or income transaction. Updates account balance automatically.",
			Parameters: object([]string{"type", "amount"}, map[string]*genai.Schema{
				"type": {
					Type:        genai.TypeString,
					Enum:        []string{"EXPENSE", "INCOME"},
					Description: "Type of transaction",
				},
				"amount":      num("Amount in dollars (e.g. 50.25)"),
				"category":    str("Category name or income source"),
				"notes":       str("Description"),
				"accountName": str("Name of the account to use (fuzzy match)"),
			}),
		},
		{
			Name:        dispatch.ActionEditTransaction,
			Description: "Edit an existing transaction (expense or income) found by fuzzy search on its description/notes.",
			Parameters: object([]string{"searchTerm"}, map[string]*genai.Schema{
				"searchTerm": str("Text to match in the transaction notes/description"),
				"newAmount":  num("New amount in dollars"),
				"newNotes":   str("New description"),
				"newDate":    str("New date (YYYY-MM-DD)"),
			}),
		},
		{
			Name:        dispatch.ActionDeleteTransaction,
			Description: "Delete a transaction (expense or income). This also reverts the balance change on the account.",
			Parameters: object([]string{"searchTerm"}, map[string]*genai.Schema{
				"searchTerm": str("Text to match in the transaction notes to identify which one to delete"),
			}),
		},
		{
			Name:        dispatch.ActionTransferFunds,
			Description: "Transfer money between two accounts.",
			Parameters: object([]string{"fromAccountName", "toAccountName", "amount"}, map[string]*genai.Schema{
				"fromAccountName": str("Source account"),
				"toAccountName":   str("Destination account"),
				"amount":          num("Amount in dollars"),
			}),
		},
		{
			Name:        dispatch.ActionPayDebt,
			Description: "Record a payment towards a debt. Deducts from the account and reduces the debt balance.",
			Parameters: object([]string{"debtName", "fromAccountName", "amount"}, map[string]*genai.Schema{
				"debtName":        str("Name of the debt (fuzzy match)"),
				"fromAccountName": str("Account to pay from"),
				"amount":          num("Payment amount in dollars"),
			}),
		},
		{
			Name:        dispatch.ActionContributeToSavings,
			Description: "Add money to a savings goal.",
			Parameters: object([]string{"goalName", "fromAccountName", "amount"}, map[string]*genai.Schema{
				"goalName":        str("Name of the goal"),
				"fromAccountName": str("Source account"),
				"amount":          num("Amount to contribute"),
			}),
		},
		{
			Name:        dispatch.ActionAddSavingsGoal,
			Description: "Create a new savings goal.",
			Parameters: object([]string{"name", "targetAmount"}, map[string]*genai.Schema{
				"name":         str("Goal name"),
				"targetAmount": num("Target amount in dollars"),
				"targetDate":   str("Target date (YYYY-MM-DD)"),
			}),
		},
		{
			Name:        dispatch.ActionUpdateSavingsGoal,
			Description: "Update details of a savings goal.",
			Parameters: object([]string{"currentName"}, map[string]*genai.Schema{
				"currentName": str("Current name of the goal to find"),
				"newName":     str("New goal name"),
				"newTarget":   num("New target amount in dollars"),
			}),
		},
		{
			Name:        dispatch.ActionDeleteSavingsGoal,
			Description: "Delete a savings goal.",
			Parameters: object([]string{"name"}, map[string]*genai.Schema{
				"name": str("Goal name"),
			}),
		},
		{
			Name:        dispatch.ActionAddDebt,
			Description: "Add a new debt liability.",
			Parameters: object([]string{"name", "totalAmount"}, map[string]*genai.Schema{
				"name":        str("Debt name"),
				"totalAmount": num("Total amount in dollars"),
				"dueDate":     str("Due date (YYYY-MM-DD)"),
			}),
		},
		{
			Name:        dispatch.ActionUpdateDebt,
			Description: "Update details of a debt.",
			Parameters: object([]string{"debtName"}, map[string]*genai.Schema{
				"debtName": str("Current name of the debt"),
				"newName":  str("New debt name"),
				"newTotal": num("New total amount in dollars"),
			}),
		},
		{
			Name:        dispatch.ActionDeleteDebt,
			Description: "Delete a debt record.",
			Parameters: object([]string{"name"}, map[string]*genai.Schema{
				"name": str("Debt name"),
			}),
		},
		{
			Name:        dispatch.ActionUpdateProfile,
			Description: "Update the user's name, financial goal, or risk tolerance.",
			Parameters: object(nil, map[string]*genai.Schema{
				"name":          str("User's name"),
				"financialGoal": str("Primary financial goal"),
				"riskTolerance": {
					Type:        genai.TypeString,
					Enum:        []string{"low", "medium", "high"},
					Description: "Risk tolerance",
				},
			}),
		},
	}
}
