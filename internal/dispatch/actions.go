package dispatch

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Supported action names. The strings are the wire contract shared with the
// assistant's tool declarations; renaming one breaks deployed prompts.
const (
	ActionGetAccounts           = "getAccounts"
	ActionGetRecentTransactions = "getRecentTransactions"
	ActionGetDebts              = "getDebts"
	ActionGetSavingsGoals       = "getSavingsGoals"
	ActionGetFinancialSummary   = "getFinancialSummary"
	ActionAddAccount            = "addAccount"
	ActionEditAccount           = "editAccount"
	ActionDeleteAccount         = "deleteAccount"
	ActionAddTransaction        = "addTransaction"
	ActionEditTransaction       = "editTransaction"
	ActionDeleteTransaction     = "deleteTransaction"
	ActionTransferFunds         = "transferFunds"
	ActionAddDebt               = "addDebt"
	ActionUpdateDebt            = "updateDebt"
	ActionDeleteDebt            = "deleteDebt"
	ActionAddSavingsGoal        = "addSavingsGoal"
	ActionUpdateSavingsGoal     = "updateSavingsGoal"
	ActionDeleteSavingsGoal     = "deleteSavingsGoal"
	ActionPayDebt               = "payDebt"
	ActionContributeToSavings   = "contributeToSavings"
	ActionUpdateProfile         = "updateProfile"
	ActionRememberFact          = "rememberFact"
)

// schemas holds one JSON Schema per parameterized action. Validation runs
// before any resolution so a malformed call never reaches the ledger.
// Actions without an entry (the reads, updateProfile) accept any object.
var schemas = map[string]*gojsonschema.Schema{
	ActionAddAccount: mustSchema(`{
		"type": "object",
		"required": ["name"],
		"properties": {
			"name":    {"type": "string", "minLength": 1},
			"type":    {"type": "string"},
			"balance": {"type": "number"},
			"notes":   {"type": "string"}
		}
	}`),
	ActionEditAccount: mustSchema(`{
		"type": "object",
		"required": ["currentName"],
		"properties": {
			"currentName": {"type": "string", "minLength": 1},
			"newName":     {"type": "string"},
			"newNotes":    {"type": "string"},
			"newBalance":  {"type": "number"}
		}
	}`),
	ActionDeleteAccount: mustSchema(`{
		"type": "object",
		"required": ["name"],
		"properties": {"name": {"type": "string", "minLength": 1}}
	}`),
	ActionAddTransaction: mustSchema(`{
		"type": "object",
		"required": ["type", "amount"],
		"properties": {
			"type":        {"type": "string", "enum": ["EXPENSE", "INCOME"]},
			"amount":      {"type": "number"},
			"accountName": {"type": "string"},
			"category":    {"type": "string"},
			"notes":       {"type": "string"}
		}
	}`),
	ActionEditTransaction: mustSchema(`{
		"type": "object",
		"required": ["searchTerm"],
		"properties": {
			"searchTerm": {"type": "string", "minLength": 1},
			"newAmount":  {"type": "number"},
			"newNotes":   {"type": "string"},
			"newDate":    {"type": "string"}
		}
	}`),
	ActionDeleteTransaction: mustSchema(`{
		"type": "object",
		"required": ["searchTerm"],
		"properties": {"searchTerm": {"type": "string", "minLength": 1}}
	}`),
	ActionTransferFunds: mustSchema(`{
		"type": "object",
		"required": ["fromAccountName", "toAccountName", "amount"],
		"properties": {
			"fromAccountName": {"type": "string", "minLength": 1},
			"toAccountName":   {"type": "string", "minLength": 1},
			"amount":          {"type": "number"}
		}
	}`),
	ActionAddDebt: mustSchema(`{
		"type": "object",
		"required": ["name", "totalAmount"],
		"properties": {
			"name":        {"type": "string", "minLength": 1},
			"totalAmount": {"type": "number"},
			"dueDate":     {"type": "string"}
		}
	}`),
	ActionUpdateDebt: mustSchema(`{
		"type": "object",
		"required": ["debtName"],
		"properties": {
			"debtName": {"type": "string", "minLength": 1},
			"newName":  {"type": "string"},
			"newTotal": {"type": "number"}
		}
	}`),
	ActionDeleteDebt: mustSchema(`{
		"type": "object",
		"required": ["name"],
		"properties": {"name": {"type": "string", "minLength": 1}}
	}`),
	ActionAddSavingsGoal: mustSchema(`{
		"type": "object",
		"required": ["name", "targetAmount"],
		"properties": {
			"name":         {"type": "string", "minLength": 1},
			"targetAmount": {"type": "number"},
			"targetDate":   {"type": "string"}
		}
	}`),
	ActionUpdateSavingsGoal: mustSchema(`{
		"type": "object",
		"required": ["currentName"],
		"properties": {
			"currentName": {"type": "string", "minLength": 1},
			"newName":     {"type": "string"},
			"newTarget":   {"type": "number"}
		}
	}`),
	ActionDeleteSavingsGoal: mustSchema(`{
		"type": "object",
		"required": ["name"],
		"properties": {"name": {"type": "string", "minLength": 1}}
	}`),
	ActionPayDebt: mustSchema(`{
		"type": "object",
		"required": ["debtName", "fromAccountName", "amount"],
		"properties": {
			"debtName":        {"type": "string", "minLength": 1},
			"fromAccountName": {"type": "string", "minLength": 1},
			"amount":          {"type": "number"}
		}
	}`),
	ActionContributeToSavings: mustSchema(`{
		"type": "object",
		"required": ["goalName", "fromAccountName", "amount"],
		"properties": {
			"goalName":        {"type": "string", "minLength": 1},
			"fromAccountName": {"type": "string", "minLength": 1},
			"amount":          {"type": "number"}
		}
	}`),
	ActionRememberFact: mustSchema(`{
		"type": "object",
		"required": ["fact"],
		"properties": {"fact": {"type": "string", "minLength": 1}}
	}`),
}

func mustSchema(doc string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("invalid action schema: %v", err))
	}
	return schema
}

// validateParams checks params against the action's schema. The second
// return is false when validation failed and the Result should be returned
// to the caller as-is.
func validateParams(action string, params map[string]any) (Result, bool) {
	schema, ok := schemas[action]
	if !ok {
		return Result{}, true
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(params))
	if err != nil {
		return failure("Invalid parameters."), false
	}
	if !result.Valid() {
		return failure(fmt.Sprintf("Invalid parameters: %s.", result.Errors()[0])), false
	}
	return Result{}, true
}
