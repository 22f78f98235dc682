package domain

// EntryType indicates whether a category or transaction records income or expense.
type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

// Valid reports whether t is one of the two supported entry types.
func (t EntryType) Valid() bool {
	return t == EntryIncome || t == EntryExpense
}
