package transaction

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	Amount          string `json:"amount" doc:"Decimal amount in DOP"`
	Type            string `json:"type" doc:"income or expense"`
	Category        string `json:"category" doc:"Spending category"`
	Description     string `json:"description" doc:"Short transaction description"`
	BankName        string `json:"bankName" doc:"Display name of the bank, empty when unidentified"`
	TransactionDate string `json:"transactionDate" doc:"RFC3339 transaction date"`
}
