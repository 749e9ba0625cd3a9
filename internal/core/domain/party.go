package domain

// Party represents a named account (supplier, customer or cash account) that
// transactions are recorded against. Its payable/receivable status is never
// stored; it is derived from the signed sum of its transactions.
type Party struct {
	PartyID     string `json:"partyID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description"`
	AuditFields
}
