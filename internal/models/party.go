package models

// Party is a row of the parties table.
type Party struct {
	PartyID     string `db:"party_id"`
	Name        string `db:"name"`
	Phone       string `db:"phone"`
	Address     string `db:"address"`
	Description string `db:"description"`
	AuditFields
}
