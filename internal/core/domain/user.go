package domain

// Role is the coarse permission group of a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Right is a named permission checked by route middleware.
type Right string

const (
	RightGetTransactions    Right = "getTransactions"
	RightManageTransactions Right = "manageTransactions"
	RightGetParties         Right = "getParties"
	RightManageParties      Right = "manageParties"
	RightGetRoznamchas      Right = "getRoznamchas"
	RightManageRoznamchas   Right = "manageRoznamchas"
	RightGetLedger          Right = "getLedger"
	RightManageUsers        Right = "manageUsers"
	RightDownloadBackup     Right = "downloadBackup"
)

var roleRights = map[Role][]Right{
	RoleUser: {RightGetTransactions, RightGetParties, RightGetRoznamchas, RightGetLedger},
	RoleAdmin: {
		RightGetTransactions, RightManageTransactions,
		RightGetParties, RightManageParties,
		RightGetRoznamchas, RightManageRoznamchas,
		RightGetLedger, RightManageUsers,
		RightDownloadBackup,
	},
}

// HasRight reports whether role r grants right.
func (r Role) HasRight(right Right) bool {
	for _, granted := range roleRights[r] {
		if granted == right {
			return true
		}
	}
	return false
}

// User represents a user of the application.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
	AuditFields
}
