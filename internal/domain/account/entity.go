package account

// Account represents the accounts table
type Account struct {
	ID       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"type:text;uniqueIndex:idx_accounts_username;not null"`
	Password string `json:"password" gorm:"type:text;not null"`
}

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 4
