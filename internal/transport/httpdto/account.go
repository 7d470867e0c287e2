package httpdto

import "social-media/internal/domain/account"

// AccountRequest is the body of POST /register and POST /login.
type AccountRequest struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r AccountRequest) ToAccount() account.Account {
	return account.Account{ID: r.ID, Username: r.Username, Password: r.Password}
}
