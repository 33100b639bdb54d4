package model

// User is a registration row. The username is the client-side
// concatenation of PC id, name and lab id; the password arrives already
// digested and is stored verbatim. Rows are write-only: no endpoint ever
// reads them back.
type User struct {
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
}

type CreateUserParams struct {
	Username string
	Password string
}
