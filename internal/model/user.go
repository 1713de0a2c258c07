package model

// User holds the local admin account. Password is a bcrypt hash, never the
// plain text. Date fields are UTC RFC 3339 strings.
type User struct {
	ID          int64  `db:"id" json:"id"`
	GUID        string `db:"guid" json:"guid"`
	Name        string `db:"name" json:"name"`
	Email       string `db:"email" json:"email"`
	Username    string `db:"username" json:"username"`
	Password    string `db:"password" json:"-"`
	IsActive    bool   `db:"is_active" json:"is_active"`
	CreatedDate string `db:"created_date" json:"created_date"`
	CreatedBy   int64  `db:"created_by" json:"created_by"`
	UpdatedDate string `db:"updated_date" json:"updated_date"`
	UpdatedBy   int64  `db:"updated_by" json:"updated_by"`
}

// RefreshToken is a locally stored session token gating the admin screens.
type RefreshToken struct {
	ID          int64  `db:"id" json:"id"`
	UserID      int64  `db:"user_id" json:"user_id"`
	Token       string `db:"token" json:"token"`
	ValidTill   string `db:"valid_till" json:"valid_till"`
	CreatedDate string `db:"created_date" json:"created_date"`
}
