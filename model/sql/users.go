package sql

import (
	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/jmoiron/sqlx"
)

type userService struct {
	*sqlx.DB
}

func NewUserService(db *sqlx.DB) *userService {
	return &userService{
		DB: db,
	}
}

func (db *userService) Create(user *gotgbot.User) error {
	const query = `INSERT INTO 
    users (id, first_name, last_name, username)
    VALUES (?, ?, ?, ?)
    ON DUPLICATE KEY UPDATE first_name = ?, last_name = ?, username = ?`
	_, err := db.Exec(
		query,
		user.Id,
		user.FirstName,
		NewNullString(user.LastName),
		NewNullString(user.Username),
		user.FirstName,
		NewNullString(user.LastName),
		NewNullString(user.Username),
	)
	return err
}
