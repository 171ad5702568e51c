package model

import (
	"github.com/PaulSonOfLars/gotgbot/v2"
)

type UserService interface {
	// Create inserts the user or refreshes the stored name and username.
	Create(user *gotgbot.User) error
}
