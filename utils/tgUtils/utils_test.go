package tgUtils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/PaulSonOfLars/gotgbot/v2"
)

func TestIsUnreachable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"blocked", &gotgbot.TelegramError{Code: 403, Description: ErrBlockedByUser}, true},
		{"wrapped", fmt.Errorf("send: %w", &gotgbot.TelegramError{Code: 403, Description: ErrUserIsDeactivated}), true},
		{"other telegram error", &gotgbot.TelegramError{Code: 429, Description: "Too Many Requests: retry after 5"}, false},
		{"plain error", errors.New(ErrBlockedByUser), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUnreachable(tt.err); got != tt.want {
				t.Errorf("IsUnreachable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsNotModified(t *testing.T) {
	err := &gotgbot.TelegramError{Code: 400, Description: "Bad Request: message is not modified: specified new message content and reply markup are exactly the same as a current content and reply markup of the message"}
	if !IsNotModified(err) {
		t.Error("expected not modified error to be detected")
	}
	if IsNotModified(nil) {
		t.Error("nil is not a not modified error")
	}
}
