package gate

import (
	"strings"
)

// RealTitle as a channel name means the title is fetched from Telegram.
const RealTitle = "{real}"

type Channel struct {
	Name       string
	ID         int64
	Username   string
	InviteLink string
}

// JoinURL is the link shown on the join button. An explicit invite link wins
// over the public username, so private channels work too.
func (ch Channel) JoinURL() string {
	if ch.InviteLink != "" {
		return ch.InviteLink
	}
	return "https://t.me/" + strings.TrimPrefix(ch.Username, "@")
}

// Registry is the ordered, fixed list of channels a user has to join.
type Registry struct {
	channels []Channel
}

func NewRegistry(channels []Channel) *Registry {
	return &Registry{
		channels: append([]Channel(nil), channels...),
	}
}

// Channels returns a copy, callers may not change the registry.
func (r *Registry) Channels() []Channel {
	return append([]Channel(nil), r.channels...)
}

func (r *Registry) Len() int {
	return len(r.channels)
}
