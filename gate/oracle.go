package gate

import (
	"sync"
	"time"
)

const UnknownChannelTitle = "Unknown Channel"

type cachedTitle struct {
	title   string
	expires time.Time
}

// Oracle asks Telegram whether a user is in a channel.
type Oracle struct {
	platform Platform
	titleTTL time.Duration
	now      func() time.Time

	mu     sync.Mutex
	titles map[int64]cachedTitle
}

// NewOracle creates an oracle. Resolved channel titles are kept for titleTTL,
// zero disables caching.
func NewOracle(platform Platform, titleTTL time.Duration) *Oracle {
	return &Oracle{
		platform: platform,
		titleTTL: titleTTL,
		now:      time.Now,
		titles:   make(map[int64]cachedTitle),
	}
}

// Query returns the membership status of userID in ch. Lookup errors yield
// StatusUnknown, which callers must treat as "not joined".
func (o *Oracle) Query(ch Channel, userID int64) MembershipStatus {
	status, err := o.platform.ChatMemberStatus(ch.ID, userID)
	if err != nil {
		log.Debug().
			Err(err).
			Int64("channel_id", ch.ID).
			Int64("user_id", userID).
			Msg("Membership lookup failed, treating user as not joined")
		return StatusUnknown
	}

	classified := ClassifyStatus(status)
	if classified == StatusUnknown {
		log.Warn().
			Str("status", status).
			Int64("channel_id", ch.ID).
			Int64("user_id", userID).
			Msg("Unknown chat member status")
	}
	return classified
}

// DisplayName returns the label for ch, fetching the real title if the
// channel is configured with RealTitle.
func (o *Oracle) DisplayName(ch Channel) string {
	if ch.Name != RealTitle {
		return ch.Name
	}

	if title, ok := o.cachedTitle(ch.ID); ok {
		return title
	}

	title, err := o.platform.ChatTitle(ch.ID)
	if err != nil || title == "" {
		log.Debug().
			Err(err).
			Int64("channel_id", ch.ID).
			Msg("Could not resolve channel title")
		return UnknownChannelTitle
	}

	o.storeTitle(ch.ID, title)
	return title
}

func (o *Oracle) cachedTitle(chatID int64) (string, bool) {
	if o.titleTTL <= 0 {
		return "", false
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	cached, ok := o.titles[chatID]
	if !ok {
		return "", false
	}
	if !o.now().Before(cached.expires) {
		delete(o.titles, chatID)
		return "", false
	}
	return cached.title, true
}

func (o *Oracle) storeTitle(chatID int64, title string) {
	if o.titleTTL <= 0 {
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.titles[chatID] = cachedTitle{
		title:   title,
		expires: o.now().Add(o.titleTTL),
	}
}
