package gate

import (
	"errors"
	"sync"

	"github.com/PaulSonOfLars/gotgbot/v2"
)

var errLookup = errors.New("Bad Request: member list is inaccessible")

type memberKey struct {
	chatID int64
	userID int64
}

type fakePlatform struct {
	mu          sync.Mutex
	statuses    map[memberKey]string
	failing     map[int64]bool
	titles      map[int64]string
	titleCalls  int
	memberCalls int
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		statuses: make(map[memberKey]string),
		failing:  make(map[int64]bool),
		titles:   make(map[int64]string),
	}
}

func (p *fakePlatform) set(chatID, userID int64, status string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statuses[memberKey{chatID, userID}] = status
}

func (p *fakePlatform) fail(chatID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failing[chatID] = true
}

func (p *fakePlatform) ChatMemberStatus(chatID, userID int64) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.memberCalls++
	if p.failing[chatID] {
		return "", errLookup
	}
	status, ok := p.statuses[memberKey{chatID, userID}]
	if !ok {
		return "left", nil
	}
	return status, nil
}

func (p *fakePlatform) ChatTitle(chatID int64) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.titleCalls++
	title, ok := p.titles[chatID]
	if !ok {
		return "", errors.New("Bad Request: chat not found")
	}
	return title, nil
}

type sentMessage struct {
	chatID int64
	text   string
	markup *gotgbot.InlineKeyboardMarkup
}

type editedMessage struct {
	chatID    int64
	messageID int64
	text      string
	markup    *gotgbot.InlineKeyboardMarkup
}

type callbackAnswer struct {
	callbackID string
	text       string
	showAlert  bool
}

type fakeMessenger struct {
	mu      sync.Mutex
	sent    []sentMessage
	edited  []editedMessage
	answers []callbackAnswer
	sendErr error
	nextID  int64
}

func (m *fakeMessenger) SendMessage(chatID int64, text string, markup *gotgbot.InlineKeyboardMarkup) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return 0, m.sendErr
	}
	m.nextID++
	m.sent = append(m.sent, sentMessage{chatID: chatID, text: text, markup: markup})
	return m.nextID, nil
}

func (m *fakeMessenger) EditMessage(chatID, messageID int64, text string, markup *gotgbot.InlineKeyboardMarkup) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.edited = append(m.edited, editedMessage{chatID: chatID, messageID: messageID, text: text, markup: markup})
	return nil
}

func (m *fakeMessenger) AnswerCallback(callbackID, text string, showAlert bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answers = append(m.answers, callbackAnswer{callbackID: callbackID, text: text, showAlert: showAlert})
	return nil
}

const (
	channelOne int64 = -1001
	channelTwo int64 = -1002
	userID     int64 = 42
)

func testChannels() []Channel {
	return []Channel{
		{Name: "Channel 1", ID: channelOne, Username: "@c1"},
		{Name: RealTitle, ID: channelTwo, Username: "@c2"},
	}
}

func newTestGate(platform *fakePlatform, messenger *fakeMessenger) *Gate {
	return New(Options{
		Registry:  NewRegistry(testChannels()),
		Platform:  platform,
		Messenger: messenger,
	})
}

func buttonCount(markup *gotgbot.InlineKeyboardMarkup) int {
	if markup == nil {
		return 0
	}
	n := 0
	for _, row := range markup.InlineKeyboard {
		n += len(row)
	}
	return n
}
