package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Brawl345/channelgate/gate"
)

const exampleChannels = `
[[channels]]
name = "Channel 1"
id = -1001
username = "@c1"

[[channels]]
name = "{real}"
id = -1002
username = "c2"

[[channels]]
name = "Private"
id = -1003
invite_link = "https://t.me/+AbCdEf"
`

func TestParseChannels(t *testing.T) {
	channels, err := ParseChannels(exampleChannels)
	if err != nil {
		t.Fatalf("ParseChannels() error = %v", err)
	}

	want := []gate.Channel{
		{Name: "Channel 1", ID: -1001, Username: "c1"},
		{Name: gate.RealTitle, ID: -1002, Username: "c2"},
		{Name: "Private", ID: -1003, InviteLink: "https://t.me/+AbCdEf"},
	}
	if len(channels) != len(want) {
		t.Fatalf("got %d channels, want %d", len(channels), len(want))
	}
	for i := range want {
		if channels[i] != want[i] {
			t.Errorf("channel %d = %+v, want %+v", i, channels[i], want[i])
		}
	}
}

func TestParseChannelsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ``},
		{"missing name", "[[channels]]\nid = -1\nusername = \"c\""},
		{"missing id", "[[channels]]\nname = \"A\"\nusername = \"c\""},
		{"positive id", "[[channels]]\nname = \"A\"\nid = 5\nusername = \"c\""},
		{"no link target", "[[channels]]\nname = \"A\"\nid = -1"},
		{"bad invite link", "[[channels]]\nname = \"A\"\nid = -1\ninvite_link = \"not a url\""},
		{"unknown key", "[[channels]]\nname = \"A\"\nid = -1\nusername = \"c\"\nhandle = \"@c\""},
		{"duplicate", "[[channels]]\nname = \"A\"\nid = -1\nusername = \"a\"\n[[channels]]\nname = \"B\"\nid = -1\nusername = \"b\""},
		{"broken toml", "[[channels]\nname ="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseChannels(tt.data); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channels.toml")
	if err := os.WriteFile(path, []byte(exampleChannels), 0o600); err != nil {
		t.Fatal(err)
	}

	channels, err := LoadChannels(path)
	if err != nil {
		t.Fatalf("LoadChannels() error = %v", err)
	}
	if len(channels) != 3 {
		t.Errorf("got %d channels, want 3", len(channels))
	}

	if _, err := LoadChannels(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
