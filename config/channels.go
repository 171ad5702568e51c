package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Brawl345/channelgate/gate"
	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

type (
	channelsFile struct {
		Channels []ChannelConfig `toml:"channels" validate:"required,min=1,dive"`
	}

	// ChannelConfig is one [[channels]] table of the channels file.
	ChannelConfig struct {
		Name       string `toml:"name" validate:"required"`
		ID         int64  `toml:"id" validate:"required,lt=0"`
		Username   string `toml:"username" validate:"required_without=InviteLink"`
		InviteLink string `toml:"invite_link" validate:"omitempty,url"`
	}
)

// LoadChannels reads the channel registry from a TOML file.
func LoadChannels(path string) ([]gate.Channel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read channels file %s: %w", path, err)
	}

	channels, err := ParseChannels(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse channels file %s: %w", path, err)
	}
	return channels, nil
}

func ParseChannels(data string) ([]gate.Channel, error) {
	var file channelsFile
	md, err := toml.Decode(data, &file)
	if err != nil {
		return nil, err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	if err := validator.New().Struct(file); err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(file.Channels))
	channels := make([]gate.Channel, 0, len(file.Channels))
	for _, c := range file.Channels {
		if seen[c.ID] {
			return nil, fmt.Errorf("channel %d is configured twice", c.ID)
		}
		seen[c.ID] = true

		channels = append(channels, gate.Channel{
			Name:       strings.TrimSpace(c.Name),
			ID:         c.ID,
			Username:   strings.TrimPrefix(strings.TrimSpace(c.Username), "@"),
			InviteLink: strings.TrimSpace(c.InviteLink),
		})
	}

	return channels, nil
}
