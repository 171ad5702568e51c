package bot

import "github.com/Brawl345/channelgate/logger"

var log = logger.New("bot")
