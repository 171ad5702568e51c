package sql

import "github.com/Brawl345/channelgate/logger"

var log = logger.New("sql")
