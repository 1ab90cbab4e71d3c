package appctx

import (
	"github.com/CRRogo/friend-cast/bot/config"
	"github.com/CRRogo/friend-cast/bot/logger"
)

type Context struct {
	Config config.Config
	Log    logger.Logger
}
