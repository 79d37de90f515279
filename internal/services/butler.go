package services

import (
	"github.com/senxilab/senxi-backend/internal/butler"
	"github.com/senxilab/senxi-backend/internal/logger"
)

// ButlerService wraps the support chatbot.
type ButlerService interface {
	Chat(message string) butler.Reply
	QuickReplies(category string) []string
	TransferToHuman() butler.Reply
}

type butlerService struct {
	bot *butler.Butler
	log *logger.Logger
}

func NewButlerService(bot *butler.Butler, baseLog *logger.Logger) ButlerService {
	return &butlerService{
		bot: bot,
		log: baseLog.With("service", "ButlerService"),
	}
}

func (bs *butlerService) Chat(message string) butler.Reply {
	reply := bs.bot.Chat(message)
	bs.log.Debug("Butler reply", "intent", reply.Intent)
	return reply
}

func (bs *butlerService) QuickReplies(category string) []string {
	return bs.bot.QuickReplies(category)
}

func (bs *butlerService) TransferToHuman() butler.Reply {
	return bs.bot.TransferToHuman()
}
