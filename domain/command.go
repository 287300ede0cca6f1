package domain

// Command is an inbound intent resolved to a chat by the transport layer.
type Command interface {
	ChatID() ChatID
}

type StartGameCommand struct {
	Chat int64
}

func (c StartGameCommand) ChatID() ChatID { return ChatID(c.Chat) }

type JoinGameCommand struct {
	Chat        int64  `validate:"required"`
	User        int64  `validate:"required"`
	DisplayName string `validate:"required,max=64"`
}

func (c JoinGameCommand) ChatID() ChatID { return ChatID(c.Chat) }

type FinishJoiningCommand struct {
	Chat int64
}

func (c FinishJoiningCommand) ChatID() ChatID { return ChatID(c.Chat) }

type EndGameCommand struct {
	Chat int64
}

func (c EndGameCommand) ChatID() ChatID { return ChatID(c.Chat) }
