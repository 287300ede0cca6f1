package domain

// TargetKind tells the transport where a delivery goes.
type TargetKind int

const (
	// TargetChat broadcasts to the whole group chat.
	TargetChat TargetKind = iota
	// TargetUser sends through the player's private channel.
	TargetUser
)

// Delivery is a (destination, text) pair the core emits for the transport
// to send. The core never calls a send primitive itself.
type Delivery struct {
	Kind TargetKind
	Chat ChatID // set when Kind is TargetChat
	User UserID // set when Kind is TargetUser
	Text string
}

func BroadcastTo(chat ChatID, text string) Delivery {
	return Delivery{Kind: TargetChat, Chat: chat, Text: text}
}

func PrivateTo(user UserID, text string) Delivery {
	return Delivery{Kind: TargetUser, User: user, Text: text}
}
