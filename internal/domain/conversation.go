package domain

// ConversationRow is one validated row of the conversation sheet.
type ConversationRow struct {
	SequenceNo  int
	Tag         RowTag
	BurmeseText string
	EnglishText string
}

// Topic is a titled conversation in source order.
type Topic struct {
	ID          int
	Title       string
	Description string
	Messages    []Message
}

// Message is a single utterance. ID is the sheet sequence number.
type Message struct {
	ID             int
	Role           Role
	BurmeseText    string
	EnglishText    string
	DevanagariText string
}

// IndexedMessage is a message as seen from the global index, with its
// neighbours in the owning topic.
type IndexedMessage struct {
	Message
	TopicID    int
	TopicTitle string
	Previous   *Message
	Next       *Message
}
