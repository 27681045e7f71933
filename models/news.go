package models

// News is the public game-news page.
type News struct {
	Title        string      `json:"_title"`
	BattleRoyale NewsSection `json:"battleroyalenews"`
	SaveTheWorld NewsSection `json:"savetheworldnews"`
}

// NewsSection holds the messages of one game mode.
type NewsSection struct {
	Title string `json:"_title"`
	News  struct {
		Messages []Message `json:"messages" validate:"dive"`
	} `json:"news"`
}

// Messages returns the messages of the section.
func (s NewsSection) Messages() []Message {
	return s.News.Messages
}

// MessageType classifies a news message.
type MessageType string

const MessageTypeSimple MessageType = "CommonUI Simple Message Base"

// Message is one news entry.
type Message struct {
	Image       string      `json:"image,omitempty"`
	Hidden      bool        `json:"hidden,omitempty"`
	Title       string      `json:"title" validate:"required"`
	Body        string      `json:"body"`
	MessageType MessageType `json:"messagetype,omitempty"`
}
