package models

// Chat is a conversation summary in the messages sidebar.
type Chat struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	LastMessage string `json:"lastMessage"`
	Timestamp   string `json:"timestamp"`
	Unread      int    `json:"unread"`
	Type        string `json:"type"`
	Online      bool   `json:"online"`
}

// Message is one entry of a conversation thread.
type Message struct {
	ID         int    `json:"id"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
	IsOwn      bool   `json:"isOwn"`
}
