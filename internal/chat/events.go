package chat

import (
	"encoding/json"

	"github.com/d60-Lab/lazybook/internal/model"
)

// Wire events. The inbound frame is a SendMessage request; outbound frames
// are either a ReceiveMessage carrying the persisted message or an Error
// addressed to the offending connection only.
const (
	EventReceiveMessage = "ReceiveMessage"
	EventError          = "Error"
)

type SendMessageRequest struct {
	RecipientUsername string `json:"recipient_username"`
	Text              string `json:"text"`
}

type Event struct {
	Type    string             `json:"type"`
	Message *model.MessageView `json:"message,omitempty"`
	Error   string             `json:"error,omitempty"`
}

func MessageEvent(view *model.MessageView) []byte {
	payload, _ := json.Marshal(Event{Type: EventReceiveMessage, Message: view})
	return payload
}

func ErrorEvent(msg string) []byte {
	payload, _ := json.Marshal(Event{Type: EventError, Error: msg})
	return payload
}
