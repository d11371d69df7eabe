package model

import "time"

// Message is a direct message between two users. The conversation between A
// and B is every row whose unordered {sender, recipient} pair equals {A, B}.
type Message struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	SenderID    string    `gorm:"type:varchar(36);not null;index:idx_message_sender"`
	RecipientID string    `gorm:"type:varchar(36);not null;index:idx_message_recipient"`
	Text        string    `gorm:"type:varchar(1000);not null"`
	CreatedAt   time.Time `gorm:"index:idx_message_created"`
}

func (Message) TableName() string { return "messages" }
