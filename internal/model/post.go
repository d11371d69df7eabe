package model

import "time"

// Post is immutable once created; no edit or delete path exists.
type Post struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	AuthorID  string    `gorm:"type:varchar(36);not null;index:idx_post_author_created"`
	Text      string    `gorm:"type:varchar(280);not null"`
	CreatedAt time.Time `gorm:"index:idx_post_author_created"`
}

func (Post) TableName() string { return "posts" }
