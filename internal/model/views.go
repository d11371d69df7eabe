package model

import "time"

// Read-side projections. Handlers and the realtime channel only ever see
// these, never the entities above.

// ProfileSummary is the minimal user row for lists and search results.
type ProfileSummary struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	PictureURL string `json:"picture_url"`
}

// Relationship flags are relative to the viewer and always computed fresh.
type Relationship struct {
	IsSelf    bool `json:"is_self"`
	IFollow   bool `json:"i_follow"`
	FollowsMe bool `json:"follows_me"`
}

type ProfileDetails struct {
	ID             string       `json:"id"`
	Username       string       `json:"username"`
	Status         string       `json:"status"`
	PictureURL     string       `json:"picture_url"`
	FollowerCount  int64        `json:"follower_count"`
	FollowingCount int64        `json:"following_count"`
	Relationship   Relationship `json:"relationship"`
}

type AccountDetails struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Status         string `json:"status"`
	PictureURL     string `json:"picture_url"`
	FollowerCount  int64  `json:"follower_count"`
	FollowingCount int64  `json:"following_count"`
}

// PostSummary carries author username and picture alongside the post so feed
// pages render without a second lookup.
type PostSummary struct {
	ID               string    `json:"id"`
	AuthorID         string    `json:"author_id"`
	AuthorUsername   string    `json:"author_username"`
	AuthorPictureURL string    `json:"author_picture_url"`
	Text             string    `json:"text"`
	CreatedAt        time.Time `json:"created_at"`
}

type MessageView struct {
	ID                  string    `json:"id"`
	SenderUsername      string    `json:"sender_username"`
	SenderPictureURL    string    `json:"sender_picture_url"`
	RecipientUsername   string    `json:"recipient_username"`
	RecipientPictureURL string    `json:"recipient_picture_url"`
	Text                string    `json:"text"`
	CreatedAt           time.Time `json:"created_at"`
}
