// Seed fills the configured database with demo users, follow edges, posts
// and a few conversations so the UI has something to show in development.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/lazybook/internal/config"
	"github.com/d60-Lab/lazybook/internal/database"
	"github.com/d60-Lab/lazybook/internal/model"
)

const (
	userCount    = 50
	postsPerUser = 20
	demoPassword = "password123456"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	db := must(database.Open(cfg.Database))
	mustDo(database.Migrate(db))

	hash := must(bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost))

	fmt.Println("Seeding users...")
	users := make([]model.User, userCount)
	for i := range users {
		users[i] = model.User{
			ID:           uuid.NewString(),
			Username:     fmt.Sprintf("user_%02d", i),
			PasswordHash: string(hash),
			Status:       fmt.Sprintf("hello, I am user %d", i),
			AuthProvider: model.ProviderLocal,
		}
	}
	mustDo(db.CreateInBatches(&users, 100).Error)

	fmt.Println("Seeding follow edges...")
	var edges []model.Follow
	for i := range users {
		for j := range users {
			if i == j || rand.Intn(5) != 0 {
				continue
			}
			edges = append(edges, model.Follow{
				ID:         uuid.NewString(),
				FollowerID: users[i].ID,
				FolloweeID: users[j].ID,
			})
		}
	}
	mustDo(db.CreateInBatches(&edges, 500).Error)

	fmt.Println("Seeding posts...")
	base := time.Now().Add(-30 * 24 * time.Hour)
	var posts []model.Post
	for i := range users {
		for p := 0; p < postsPerUser; p++ {
			posts = append(posts, model.Post{
				ID:        uuid.NewString(),
				AuthorID:  users[i].ID,
				Text:      fmt.Sprintf("post %d from user_%02d", p, i),
				CreatedAt: base.Add(time.Duration(rand.Intn(30*24)) * time.Hour),
			})
		}
	}
	mustDo(db.CreateInBatches(&posts, 500).Error)

	fmt.Println("Seeding conversations...")
	var messages []model.Message
	for i := 0; i+1 < 10; i += 2 {
		for m := 0; m < 8; m++ {
			sender, recipient := users[i], users[i+1]
			if m%2 == 1 {
				sender, recipient = recipient, sender
			}
			messages = append(messages, model.Message{
				ID:          uuid.NewString(),
				SenderID:    sender.ID,
				RecipientID: recipient.ID,
				Text:        fmt.Sprintf("message %d", m),
				CreatedAt:   base.Add(time.Duration(m) * time.Minute),
			})
		}
	}
	mustDo(db.CreateInBatches(&messages, 500).Error)

	fmt.Printf("Seeded %d users, %d edges, %d posts, %d messages (password %q)\n",
		len(users), len(edges), len(posts), len(messages), demoPassword)
}

func must[T any](v T, err error) T {
	mustDo(err)
	return v
}

func mustDo(err error) {
	if err != nil {
		panic(err)
	}
}
