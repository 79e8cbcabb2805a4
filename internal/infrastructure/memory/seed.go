package memory

import (
	"time"

	"linkedpro/internal/domain/entities"
)

func mustParse(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedUsers returns the fixed demo identities loaded at startup.
func SeedUsers() []*entities.User {
	return []*entities.User{
		{
			ID:        1,
			Name:      "John Doe",
			Email:     "john@example.com",
			Password:  "password123",
			Bio:       "Software Developer passionate about creating innovative solutions. Currently working on full-stack applications and exploring new technologies.",
			CreatedAt: mustParse("2024-01-15T10:30:00Z"),
		},
		{
			ID:        2,
			Name:      "Sarah Wilson",
			Email:     "sarah@example.com",
			Password:  "password123",
			Bio:       "Product Manager with 5+ years experience in tech startups. Love building products that make a difference in people's lives.",
			CreatedAt: mustParse("2024-01-20T14:20:00Z"),
		},
		{
			ID:        3,
			Name:      "Mike Chen",
			Email:     "mike@example.com",
			Password:  "password123",
			Bio:       "UX Designer focused on creating intuitive and accessible user experiences. Always learning and sharing design insights.",
			CreatedAt: mustParse("2024-01-25T09:15:00Z"),
		},
	}
}

// SeedPosts returns the fixed demo posts. Like counts come from the demo
// dataset with no recorded liker identities, so LikedBy starts empty.
func SeedPosts() []*entities.Post {
	return []*entities.Post{
		{
			ID:        1,
			UserID:    1,
			Content:   "Just finished building a new React component library! Excited to share it with the community. The modular approach really helps with maintainability and reusability across projects.",
			Timestamp: mustParse("2024-02-01T16:45:00Z"),
			Likes:     12,
			LikedBy:   []int{},
		},
		{
			ID:        2,
			UserID:    2,
			Content:   "Had an amazing product strategy meeting today. It's incredible how user feedback can completely reshape your roadmap. Always listen to your users - they're the ones who matter most!",
			Timestamp: mustParse("2024-02-01T14:30:00Z"),
			Likes:     8,
			LikedBy:   []int{},
		},
		{
			ID:        3,
			UserID:    3,
			Content:   "Working on a new accessibility audit for our platform. It's surprising how many small changes can make a huge difference in user experience for people with disabilities. Design should be inclusive!",
			Timestamp: mustParse("2024-02-01T11:20:00Z"),
			Likes:     15,
			LikedBy:   []int{},
		},
		{
			ID:        4,
			UserID:    1,
			Content:   "Learning about microservices architecture and how it can improve scalability. The journey from monolith to microservices is challenging but worth it for long-term maintainability.",
			Timestamp: mustParse("2024-01-31T20:10:00Z"),
			Likes:     6,
			LikedBy:   []int{},
		},
		{
			ID:        5,
			UserID:    2,
			Content:   "Celebrating a successful product launch! Six months of hard work, user research, and iteration. The team's dedication made all the difference. Proud of what we've accomplished together.",
			Timestamp: mustParse("2024-01-31T13:45:00Z"),
			Likes:     23,
			LikedBy:   []int{},
		},
	}
}
