// Package seed holds the demo activity dataset loaded once at startup.
package seed

import (
	"time"

	"example.com/leggo/internal/domain"
)

// Activities returns the fixed demo catalog, with schedules offset from now.
func Activities(now time.Time) []domain.Activity {
	day := 24 * time.Hour
	return []domain.Activity{
		{
			ID:          "1",
			Title:       "Morning Yoga in the Park",
			Description: "Join us for a refreshing morning yoga session. All levels welcome!",
			ImageURL:    "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b",
			Category:    domain.CategoryOutdoor,
			Location:    "Central Park - Great Lawn",
			DateTime:    now.Add(2 * day),
			CreatorID:   "user123",
		},
		{
			ID:          "2",
			Title:       "Italian Cooking Class",
			Description: "Learn to make authentic pasta from scratch with Chef Luigi.",
			ImageURL:    "https://images.unsplash.com/photo-1556909172-6ab63f18fd12",
			Category:    domain.CategoryFood,
			Location:    "Downtown Culinary School",
			DateTime:    now.Add(5 * day),
			CreatorID:   "user456",
		},
		{
			ID:          "3",
			Title:       "Indie Band Showcase",
			Description: "Discover new music from local indie bands. Great vibes guaranteed!",
			ImageURL:    "https://images.unsplash.com/photo-1514525253161-7a46d19cd819",
			Category:    domain.CategoryArts,
			Location:    "The Underground Venue",
			DateTime:    now.Add(7 * day),
			CreatorID:   "user789",
		},
		{
			ID:          "4",
			Title:       "Tech Meetup: AI Trends",
			Description: "Discussion on the latest trends in Artificial Intelligence and Machine Learning.",
			ImageURL:    "https://images.unsplash.com/photo-1518770660439-4636190af475",
			Category:    domain.CategoryLearning,
			Location:    "Innovation Hub Co-working",
			DateTime:    now.Add(10 * day),
			CreatorID:   "user101",
		},
		{
			ID:          "5",
			Title:       "Weekend Basketball Game",
			Description: "Friendly 5v5 basketball game. Bring your sneakers and A-game!",
			ImageURL:    "https://images.unsplash.com/photo-1515523110800-9415d13b84a8",
			Category:    domain.CategorySports,
			Location:    "Community Sports Center",
			DateTime:    now.Add(3 * day),
			CreatorID:   "user202",
		},
		{
			ID:          "6",
			Title:       "Board Game Night",
			Description: "Join us for a fun night of board games, snacks, and good company.",
			ImageURL:    "https://images.unsplash.com/photo-1585255453482-f43191188770",
			Category:    domain.CategorySocial,
			Location:    "The Corner Cafe",
			DateTime:    now.Add(4 * day),
			CreatorID:   "user303",
		},
	}
}
