// Package seed holds the reference catalog the service starts with when no
// database is configured: six movies and eight genres.
package seed

import "github.com/iliyamo/icinema-catalog/internal/model"

var genres = []model.Genre{
	{ID: "1", Name: "Action", Description: "High-octane thrills and adventure"},
	{ID: "2", Name: "Comedy", Description: "Laugh-out-loud entertainment"},
	{ID: "3", Name: "Drama", Description: "Compelling stories and characters"},
	{ID: "4", Name: "Horror", Description: "Spine-chilling terror"},
	{ID: "5", Name: "Sci-Fi", Description: "Futuristic worlds and technology"},
	{ID: "6", Name: "Romance", Description: "Love stories that touch the heart"},
	{ID: "7", Name: "Thriller", Description: "Edge-of-your-seat suspense"},
	{ID: "8", Name: "Animation", Description: "Animated adventures for all ages"},
}

var movies = []model.Movie{
	{
		ID:          "1",
		Title:       "Quantum Nexus",
		Description: "A mind-bending sci-fi thriller about interdimensional travel and the consequences of playing with reality.",
		Genre:       []string{"Sci-Fi", "Thriller"},
		Rating:      8.4,
		Duration:    142,
		ReleaseDate: "2024-03-15",
		Poster:      "/posters/quantum-nexus.jpg",
		Director:    "Sarah Chen",
		Cast:        []string{"Alex Rivera", "Maya Patel", "James Morrison"},
		Language:    "English",
		IsActive:    true,
		ShowTimes:   []string{"14:00", "17:30", "20:45", "23:15"},
	},
	{
		ID:          "2",
		Title:       "The Last Symphony",
		Description: "A beautiful drama about a composer who must overcome personal tragedy to create his masterpiece.",
		Genre:       []string{"Drama", "Romance"},
		Rating:      9.1,
		Duration:    127,
		ReleaseDate: "2024-02-28",
		Poster:      "/posters/last-symphony.jpg",
		Director:    "Michael Anderson",
		Cast:        []string{"Emma Thompson", "Oscar Isaac", "Lupita Nyong'o"},
		Language:    "English",
		IsActive:    true,
		ShowTimes:   []string{"15:30", "18:00", "20:30"},
	},
	{
		ID:          "3",
		Title:       "Crimson Shadows",
		Description: "An action-packed thriller following a vigilante seeking justice in the neon-lit streets of Neo Tokyo.",
		Genre:       []string{"Action", "Thriller"},
		Rating:      7.8,
		Duration:    118,
		ReleaseDate: "2024-03-22",
		Poster:      "/posters/crimson-shadows.jpg",
		Director:    "Hiroshi Tanaka",
		Cast:        []string{"Keanu Reeves", "Scarlett Johansson", "Toshiro Mifune"},
		Language:    "English",
		IsActive:    true,
		ShowTimes:   []string{"16:00", "19:15", "22:00"},
	},
	{
		ID:          "4",
		Title:       "Lunar Expedition",
		Description: "A thrilling space adventure about humanity's first mission to establish a colony on the moon.",
		Genre:       []string{"Sci-Fi", "Adventure"},
		Rating:      8.7,
		Duration:    156,
		ReleaseDate: "2024-04-10",
		Poster:      "/posters/lunar-expedition.jpg",
		Director:    "Christopher Nolan",
		Cast:        []string{"Matthew McConaughey", "Anne Hathaway", "Jessica Chastain"},
		Language:    "English",
		IsActive:    true,
		ShowTimes:   []string{"13:00", "16:45", "20:00"},
	},
	{
		ID:          "5",
		Title:       "Midnight Café",
		Description: "A heartwarming comedy about a late-night diner that brings together the most unlikely of friends.",
		Genre:       []string{"Comedy", "Drama"},
		Rating:      8.2,
		Duration:    101,
		ReleaseDate: "2024-03-05",
		Poster:      "/posters/midnight-cafe.jpg",
		Director:    "Greta Gerwig",
		Cast:        []string{"Ryan Gosling", "Margot Robbie", "Steve Carell"},
		Language:    "English",
		IsActive:    true,
		ShowTimes:   []string{"14:30", "17:00", "19:30", "22:15"},
	},
	{
		ID:          "6",
		Title:       "The Phantom's Curse",
		Description: "A spine-chilling horror about an ancient curse that haunts a small Victorian town.",
		Genre:       []string{"Horror", "Thriller"},
		Rating:      7.3,
		Duration:    94,
		ReleaseDate: "2024-02-14",
		Poster:      "/posters/phantoms-curse.jpg",
		Director:    "Jordan Peele",
		Cast:        []string{"Lupita Nyong'o", "Daniel Kaluuya", "Tilda Swinton"},
		Language:    "English",
		IsActive:    true,
		ShowTimes:   []string{"18:30", "21:00", "23:30"},
	},
}

// Movies returns a fresh copy of the reference movies.
func Movies() []model.Movie {
	out := make([]model.Movie, len(movies))
	for i, m := range movies {
		out[i] = m.Clone()
	}
	return out
}

// Genres returns a fresh copy of the reference genres.
func Genres() []model.Genre {
	out := make([]model.Genre, len(genres))
	copy(out, genres)
	return out
}
