package entities

import "time"

type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CoverImage  string    `json:"cover_image"`
	Category    string    `json:"category"`
	IsPublished bool      `json:"is_published"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
}
