package blog

import "time"

type BlogPost struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"publishedAt"`
	Author      string    `json:"author"`
}
