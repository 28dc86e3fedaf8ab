package scripture

import "time"

// Book is the output record of a batch import run.
type Book struct {
	Code        string    `json:"book_code"`
	TitleUK     string    `json:"title_uk"`
	TitleEN     string    `json:"title_en"`
	Chapters    []Chapter `json:"chapters"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Canto groups chapters of multi-canto works. Only adapters that know the
// canto (Bhaktivinoda song collections) populate it.
type Canto struct {
	Number int    `json:"canto_number"`
	Title  string `json:"title,omitempty"`
}
