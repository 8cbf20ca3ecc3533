package entities

import "time"

// KBDocument is an agronomy article. Tags are comma separated and feed the
// keyword search together with the chunk text.
type KBDocument struct {
	DocID     uint      `gorm:"primaryKey" json:"doc_id"`
	Title     string    `json:"title"`
	SourceURL string    `json:"source_url"`
	Tags      string    `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

type KBChunk struct {
	ChunkID   uint   `gorm:"primaryKey" json:"chunk_id"`
	DocID     uint   `gorm:"index" json:"doc_id"`
	Ord       int    `json:"ord"`
	Text      string `json:"text"`
	CreatedAt time.Time
}

// ArticleRef points a reader at a KB document.
type ArticleRef struct {
	DocID uint   `json:"doc_id"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}
