package models

// Message is one exchange in the globally ordered conversation log.
// The id is assigned by the store, strictly increasing and never reused.
type Message struct {
	ID       int64  `json:"id" db:"id"`
	Content  string `json:"content" db:"content"`
	Response string `json:"response" db:"response"`
}

// DeleteReport summarizes a cascading delete starting at FromID.
type DeleteReport struct {
	DeletedCount int64 `json:"deleted_count"`
	FromID       int64 `json:"from_id"`
}
