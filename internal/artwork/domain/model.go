package domain

import "time"

// Artwork is the primary sellable entity. The Like counter is denormalized and
// is mutated only by the like toggle workflow.
type Artwork struct {
	ID          string    `json:"_id"`
	ArtistEmail string    `json:"artist_email"`
	ArtistName  string    `json:"artist_name"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Like        int64     `json:"like"`
	Photos      []string  `json:"photos,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Favorite is a user-to-artwork bookmark. The pair (UserEmail, ArtworkID) is
// unique; the repository enforces it with a compound index.
type Favorite struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	ArtworkID string    `json:"artwork_id"`
	CreatedAt time.Time `json:"created_at"`
}

// UserLikes holds the set of artwork ids a user currently likes, one document
// per user.
type UserLikes struct {
	ID    string   `json:"_id"`
	Email string   `json:"email"`
	Likes []string `json:"likes"`
}

// ArtworkUpdate carries the owner-editable fields of an artwork. Zero values
// leave the stored field untouched.
type ArtworkUpdate struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ArtistName  string  `json:"artist_name"`
	Price       float64 `json:"price"`
}
