package mongodb

import (
	"fmt"
	"time"

	"github.com/rakib120822/artify-server/internal/artwork/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// artworkDocument is the stored form of a domain.Artwork.
type artworkDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ArtistEmail string             `bson:"artist_email"`
	ArtistName  string             `bson:"artist_name"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Like        int64              `bson:"like"`
	Photos      []string           `bson:"photos,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type favoriteDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserEmail string             `bson:"user_email"`
	ArtworkID string             `bson:"artwork_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

type userLikesDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Email string             `bson:"email"`
	Likes []string           `bson:"likes"`
}

// parseObjectID converts a hex id coming from the transport layer. Malformed
// ids map to domain.ErrInvalidArtworkID so handlers can answer 400 instead of
// a store failure.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidArtworkID, id)
	}
	return oid, nil
}

func toArtworkDocument(a *domain.Artwork) (*artworkDocument, error) {
	if a == nil {
		return nil, nil
	}
	docID := primitive.NilObjectID
	if a.ID != "" {
		var err error
		docID, err = parseObjectID(a.ID)
		if err != nil {
			return nil, err
		}
	}
	return &artworkDocument{
		ID:          docID,
		ArtistEmail: a.ArtistEmail,
		ArtistName:  a.ArtistName,
		Title:       a.Title,
		Description: a.Description,
		Price:       a.Price,
		Like:        a.Like,
		Photos:      a.Photos,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}, nil
}

func toDomainArtwork(d *artworkDocument) *domain.Artwork {
	if d == nil {
		return nil
	}
	return &domain.Artwork{
		ID:          d.ID.Hex(),
		ArtistEmail: d.ArtistEmail,
		ArtistName:  d.ArtistName,
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Like:        d.Like,
		Photos:      d.Photos,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toDomainArtworks(docs []*artworkDocument) []*domain.Artwork {
	artworks := make([]*domain.Artwork, 0, len(docs))
	for _, doc := range docs {
		artworks = append(artworks, toDomainArtwork(doc))
	}
	return artworks
}

func toDomainFavorite(d *favoriteDocument) *domain.Favorite {
	if d == nil {
		return nil
	}
	return &domain.Favorite{
		ID:        d.ID.Hex(),
		UserEmail: d.UserEmail,
		ArtworkID: d.ArtworkID,
		CreatedAt: d.CreatedAt,
	}
}

func toDomainFavorites(docs []*favoriteDocument) []*domain.Favorite {
	favorites := make([]*domain.Favorite, 0, len(docs))
	for _, doc := range docs {
		favorites = append(favorites, toDomainFavorite(doc))
	}
	return favorites
}

func toDomainUserLikes(d *userLikesDocument) *domain.UserLikes {
	if d == nil {
		return nil
	}
	likes := d.Likes
	if likes == nil {
		likes = []string{}
	}
	return &domain.UserLikes{
		ID:    d.ID.Hex(),
		Email: d.Email,
		Likes: likes,
	}
}
