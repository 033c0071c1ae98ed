package mongodb

import (
	"testing"

	"github.com/rakib120822/artify-server/internal/artwork/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildSearchFilter_EmptyQueryMatchesEverything(t *testing.T) {
	filter := buildSearchFilter("")
	assert.Equal(t, bson.M{}, filter)
}

func TestBuildSearchFilter_CaseInsensitiveSubstring(t *testing.T) {
	filter := buildSearchFilter("cat")

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)

	title := or[0].(bson.M)["title"].(primitive.Regex)
	artist := or[1].(bson.M)["artist_name"].(primitive.Regex)

	// "cat" must match both "Cathedral" and "wildcat".
	assert.Equal(t, "cat", title.Pattern)
	assert.Equal(t, "i", title.Options)
	assert.Equal(t, "cat", artist.Pattern)
	assert.Equal(t, "i", artist.Options)
}

func TestBuildSearchFilter_EscapesRegexMetacharacters(t *testing.T) {
	filter := buildSearchFilter("50% off (sale)")

	or := filter["$or"].(bson.A)
	title := or[0].(bson.M)["title"].(primitive.Regex)
	assert.Equal(t, `50% off \(sale\)`, title.Pattern)
}

func TestParseObjectID_MalformedIDIsClientError(t *testing.T) {
	_, err := parseObjectID("not-a-hex-id")
	assert.ErrorIs(t, err, domain.ErrInvalidArtworkID)
}

func TestParseObjectID_ValidHexRoundTrips(t *testing.T) {
	oid, err := parseObjectID("507f1f77bcf86cd799439011")
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", oid.Hex())
}

func TestToDomainUserLikes_NilLikesBecomesEmptySet(t *testing.T) {
	doc := &userLikesDocument{ID: primitive.NewObjectID(), Email: "u@x.com"}
	userLikes := toDomainUserLikes(doc)

	require.NotNil(t, userLikes.Likes)
	assert.Empty(t, userLikes.Likes)
}
