package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUserIndexModels(t *testing.T) {
	indexes := userIndexModels()
	assert.Len(t, indexes, 2)

	t.Run("username index is unique", func(t *testing.T) {
		username := indexes[0]
		assert.Equal(t, bson.D{{Key: "username", Value: 1}}, username.Keys)
		assert.True(t, *username.Options.Unique)
		assert.Nil(t, username.Options.Sparse)
	})

	t.Run("health ID index is unique but sparse", func(t *testing.T) {
		healthID := indexes[1]
		assert.Equal(t, bson.D{{Key: "healthId", Value: 1}}, healthID.Keys)
		assert.True(t, *healthID.Options.Unique)
		assert.True(t, *healthID.Options.Sparse)
	})
}
