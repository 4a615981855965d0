package consents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNewestFirstKeepsInsertionOrderOnTies(t *testing.T) {
	assert.Equal(t, bson.D{
		{Key: "requestedAt", Value: -1},
		{Key: "_id", Value: 1},
	}, newestFirst)
}
