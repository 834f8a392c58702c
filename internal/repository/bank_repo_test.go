package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPruneFilter(t *testing.T) {
	t.Run("KeepsListedBuckets", func(t *testing.T) {
		filter := pruneFilter([]BankBucket{
			{Category: "Pharmacology", Difficulty: "easy"},
			{Category: "Toxicology", Difficulty: "hard"},
		})

		nor, ok := filter["$nor"].(bson.A)
		require.True(t, ok, "filter: %v", filter)
		assert.Equal(t, bson.A{
			bson.M{"category": "Pharmacology", "difficulty": "easy"},
			bson.M{"category": "Toxicology", "difficulty": "hard"},
		}, nor)
	})

	t.Run("EmptyKeepMatchesAll", func(t *testing.T) {
		assert.Equal(t, bson.M{}, pruneFilter(nil))
	})
}
