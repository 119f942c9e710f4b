package application

import (
	"testing"

	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRoomNumberValue(t *testing.T) {
	assert.Equal(t, 101, roomNumberValue("101"))
	assert.Equal(t, 101, roomNumberValue("101B"))
	assert.Equal(t, 7, roomNumberValue("7"))
	assert.Equal(t, unnumberedRank, roomNumberValue("PH1"))
	assert.Equal(t, unnumberedRank, roomNumberValue(""))
}

func TestRankBucketOrder(t *testing.T) {
	cat := testCategory(1, "Doppia", 2, 80)
	rooms := []domain.Room{
		testRoom(1, "PH1", cat),
		testRoom(2, "401", cat),
		testRoom(3, "210", cat),
		testRoom(4, "430", cat), // fourth-floor allow-list
		testRoom(5, "228", cat), // second-floor allow-list
		testRoom(6, "105", cat),
		testRoom(7, "12", cat),
	}

	ranked := DefaultRankingPolicy().Rank(rooms)

	numbers := make([]string, len(ranked))
	for i, r := range ranked {
		numbers[i] = r.RoomNumber
	}
	assert.Equal(t, []string{"105", "228", "430", "210", "401", "12", "PH1"}, numbers)
}

func TestRankAscendingWithinBucket(t *testing.T) {
	cat := testCategory(1, "Doppia", 2, 80)
	rooms := []domain.Room{
		testRoom(1, "109", cat),
		testRoom(2, "101", cat),
		testRoom(3, "105", cat),
	}

	ranked := DefaultRankingPolicy().Rank(rooms)

	assert.Equal(t, "101", ranked[0].RoomNumber)
	assert.Equal(t, "105", ranked[1].RoomNumber)
	assert.Equal(t, "109", ranked[2].RoomNumber)
}

func TestRankDoesNotModifyInput(t *testing.T) {
	cat := testCategory(1, "Doppia", 2, 80)
	rooms := []domain.Room{
		testRoom(1, "210", cat),
		testRoom(2, "101", cat),
	}

	DefaultRankingPolicy().Rank(rooms)

	assert.Equal(t, "210", rooms[0].RoomNumber)
}

func TestRankCustomPolicyTable(t *testing.T) {
	cat := testCategory(1, "Doppia", 2, 80)
	rooms := []domain.Room{
		testRoom(1, "350", cat),
		testRoom(2, "205", cat),
	}

	// A property can promote its own allow-list without touching code.
	policy := RankingPolicy{SecondFloorPriority: []int{350}}
	ranked := policy.Rank(rooms)

	assert.Equal(t, "350", ranked[0].RoomNumber)
}
