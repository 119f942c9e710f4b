package application

import (
	"sort"

	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
)

// unnumberedRank is assigned to rooms whose number has no leading digits, so
// they always sort last within their bucket.
const unnumberedRank = 9999

// RankingPolicy orders the physical rooms of a category for assignment
// preference. The buckets encode the floor plan of the property: first-floor
// rooms fill first, then two allow-lists of rooms that sit next to the
// service stairs on the second and fourth floors, then the remaining floors.
// Keeping the order stable means the same rooms fill first and the free ones
// stay contiguous for housekeeping.
type RankingPolicy struct {
	SecondFloorPriority []int `json:"secondFloorPriority"`
	FourthFloorPriority []int `json:"fourthFloorPriority"`
}

// DefaultRankingPolicy returns the policy table in use at the property the
// numbering scheme was designed for.
func DefaultRankingPolicy() RankingPolicy {
	return RankingPolicy{
		SecondFloorPriority: []int{228, 230, 232},
		FourthFloorPriority: []int{428, 430},
	}
}

// roomNumberValue parses the leading digit run of a room number. Room numbers
// like "101B" rank as 101; anything without leading digits ranks last.
func roomNumberValue(number string) int {
	n := 0
	seen := false
	for _, r := range number {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		seen = true
	}
	if !seen {
		return unnumberedRank
	}
	return n
}

func (p RankingPolicy) bucketFor(n int) int {
	switch {
	case n >= 100 && n < 200:
		return 0
	case containsNumber(p.SecondFloorPriority, n):
		return 1
	case containsNumber(p.FourthFloorPriority, n):
		return 2
	case n >= 200 && n < 400:
		return 3
	case n >= 400 && n < 500:
		return 4
	}
	return 5
}

// Rank returns the rooms ordered by assignment preference: bucket first, then
// ascending room number. The input slice is not modified.
func (p RankingPolicy) Rank(rooms []domain.Room) []domain.Room {
	ranked := make([]domain.Room, len(rooms))
	copy(ranked, rooms)
	sort.SliceStable(ranked, func(i, j int) bool {
		ni := roomNumberValue(ranked[i].RoomNumber)
		nj := roomNumberValue(ranked[j].RoomNumber)
		bi := p.bucketFor(ni)
		bj := p.bucketFor(nj)
		if bi != bj {
			return bi < bj
		}
		return ni < nj
	})
	return ranked
}

func containsNumber(list []int, n int) bool {
	for _, v := range list {
		if v == n {
			return true
		}
	}
	return false
}
