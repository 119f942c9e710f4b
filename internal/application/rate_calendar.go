package application

import (
	"fmt"
	"time"

	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
)

const dayFormat = "2006-01-02"

// rateIndex resolves the effective nightly state of a category by layering
// the per-day override, when one exists, over the category defaults. Built
// once per request from the overrides of the whole window.
type rateIndex struct {
	overrides map[string]domain.RateOverride
}

func newRateIndex(overrides []domain.RateOverride) *rateIndex {
	idx := &rateIndex{overrides: make(map[string]domain.RateOverride, len(overrides))}
	for _, o := range overrides {
		idx.overrides[rateKey(o.CategoryID, o.Date)] = o
	}
	return idx
}

func rateKey(categoryID int, date time.Time) string {
	return fmt.Sprintf("%d|%s", categoryID, date.Format(dayFormat))
}

// ResolveDay returns the effective price, closed flag, breakfast flag and
// inventory cap of the category for one night. Without an override the
// defaults apply: base price, open, breakfast available, no cap.
func (idx *rateIndex) ResolveDay(cat domain.RoomCategory, date time.Time) domain.DayRate {
	if o, ok := idx.overrides[rateKey(cat.ID, date)]; ok {
		return domain.DayRate{
			Price:           o.Price,
			IsClosed:        o.IsClosed,
			EnableBreakfast: o.EnableBreakfast,
			Available:       o.Available,
			IsOverride:      true,
		}
	}
	return domain.DayRate{
		Price:           cat.BasePrice,
		EnableBreakfast: true,
	}
}
