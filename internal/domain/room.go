package domain

// RoomCategory represents a sellable room type within a property. Multiple
// physical rooms may share a category; BasePrice is the nightly price used
// whenever no rate override exists for a given date.
type RoomCategory struct {
	ID          int     `json:"id"`
	PropertyID  int     `json:"propertyId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	MaxGuests   int     `json:"maxGuests"`
	BasePrice   float64 `json:"basePrice"`
}

// Room represents a physical room with its category information
type Room struct {
	ID         int          `json:"id"`
	PropertyID int          `json:"propertyId"`
	RoomNumber string       `json:"roomNumber"`
	Category   RoomCategory `json:"category"`
}

// RoomRepository defines the interface for room data operations
type RoomRepository interface {
	// ListRooms returns every room of the property with its category attached
	ListRooms(propertyID int) ([]Room, error)
}

// CategoryRepository defines the interface for room category data operations
type CategoryRepository interface {
	// ListCategories returns all room categories defined for the property
	ListCategories(propertyID int) ([]RoomCategory, error)
}
