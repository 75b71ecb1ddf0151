package employee

import "time"

type Employee struct {
	ID        string
	Name      string
	Position  Position
	Email     string
	Phone     *string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Position string

const (
	PositionManager   Position = "manager"
	PositionChef      Position = "chef"
	PositionWaiter    Position = "waiter"
	PositionBartender Position = "bartender"
	PositionHost      Position = "host"
	PositionCashier   Position = "cashier"
	PositionKitchen   Position = "kitchen"
	PositionDelivery  Position = "delivery"
)

// PositionInfo pairs a position tag with its display name.
type PositionInfo struct {
	ID   Position
	Name string
}

// Positions returns the recognized position set in display order.
func Positions() []PositionInfo {
	return []PositionInfo{
		{ID: PositionManager, Name: "Manager"},
		{ID: PositionChef, Name: "Chef"},
		{ID: PositionWaiter, Name: "Waiter/Waitress"},
		{ID: PositionBartender, Name: "Bartender"},
		{ID: PositionHost, Name: "Host/Hostess"},
		{ID: PositionCashier, Name: "Cashier"},
		{ID: PositionKitchen, Name: "Kitchen Staff"},
		{ID: PositionDelivery, Name: "Delivery"},
	}
}

// IsValidPosition reports whether p is in the recognized position set.
func IsValidPosition(p Position) bool {
	for _, info := range Positions() {
		if info.ID == p {
			return true
		}
	}
	return false
}

// DisplayName resolves the position's display name, falling back to the raw
// tag for unknown values.
func (p Position) DisplayName() string {
	for _, info := range Positions() {
		if info.ID == p {
			return info.Name
		}
	}
	return string(p)
}
