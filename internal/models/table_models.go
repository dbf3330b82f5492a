package models

// TableLocation enumerates where a table sits in the restaurant.
type TableLocation string

const (
	TableLocationIndoor  TableLocation = "indoor"
	TableLocationPatio   TableLocation = "patio"
	TableLocationPrivate TableLocation = "private"
)

// Valid reports whether the location is one of the closed set.
func (l TableLocation) Valid() bool {
	switch l {
	case TableLocationIndoor, TableLocationPatio, TableLocationPrivate:
		return true
	}
	return false
}

// TableStatus is the occupancy state of a table.
type TableStatus string

const (
	TableStatusFree     TableStatus = "free"
	TableStatusOccupied TableStatus = "occupied"
	TableStatusReserved TableStatus = "reserved"
)

// Valid reports whether the status is one of the closed set.
func (s TableStatus) Valid() bool {
	switch s {
	case TableStatusFree, TableStatusOccupied, TableStatusReserved:
		return true
	}
	return false
}

// Next advances the status along the fixed cycle
// free -> occupied -> reserved -> free.
func (s TableStatus) Next() TableStatus {
	switch s {
	case TableStatusFree:
		return TableStatusOccupied
	case TableStatusOccupied:
		return TableStatusReserved
	default:
		return TableStatusFree
	}
}

// Table represents a dining table in the local collection.
type Table struct {
	ID       int64         `json:"id"`
	Number   int           `json:"number"` // unique within the collection
	Capacity int           `json:"capacity"`
	Location TableLocation `json:"location"`
	Status   TableStatus   `json:"status"`
}
