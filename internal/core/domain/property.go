package domain

// RoomStatus is the housekeeping state of a single room.
type RoomStatus string

const (
	RoomReady       RoomStatus = "READY"
	RoomCleaning    RoomStatus = "CLEANING"
	RoomMaintenance RoomStatus = "MAINTENANCE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomOutOfOrder  RoomStatus = "OUT_OF_ORDER"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomReady, RoomCleaning, RoomMaintenance, RoomOccupied, RoomOutOfOrder:
		return true
	}
	return false
}

// RoomType is a sellable category of rooms.
type RoomType struct {
	ID             int64    `json:"id"`
	TypeName       string   `json:"typeName"`
	BasePrice      float64  `json:"basePrice"`
	MaxOccupancy   int      `json:"maxOccupancy"`
	Description    string   `json:"description,omitempty"`
	Size           *float64 `json:"size,omitempty"`
	BedType        string   `json:"bedType,omitempty"`
	NumberOfBeds   *int     `json:"numberOfBeds,omitempty"`
	Amenities      []string `json:"amenities"`
	Images         []string `json:"images"`
	Active         bool     `json:"active"`
	TotalRooms     int      `json:"totalRooms"`
	AvailableRooms int      `json:"availableRooms"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

type CreateRoomTypeRequest struct {
	TypeName     string   `json:"typeName"`
	BasePrice    float64  `json:"basePrice"`
	MaxOccupancy int      `json:"maxOccupancy"`
	Description  string   `json:"description,omitempty"`
	Size         *float64 `json:"size,omitempty"`
	BedType      string   `json:"bedType,omitempty"`
	NumberOfBeds *int     `json:"numberOfBeds,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	Images       []string `json:"images,omitempty"`
	Active       *bool    `json:"active,omitempty"`
}

type UpdateRoomTypeRequest struct {
	TypeName     *string   `json:"typeName,omitempty"`
	BasePrice    *float64  `json:"basePrice,omitempty"`
	MaxOccupancy *int      `json:"maxOccupancy,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Size         *float64  `json:"size,omitempty"`
	BedType      *string   `json:"bedType,omitempty"`
	NumberOfBeds *int      `json:"numberOfBeds,omitempty"`
	Amenities    *[]string `json:"amenities,omitempty"`
	Images       *[]string `json:"images,omitempty"`
	Active       *bool     `json:"active,omitempty"`
}

type Room struct {
	ID         int64      `json:"id"`
	Number     string     `json:"number"`
	Name       string     `json:"name"`
	Floor      int        `json:"floor"`
	RoomType   RoomType   `json:"roomType"`
	RoomStatus RoomStatus `json:"roomStatus"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  string     `json:"createdAt"`
	UpdatedAt  string     `json:"updatedAt"`
}

type BulkCreateRoomsRequest struct {
	RoomTypeID  int64      `json:"roomTypeId"`
	Floor       int        `json:"floor"`
	RoomNumbers []string   `json:"roomNumbers"`
	Status      RoomStatus `json:"status"`
}

type BulkUpdateStatusRequest struct {
	RoomIDs []int64    `json:"roomIds"`
	Status  RoomStatus `json:"status"`
	Notes   string     `json:"notes,omitempty"`
}

// BulkOperationResponse reports per-item outcomes. A 200 response can still
// carry failures; check AllSuccessful rather than the HTTP status.
type BulkOperationResponse struct {
	SuccessCount    int      `json:"successCount"`
	FailureCount    int      `json:"failureCount"`
	TotalCount      int      `json:"totalCount"`
	SuccessMessages []string `json:"successMessages"`
	ErrorMessages   []string `json:"errorMessages"`
	AllSuccessful   bool     `json:"allSuccessful"`
}

// Partial reports whether some but not all items succeeded.
func (r BulkOperationResponse) Partial() bool {
	return !r.AllSuccessful && r.SuccessCount > 0
}

type PropertyStatistics struct {
	TotalRoomTypes    int64   `json:"totalRoomTypes"`
	ActiveRoomTypes   int64   `json:"activeRoomTypes"`
	InactiveRoomTypes int64   `json:"inactiveRoomTypes"`
	TotalRooms        int64   `json:"totalRooms"`
	ReadyRooms        int64   `json:"readyRooms"`
	OccupiedRooms     int64   `json:"occupiedRooms"`
	CleaningRooms     int64   `json:"cleaningRooms"`
	MaintenanceRooms  int64   `json:"maintenanceRooms"`
	OutOfOrderRooms   int64   `json:"outOfOrderRooms"`
	TotalFloors       int64   `json:"totalFloors"`
	RoomsPerFloor     float64 `json:"roomsPerFloor"`
	AvailabilityRate  float64 `json:"availabilityRate"`
	MaintenanceRate   float64 `json:"maintenanceRate"`
}

type FloorUpdateResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
