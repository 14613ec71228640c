package handler

import "github.com/hotelops/hotel-console/internal/core/domain"

type loginForm struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type createUserForm struct {
	Username string          `json:"username" validate:"required,min=3"`
	Password string          `json:"password" validate:"required,min=6"`
	Name     string          `json:"name" validate:"required"`
	Surname  string          `json:"surname" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Phone    string          `json:"phone"`
	Role     domain.UserRole `json:"role" validate:"required,userrole"`
}

func (f createUserForm) toRequest() domain.CreateUserRequest {
	return domain.CreateUserRequest{
		Username: f.Username,
		Password: f.Password,
		Name:     f.Name,
		Surname:  f.Surname,
		Email:    f.Email,
		Phone:    f.Phone,
		Role:     f.Role,
	}
}

type changePasswordForm struct {
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type roomTypeForm struct {
	TypeName     string   `json:"typeName" validate:"required"`
	BasePrice    float64  `json:"basePrice" validate:"gt=0"`
	MaxOccupancy int      `json:"maxOccupancy" validate:"gt=0"`
	Description  string   `json:"description"`
	Size         *float64 `json:"size"`
	BedType      string   `json:"bedType"`
	NumberOfBeds *int     `json:"numberOfBeds"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images"`
	Active       *bool    `json:"active"`
}

func (f roomTypeForm) toRequest() domain.CreateRoomTypeRequest {
	return domain.CreateRoomTypeRequest{
		TypeName:     f.TypeName,
		BasePrice:    f.BasePrice,
		MaxOccupancy: f.MaxOccupancy,
		Description:  f.Description,
		Size:         f.Size,
		BedType:      f.BedType,
		NumberOfBeds: f.NumberOfBeds,
		Amenities:    f.Amenities,
		Images:       f.Images,
		Active:       f.Active,
	}
}

type bulkCreateRoomsForm struct {
	RoomTypeID  int64             `json:"roomTypeId" validate:"gt=0"`
	Floor       int               `json:"floor" validate:"gte=0"`
	RoomNumbers []string          `json:"roomNumbers" validate:"required,min=1,dive,required"`
	Status      domain.RoomStatus `json:"status" validate:"omitempty,roomstatus"`
}

type bulkUpdateStatusForm struct {
	RoomIDs []int64           `json:"roomIds" validate:"required,min=1"`
	Status  domain.RoomStatus `json:"status" validate:"required,roomstatus"`
	Notes   string            `json:"notes"`
}

type bulkAssignTypeForm struct {
	RoomIDs    []int64 `json:"roomIds" validate:"required,min=1"`
	RoomTypeID int64   `json:"roomTypeId" validate:"gt=0"`
}

type floorStatusForm struct {
	Status domain.RoomStatus `json:"status" validate:"required,roomstatus"`
}

type homeResponse struct {
	User       *domain.UserIdentity `json:"user"`
	QuickStats *domain.QuickStats   `json:"quickStats,omitempty"`
	StatsError string               `json:"statsError,omitempty"`
}

type viewResponse struct {
	View string `json:"view"`
}
