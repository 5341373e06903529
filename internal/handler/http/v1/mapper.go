package v1

import "github.com/Satvik-Mishra/shop_attendance_system/internal/models"

// DTOToShopModel converts a create/update DTO into the domain model
func DTOToShopModel(dto any) *models.Shop {
	switch v := dto.(type) {
	case CreateShopRequest:
		return &models.Shop{
			ID:           v.ID,
			Name:         v.Name,
			PIN:          v.PIN,
			Latitude:     v.Latitude,
			Longitude:    v.Longitude,
			RadiusMeters: v.RadiusMeters,
		}
	case UpdateShopRequest:
		return &models.Shop{
			Name:         v.Name,
			PIN:          v.PIN,
			Latitude:     v.Latitude,
			Longitude:    v.Longitude,
			RadiusMeters: v.RadiusMeters,
		}
	}
	return nil
}

// ModelToShopResponse converts the domain model into a response DTO
func ModelToShopResponse(model *models.Shop) *ShopResponse {
	return &ShopResponse{
		ID:               model.ID,
		Name:             model.Name,
		Latitude:         model.Latitude,
		Longitude:        model.Longitude,
		RadiusMeters:     model.RadiusMeters,
		SubscriptionEnds: model.SubscriptionEnds,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

// ModelsToShopResponses converts a slice of models into response DTOs
func ModelsToShopResponses(shops []*models.Shop) []*ShopResponse {
	responses := make([]*ShopResponse, len(shops))
	for i, model := range shops {
		responses[i] = ModelToShopResponse(model)
	}
	return responses
}

// ModelToAttendanceResponse converts an attendance record into a response DTO
func ModelToAttendanceResponse(model *models.AttendanceRecord) *AttendanceResponse {
	return &AttendanceResponse{
		ID:             model.ID,
		ShopID:         model.ShopID,
		UserName:       model.UserName,
		RecordedAt:     model.RecordedAt,
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		DistanceMeters: model.DistanceMeters,
		WithinRadius:   model.WithinRadius,
		Outcome:        model.Outcome(),
	}
}

// ModelsToAttendanceResponses converts a slice of records into response DTOs
func ModelsToAttendanceResponses(records []*models.AttendanceRecord) []*AttendanceResponse {
	responses := make([]*AttendanceResponse, len(records))
	for i, model := range records {
		responses[i] = ModelToAttendanceResponse(model)
	}
	return responses
}

// ModelToUserResponse converts a user into a response DTO. The raw device
// hash is not exposed, only whether a binding exists.
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ShopID:      model.ShopID,
		Name:        model.Name,
		DeviceBound: model.DeviceHash != "",
		CreatedAt:   model.CreatedAt,
	}
}

// ModelsToUserResponses converts a slice of users into response DTOs
func ModelsToUserResponses(users []*models.User) []*UserResponse {
	responses := make([]*UserResponse, len(users))
	for i, model := range users {
		responses[i] = ModelToUserResponse(model)
	}
	return responses
}
