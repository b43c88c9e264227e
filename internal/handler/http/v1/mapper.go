package v1

import (
	"github.com/shenikar/dont_forget_tracker/internal/catalog"
	"github.com/shenikar/dont_forget_tracker/internal/models"
	"github.com/shenikar/dont_forget_tracker/internal/service"
	"github.com/shenikar/dont_forget_tracker/pkg/geo"
)

// DTOToItemInput преобразует DTO в изменяемые поля предмета
func DTOToItemInput(dto ItemRequest) models.ItemInput {
	return models.ItemInput{
		Name:          dto.Name,
		IconID:        dto.IconID,
		AlertDistance: dto.AlertDistance,
	}
}

func locationToDTO(loc *models.Location) *LocationDTO {
	if loc == nil {
		return nil
	}
	return &LocationDTO{Latitude: loc.Latitude, Longitude: loc.Longitude}
}

// ModelToItemResponse преобразует предмет в DTO. Если координата устройства известна,
// в ответ добавляется текущее расстояние до предмета.
func ModelToItemResponse(item models.TrackedItem, cat *catalog.Catalog, current *models.Location) *ItemResponse {
	resp := &ItemResponse{
		ID:                item.ID,
		Name:              item.Name,
		IconID:            item.IconID,
		IconName:          cat.IconName(item.IconID),
		Location:          locationToDTO(item.Location),
		AlertDistance:     item.AlertDistance,
		AlertDistanceText: geo.FormatDistance(item.AlertDistance),
		IsAway:            item.IsAway,
		CreatedAt:         item.CreatedAt,
	}

	if current != nil && item.Location != nil {
		d := geo.Distance(current.Latitude, current.Longitude, item.Location.Latitude, item.Location.Longitude)
		resp.Distance = &d
		resp.DistanceText = geo.FormatDistanceWithAway(d)
	}
	return resp
}

// ModelsToItemResponses преобразует слайс предметов в слайс DTO
func ModelsToItemResponses(items []models.TrackedItem, cat *catalog.Catalog, current *models.Location) []*ItemResponse {
	responses := make([]*ItemResponse, len(items))
	for i, item := range items {
		responses[i] = ModelToItemResponse(item, cat, current)
	}
	return responses
}

func StatusToResponse(status service.Status) *TrackingStatusResponse {
	return &TrackingStatusResponse{
		State:         string(status.State),
		Location:      locationToDTO(status.Location),
		ItemCount:     status.ItemCount,
		AwayCount:     status.AwayCount,
		NotifiedCount: status.NotifiedCount,
	}
}

func AlertsToResponses(alerts []models.InAppAlert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = &AlertResponse{Title: a.Title, Message: a.Message, CreatedAt: a.CreatedAt}
	}
	return responses
}

func PremiumToResponse(status service.PremiumStatus) *PremiumResponse {
	return &PremiumResponse{
		Premium:   status.Premium,
		ItemCount: status.ItemCount,
		ItemLimit: status.ItemLimit,
		Message:   status.Message,
	}
}
