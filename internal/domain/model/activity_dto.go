package model

// SuggestActivitiesDTO is the request body for activity suggestions
type SuggestActivitiesDTO struct {
	Cities []string `json:"cities" validate:"required"`
	Days   int      `json:"days"`
}

// RankPlacesDTO is the request body for place ranking
type RankPlacesDTO struct {
	Activity string   `json:"activity" validate:"required"`
	Cities   []string `json:"cities" validate:"required"`
	Days     int      `json:"days"`
}

// RefreshMessage is the queue payload for an asynchronous snapshot refresh
type RefreshMessage struct {
	City      string `json:"city"`
	RequestID string `json:"requestId"`
}
