package external

// LocationSearchCommand is one command in the redux-dal batch request
type LocationSearchCommand struct {
	Name   string               `json:"name"`
	Params LocationSearchParams `json:"params"`
}

// LocationSearchParams holds the search parameters for a location lookup
type LocationSearchParams struct {
	Query        string `json:"query"`
	Language     string `json:"language"`
	LocationType string `json:"locationType"`
}

// NewLocationSearchRequest builds the redux-dal request body for a city query
func NewLocationSearchRequest(query string) []LocationSearchCommand {
	return []LocationSearchCommand{
		{
			Name: "getSunV3LocationSearchUrlConfig",
			Params: LocationSearchParams{
				Query:        query,
				Language:     "en-US",
				LocationType: "locale",
			},
		},
	}
}

// LocationSearchResponse is the redux-dal response envelope. The inner map is
// keyed by a request hash the provider generates, so candidates are reached by
// iterating the values.
type LocationSearchResponse struct {
	DAL struct {
		LocationSearch map[string]LocationSearchResult `json:"getSunV3LocationSearchUrlConfig"`
	} `json:"dal"`
}

// LocationSearchResult holds one search result entry
type LocationSearchResult struct {
	Data struct {
		Location struct {
			PlaceID []string `json:"placeId"`
		} `json:"location"`
	} `json:"data"`
}

// PlaceIDs collects every candidate place id in the response
func (r *LocationSearchResponse) PlaceIDs() []string {
	var ids []string
	for _, result := range r.DAL.LocationSearch {
		ids = append(ids, result.Data.Location.PlaceID...)
	}
	return ids
}
