package models

// ProjectionRequest asks for the compounded animal-unit figure after a number
// of months of growth.
type ProjectionRequest struct {
	Herd   HerdDescription `json:"herd" binding:"required"`
	Months int             `json:"months" binding:"gte=0"`
}

// PastureYieldRequest asks for the available dry matter of a described pasture.
type PastureYieldRequest struct {
	Pasture PastureDescription `json:"pasture" binding:"required"`
	Acres   float64            `json:"acres" binding:"required,gt=0"`
}

// GrazingPlanRequest asks for a rotation recommendation. Climate and season may
// be omitted; region or zip is then used to classify the climate and the season
// comes from the calendar.
type GrazingPlanRequest struct {
	Herd    HerdDescription    `json:"herd" binding:"required"`
	Pasture PastureDescription `json:"pasture" binding:"required"`
	Acres   float64            `json:"acres" binding:"required,gt=0"`
	Climate ClimateLabel       `json:"climate,omitempty"`
	Season  SeasonLabel        `json:"season,omitempty"`
	Region  string             `json:"region,omitempty"`
	Zip     string             `json:"zip,omitempty"`
}

// StoredPlanRequest asks the planner to compute and record a plan for a stored
// paddock/herd pair.
type StoredPlanRequest struct {
	PaddockID string `json:"paddock_id" binding:"required"`
	HerdID    string `json:"herd_id" binding:"required"`
}

// CreateFarmRequest registers a farm. Region and zip feed the climate
// classifier for server-side planning.
type CreateFarmRequest struct {
	Name   string `json:"name" binding:"required"`
	Region string `json:"region,omitempty"`
	Zip    string `json:"zip,omitempty"`
}

// CreatePaddockRequest attaches a paddock to a farm.
type CreatePaddockRequest struct {
	Name    string             `json:"name" binding:"required"`
	Acres   float64            `json:"acres" binding:"required,gt=0"`
	Pasture PastureDescription `json:"pasture" binding:"required"`
}

// CreateHerdRequest attaches a herd to a farm.
type CreateHerdRequest struct {
	Name string          `json:"name" binding:"required"`
	Herd HerdDescription `json:"herd" binding:"required"`
}
