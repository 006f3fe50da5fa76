package models

import "time"

// Farm is a stored operation the planner can run rotations against. Region and
// Zip feed the climate classifier when plans are computed server-side.
type Farm struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Region    string    `bson:"region,omitempty" json:"region,omitempty"`
	Zip       string    `bson:"zip,omitempty" json:"zip,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Paddock is a fenced grazing cell belonging to a farm.
type Paddock struct {
	ID        string             `bson:"_id,omitempty" json:"id"`
	FarmID    string             `bson:"farm_id" json:"farm_id"`
	Name      string             `bson:"name" json:"name"`
	Acres     float64            `bson:"acres" json:"acres"`
	Pasture   PastureDescription `bson:"pasture" json:"pasture"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Herd is a stored herd description attached to a farm.
type Herd struct {
	ID        string          `bson:"_id,omitempty" json:"id"`
	FarmID    string          `bson:"farm_id" json:"farm_id"`
	Name      string          `bson:"name" json:"name"`
	Herd      HerdDescription `bson:"herd" json:"herd"`
	CreatedAt time.Time       `bson:"created_at" json:"created_at"`
}

// PlanRecord is one computed grazing recommendation, kept as history.
type PlanRecord struct {
	ID        string            `bson:"_id,omitempty" json:"id"`
	FarmID    string            `bson:"farm_id" json:"farm_id"`
	PaddockID string            `bson:"paddock_id" json:"paddock_id"`
	HerdID    string            `bson:"herd_id" json:"herd_id"`
	Climate   ClimateLabel      `bson:"climate" json:"climate"`
	Season    SeasonLabel       `bson:"season" json:"season"`
	Plan      GrazingPlanResult `bson:"plan" json:"plan"`
	CreatedAt time.Time         `bson:"created_at" json:"created_at"`
}
