package models

// PastureType enumerates the coarse forage classes used when species
// composition data is too sparse to trust.
type PastureType string

const (
	PastureNative PastureType = "native"
	PastureMixed  PastureType = "mixed"
	PastureLush   PastureType = "lush"
)

// SpeciesComposition is one entry of a pasture stand survey: a forage species
// and the percentage of the stand it occupies. Percentages are taken as given
// and are not required to sum to 100; the raw sum acts as a data-quality
// signal, not a constraint.
type SpeciesComposition struct {
	Name          string   `bson:"name" json:"name"`
	Percent       float64  `bson:"percent" json:"percent"`
	YieldOverride *float64 `bson:"yield_override,omitempty" json:"yield_override,omitempty"`
}

// PastureDescription captures the state of a single paddock's forage.
type PastureDescription struct {
	Type           PastureType          `bson:"type" json:"type"`
	GrassHeightIn  float64              `bson:"grass_height_in" json:"grass_height_in"`
	GroundCoverPct float64              `bson:"ground_cover_pct" json:"ground_cover_pct"`
	Composition    []SpeciesComposition `bson:"composition,omitempty" json:"composition,omitempty"`
}
