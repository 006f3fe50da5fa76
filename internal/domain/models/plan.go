package models

// GrazingPlanMetrics exposes the intermediate numbers behind a recommendation
// so the UI can show its work.
type GrazingPlanMetrics struct {
	DailyDmRequiredLbs  float64 `bson:"daily_dm_required_lbs" json:"daily_dm_required_lbs"`
	UtilizableDmLbs     float64 `bson:"utilizable_dm_lbs" json:"utilizable_dm_lbs"`
	UtilizationRate     float64 `bson:"utilization_rate" json:"utilization_rate"`
	RestPeriodDays      int     `bson:"rest_period_days" json:"rest_period_days"`
	SeasonalGrowthRate  float64 `bson:"seasonal_growth_rate" json:"seasonal_growth_rate"`
	TotalAvailableDmLbs float64 `bson:"total_available_dm_lbs" json:"total_available_dm_lbs"`
}

// GrazingPlanResult is the planner's recommendation for one paddock/herd pair.
// RecommendedDays is always within [1, 7].
type GrazingPlanResult struct {
	RecommendedDays float64            `bson:"recommended_days" json:"recommended_days"`
	Reasoning       string             `bson:"reasoning" json:"reasoning"`
	Metrics         GrazingPlanMetrics `bson:"metrics" json:"metrics"`
}
