package models

type TrafficWeightingFactors struct {
	Base

	VehType   *string `gorm:"column:veh_type" json:"veh_type"`
	WtiFactor *string `gorm:"column:wti_factor" json:"wti_factor"`
	VdfFactor *string `gorm:"column:vdf_factor" json:"vdf_factor"`
}

func (TrafficWeightingFactors) TableName() string { return "traffic_weighting_factors" }
