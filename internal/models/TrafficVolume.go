package models

// TrafficVolume holds the annual average daily traffic counts for a link.
type TrafficVolume struct {
	Base

	Year             *string `gorm:"column:year" json:"year"`
	AdminCode        *string `gorm:"column:admin_code" json:"admin_code"`
	LinkNo           *string `gorm:"column:link_no;index" json:"link_no"`
	Marketday        *string `gorm:"column:marketday" json:"marketday"`
	Trafficcount     *string `gorm:"column:trafficcount" json:"trafficcount"`
	Journeytime      *string `gorm:"column:journeytime" json:"journeytime"`
	AadtMc           *string `gorm:"column:aadt_mc" json:"aadt_mc"`
	AadtCar          *string `gorm:"column:aadt_car" json:"aadt_car"`
	AadtPickup       *string `gorm:"column:aadt_pickup" json:"aadt_pickup"`
	AadtMicrotruck   *string `gorm:"column:aadt_microtruck" json:"aadt_microtruck"`
	AadtSmallBus     *string `gorm:"column:aadt_small_bus" json:"aadt_small_bus"`
	AadtLargeBus     *string `gorm:"column:aadt_large_bus" json:"aadt_large_bus"`
	AadtSmallTruck   *string `gorm:"column:aadt_small_truck" json:"aadt_small_truck"`
	AadtMediumTruck  *string `gorm:"column:aadt_medium_truck" json:"aadt_medium_truck"`
	AadtLargeTruck   *string `gorm:"column:aadt_large_truck" json:"aadt_large_truck"`
	AadtTruckTrailer *string `gorm:"column:aadt_truck_trailer" json:"aadt_truck_trailer"`
	AadtSemiTrailer  *string `gorm:"column:aadt_semi_trailer" json:"aadt_semi_trailer"`
	Analysisbaseyear *string `gorm:"column:analysisbaseyear" json:"analysisbaseyear"`
	Surveyby         *string `gorm:"column:surveyby" json:"surveyby"`
}

func (TrafficVolume) TableName() string { return "trafficvolume" }
