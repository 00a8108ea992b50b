package models

// Alignment is a surveyed point or line section along a link.
type Alignment struct {
	Base

	AdminCode            *string `gorm:"column:admin_code" json:"admin_code"`
	LinkNo               *string `gorm:"column:link_no;index" json:"link_no"`
	Chainage             *string `gorm:"column:chainage" json:"chainage"`
	ChainageRb           *string `gorm:"column:chainage_rb" json:"chainage_rb"`
	SectionWktLineString *string `gorm:"column:section_wkt_line_string" json:"section_wkt_line_string"`
	GpsPointNorthDeg     *string `gorm:"column:gps_point_north_deg" json:"gps_point_north_deg"`
	GpsPointNorthMin     *string `gorm:"column:gps_point_north_min" json:"gps_point_north_min"`
	GpsPointNorthSec     *string `gorm:"column:gps_point_north_sec" json:"gps_point_north_sec"`
	GpsPointEastDeg      *string `gorm:"column:gps_point_east_deg" json:"gps_point_east_deg"`
	GpsPointEastMin      *string `gorm:"column:gps_point_east_min" json:"gps_point_east_min"`
	GpsPointEastSec      *string `gorm:"column:gps_point_east_sec" json:"gps_point_east_sec"`
	East                 *string `gorm:"column:east" json:"east"`
	North                *string `gorm:"column:north" json:"north"`
	HemisNs              *string `gorm:"column:hemis_ns" json:"hemis_ns"`
}

func (Alignment) TableName() string { return "Alignment" }
