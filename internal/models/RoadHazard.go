package models

// RoadHazard marks a hazardous stretch between two chainages.
type RoadHazard struct {
	Base

	Year         *string `gorm:"column:year" json:"year"`
	AdminCode    *string `gorm:"column:admin_code" json:"admin_code"`
	LinkNo       *string `gorm:"column:link_no;index" json:"link_no"`
	ChainageFrom *string `gorm:"column:chainage_from" json:"chainage_from"`
	ChainageTo   *string `gorm:"column:chainage_to" json:"chainage_to"`
	HazardType   *string `gorm:"column:hazard_type" json:"hazard_type"`
	HazardRating *string `gorm:"column:hazard_rating" json:"hazard_rating"`
	Length       *string `gorm:"column:length" json:"length"`
	XStartDd     *string `gorm:"column:x_start_dd" json:"x_start_dd"`
	YStartDd     *string `gorm:"column:y_start_dd" json:"y_start_dd"`
	XEndDd       *string `gorm:"column:x_end_dd" json:"x_end_dd"`
	YEndDd       *string `gorm:"column:y_end_dd" json:"y_end_dd"`
}

func (RoadHazard) TableName() string { return "RoadHazard" }
