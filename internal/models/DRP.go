package models

// DRP is a distance reference point placed along a link.
type DRP struct {
	Base

	AdminCode   *string `gorm:"column:admin_code" json:"admin_code"`
	LinkNo      *string `gorm:"column:link_no;index" json:"link_no"`
	DrpNum      *string `gorm:"column:drp_num" json:"drp_num"`
	Chainage    *string `gorm:"column:chainage" json:"chainage"`
	DrpLength   *string `gorm:"column:drp_length" json:"drp_length"`
	DrpOrder    *string `gorm:"column:drp_order" json:"drp_order"`
	DrpNorthDeg *string `gorm:"column:drp_north_deg" json:"drp_north_deg"`
	DrpNorthMin *string `gorm:"column:drp_north_min" json:"drp_north_min"`
	DrpNorthSec *string `gorm:"column:drp_north_sec" json:"drp_north_sec"`
	DrpEastDeg  *string `gorm:"column:drp_east_deg" json:"drp_east_deg"`
	DrpEastMin  *string `gorm:"column:drp_east_min" json:"drp_east_min"`
	DrpEastSec  *string `gorm:"column:drp_east_sec" json:"drp_east_sec"`
	DrpType     *string `gorm:"column:drp_type" json:"drp_type"`
	DrpDesc     *string `gorm:"column:drp_desc" json:"drp_desc"`
	DrpComment  *string `gorm:"column:drp_comment" json:"drp_comment"`
}

func (DRP) TableName() string { return "DRP" }
