package models

// Link is a road link. Every linear-referenced record hangs off one through link_no.
type Link struct {
	Base

	LinkNo             *string `gorm:"column:link_no;uniqueIndex;not null" json:"link_no"`
	LinkLengthActual   *string `gorm:"column:link_length_actual" json:"link_length_actual"`
	LinkLengthOfficial *string `gorm:"column:link_length_official" json:"link_length_official"`
	AdminCode          *string `gorm:"column:admin_code" json:"admin_code"`
	LinkCode           *string `gorm:"column:link_code" json:"link_code"`
	LinkName           *string `gorm:"column:link_name" json:"link_name"`
	Status             *string `gorm:"column:status" json:"status"`
	Function           *string `gorm:"column:function" json:"function"`
	Class              *string `gorm:"column:class" json:"class"`
	Wti                *string `gorm:"column:wti" json:"wti"`

	// Associations
	Alignments     []Alignment       `gorm:"foreignKey:LinkNo;references:LinkNo;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	DRPs           []DRP             `gorm:"foreignKey:LinkNo;references:LinkNo;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	RoadConditions []RoadCondition   `gorm:"foreignKey:LinkNo;references:LinkNo;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Bridges        []BridgeInventory `gorm:"foreignKey:LinkNo;references:LinkNo;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Hazards        []RoadHazard      `gorm:"foreignKey:LinkNo;references:LinkNo;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	TrafficVolumes []TrafficVolume   `gorm:"foreignKey:LinkNo;references:LinkNo;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (Link) TableName() string { return "link" }
