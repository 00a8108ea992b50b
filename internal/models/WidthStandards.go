package models

// WidthStandards maps a traffic band to the standard pavement and shoulder widths.
type WidthStandards struct {
	Base

	Status      *string `gorm:"column:status" json:"status"`
	Aadt1       *string `gorm:"column:aadt1" json:"aadt1"`
	Aadt2       *string `gorm:"column:aadt2" json:"aadt2"`
	PaveWidth   *string `gorm:"column:pave_width" json:"pave_width"`
	Row         *string `gorm:"column:row" json:"row"`
	Shldwidth   *string `gorm:"column:shldwidth" json:"shldwidth"`
	Minwidening *string `gorm:"column:minwidening" json:"minwidening"`
	Maxvcr      *string `gorm:"column:maxvcr" json:"maxvcr"`
}

func (WidthStandards) TableName() string { return "code_an_widthstandards" }
