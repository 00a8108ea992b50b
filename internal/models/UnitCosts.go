package models

// Unit cost lookup tables read by the analysis module. Rows are keyed by
// admin_code.

type UnitCostsPERUnpaved struct {
	Base

	AdminCode   *string `gorm:"column:admin_code" json:"admin_code"`
	RegUnitcost *string `gorm:"column:reg_unitcost" json:"reg_unitcost"`
	ResUnitcost *string `gorm:"column:res_unitcost" json:"res_unitcost"`
}

func (UnitCostsPERUnpaved) TableName() string { return "code_an_unitcostsperunpaved" }

type UnitCostsREH struct {
	Base

	AdminCode   *string `gorm:"column:admin_code" json:"admin_code"`
	Cumesa1     *string `gorm:"column:cumesa1" json:"cumesa1"`
	Cumesa2     *string `gorm:"column:cumesa2" json:"cumesa2"`
	PaveWidth1  *string `gorm:"column:pave_width1" json:"pave_width1"`
	PaveWidth2  *string `gorm:"column:pave_width2" json:"pave_width2"`
	RehUnitcost *string `gorm:"column:reh_unitcost" json:"reh_unitcost"`
}

func (UnitCostsREH) TableName() string { return "code_an_unitcostsreh" }

type UnitCostsRIGID struct {
	Base

	AdminCode   *string `gorm:"column:admin_code" json:"admin_code"`
	Code        *string `gorm:"column:code" json:"code"`
	Perunitcost *string `gorm:"column:perunitcost" json:"perunitcost"`
	Rehunitcost *string `gorm:"column:rehunitcost" json:"rehunitcost"`
}

func (UnitCostsRIGID) TableName() string { return "code_an_unitcostsrigid" }

type UnitCostsWidening struct {
	Base

	AdminCode                *string `gorm:"column:admin_code" json:"admin_code"`
	Cumesa1                  *string `gorm:"column:cumesa1" json:"cumesa1"`
	Cumesa2                  *string `gorm:"column:cumesa2" json:"cumesa2"`
	WideningsealedUnitcost   *string `gorm:"column:wideningsealed_unitcost" json:"wideningsealed_unitcost"`
	WideningunsealedUnitcost *string `gorm:"column:wideningunsealed_unitcost" json:"wideningunsealed_unitcost"`
}

func (UnitCostsWidening) TableName() string { return "code_an_unitcostswidening" }
