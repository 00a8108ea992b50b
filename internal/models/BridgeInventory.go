package models

type BridgeInventory struct {
	Base

	Year                *string `gorm:"column:year" json:"year"`
	AdminCode           *string `gorm:"column:admin_code" json:"admin_code"`
	LinkNo              *string `gorm:"column:link_no;index" json:"link_no"`
	BridgeNumber        *string `gorm:"column:bridge_number" json:"bridge_number"`
	Chainage            *string `gorm:"column:chainage" json:"chainage"`
	BridgeLength        *string `gorm:"column:bridge_length" json:"bridge_length"`
	BridgeType          *string `gorm:"column:bridge_type" json:"bridge_type"`
	DrpFrom             *string `gorm:"column:drp_from" json:"drp_from"`
	OffsetFrom          *string `gorm:"column:offset_from" json:"offset_from"`
	BridgeName          *string `gorm:"column:bridge_name" json:"bridge_name"`
	NumberSpans         *string `gorm:"column:number_spans" json:"number_spans"`
	RoadWidth           *string `gorm:"column:road_width" json:"road_width"`
	FootpathWidthL      *string `gorm:"column:footpath_width_l" json:"footpath_width_l"`
	FootpathWidthR      *string `gorm:"column:footpath_width_r" json:"footpath_width_r"`
	Crossing            *string `gorm:"column:crossing" json:"crossing"`
	YearConstruction    *string `gorm:"column:year_construction" json:"year_construction"`
	BridgeNorthDeg      *string `gorm:"column:bridge_north_deg" json:"bridge_north_deg"`
	BridgeNorthMin      *string `gorm:"column:bridge_north_min" json:"bridge_north_min"`
	BridgeNorthSec      *string `gorm:"column:bridge_north_sec" json:"bridge_north_sec"`
	BridgeEastDeg       *string `gorm:"column:bridge_east_deg" json:"bridge_east_deg"`
	BridgeEastMin       *string `gorm:"column:bridge_east_min" json:"bridge_east_min"`
	BridgeEastSec       *string `gorm:"column:bridge_east_sec" json:"bridge_east_sec"`
	Handrails           *string `gorm:"column:handrails" json:"handrails"`
	CondHandrails       *string `gorm:"column:cond_handrails" json:"cond_handrails"`
	Guardrail           *string `gorm:"column:guardrail" json:"guardrail"`
	CondGuardrails      *string `gorm:"column:cond_guardrails" json:"cond_guardrails"`
	Roadsurface         *string `gorm:"column:roadsurface" json:"roadsurface"`
	CondRoadsurface     *string `gorm:"column:cond_roadsurface" json:"cond_roadsurface"`
	Deck                *string `gorm:"column:deck" json:"deck"`
	CondDeck            *string `gorm:"column:cond_deck" json:"cond_deck"`
	Deckjoints          *string `gorm:"column:deckjoints" json:"deckjoints"`
	CondDeckjoints      *string `gorm:"column:cond_deckjoints" json:"cond_deckjoints"`
	Beam                *string `gorm:"column:beam" json:"beam"`
	CondBeam            *string `gorm:"column:cond_beam" json:"cond_beam"`
	Wingwalls           *string `gorm:"column:wingwalls" json:"wingwalls"`
	CondWingwalls       *string `gorm:"column:cond_wingwalls" json:"cond_wingwalls"`
	Abutment            *string `gorm:"column:abutment" json:"abutment"`
	CondAbutment        *string `gorm:"column:cond_abutment" json:"cond_abutment"`
	Piers               *string `gorm:"column:piers" json:"piers"`
	CondPiers           *string `gorm:"column:cond_piers" json:"cond_piers"`
	Bearings            *string `gorm:"column:bearings" json:"bearings"`
	CondBearings        *string `gorm:"column:cond_bearings" json:"cond_bearings"`
	Foundations         *string `gorm:"column:foundations" json:"foundations"`
	CondFoundations     *string `gorm:"column:cond_foundations" json:"cond_foundations"`
	Stormwaterdrain     *string `gorm:"column:stormwaterdrain" json:"stormwaterdrain"`
	CondStormwaterdrain *string `gorm:"column:cond_stormwaterdrain" json:"cond_stormwaterdrain"`
	Obstruction         *string `gorm:"column:obstruction" json:"obstruction"`
	CondObstruction     *string `gorm:"column:cond_obstruction" json:"cond_obstruction"`
	Scouring            *string `gorm:"column:scouring" json:"scouring"`
	CondScouring        *string `gorm:"column:cond_scouring" json:"cond_scouring"`
	Analysisbaseyear    *string `gorm:"column:analysisbaseyear" json:"analysisbaseyear"`
	Surveyby            *string `gorm:"column:surveyby" json:"surveyby"`
}

func (BridgeInventory) TableName() string { return "bridgeinventory" }
