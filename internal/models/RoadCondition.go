package models

// RoadCondition is one surveyed [chainagefrom, chainageto) segment of a link.
type RoadCondition struct {
	Base

	Year                           *string `gorm:"column:year" json:"year"`
	AdminCode                      *string `gorm:"column:admin_code" json:"admin_code"`
	LinkNo                         *string `gorm:"column:link_no;index" json:"link_no"`
	Chainagefrom                   *string `gorm:"column:chainagefrom" json:"chainagefrom"`
	Chainageto                     *string `gorm:"column:chainageto" json:"chainageto"`
	Surveydate                     *string `gorm:"column:surveydate" json:"surveydate"`
	Roughness                      *string `gorm:"column:roughness" json:"roughness"`
	BleedingArea                   *string `gorm:"column:bleeding_area" json:"bleeding_area"`
	RavellingArea                  *string `gorm:"column:ravelling_area" json:"ravelling_area"`
	DesintegrationArea             *string `gorm:"column:desintegration_area" json:"desintegration_area"`
	CrackdepArea                   *string `gorm:"column:crackdep_area" json:"crackdep_area"`
	PatchingArea                   *string `gorm:"column:patching_area" json:"patching_area"`
	OthcrackArea                   *string `gorm:"column:othcrack_area" json:"othcrack_area"`
	PotholeArea                    *string `gorm:"column:pothole_area" json:"pothole_area"`
	RuttingArea                    *string `gorm:"column:rutting_area" json:"rutting_area"`
	EdgedamageArea                 *string `gorm:"column:edgedamage_area" json:"edgedamage_area"`
	CrossfallArea                  *string `gorm:"column:crossfall_area" json:"crossfall_area"`
	DepressionsArea                *string `gorm:"column:depressions_area" json:"depressions_area"`
	ErosionArea                    *string `gorm:"column:erosion_area" json:"erosion_area"`
	WavinessArea                   *string `gorm:"column:waviness_area" json:"waviness_area"`
	GravelthicknessArea            *string `gorm:"column:gravelthickness_area" json:"gravelthickness_area"`
	ConcreteCrackingArea           *string `gorm:"column:concrete_cracking_area" json:"concrete_cracking_area"`
	ConcreteSpallingArea           *string `gorm:"column:concrete_spalling_area" json:"concrete_spalling_area"`
	ConcreteStructuralcrackingArea *string `gorm:"column:concrete_structuralcracking_area" json:"concrete_structuralcracking_area"`
	ConcreteCornerbreakno          *string `gorm:"column:concrete_cornerbreakno" json:"concrete_cornerbreakno"`
	ConcretePumpingno              *string `gorm:"column:concrete_pumpingno" json:"concrete_pumpingno"`
	ConcreteBlowoutsArea           *string `gorm:"column:concrete_blowouts_area" json:"concrete_blowouts_area"`
	CrackWidth                     *string `gorm:"column:crack_width" json:"crack_width"`
	PotholeCount                   *string `gorm:"column:pothole_count" json:"pothole_count"`
	RuttingDepth                   *string `gorm:"column:rutting_depth" json:"rutting_depth"`
	ShoulderL                      *string `gorm:"column:shoulder_l" json:"shoulder_l"`
	ShoulderR                      *string `gorm:"column:shoulder_r" json:"shoulder_r"`
	DrainL                         *string `gorm:"column:drain_l" json:"drain_l"`
	DrainR                         *string `gorm:"column:drain_r" json:"drain_r"`
	SlopeL                         *string `gorm:"column:slope_l" json:"slope_l"`
	SlopeR                         *string `gorm:"column:slope_r" json:"slope_r"`
	FootpathL                      *string `gorm:"column:footpath_l" json:"footpath_l"`
	FootpathR                      *string `gorm:"column:footpath_r" json:"footpath_r"`
	SignL                          *string `gorm:"column:sign_l" json:"sign_l"`
	SignR                          *string `gorm:"column:sign_r" json:"sign_r"`
	GuidepostL                     *string `gorm:"column:guidepost_l" json:"guidepost_l"`
	GuidepostR                     *string `gorm:"column:guidepost_r" json:"guidepost_r"`
	BarrierL                       *string `gorm:"column:barrier_l" json:"barrier_l"`
	BarrierR                       *string `gorm:"column:barrier_r" json:"barrier_r"`
	RoadmarkingL                   *string `gorm:"column:roadmarking_l" json:"roadmarking_l"`
	RoadmarkingR                   *string `gorm:"column:roadmarking_r" json:"roadmarking_r"`
	Iri                            *string `gorm:"column:iri" json:"iri"`
	Rci                            *string `gorm:"column:rci" json:"rci"`
	Analysisbaseyear               *string `gorm:"column:analysisbaseyear" json:"analysisbaseyear"`
	Segmenttti                     *string `gorm:"column:segmenttti" json:"segmenttti"`
	Surveyby                       *string `gorm:"column:surveyby" json:"surveyby"`
	Paved                          *string `gorm:"column:paved" json:"paved"`
	Pavement                       *string `gorm:"column:pavement" json:"pavement"`
	Checkdata                      *string `gorm:"column:checkdata" json:"checkdata"`
	Composition                    *string `gorm:"column:composition" json:"composition"`
	Cracktype                      *string `gorm:"column:cracktype" json:"cracktype"`
	Potholesize                    *string `gorm:"column:potholesize" json:"potholesize"`
	ShouldcondL                    *string `gorm:"column:shouldcond_l" json:"shouldcond_l"`
	ShouldcondR                    *string `gorm:"column:shouldcond_r" json:"shouldcond_r"`
	Crossfallshape                 *string `gorm:"column:crossfallshape" json:"crossfallshape"`
	Gravelsize                     *string `gorm:"column:gravelsize" json:"gravelsize"`
	Gravelthickness                *string `gorm:"column:gravelthickness" json:"gravelthickness"`
	Distribution                   *string `gorm:"column:distribution" json:"distribution"`
	EdgedamageAreaR                *string `gorm:"column:edgedamage_area_r" json:"edgedamage_area_r"`
	Surveyby2                      *string `gorm:"column:surveyby2" json:"surveyby2"`
	Sectionstatus                  *string `gorm:"column:sectionstatus" json:"sectionstatus"`
}

func (RoadCondition) TableName() string { return "road_condition" }
