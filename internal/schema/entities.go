package schema

// Entity names accepted by the upload endpoint.
const (
	FormData                = "FormData"
	Link                    = "Link"
	Alignment               = "Alignment"
	RoadCondition           = "RoadCondition"
	DRP                     = "DRP"
	BridgeInventory         = "BridgeInventory"
	RoadHazard              = "RoadHazard"
	TrafficVolume           = "TrafficVolume"
	TrafficWeightingFactors = "TrafficWeightingFactors"
	UnitCostsPERUnpaved     = "CODE_AN_UnitCostsPERUnpaved"
	UnitCostsREH            = "CODE_AN_UnitCostsREH"
	UnitCostsRIGID          = "CODE_AN_UnitCostsRIGID"
	UnitCostsWidening       = "CODE_AN_UnitCostsWidening"
	WidthStandards          = "CODE_AN_WidthStandards"
)

// Shared field names.
const (
	FieldID               = "id"
	FieldAdminCode        = "admin_code"
	FieldProvinceCode     = "province_code"
	FieldKabupatenCode    = "kabupaten_code"
	FieldLinkNo           = "link_no"
	FieldLinkLengthActual = "link_length_actual"
)

func req(name string, kind Kind) Field { return Field{Name: name, Kind: kind, Required: true} }

func opt(name string, kind Kind) Field { return Field{Name: name, Kind: kind} }

func texts(names ...string) []Field {
	out := make([]Field, 0, len(names))
	for _, n := range names {
		out = append(out, opt(n, KindText))
	}
	return out
}

func fields(groups ...[]Field) []Field {
	var out []Field
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Default returns the registry of every entity the service stores.
// Link is listed first so links uploaded in a batch exist before the
// records that reference them.
func Default() *Registry {
	r, err := NewRegistry(
		formData(),
		link(),
		alignment(),
		drp(),
		roadCondition(),
		bridgeInventory(),
		roadHazard(),
		trafficVolume(),
		trafficWeightingFactors(),
		unitCostsPERUnpaved(),
		unitCostsREH(),
		unitCostsRIGID(),
		unitCostsWidening(),
		widthStandards(),
	)
	if err != nil {
		panic(err)
	}
	return r
}

func formData() *Entity {
	return &Entity{
		Name: FormData,
		Fields: []Field{
			{Name: "status", Kind: KindText, Required: true, OneOf: []string{"provincial", "kabupaten"}},
			req("selected_province", KindText),
			{Name: "selected_kabupaten", Kind: KindText, RequiredWhen: &Condition{Field: "status", Value: "kabupaten"}},
			req("lg_name", KindText),
			req("email", KindEmail),
			req("phone", KindPhone),
		},
		Gate: true,
	}
}

func link() *Entity {
	return &Entity{
		Name: Link,
		Fields: fields(
			[]Field{
				opt(FieldID, KindInteger),
				{Name: FieldLinkNo, Kind: KindText, Required: true, Unique: true},
				req(FieldLinkLengthActual, KindDecimal),
				opt("link_length_official", KindDecimal),
			},
			texts(FieldAdminCode, "link_code", "link_name", "status", "function", "class", "wti"),
		),
		Persisted: true,
	}
}

func alignment() *Entity {
	return &Entity{
		Name: Alignment,
		Fields: fields(
			[]Field{
				opt(FieldID, KindInteger),
				req(FieldAdminCode, KindText),
				req(FieldLinkNo, KindText),
				req("chainage", KindDecimal),
				opt("chainage_rb", KindDecimal),
				opt("section_wkt_line_string", KindWKT),
			},
			texts(
				"gps_point_north_deg", "gps_point_north_min", "gps_point_north_sec",
				"gps_point_east_deg", "gps_point_east_min", "gps_point_east_sec",
				"east", "north", "hemis_ns",
			),
		),
		ForeignKey: FieldLinkNo,
		Linear:     LinearWithinLink,
		Chainages:  []string{"chainage"},
		Persisted:  true,
	}
}

func drp() *Entity {
	return &Entity{
		Name: DRP,
		Fields: fields(
			[]Field{
				opt(FieldID, KindInteger),
				req(FieldAdminCode, KindText),
				req(FieldLinkNo, KindText),
				req("drp_num", KindText),
				opt("chainage", KindDecimal),
				opt("drp_length", KindDecimal),
			},
			texts(
				"drp_order",
				"drp_north_deg", "drp_north_min", "drp_north_sec",
				"drp_east_deg", "drp_east_min", "drp_east_sec",
				"drp_type", "drp_desc", "drp_comment",
			),
		),
		ForeignKey: FieldLinkNo,
		Linear:     LinearWithinLink,
		Chainages:  []string{"chainage"},
		Persisted:  true,
	}
}

func roadCondition() *Entity {
	return &Entity{
		Name: RoadCondition,
		Fields: fields(
			[]Field{
				opt(FieldID, KindInteger),
				req("year", KindText),
				req(FieldAdminCode, KindText),
				req(FieldLinkNo, KindText),
				req("chainagefrom", KindDecimal),
				req("chainageto", KindDecimal),
				req("surveydate", KindText),
			},
			texts(
				"roughness", "bleeding_area", "ravelling_area", "desintegration_area",
				"crackdep_area", "patching_area", "othcrack_area", "pothole_area",
				"rutting_area", "edgedamage_area", "crossfall_area", "depressions_area",
				"erosion_area", "waviness_area", "gravelthickness_area",
				"concrete_cracking_area", "concrete_spalling_area",
				"concrete_structuralcracking_area", "concrete_cornerbreakno",
				"concrete_pumpingno", "concrete_blowouts_area", "crack_width",
				"pothole_count", "rutting_depth", "shoulder_l", "shoulder_r",
				"drain_l", "drain_r", "slope_l", "slope_r", "footpath_l", "footpath_r",
				"sign_l", "sign_r", "guidepost_l", "guidepost_r", "barrier_l", "barrier_r",
				"roadmarking_l", "roadmarking_r", "iri", "rci", "analysisbaseyear",
				"segmenttti", "surveyby", "paved", "pavement", "checkdata", "composition",
				"cracktype", "potholesize", "shouldcond_l", "shouldcond_r",
				"crossfallshape", "gravelsize", "gravelthickness", "distribution",
				"edgedamage_area_r", "surveyby2", "sectionstatus",
			),
		),
		ForeignKey: FieldLinkNo,
		Linear:     LinearSegment,
		Chainages:  []string{"chainagefrom", "chainageto"},
		Persisted:  true,
	}
}

func bridgeInventory() *Entity {
	return &Entity{
		Name: BridgeInventory,
		Fields: fields(
			[]Field{
				opt(FieldID, KindInteger),
				req("year", KindText),
				req(FieldAdminCode, KindText),
				req(FieldLinkNo, KindText),
				req("bridge_number", KindText),
				req("chainage", KindDecimal),
				req("bridge_length", KindDecimal),
				req("bridge_type", KindText),
			},
			texts(
				"drp_from", "offset_from", "bridge_name", "number_spans", "road_width",
				"footpath_width_l", "footpath_width_r", "crossing", "year_construction",
				"bridge_north_deg", "bridge_north_min", "bridge_north_sec",
				"bridge_east_deg", "bridge_east_min", "bridge_east_sec",
				"handrails", "cond_handrails", "guardrail", "cond_guardrails",
				"roadsurface", "cond_roadsurface", "deck", "cond_deck",
				"deckjoints", "cond_deckjoints", "beam", "cond_beam",
				"wingwalls", "cond_wingwalls", "abutment", "cond_abutment",
				"piers", "cond_piers", "bearings", "cond_bearings",
				"foundations", "cond_foundations", "stormwaterdrain", "cond_stormwaterdrain",
				"obstruction", "cond_obstruction", "scouring", "cond_scouring",
				"analysisbaseyear", "surveyby",
			),
		),
		ForeignKey: FieldLinkNo,
		Linear:     LinearWithinLink,
		Chainages:  []string{"chainage"},
		Persisted:  true,
	}
}

func roadHazard() *Entity {
	return &Entity{
		Name: RoadHazard,
		Fields: fields(
			[]Field{
				opt(FieldID, KindInteger),
				req("year", KindText),
				req(FieldAdminCode, KindText),
				req(FieldLinkNo, KindText),
				req("chainage_from", KindDecimal),
				req("chainage_to", KindDecimal),
				req("hazard_type", KindText),
				req("hazard_rating", KindText),
				opt("length", KindDecimal),
			},
			texts("x_start_dd", "y_start_dd", "x_end_dd", "y_end_dd"),
		),
		ForeignKey: FieldLinkNo,
		Linear:     LinearWithinLink,
		Chainages:  []string{"chainage_from", "chainage_to"},
		Persisted:  true,
	}
}

func trafficVolume() *Entity {
	return &Entity{
		Name: TrafficVolume,
		Fields: fields(
			[]Field{
				opt(FieldID, KindInteger),
				req("year", KindText),
				req(FieldAdminCode, KindText),
				req(FieldLinkNo, KindText),
			},
			texts(
				"marketday", "trafficcount", "journeytime",
				"aadt_mc", "aadt_car", "aadt_pickup", "aadt_microtruck",
				"aadt_small_bus", "aadt_large_bus", "aadt_small_truck",
				"aadt_medium_truck", "aadt_large_truck", "aadt_truck_trailer",
				"aadt_semi_trailer", "analysisbaseyear", "surveyby",
			),
		),
		ForeignKey: FieldLinkNo,
		Persisted:  true,
	}
}

func trafficWeightingFactors() *Entity {
	return &Entity{
		Name: TrafficWeightingFactors,
		Fields: fields(
			[]Field{opt(FieldID, KindInteger), req("veh_type", KindText)},
			texts("wti_factor", "vdf_factor"),
		),
		Persisted: true,
	}
}

func unitCostsPERUnpaved() *Entity {
	return &Entity{
		Name:      UnitCostsPERUnpaved,
		Fields:    fields([]Field{opt(FieldID, KindInteger)}, texts(FieldAdminCode, "reg_unitcost", "res_unitcost")),
		Persisted: true,
	}
}

func unitCostsREH() *Entity {
	return &Entity{
		Name: UnitCostsREH,
		Fields: fields(
			[]Field{opt(FieldID, KindInteger)},
			texts(FieldAdminCode, "cumesa1", "cumesa2", "pave_width1", "pave_width2", "reh_unitcost"),
		),
		Persisted: true,
	}
}

func unitCostsRIGID() *Entity {
	return &Entity{
		Name: UnitCostsRIGID,
		Fields: fields(
			[]Field{opt(FieldID, KindInteger)},
			texts(FieldAdminCode, "code", "perunitcost", "rehunitcost"),
		),
		Persisted: true,
	}
}

func unitCostsWidening() *Entity {
	return &Entity{
		Name: UnitCostsWidening,
		Fields: fields(
			[]Field{opt(FieldID, KindInteger)},
			texts(FieldAdminCode, "cumesa1", "cumesa2", "wideningsealed_unitcost", "wideningunsealed_unitcost"),
		),
		Persisted: true,
	}
}

func widthStandards() *Entity {
	return &Entity{
		Name: WidthStandards,
		Fields: fields(
			[]Field{opt(FieldID, KindInteger)},
			texts("status", "aadt1", "aadt2", "pave_width", "row", "shldwidth", "minwidening", "maxvcr"),
		),
		Persisted: true,
	}
}
