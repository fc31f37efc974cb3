package ifcstep

// productTypes maps the upper-cased STEP type token of each supported
// IfcProduct subtype to its canonical schema spelling. The set covers the
// building elements that show up in practice; tokens outside it are treated
// as non-product records (property sets, relations, geometry) and ignored by
// product queries.
var productTypes = map[string]string{
	"IFCANNOTATION":               "IfcAnnotation",
	"IFCBEAM":                     "IfcBeam",
	"IFCBEAMSTANDARDCASE":         "IfcBeamStandardCase",
	"IFCBUILDINGELEMENTPART":      "IfcBuildingElementPart",
	"IFCBUILDINGELEMENTPROXY":     "IfcBuildingElementProxy",
	"IFCCHIMNEY":                  "IfcChimney",
	"IFCCOLUMN":                   "IfcColumn",
	"IFCCOLUMNSTANDARDCASE":       "IfcColumnStandardCase",
	"IFCCOVERING":                 "IfcCovering",
	"IFCCURTAINWALL":              "IfcCurtainWall",
	"IFCDISCRETEACCESSORY":        "IfcDiscreteAccessory",
	"IFCDISTRIBUTIONELEMENT":      "IfcDistributionElement",
	"IFCDOOR":                     "IfcDoor",
	"IFCDOORSTANDARDCASE":         "IfcDoorStandardCase",
	"IFCDUCTSEGMENT":              "IfcDuctSegment",
	"IFCELECTRICAPPLIANCE":        "IfcElectricAppliance",
	"IFCELEMENTASSEMBLY":          "IfcElementAssembly",
	"IFCFASTENER":                 "IfcFastener",
	"IFCFLOWCONTROLLER":           "IfcFlowController",
	"IFCFLOWFITTING":              "IfcFlowFitting",
	"IFCFLOWSEGMENT":              "IfcFlowSegment",
	"IFCFLOWTERMINAL":             "IfcFlowTerminal",
	"IFCFOOTING":                  "IfcFooting",
	"IFCFURNISHINGELEMENT":        "IfcFurnishingElement",
	"IFCFURNITURE":                "IfcFurniture",
	"IFCGRID":                     "IfcGrid",
	"IFCLIGHTFIXTURE":             "IfcLightFixture",
	"IFCMECHANICALFASTENER":       "IfcMechanicalFastener",
	"IFCMEMBER":                   "IfcMember",
	"IFCMEMBERSTANDARDCASE":       "IfcMemberStandardCase",
	"IFCOPENINGELEMENT":           "IfcOpeningElement",
	"IFCPILE":                     "IfcPile",
	"IFCPIPEFITTING":              "IfcPipeFitting",
	"IFCPIPESEGMENT":              "IfcPipeSegment",
	"IFCPLATE":                    "IfcPlate",
	"IFCPLATESTANDARDCASE":        "IfcPlateStandardCase",
	"IFCRAILING":                  "IfcRailing",
	"IFCRAMP":                     "IfcRamp",
	"IFCRAMPFLIGHT":               "IfcRampFlight",
	"IFCREINFORCINGBAR":           "IfcReinforcingBar",
	"IFCREINFORCINGMESH":          "IfcReinforcingMesh",
	"IFCROOF":                     "IfcRoof",
	"IFCSANITARYTERMINAL":         "IfcSanitaryTerminal",
	"IFCSITE":                     "IfcSite",
	"IFCSLAB":                     "IfcSlab",
	"IFCSLABSTANDARDCASE":         "IfcSlabStandardCase",
	"IFCSPACE":                    "IfcSpace",
	"IFCSPACEHEATER":              "IfcSpaceHeater",
	"IFCSTAIR":                    "IfcStair",
	"IFCSTAIRFLIGHT":              "IfcStairFlight",
	"IFCTENDON":                   "IfcTendon",
	"IFCTRANSPORTELEMENT":         "IfcTransportElement",
	"IFCVIRTUALELEMENT":           "IfcVirtualElement",
	"IFCWALL":                     "IfcWall",
	"IFCWALLELEMENTEDCASE":        "IfcWallElementedCase",
	"IFCWALLSTANDARDCASE":         "IfcWallStandardCase",
	"IFCWINDOW":                   "IfcWindow",
	"IFCWINDOWSTANDARDCASE":       "IfcWindowStandardCase",
}

// canonicalType resolves a raw STEP type token to its schema spelling.
func canonicalType(token string) (string, bool) {
	name, ok := productTypes[token]
	return name, ok
}

// isProductToken reports whether a raw token names a product subtype.
func isProductToken(token string) bool {
	_, ok := productTypes[token]
	return ok
}
