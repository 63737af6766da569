package model

// ServiceTag is the canonical category a job is classified into. It drives
// which checklist template the crew sees.
type ServiceTag string

const (
	// TagStandard is the default recurring residential clean.
	TagStandard ServiceTag = "Standard"
	// TagAirbnbTurnover is a short-term-rental clean between guests.
	TagAirbnbTurnover ServiceTag = "AirbnbTurnover"
	// TagDeepClean is a detail-level clean beyond the standard rotation.
	TagDeepClean ServiceTag = "DeepClean"
	// TagMoveInOut covers both move-in and move-out cleans of empty homes.
	TagMoveInOut ServiceTag = "MoveInOut"
	// TagPostConstruction is a clean after renovation or construction work.
	TagPostConstruction ServiceTag = "PostConstruction"
	// TagListingPrep readies a property for real estate photos and showings.
	TagListingPrep ServiceTag = "ListingPrep"
	// TagOfficeCommercial is an office or commercial space clean.
	TagOfficeCommercial ServiceTag = "OfficeCommercial"
	// TagOneTime is a single non-recurring clean.
	TagOneTime ServiceTag = "OneTime"
)

// AllServiceTags lists every valid tag. Order matches how the business
// talks about its service lines; display code relies on it being stable.
var AllServiceTags = []ServiceTag{
	TagStandard,
	TagAirbnbTurnover,
	TagDeepClean,
	TagMoveInOut,
	TagPostConstruction,
	TagListingPrep,
	TagOfficeCommercial,
	TagOneTime,
}

// DisplayName returns a human-friendly label for the tag.
func (t ServiceTag) DisplayName() string {
	switch t {
	case TagStandard:
		return "Standard Clean"
	case TagAirbnbTurnover:
		return "Airbnb Turnover"
	case TagDeepClean:
		return "Deep Clean"
	case TagMoveInOut:
		return "Move In/Out"
	case TagPostConstruction:
		return "Post-Construction"
	case TagListingPrep:
		return "Listing Prep"
	case TagOfficeCommercial:
		return "Office/Commercial"
	case TagOneTime:
		return "One-Time Clean"
	default:
		return string(t)
	}
}
