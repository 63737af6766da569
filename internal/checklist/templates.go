// Package checklist holds the static checklist templates and resolves a
// service tag to the template the crew works from.
package checklist

import "github.com/sudsywork/sudsy/internal/model"

// Every template starts with an arrival section and ends with a wrap-up
// section bracketing the work. The turnover, move in/out and one-time
// templates call out before/after photos from multiple angles per room;
// those photos are the proof of work sent to hosts and clients, so they
// stay in the template even when a crew knows the property well.
var templates = map[model.ServiceTag]model.Template{
	model.TagStandard: {
		Tag: model.TagStandard,
		Sections: []model.Section{
			{Label: "Arrival", Items: []string{
				"Check in with client or use entry instructions in notes",
				"Walk the home and note anything unusual or damaged",
				"Stage supplies and start laundry if requested",
			}},
			{Label: "Kitchen", Items: []string{
				"Wipe counters, backsplash, and small appliances",
				"Clean stovetop and microwave inside and out",
				"Scrub and shine sink, polish fixtures",
				"Wipe cabinet fronts and handles",
				"Sweep and mop floor",
			}},
			{Label: "Bathrooms", Items: []string{
				"Scrub toilet, bowl, and base",
				"Clean shower, tub, and glass",
				"Wipe vanity, sink, and mirror",
				"Restock toilet paper and fold towels",
				"Sweep and mop floor",
			}},
			{Label: "Bedrooms & Living Areas", Items: []string{
				"Dust surfaces, sills, and decor",
				"Make beds and tidy rooms",
				"Vacuum carpets and rugs",
				"Sweep and mop hard floors",
			}},
			{Label: "Wrap-Up", Items: []string{
				"Empty all trash and replace liners",
				"Final walkthrough, lights off, doors locked",
				"Log any client requests for next visit",
			}},
		},
	},
	model.TagAirbnbTurnover: {
		Tag: model.TagAirbnbTurnover,
		Sections: []model.Section{
			{Label: "Arrival & Inspection", Items: []string{
				"Take BEFORE photos of every room, multiple angles",
				"Check for guest damage and report immediately with photos",
				"Collect forgotten guest items and notify the host",
				"Strip all beds and start linens washing",
			}},
			{Label: "Kitchen", Items: []string{
				"Wash, dry, and put away all dishes",
				"Clean inside fridge, remove all guest food",
				"Wipe counters, stovetop, microwave, and coffee maker",
				"Restock coffee, tea, and host-provided supplies",
				"Empty trash and recycling, new liners",
			}},
			{Label: "Bathrooms", Items: []string{
				"Scrub toilet, shower, tub, sink, and mirror",
				"Replace all towels with fresh sets per host count",
				"Restock toilet paper, soap, and shampoo",
				"Check drains for hair",
			}},
			{Label: "Bedrooms", Items: []string{
				"Make beds hotel-style with fresh linens",
				"Check under beds and in drawers for guest items",
				"Dust and vacuum",
			}},
			{Label: "Guest-Ready Staging", Items: []string{
				"Stage welcome items per host instructions",
				"Set thermostat per host instructions",
				"Verify smoke detector and lock batteries",
				"Take AFTER photos of every room, multiple angles",
			}},
			{Label: "Wrap-Up", Items: []string{
				"Send photo set and damage notes to host",
				"Confirm next check-in time",
				"Lock up per host instructions",
			}},
		},
	},
	model.TagDeepClean: {
		Tag: model.TagDeepClean,
		Sections: []model.Section{
			{Label: "Arrival", Items: []string{
				"Walk the home with the client and confirm priority areas",
				"Note pre-existing damage before starting",
			}},
			{Label: "Kitchen Detail", Items: []string{
				"Degrease range hood, stovetop, and drip pans",
				"Clean oven interior",
				"Clean fridge interior and behind/under if movable",
				"Wipe inside cabinets and drawers where emptied",
				"Descale sink and faucet, polish fixtures",
			}},
			{Label: "Bathroom Detail", Items: []string{
				"Remove soap scum and hard water from tile and glass",
				"Scrub grout lines",
				"Clean exhaust fan cover",
				"Disinfect all surfaces and handles",
			}},
			{Label: "Whole Home Detail", Items: []string{
				"Wash baseboards, door frames, and switch plates",
				"Dust ceiling fans, vents, and light fixtures",
				"Clean interior windows, tracks, and sills",
				"Vacuum under furniture and along edges",
				"Spot-clean walls and doors",
			}},
			{Label: "Wrap-Up", Items: []string{
				"Final walkthrough with client if present",
				"Empty all trash, lights off, lock up",
			}},
		},
	},
	model.TagMoveInOut: {
		Tag: model.TagMoveInOut,
		Sections: []model.Section{
			{Label: "Arrival", Items: []string{
				"Confirm the home is empty of belongings",
				"Take BEFORE photos of every room, multiple angles",
				"Check utilities are on (water and power needed to clean)",
			}},
			{Label: "Kitchen", Items: []string{
				"Clean inside and outside of all cabinets and drawers",
				"Clean oven, stovetop, and hood",
				"Clean fridge inside and out, pull out and clean behind",
				"Scrub sink and countertops",
				"Sweep and mop floor including under appliances",
			}},
			{Label: "Bathrooms", Items: []string{
				"Scrub and disinfect toilet, tub, shower, and sink",
				"Clean inside vanity cabinets and drawers",
				"Polish mirrors and fixtures",
				"Sweep and mop floor",
			}},
			{Label: "All Rooms", Items: []string{
				"Wipe closets, shelves, and rods",
				"Wash baseboards, doors, and switch plates",
				"Clean interior windows, tracks, and sills",
				"Remove nails/putty marks only if contracted",
				"Vacuum and mop all floors",
			}},
			{Label: "Wrap-Up", Items: []string{
				"Take AFTER photos of every room, multiple angles",
				"Send photo set to client or property manager",
				"Leave keys per instructions, lock up",
			}},
		},
	},
	model.TagPostConstruction: {
		Tag: model.TagPostConstruction,
		Sections: []model.Section{
			{Label: "Arrival & Safety", Items: []string{
				"Confirm contractors are finished in the work areas",
				"Check for nails, glass, and sharp debris before starting",
				"Ventilate rooms while cleaning",
			}},
			{Label: "Dust Removal", Items: []string{
				"Vacuum walls and ceilings with brush attachment",
				"Wipe all surfaces top-down, repeat as dust settles",
				"Clean inside cabinets, closets, and drawers",
				"Vacuum and wipe air vents and returns",
			}},
			{Label: "Detail Pass", Items: []string{
				"Remove paint splatter and sticker residue from fixtures",
				"Clean windows, frames, and tracks of construction debris",
				"Damp-wipe baseboards and door frames",
				"Scrub floors, then mop twice (fine dust re-settles)",
			}},
			{Label: "Wrap-Up", Items: []string{
				"Bag and remove construction dust and debris",
				"Final dust check on flat surfaces",
				"Walkthrough with builder or homeowner",
			}},
		},
	},
	model.TagListingPrep: {
		Tag: model.TagListingPrep,
		Sections: []model.Section{
			{Label: "Arrival", Items: []string{
				"Confirm photo/showing date with agent",
				"Note clutter to flag for agent (we clean, not stage)",
			}},
			{Label: "Camera-Ready Clean", Items: []string{
				"Shine all mirrors, glass, and fixtures",
				"Clear and wipe all counters completely",
				"Clean windows inside, sills, and tracks",
				"Vacuum with attention to visible edges and corners",
				"Mop hard floors to streak-free finish",
			}},
			{Label: "Detail Touches", Items: []string{
				"Fold towels and square rugs for photos",
				"Wipe front door, porch light, and entry hardware",
				"Empty every trash bin and hide the bins",
				"Open blinds per agent's lighting instructions",
			}},
			{Label: "Wrap-Up", Items: []string{
				"Final room-by-room scan at camera height",
				"Confirm with agent that home is photo-ready",
				"Lock up per agent instructions",
			}},
		},
	},
	model.TagOfficeCommercial: {
		Tag: model.TagOfficeCommercial,
		Sections: []model.Section{
			{Label: "Arrival", Items: []string{
				"Sign in per building procedure",
				"Check with site contact for problem areas",
			}},
			{Label: "Work Areas", Items: []string{
				"Empty desk-side trash and recycling",
				"Dust desks around equipment, do not move papers",
				"Wipe shared surfaces, door handles, and light switches",
				"Vacuum carpet tiles and mats",
			}},
			{Label: "Common Areas", Items: []string{
				"Clean break room counters, sink, and microwave",
				"Run or empty dishwasher per contract",
				"Restock paper towels and soap",
				"Clean and disinfect restrooms, restock supplies",
				"Sweep and mop hard floors",
			}},
			{Label: "Wrap-Up", Items: []string{
				"Take trash to building dumpster",
				"Set alarm and lock per building procedure",
				"Log supply restock needs for the office manager",
			}},
		},
	},
	model.TagOneTime: {
		Tag: model.TagOneTime,
		Sections: []model.Section{
			{Label: "Arrival", Items: []string{
				"Walk through with client and confirm scope",
				"Take BEFORE photos of every room, multiple angles",
			}},
			{Label: "Kitchen", Items: []string{
				"Wipe counters, appliances, and cabinet fronts",
				"Clean stovetop, microwave, and sink",
				"Sweep and mop floor",
			}},
			{Label: "Bathrooms", Items: []string{
				"Scrub toilet, shower, tub, and sink",
				"Polish mirror and fixtures",
				"Sweep and mop floor",
			}},
			{Label: "Living Areas & Bedrooms", Items: []string{
				"Dust all surfaces",
				"Vacuum and mop floors",
				"Tidy and make beds if requested",
			}},
			{Label: "Wrap-Up", Items: []string{
				"Take AFTER photos of every room, multiple angles",
				"Review completed work with client",
				"Leave card for future bookings",
			}},
		},
	},
}
