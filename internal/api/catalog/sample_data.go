package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

// Fixed identifiers so favorites and reviews stay stable across restarts.
var (
	buildingLibraryID  = uuid.MustParse("0c2f6c2e-9d9b-4b7a-8b1e-5a1f2f3c4d01")
	buildingJSOMID     = uuid.MustParse("0c2f6c2e-9d9b-4b7a-8b1e-5a1f2f3c4d02")
	buildingSLCID      = uuid.MustParse("0c2f6c2e-9d9b-4b7a-8b1e-5a1f2f3c4d03")
	buildingFoundersID = uuid.MustParse("0c2f6c2e-9d9b-4b7a-8b1e-5a1f2f3c4d04")
	buildingECSWID     = uuid.MustParse("0c2f6c2e-9d9b-4b7a-8b1e-5a1f2f3c4d05")
	buildingECSSID     = uuid.MustParse("0c2f6c2e-9d9b-4b7a-8b1e-5a1f2f3c4d06")

	spotLibraryThirdID  = uuid.MustParse("7a0d1e2b-3c4d-4e5f-9a0b-1c2d3e4f5a01")
	spotJSOMLoungeID    = uuid.MustParse("7a0d1e2b-3c4d-4e5f-9a0b-1c2d3e4f5a02")
	spotSLCOpenID       = uuid.MustParse("7a0d1e2b-3c4d-4e5f-9a0b-1c2d3e4f5a03")
	spotFoundersLabID   = uuid.MustParse("7a0d1e2b-3c4d-4e5f-9a0b-1c2d3e4f5a04")
	spotECSWLabID       = uuid.MustParse("7a0d1e2b-3c4d-4e5f-9a0b-1c2d3e4f5a05")
	spotECSSLabsID      = uuid.MustParse("7a0d1e2b-3c4d-4e5f-9a0b-1c2d3e4f5a06")

	reviewLibraryQuietID   = uuid.MustParse("b1e6f3a0-1111-4a2b-9c3d-0e1f2a3b4c01")
	reviewLibraryCrowdedID = uuid.MustParse("b1e6f3a0-1111-4a2b-9c3d-0e1f2a3b4c02")
	reviewJSOMGroupsID     = uuid.MustParse("b1e6f3a0-1111-4a2b-9c3d-0e1f2a3b4c03")
	reviewSLCNoisyID       = uuid.MustParse("b1e6f3a0-1111-4a2b-9c3d-0e1f2a3b4c04")
)

var sampleBuildings = []types.Building{
	{
		ID:      buildingLibraryID,
		Name:    "McDermott Library",
		Code:    "MC",
		Address: "800 W Campbell Rd, Richardson, TX 75080",
		OpeningHours: map[string]string{
			"Monday":    "7:00 AM - 12:00 AM",
			"Tuesday":   "7:00 AM - 12:00 AM",
			"Wednesday": "7:00 AM - 12:00 AM",
			"Thursday":  "7:00 AM - 12:00 AM",
			"Friday":    "7:00 AM - 6:00 PM",
			"Saturday":  "9:00 AM - 6:00 PM",
			"Sunday":    "12:00 PM - 12:00 AM",
		},
		ImageNames: []string{"mcdermott_exterior", "mcdermott_interior"},
		Latitude:   32.98751,
		Longitude:  -96.74772,
	},
	{
		ID:      buildingJSOMID,
		Name:    "Jindal School of Management",
		Code:    "JSOM",
		Address: "800 W Campbell Rd, Richardson, TX 75080",
		OpeningHours: map[string]string{
			"Monday":    "7:00 AM - 10:00 PM",
			"Tuesday":   "7:00 AM - 10:00 PM",
			"Wednesday": "7:00 AM - 10:00 PM",
			"Thursday":  "7:00 AM - 10:00 PM",
			"Friday":    "7:00 AM - 7:00 PM",
			"Saturday":  "9:00 AM - 5:00 PM",
			"Sunday":    "12:00 PM - 5:00 PM",
		},
		ImageNames: []string{"jsom_exterior", "jsom_interior"},
		Latitude:   32.98525,
		Longitude:  -96.74697,
	},
	{
		ID:      buildingSLCID,
		Name:    "Student Learning Center",
		Code:    "SLC",
		Address: "800 W Campbell Rd, Richardson, TX 75080",
		OpeningHours: map[string]string{
			"Monday":    "7:00 AM - 11:00 PM",
			"Tuesday":   "7:00 AM - 11:00 PM",
			"Wednesday": "7:00 AM - 11:00 PM",
			"Thursday":  "7:00 AM - 11:00 PM",
			"Friday":    "7:00 AM - 9:00 PM",
			"Saturday":  "9:00 AM - 6:00 PM",
			"Sunday":    "12:00 PM - 9:00 PM",
		},
		ImageNames: []string{"slc_exterior", "slc_interior"},
		Latitude:   32.99014,
		Longitude:  -96.75036,
	},
	{
		ID:      buildingFoundersID,
		Name:    "Founders Building",
		Code:    "FO",
		Address: "800 W Campbell Rd, Richardson, TX 75080",
		// The en-dash entries are preserved from the source data; the hours
		// evaluator fails closed on them.
		OpeningHours: map[string]string{
			"Monday":    "8:00am – 10:45pm",
			"Tuesday":   "8:00am – 10:45pm",
			"Wednesday": "8:00am – 10:45pm",
			"Thursday":  "8:00am – 10:45pm",
			"Friday":    "8:00am – 9:45pm",
			"Saturday":  "10:00am – 6:45pm",
			"Sunday":    "12:00 PM - 9:45 PM",
		},
		ImageNames: []string{"founders_exterior", "founders_interior"},
		Latitude:   32.98686,
		Longitude:  -96.75302,
	},
	{
		ID:      buildingECSWID,
		Name:    "Engineering and Computer Science West",
		Code:    "ECSW",
		Address: "800 W Campbell Rd, Richardson, TX 75080",
		OpeningHours: map[string]string{
			"Monday":    "7:00 AM - 11:00 PM",
			"Tuesday":   "7:00 AM - 11:00 PM",
			"Wednesday": "7:00 AM - 11:00 PM",
			"Thursday":  "7:00 AM - 11:00 PM",
			"Friday":    "7:00 AM - 8:00 PM",
			"Saturday":  "Closed",
			"Sunday":    "Closed",
		},
		ImageNames: []string{"ecsw_exterior"},
		Latitude:   32.98627,
		Longitude:  -96.75164,
	},
	{
		ID:      buildingECSSID,
		Name:    "Engineering and Computer Science South",
		Code:    "ECSS",
		Address: "800 W Campbell Rd, Richardson, TX 75080",
		OpeningHours: map[string]string{
			"Monday":    "7:00 AM - 11:00 PM",
			"Tuesday":   "7:00 AM - 11:00 PM",
			"Wednesday": "7:00 AM - 11:00 PM",
			"Thursday":  "7:00 AM - 11:00 PM",
			"Friday":    "7:00 AM - 8:00 PM",
			"Saturday":  "9:00 AM - 5:00 PM",
			"Sunday":    "Closed",
		},
		ImageNames: []string{"ecss_exterior"},
		Latitude:   32.98642,
		Longitude:  -96.75043,
	},
}

var sampleSpots = []types.StudySpot{
	{
		ID:          spotLibraryThirdID,
		Name:        "McDermott Library - 3rd Floor",
		BuildingID:  buildingLibraryID,
		Floor:       3,
		Description: "Quiet study area with individual desks and natural lighting.",
		Features:    []string{"Quiet", "Individual Study", "Power Outlets", "WiFi"},
		Capacity:    100,
		Latitude:    32.98783650172627,
		Longitude:   -96.7478852394324,
		OpeningHours: map[string]string{
			"Monday":    "7:00 AM - 12:00 AM",
			"Tuesday":   "7:00 AM - 12:00 AM",
			"Wednesday": "7:00 AM - 12:00 AM",
			"Thursday":  "7:00 AM - 12:00 AM",
			"Friday":    "7:00 AM - 6:00 PM",
			"Saturday":  "9:00 AM - 6:00 PM",
			"Sunday":    "12:00 PM - 12:00 AM",
		},
		ReviewIDs:     []uuid.UUID{reviewLibraryQuietID, reviewLibraryCrowdedID},
		AverageRating: 4.5,
	},
	{
		ID:          spotJSOMLoungeID,
		Name:        "JSOM - 2nd Floor Lounge",
		BuildingID:  buildingJSOMID,
		Floor:       2,
		Description: "Open collaboration space with comfortable seating.",
		Features:    []string{"Group Study", "Power Outlets", "WiFi", "Coffee Nearby"},
		Capacity:    40,
		Latitude:    32.98519557093538,
		Longitude:   -96.74690097620241,
		OpeningHours: map[string]string{
			"Monday":    "7:00 AM - 10:00 PM",
			"Tuesday":   "7:00 AM - 10:00 PM",
			"Wednesday": "7:00 AM - 10:00 PM",
			"Thursday":  "7:00 AM - 10:00 PM",
			"Friday":    "7:00 AM - 7:00 PM",
			"Saturday":  "9:00 AM - 5:00 PM",
			"Sunday":    "12:00 PM - 5:00 PM",
		},
		ReviewIDs:     []uuid.UUID{reviewJSOMGroupsID},
		AverageRating: 4.2,
	},
	{
		ID:          spotSLCOpenID,
		Name:        "SLC - Open Study Area",
		BuildingID:  buildingSLCID,
		Floor:       1,
		Description: "Bright and spacious study area with various seating options.",
		Features:    []string{"Group Study", "Individual Study", "Power Outlets", "WiFi"},
		Capacity:    75,
		Latitude:    32.9901393,
		Longitude:   -96.7503553,
		OpeningHours: map[string]string{
			"Monday":    "7:00 AM - 11:00 PM",
			"Tuesday":   "7:00 AM - 11:00 PM",
			"Wednesday": "7:00 AM - 11:00 PM",
			"Thursday":  "7:00 AM - 11:00 PM",
			"Friday":    "7:00 AM - 9:00 PM",
			"Saturday":  "9:00 AM - 6:00 PM",
			"Sunday":    "12:00 PM - 9:00 PM",
		},
		ReviewIDs:     []uuid.UUID{reviewSLCNoisyID},
		AverageRating: 3.8,
	},
	{
		ID:          spotFoundersLabID,
		Name:        "Founders Building - Founders Lab",
		BuildingID:  buildingFoundersID,
		Floor:       1,
		Description: "Open collaboration space with comfortable seating.",
		Features:    []string{"Group Study", "Power Outlets", "WiFi", "Coffee Nearby"},
		Capacity:    40,
		Latitude:    32.9868993,
		Longitude:   -96.7531533,
		OpeningHours: map[string]string{
			"Monday":   "8:00 AM - 10:45 PM",
			"Tuesday":  "8:00 AM - 10:45 PM",
			"Saturday": "10:00 AM - 6:45 PM",
			"Sunday":   "12:00 PM - 9:45 PM",
		},
		AverageRating: 4.0,
	},
	{
		ID:          spotECSWLabID,
		Name:        "ECSW 3.335 - Engineering Open Access Lab",
		BuildingID:  buildingECSWID,
		Floor:       3,
		Description: "Engineering Open Access Lab with computer workstations and study space.",
		Features:    []string{"Computer Lab", "Power Outlets", "WiFi", "Quiet"},
		Capacity:    40,
		Latitude:    32.98608739628137,
		Longitude:   -96.75152005916523,
		OpeningHours: map[string]string{
			"Monday":    "7:00 AM - 11:00 PM",
			"Tuesday":   "7:00 AM - 11:00 PM",
			"Wednesday": "7:00 AM - 11:00 PM",
			"Thursday":  "7:00 AM - 11:00 PM",
			"Friday":    "7:00 AM - 8:00 PM",
			"Saturday":  "Closed",
			"Sunday":    "Closed",
		},
		AverageRating: 4.3,
	},
	{
		ID:          spotECSSLabsID,
		Name:        "ECSS 2.103/2.104 - Computer Labs",
		BuildingID:  buildingECSSID,
		Floor:       2,
		Description: "Large computer labs with plenty of workstations and space for collaborative work.",
		Features:    []string{"Computer Lab", "Power Outlets", "WiFi", "Group Study"},
		Capacity:    128,
		Latitude:    32.98638887491088,
		Longitude:   -96.75046863323148,
		OpeningHours: map[string]string{
			"Monday":    "7:00 AM - 11:00 PM",
			"Tuesday":   "7:00 AM - 11:00 PM",
			"Wednesday": "7:00 AM - 11:00 PM",
			"Thursday":  "7:00 AM - 11:00 PM",
			"Friday":    "7:00 AM - 8:00 PM",
			"Saturday":  "9:00 AM - 5:00 PM",
			"Sunday":    "Closed",
		},
		AverageRating: 3.9,
	},
}

var sampleReviews = []types.Review{
	{
		ID:        reviewLibraryQuietID,
		SpotID:    spotLibraryThirdID,
		Rating:    5,
		Comment:   "Super quiet and peaceful. Perfect for focused study.",
		Timestamp: time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC),
		UserName:  "StudiousComet",
	},
	{
		ID:        reviewLibraryCrowdedID,
		SpotID:    spotLibraryThirdID,
		Rating:    4,
		Comment:   "Great space but can get crowded during finals week.",
		Timestamp: time.Date(2025, time.June, 7, 9, 15, 0, 0, time.UTC),
		UserName:  "AcademicAce",
	},
	{
		ID:        reviewJSOMGroupsID,
		SpotID:    spotJSOMLoungeID,
		Rating:    5,
		Comment:   "Best place for group work. Plenty of whiteboards and space.",
		Timestamp: time.Date(2025, time.June, 11, 18, 45, 0, 0, time.UTC),
		UserName:  "TeamWorkPro",
	},
	{
		ID:        reviewSLCNoisyID,
		SpotID:    spotSLCOpenID,
		Rating:    3,
		Comment:   "Good location but gets noisy sometimes.",
		Timestamp: time.Date(2025, time.June, 5, 11, 0, 0, 0, time.UTC),
		UserName:  "QuietSeeker",
	},
}
