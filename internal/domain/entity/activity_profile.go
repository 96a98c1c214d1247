package entity

import (
	"sort"
	"strings"
)

// SunnyCodes are the condition codes treated as sunny enough for
// sun-dependent activities.
var SunnyCodes = map[int]bool{0: true, 1: true, 2: true}

// IsSunnyCode reports whether the given condition code counts as sunny
func IsSunnyCode(code int) bool {
	return SunnyCodes[code]
}

// ActivityProfile is the declarative weather requirement set for one
// activity. Profiles are static reference data and never mutated at runtime.
type ActivityProfile struct {
	Name              string
	MinTempC          float64
	NeedSun           bool
	MaxPrecip         int
	MaxWindKmh        float64
	MinWindKmh        *float64
	DurationHours     float64
	BestTimeStart     int
	BestTimeEnd       int
	IndoorAlternative string
}

// kite flying is the only wind-dependent activity
var kiteMinWind = 15.0

var activityProfiles = map[string]ActivityProfile{
	"beach": {
		Name: "beach", MinTempC: 24, NeedSun: true, MaxPrecip: 20, MaxWindKmh: 35,
		DurationHours: 4, BestTimeStart: 10, BestTimeEnd: 16,
		IndoorAlternative: "Visit aquarium or spa",
	},
	"hiking": {
		Name: "hiking", MinTempC: 12, NeedSun: false, MaxPrecip: 30, MaxWindKmh: 45,
		DurationHours: 3, BestTimeStart: 8, BestTimeEnd: 17,
		IndoorAlternative: "Indoor rock climbing or gym workout",
	},
	"picnic": {
		Name: "picnic", MinTempC: 18, NeedSun: false, MaxPrecip: 30, MaxWindKmh: 35,
		DurationHours: 2, BestTimeStart: 11, BestTimeEnd: 15,
		IndoorAlternative: "Indoor food court or restaurant with outdoor seating",
	},
	"cycling": {
		Name: "cycling", MinTempC: 14, NeedSun: false, MaxPrecip: 25, MaxWindKmh: 35,
		DurationHours: 2, BestTimeStart: 7, BestTimeEnd: 18,
		IndoorAlternative: "Stationary cycling or spin class",
	},
	"swimming": {
		Name: "swimming", MinTempC: 22, NeedSun: false, MaxPrecip: 25, MaxWindKmh: 35,
		DurationHours: 1.5, BestTimeStart: 9, BestTimeEnd: 19,
		IndoorAlternative: "Indoor pool or spa",
	},
	"kayaking": {
		Name: "kayaking", MinTempC: 18, NeedSun: false, MaxPrecip: 25, MaxWindKmh: 30,
		DurationHours: 3, BestTimeStart: 9, BestTimeEnd: 17,
		IndoorAlternative: "Indoor rowing or water sports center",
	},
	"running": {
		Name: "running", MinTempC: 8, NeedSun: false, MaxPrecip: 40, MaxWindKmh: 40,
		DurationHours: 1, BestTimeStart: 6, BestTimeEnd: 20,
		IndoorAlternative: "Treadmill running or indoor track",
	},
	"tennis": {
		Name: "tennis", MinTempC: 15, NeedSun: false, MaxPrecip: 20, MaxWindKmh: 30,
		DurationHours: 2, BestTimeStart: 8, BestTimeEnd: 19,
		IndoorAlternative: "Indoor tennis court",
	},
	"golf": {
		Name: "golf", MinTempC: 12, NeedSun: false, MaxPrecip: 20, MaxWindKmh: 40,
		DurationHours: 4, BestTimeStart: 7, BestTimeEnd: 17,
		IndoorAlternative: "Driving range or golf simulator",
	},
	"fishing": {
		Name: "fishing", MinTempC: 10, NeedSun: false, MaxPrecip: 35, MaxWindKmh: 25,
		DurationHours: 4, BestTimeStart: 6, BestTimeEnd: 18,
		IndoorAlternative: "Visit aquarium or fishing equipment store",
	},
	"photography": {
		Name: "photography", MinTempC: 5, NeedSun: false, MaxPrecip: 45, MaxWindKmh: 50,
		DurationHours: 3, BestTimeStart: 7, BestTimeEnd: 19,
		IndoorAlternative: "Indoor photography (museums, architecture, portraits)",
	},
	"gardening": {
		Name: "gardening", MinTempC: 10, NeedSun: false, MaxPrecip: 20, MaxWindKmh: 30,
		DurationHours: 2, BestTimeStart: 8, BestTimeEnd: 17,
		IndoorAlternative: "Indoor plant care or visit garden center",
	},
	"bbq": {
		Name: "bbq", MinTempC: 16, NeedSun: false, MaxPrecip: 15, MaxWindKmh: 25,
		DurationHours: 3, BestTimeStart: 11, BestTimeEnd: 20,
		IndoorAlternative: "Indoor grilling or cooking class",
	},
	"festivals": {
		Name: "festivals", MinTempC: 12, NeedSun: false, MaxPrecip: 30, MaxWindKmh: 40,
		DurationHours: 6, BestTimeStart: 10, BestTimeEnd: 22,
		IndoorAlternative: "Indoor concerts or cultural events",
	},
	"camping": {
		Name: "camping", MinTempC: 8, NeedSun: false, MaxPrecip: 25, MaxWindKmh: 35,
		DurationHours: 24, BestTimeStart: 14, BestTimeEnd: 18,
		IndoorAlternative: "Glamping or cabin rental",
	},
	"skateboarding": {
		Name: "skateboarding", MinTempC: 10, NeedSun: false, MaxPrecip: 10, MaxWindKmh: 30,
		DurationHours: 2, BestTimeStart: 9, BestTimeEnd: 19,
		IndoorAlternative: "Indoor skate park",
	},
	"stargazing": {
		Name: "stargazing", MinTempC: 5, NeedSun: false, MaxPrecip: 10, MaxWindKmh: 20,
		DurationHours: 3, BestTimeStart: 20, BestTimeEnd: 2,
		IndoorAlternative: "Planetarium visit",
	},
	"skiing": {
		Name: "skiing", MinTempC: -5, NeedSun: false, MaxPrecip: 80, MaxWindKmh: 50,
		DurationHours: 6, BestTimeStart: 9, BestTimeEnd: 16,
		IndoorAlternative: "Indoor ski simulator",
	},
	"surfing": {
		Name: "surfing", MinTempC: 18, NeedSun: false, MaxPrecip: 40, MaxWindKmh: 25,
		DurationHours: 3, BestTimeStart: 7, BestTimeEnd: 17,
		IndoorAlternative: "Indoor surfing or wave pool",
	},
	"kite_flying": {
		Name: "kite_flying", MinTempC: 8, NeedSun: false, MaxPrecip: 20, MaxWindKmh: 45,
		MinWindKmh:    &kiteMinWind,
		DurationHours: 2, BestTimeStart: 10, BestTimeEnd: 17,
		IndoorAlternative: "Indoor kite making workshop",
	},
	"outdoor_dining": {
		Name: "outdoor_dining", MinTempC: 16, NeedSun: false, MaxPrecip: 15, MaxWindKmh: 25,
		DurationHours: 2, BestTimeStart: 12, BestTimeEnd: 21,
		IndoorAlternative: "Restaurant with covered terrace",
	},
}

// LookupProfile returns the profile registered for the activity, matching on
// the lowercased name.
func LookupProfile(activity string) (ActivityProfile, bool) {
	profile, ok := activityProfiles[strings.ToLower(activity)]
	return profile, ok
}

// ActivityNames returns the registered activity names in sorted order
func ActivityNames() []string {
	names := make([]string, 0, len(activityProfiles))
	for name := range activityProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profiles returns the full registry, keyed by lowercase activity name
func Profiles() map[string]ActivityProfile {
	return activityProfiles
}
