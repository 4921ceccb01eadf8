package planning

import (
	"strings"
	"time"

	"confdesk/core/store"
)

// conferenceNow is the current time in the conference's timezone, falling back
// to the default zone and then UTC when the name does not load.
func conferenceNow(zone string, now time.Time) time.Time {
	zone = strings.TrimSpace(zone)
	if zone == "" {
		zone = store.DefaultTimezone
	}
	if loc, err := time.LoadLocation(zone); err == nil {
		return now.In(loc)
	}
	if loc, err := time.LoadLocation(store.DefaultTimezone); err == nil {
		return now.In(loc)
	}
	return now.UTC()
}

func conferenceToday(zone string, now time.Time) store.Date {
	t := conferenceNow(zone, now)
	return store.NewDate(t.Year(), t.Month(), t.Day())
}
