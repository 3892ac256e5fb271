// Package prompt renders the Friday persona system prompt.
package prompt

import (
	"fmt"
	"time"
)

// TimeZone is the region the persona reports the current time in.
const TimeZone = "Asia/Kolkata"

// timeLayout mirrors the en-IN 12-hour clock, e.g. "9:05:07 pm".
const timeLayout = "3:04:05 pm"

// istOffset is used when the tz database is unavailable on the host.
const istOffset = 5*60*60 + 30*60

var location = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation(TimeZone)
	if err != nil {
		return time.FixedZone("IST", istOffset)
	}
	return loc
}

// Clock renders t as a wall-clock time in TimeZone.
func Clock(t time.Time) string {
	return t.In(location).Format(timeLayout)
}

// System returns the system prompt for a request made at now.
func System(now time.Time) string {
	return fmt.Sprintf(`You are Friday, a friendly AI assistant that speaks in Hinglish (Hindi + English mix).
You help with music, jokes, time, weather, and general conversations.
Be concise, friendly, and helpful.
Current time: %s
Always respond in Hinglish.`, Clock(now))
}
