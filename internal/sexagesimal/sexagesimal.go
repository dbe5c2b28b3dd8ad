// Package sexagesimal renders decimal hours and degrees as the fixed-width
// colon separated strings written into plate headers.
package sexagesimal

import (
	"fmt"
	"math"
)

// DegreesPerHour converts right ascension hours to degrees.
const DegreesPerHour = 15.0

// split breaks a non-negative value in units into whole units, minutes and
// seconds. Seconds are rounded to integers and carried upwards.
func split(v float64) (units, minutes, seconds int64) {
	total := int64(math.Round(v * 3600))
	return total / 3600, (total / 60) % 60, total % 60
}

// HoursToHMS renders decimal hours as hh:mm:ss. Negative values get a
// leading minus; hours beyond 24 are not wrapped.
func HoursToHMS(hours float64) string {
	sign := ""
	if hours < 0 {
		sign = "-"
		hours = -hours
	}
	h, m, s := split(hours)
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
}

// DegToDMS renders degrees as ±dd:mm:ss with an explicit sign.
func DegToDMS(deg float64) string {
	sign := "+"
	if deg < 0 {
		sign = "-"
		deg = -deg
	}
	d, m, s := split(deg)
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, d, m, s)
}

// DegToHMS renders an angle in degrees as a time angle hh:mm:ss. Angles of
// 360 degrees or more are not wrapped.
func DegToHMS(deg float64) string {
	return HoursToHMS(deg / DegreesPerHour)
}
