package watch

import (
	"fmt"
	"strings"
	"time"
)

// Reading is one sample of the wall clock. It is replaced every tick.
type Reading struct {
	Hour24  int
	Minute  int
	Second  int
	Weekday time.Weekday
	Month   time.Month
	Day     int
	Year    int
}

// Read samples t in its own location.
func Read(t time.Time) Reading {
	return Reading{
		Hour24:  t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		Weekday: t.Weekday(),
		Month:   t.Month(),
		Day:     t.Day(),
		Year:    t.Year(),
	}
}

// Hour12 maps 0 and 12 to 12.
func (r Reading) Hour12() int {
	if h := r.Hour24 % 12; h != 0 {
		return h
	}
	return 12
}

func (r Reading) Meridiem() string {
	if r.Hour24 < 12 {
		return "AM"
	}
	return "PM"
}

// Hand angles in degrees clockwise from 12 o'clock.
func (r Reading) HourAngle() float64 {
	return float64(r.Hour24%12)*30 + float64(r.Minute)*0.5
}

func (r Reading) MinuteAngle() float64 { return float64(r.Minute) * 6 }
func (r Reading) SecondAngle() float64 { return float64(r.Second) * 6 }

// DisplayHour is the hour shown on the digital and neon faces.
func (r Reading) DisplayHour(hour24 bool) int {
	if hour24 {
		return r.Hour24
	}
	return r.Hour12()
}

// Digital renders HH:MM:SS (or HH:MM when seconds are hidden).
func (r Reading) Digital(hour24, seconds bool) string {
	if !seconds {
		return fmt.Sprintf("%02d:%02d", r.DisplayHour(hour24), r.Minute)
	}
	return fmt.Sprintf("%02d:%02d:%02d", r.DisplayHour(hour24), r.Minute, r.Second)
}

// Compact is the small readout under the analog face; always 12-hour.
func (r Reading) Compact() string {
	return fmt.Sprintf("%02d:%02d:%02d", r.Hour12(), r.Minute, r.Second)
}

// DayName is e.g. "Monday"; DateLine is e.g. "January 2, 2006".
func (r Reading) DayName() string { return r.Weekday.String() }

func (r Reading) DateLine() string {
	return fmt.Sprintf("%s %d, %d", r.Month, r.Day, r.Year)
}

// Neon is the 4-character HHMM digit buffer.
func (r Reading) Neon(hour24 bool) string {
	return fmt.Sprintf("%02d%02d", r.DisplayHour(hour24), r.Minute)
}

// NeonCaption is e.g. "MON JAN 02".
func (r Reading) NeonCaption() string {
	day := strings.ToUpper(r.Weekday.String()[:3])
	month := strings.ToUpper(r.Month.String()[:3])
	return fmt.Sprintf("%s %s %02d", day, month, r.Day)
}
