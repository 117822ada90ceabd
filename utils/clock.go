package utils

import "time"

// EndOfDay adalah sentinel akhir hari untuk interval half-open,
// dipakai oleh full-day block (00:00–24:00).
const EndOfDay = "24:00"

// ValidDate memeriksa format tanggal YYYY-MM-DD.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ValidClock memeriksa jam dinding zero-padded "HH:MM".
// "24:00" valid hanya sebagai batas akhir interval.
func ValidClock(s string) bool {
	if s == EndOfDay {
		return true
	}
	_, err := time.Parse("15:04", s)
	return err == nil && len(s) == 5
}

// ValidInterval memeriksa start < end dalam satu hari kalender.
// Perbandingan string cukup karena keduanya zero-padded.
func ValidInterval(start, end string) bool {
	if !ValidClock(start) || !ValidClock(end) || start == EndOfDay {
		return false
	}
	return start < end
}
