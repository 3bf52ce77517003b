package domain

import (
	"time"
)

// Date layouts, in Go reference-time notation.
const (
	// StorageLayout is d/M/yyyy HHmm, e.g. "2/12/2019 1800".
	StorageLayout = "2/1/2006 1504"
	// DisplayLayout is dd MMM yyyy, h:mm a, e.g. "02 Dec 2019, 6:00 pm".
	DisplayLayout = "02 Jan 2006, 3:04 pm"
)

// DateFormats holds the layouts used to read and write task timestamps.
// Its fields are unexported, so defaultDateFormats is the only instance:
// DefaultDateFormats hands it to the parser and the codec, and Task.DisplayDate
// reads it directly. Nothing mutates it after init.
type DateFormats struct {
	display string
	storage string
	inputs  []string
}

var defaultDateFormats = DateFormats{
	inputs: []string{
		StorageLayout,   // d/M/yyyy HHmm
		"2 Jan 06 1504", // d MMM yy HHmm
		"02-01-06 1504", // dd-MM-yy HHmm
	},
	display: DisplayLayout,
	storage: StorageLayout,
}

// DefaultDateFormats returns the accepted input layouts and the display and storage layouts.
func DefaultDateFormats() DateFormats {
	return defaultDateFormats
}

// Parse tries each input layout in order; the first match wins.
// Times are interpreted in the local time zone.
func (f DateFormats) Parse(s string) (time.Time, error) {
	for _, layout := range f.inputs {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, NewUserError(ErrInvalidDateTime,
		"Please input the date in d/M/yyyy HHmm, d MMM yy HHmm or dd-MM-yy HHmm format!")
}

// Display formats t for showing to the user.
func (f DateFormats) Display(t time.Time) string {
	return t.Format(f.display)
}

// Store formats t for the persisted file.
func (f DateFormats) Store(t time.Time) string {
	return t.Format(f.storage)
}
