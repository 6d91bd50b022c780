// Package features defines the sensor-location universe and the fixed rule
// that expands a location into its measurement column names.
package features

import "fmt"

// Location is a physical sensor placement on the athlete or the dumbbell.
type Location string

// The fixed universe of sensor locations, in natural order.
const (
	Belt     Location = "belt"
	Arm      Location = "arm"
	Dumbbell Location = "dumbbell"
	Forearm  Location = "forearm"
)

// Universe returns the full location universe in natural order.
func Universe() []Location {
	return []Location{Belt, Arm, Dumbbell, Forearm}
}

// eulerChannels carry no axis suffix.
var eulerChannels = []string{"roll", "pitch", "yaw"}

// triaxialChannels expand over the x, y and z axes.
var triaxialChannels = []string{"gyros", "accel", "magnet"}

var axes = []string{"x", "y", "z"}

// ColumnsPerLocation is the number of measurement columns one location expands to.
const ColumnsPerLocation = 13

// LocationColumns returns the measurement column names for a single location,
// following the <type>_<location>[_<axis>] naming convention.
func LocationColumns(loc Location) []string {
	cols := make([]string, 0, ColumnsPerLocation)
	for _, ch := range eulerChannels {
		cols = append(cols, fmt.Sprintf("%s_%s", ch, loc))
	}
	cols = append(cols, fmt.Sprintf("total_accel_%s", loc))
	for _, ch := range triaxialChannels {
		for _, ax := range axes {
			cols = append(cols, fmt.Sprintf("%s_%s_%s", ch, loc, ax))
		}
	}
	return cols
}

// Columns returns the measurement column names for a subset of locations,
// in subset order. The expansion rule is shared with the dataset loader so
// that generated names always match the input schema.
func Columns(sub Subset) []string {
	cols := make([]string, 0, len(sub)*ColumnsPerLocation)
	for _, loc := range sub {
		cols = append(cols, LocationColumns(loc)...)
	}
	return cols
}
