package features

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestLocationColumns(t *testing.T) {
	got := LocationColumns(Belt)

	want := []string{
		"roll_belt", "pitch_belt", "yaw_belt",
		"total_accel_belt",
		"gyros_belt_x", "gyros_belt_y", "gyros_belt_z",
		"accel_belt_x", "accel_belt_y", "accel_belt_z",
		"magnet_belt_x", "magnet_belt_y", "magnet_belt_z",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LocationColumns mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, got, ColumnsPerLocation)
}

func TestColumns_SubsetExpansion(t *testing.T) {
	got := Columns(Subset{Belt, Forearm})

	assert.Len(t, got, 2*ColumnsPerLocation)
	// Subset order is preserved: belt columns first, then forearm.
	assert.Equal(t, "roll_belt", got[0])
	assert.Equal(t, "roll_forearm", got[ColumnsPerLocation])
	assert.Equal(t, "magnet_forearm_z", got[len(got)-1])
}
