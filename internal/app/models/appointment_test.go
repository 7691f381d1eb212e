package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to AppointmentStatus
		want     bool
	}{
		{AppointmentScheduled, AppointmentCompleted, true},
		{AppointmentScheduled, AppointmentCanceled, true},
		{AppointmentScheduled, AppointmentScheduled, true},
		{AppointmentCompleted, AppointmentCompleted, true},
		{AppointmentCompleted, AppointmentScheduled, false},
		{AppointmentCompleted, AppointmentCanceled, false},
		{AppointmentCanceled, AppointmentCanceled, true},
		{AppointmentCanceled, AppointmentScheduled, false},
		{AppointmentCanceled, AppointmentCompleted, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestAppointmentStatusBlocks(t *testing.T) {
	assert.True(t, AppointmentScheduled.Blocks())
	assert.True(t, AppointmentCompleted.Blocks())
	assert.False(t, AppointmentCanceled.Blocks())
}

func TestAppointmentOverlapsInterval(t *testing.T) {
	base := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)
	appt := &Appointment{
		StartTime: base,                      // 10:00
		EndTime:   base.Add(30 * time.Minute), // 10:30
	}

	at := func(min int) time.Time { return base.Add(time.Duration(min) * time.Minute) }

	// Touching endpoints do not overlap.
	assert.False(t, appt.OverlapsInterval(at(30), at(60)))
	assert.False(t, appt.OverlapsInterval(at(-30), at(0)))

	// Partial and full intersections do.
	assert.True(t, appt.OverlapsInterval(at(15), at(45)))
	assert.True(t, appt.OverlapsInterval(at(-15), at(15)))
	assert.True(t, appt.OverlapsInterval(at(5), at(25)))
	assert.True(t, appt.OverlapsInterval(at(-5), at(35)))
	assert.True(t, appt.OverlapsInterval(at(0), at(30)))

	// Disjoint intervals do not.
	assert.False(t, appt.OverlapsInterval(at(45), at(60)))
	assert.False(t, appt.OverlapsInterval(at(-60), at(-45)))
}
