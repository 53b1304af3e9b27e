package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceStatusValid(t *testing.T) {
	for _, s := range []AttendanceStatus{AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, AttendanceStatus("tardy").Valid())
	assert.False(t, AttendanceStatus("").Valid())
}

func TestStatusCountsTotal(t *testing.T) {
	assert.Equal(t, 0, StatusCounts{}.Total())
	assert.Equal(t, 8, StatusCounts{Present: 5, Absent: 2, Late: 1}.Total())
}
