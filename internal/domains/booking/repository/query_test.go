package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQueryShape(t *testing.T) {
	normalized := strings.Join(strings.Fields(listQuery), " ")

	tests := []struct {
		name     string
		fragment string
	}{
		{name: "bookings without rooms survive the join", fragment: "LEFT JOIN booking_rooms br ON br.booking_id = b.id LEFT JOIN rooms r ON r.id = br.room_id"},
		{name: "room numbers sort numerically then lexically", fragment: "ARRAY_AGG(r.room_number ORDER BY LENGTH(r.room_number), r.room_number)"},
		{name: "missing rooms are filtered out of the aggregate", fragment: "FILTER (WHERE r.room_number IS NOT NULL)"},
		{name: "zero rooms aggregate to an empty array", fragment: "'{}' ) AS room_numbers"},
		{name: "one row per booking", fragment: "GROUP BY b.id, c.id"},
		{name: "newest first with id tiebreak", fragment: "ORDER BY b.created_at DESC, b.id"},
		{name: "stay dates stay DATE typed", fragment: "b.check_in, b.check_out,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, normalized, tt.fragment)
		})
	}

	assert.NotContains(t, normalized, "INNER JOIN booking_rooms")
	assert.True(t, strings.HasSuffix(normalized, "ORDER BY b.created_at DESC, b.id"))
}
