package repository

import (
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNumbersQuery(t *testing.T) {
	query, args, err := resolveNumbersQuery([]string{"102", "C1", "101"})

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, room_number, type, bed, floor FROM rooms WHERE rooms.room_number = ANY($1)", query)
	require.Len(t, args, 1)

	literal, err := args[0].(driver.Valuer).Value()

	require.NoError(t, err)
	assert.Equal(t, `{"102","C1","101"}`, literal)
}
