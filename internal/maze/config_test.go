package maze

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidation_RejectsBadFields(t *testing.T) {
	cases := []struct {
		name       string
		opt        Option
		field      string
		constraint Constraint
	}{
		{"even height", WithHeight(4), "height", ConstraintParity},
		{"negative height", WithHeight(-3), "height", ConstraintSign},
		{"zero height", WithHeight(0), "height", ConstraintSign},
		{"even width", WithWidth(2), "width", ConstraintParity},
		{"negative width", WithWidth(-5), "width", ConstraintSign},
		{"negative max rooms", WithMaxRooms(-1), "max_rooms", ConstraintSign},
		{"negative room min size", WithRoomMinSize(-1), "room_min_size", ConstraintSign},
		{"negative room max size", WithRoomMaxSize(-2), "room_max_size", ConstraintSign},
		{"negative retry count", WithRetryCount(-7), "retry_count", ConstraintSign},
		{"zero retry count", WithRetryCount(0), "retry_count", ConstraintSign},
		{"probability above one", WithExtraConnectionProbability(1.1), "extra_connection_probability", ConstraintRange},
		{"negative probability", WithExtraConnectionProbability(-0.1), "extra_connection_probability", ConstraintRange},
		{"too many variations", WithMaxVariations(27), "max_variations", ConstraintRange},
		{"negative variations", WithMaxVariations(-1), "max_variations", ConstraintRange},
		{"negative spawns per room", WithSpawnsPerRoom(-1), "spawns_per_room", ConstraintSign},
		{"negative objects per room", WithObjectsPerRoom(-1), "objects_per_room", ConstraintSign},
		{"multi-character spawn token", WithSpawnToken("foo"), "spawn_token", ConstraintLength},
		{"empty spawn token", WithSpawnToken(""), "spawn_token", ConstraintLength},
		{"multi-character object token", WithObjectToken("bar"), "object_token", ConstraintLength},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := New(context.Background(), tc.opt)
			require.Error(t, err)
			require.Nil(t, m, "failed construction must not return an instance")

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "error must be a *ConfigError, got %T", err)
			assert.Equal(t, tc.field, cfgErr.Field)
			assert.Equal(t, tc.constraint, cfgErr.Constraint)
			assert.Contains(t, err.Error(), tc.field, "message must name the offending field")
		})
	}
}

func TestValidation_CrossField(t *testing.T) {
	m, err := New(context.Background(), WithRoomMinSize(4), WithRoomMaxSize(3))
	require.Error(t, err)
	require.Nil(t, m)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "room_min_size", cfgErr.Field)
	assert.Equal(t, ConstraintCrossField, cfgErr.Constraint)
	assert.Contains(t, err.Error(), "less than or equal to")
}

func TestValidation_AcceptsIndividuallyValidSizes(t *testing.T) {
	// The same sizes that fail as a pair pass when ordered correctly.
	m, err := New(context.Background(), WithRoomMinSize(3), WithRoomMaxSize(4), WithRandomSeed(1))
	require.NoError(t, err)
	require.NotNil(t, m)
}

func TestDefaults(t *testing.T) {
	m, err := New(context.Background(), WithRandomSeed(7))
	require.NoError(t, err)

	assert.Equal(t, DefaultHeight, m.Height())
	assert.Equal(t, DefaultWidth, m.Width())
	assert.Equal(t, DefaultHeight, m.EntityLayer().Height())
	assert.Equal(t, DefaultWidth, m.EntityLayer().Width())

	rooms := m.Rooms()
	require.Len(t, rooms, 1, "defaults place exactly one room")
	assert.Equal(t, 3, rooms[0].Width)
	assert.Equal(t, 3, rooms[0].Height)
	assert.EqualValues(t, 1, m.Passes())
}

func TestSeedAccessor(t *testing.T) {
	m, err := New(context.Background(), WithRandomSeed(12345))
	require.NoError(t, err)
	assert.EqualValues(t, 12345, m.Seed())
	assert.NotEqual(t, uuid.Nil, m.ID())
}
