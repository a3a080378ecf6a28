package argspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResult_TypedAccessors(t *testing.T) {
	result := newParseResult()
	result.setValue("name", "joe")
	result.setValue("count", int64(3))
	result.setValue("ratio", 1.5)
	result.setValue("force", true)
	result.appendValue("tags", "a")
	result.appendValue("tags", "b")

	name, err := result.String("name")
	require.NoError(t, err)
	assert.Equal(t, "joe", name)

	count, err := result.Int("count")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	ratio, err := result.Float("ratio")
	require.NoError(t, err)
	assert.Equal(t, 1.5, ratio)

	force, err := result.Bool("force")
	require.NoError(t, err)
	assert.True(t, force)

	tags, err := result.Strings("tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tags)

	values, err := result.Values("tags")
	require.NoError(t, err)
	assert.Len(t, values, 2)
}

func TestParseResult_FieldNotFound(t *testing.T) {
	result := newParseResult()

	_, err := result.String("missing")
	assert.ErrorIs(t, err, ErrFieldNotFound)
	_, err = result.Int("missing")
	assert.ErrorIs(t, err, ErrFieldNotFound)
	_, err = result.Values("missing")
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestParseResult_TypeMismatch(t *testing.T) {
	result := newParseResult()
	result.setValue("count", int64(3))

	_, err := result.String("count")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = result.Bool("count")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = result.Float("count")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = result.Strings("count")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestParseResult_Time(t *testing.T) {
	result := newParseResult()
	result.setValue("since", "2011-01-19 22:15")
	result.setValue("junk", "not a timestamp")

	since, err := result.Time("since")
	require.NoError(t, err)
	assert.Equal(t, 2011, since.Year())

	_, err = result.Time("junk")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestParseResult_SeenVsHas(t *testing.T) {
	result := newParseResult()
	result.setValue("level", "info")

	assert.True(t, result.Has("level"))
	assert.False(t, result.Seen("level"))

	result.markSeen("level")
	assert.True(t, result.Seen("level"))
}
