package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GasMileageTracker/internal/apperr"
)

func TestIsDate(t *testing.T) {
	accepted := []string{"2024/01/01", "2024/1/1", "1999/12/31", "2024/1/31"}
	for _, s := range accepted {
		assert.True(t, IsDate(s), s)
	}

	rejected := []string{"2024-01-01", "24/1/1", "", "2024/001/01", "2024/01/01 ", " 2024/01/01", "2024/01/01\n", "abcd/01/01"}
	for _, s := range rejected {
		assert.False(t, IsDate(s), "%q", s)
	}
}

func TestIsNumber(t *testing.T) {
	for _, s := range []string{"0", "20", "35.5", "007", "1.25"} {
		assert.True(t, IsNumber(s), s)
	}
	for _, s := range []string{"12.", ".5", "abc", "", "-1", "1.2.3", "1e3", "１２"} {
		assert.False(t, IsNumber(s), "%q", s)
	}
}

func TestIsInteger(t *testing.T) {
	assert.True(t, IsInteger("10300"))
	assert.False(t, IsInteger("10300.5"))
	assert.False(t, IsInteger(""))
	assert.False(t, IsInteger("10,300"))
}

func TestValidate(t *testing.T) {
	t.Run("all fields pass", func(t *testing.T) {
		res := Validate("2024/05/01", "20", "10300")
		assert.Equal(t, 3, res.Passed)
		assert.True(t, res.OK())
		assert.Empty(t, res.Errors)
		assert.NoError(t, res.Err())
	})

	t.Run("decimal gas passes", func(t *testing.T) {
		res := Validate("2024/5/1", "20.5", "10300")
		assert.True(t, res.OK())
	})

	t.Run("one message per failed field", func(t *testing.T) {
		res := Validate("2024-05-01", "20", "103.5")
		assert.Equal(t, 1, res.Passed)
		require.Len(t, res.Errors, 2)
		assert.Equal(t, FieldDate, res.Errors[0].Field)
		assert.Equal(t, FieldTotalMileage, res.Errors[1].Field)
	})

	t.Run("nothing passes", func(t *testing.T) {
		res := Validate("", "", "")
		assert.Equal(t, 0, res.Passed)
		assert.Len(t, res.Errors, 3)

		var ve *apperr.ValidationError
		require.True(t, errors.As(res.Err(), &ve))
		assert.Len(t, ve.Fields, 3)
		assert.Equal(t, "validation", apperr.Kind(res.Err()))
	})
}
