package schema_registry

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultOfClassifiesErrors(t *testing.T) {
	found := ResultOf(3, nil)
	assert.True(t, found.IsFound())
	assert.Equal(t, 3, found.Value())
	assert.NoError(t, found.Err())

	for _, code := range []int{ErrorCodeSubjectNotFound, ErrorCodeSchemaNotFound, ErrorCodeSubjectCompatibilityNotFound} {
		res := ResultOf(0, &RegistryError{StatusCode: http.StatusNotFound, ErrorCode: code})
		assert.True(t, res.IsNotFound(), "code %d", code)
	}

	failed := ResultOf(0, &RegistryError{StatusCode: http.StatusInternalServerError, ErrorCode: 50001})
	assert.True(t, failed.IsFailed())
	var regErr *RegistryError
	assert.True(t, errors.As(failed.Err(), &regErr))
	assert.Equal(t, 50001, regErr.ErrorCode)

	// 40402 only answers explicit version lookups and is treated as a failure.
	assert.True(t, ResultOf(0, &RegistryError{StatusCode: http.StatusNotFound, ErrorCode: ErrorCodeVersionNotFound}).IsFailed())
}

func TestResultGetAndOrElse(t *testing.T) {
	v, err := NotFound[int](nil).Get()
	assert.Zero(t, v)
	assert.ErrorIs(t, err, ErrNotFound)

	v, err = NotFound[int](nil).OrElse(7)
	assert.NoError(t, err)
	assert.Equal(t, 7, v)

	boom := errors.New("boom")
	_, err = Failed[int](boom).OrElse(7)
	assert.ErrorIs(t, err, boom)

	assert.Error(t, Failed[int](nil).Err())
}

func TestZeroResultIsFailure(t *testing.T) {
	var res Result[string]
	assert.Equal(t, StatusFailed, res.Status())
	assert.Equal(t, "failed", res.Status().String())
}
