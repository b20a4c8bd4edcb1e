// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test structured error creation, wrapping, code matching, and details

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/kn327/NetworkLocationInfo/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CreatesErrorWithCodeAndMessage(t *testing.T) {
	err := errors.New(errors.ErrInvalidInput, "path is empty")

	assert.Equal(t, errors.ErrInvalidInput, err.Code)
	assert.Equal(t, "path is empty", err.Error())
	assert.Nil(t, err.Unwrap(), "new error should have no cause")
}

func TestNewf_FormatsMessage(t *testing.T) {
	err := errors.Newf(errors.ErrMalformedUNC, "path %q is not a UNC path", `C:\temp`)

	assert.Equal(t, errors.ErrMalformedUNC, err.Code)
	assert.Equal(t, `path "C:\\temp" is not a UNC path`, err.Error())
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := errors.Wrap(cause, errors.ErrIOFailure, "cannot rename entry")

	require.NotNil(t, err)
	assert.Equal(t, errors.ErrIOFailure, err.Code)
	assert.Equal(t, "cannot rename entry: permission denied", err.Error())
	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, stderrors.Is(err, cause), "wrapped error should match its cause")
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrIOFailure, "ignored"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrIOFailure, "ignored %s", "too"))
}

func TestWrapf_FormatsMessage(t *testing.T) {
	cause := stderrors.New("no such file")
	err := errors.Wrapf(cause, errors.ErrNotFound, "entry %q does not exist", "projects")

	require.NotNil(t, err)
	assert.Equal(t, `entry "projects" does not exist: no such file`, err.Error())
}

func TestIs_MatchesByCode(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "shortcut entry does not exist")

	assert.True(t, stderrors.Is(err, &errors.Error{Code: errors.ErrNotFound}))
	assert.False(t, stderrors.Is(err, &errors.Error{Code: errors.ErrIOFailure}))
}

func TestIs_MatchesThroughWrappingChain(t *testing.T) {
	inner := errors.New(errors.ErrMalformedUNC, "missing share segment")
	outer := fmt.Errorf("checking path: %w", inner)

	assert.True(t, stderrors.Is(outer, &errors.Error{Code: errors.ErrMalformedUNC}))
	assert.True(t, errors.IsCode(outer, errors.ErrMalformedUNC))
}

func TestIsCode(t *testing.T) {
	err := errors.New(errors.ErrLinkParse, "shell link data truncated")

	assert.True(t, errors.IsCode(err, errors.ErrLinkParse))
	assert.False(t, errors.IsCode(err, errors.ErrNotFound))
	assert.False(t, errors.IsCode(nil, errors.ErrLinkParse))
	assert.False(t, errors.IsCode(stderrors.New("plain"), errors.ErrLinkParse))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, errors.ErrConfigParse, errors.CodeOf(errors.New(errors.ErrConfigParse, "bad toml")))
	assert.Equal(t, errors.ErrUnknown, errors.CodeOf(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.CodeOf(nil))
}

func TestCodeOf_FindsCodeInChain(t *testing.T) {
	inner := errors.New(errors.ErrIOFailure, "disk gone")
	outer := fmt.Errorf("listing entries: %w", inner)

	assert.Equal(t, errors.ErrIOFailure, errors.CodeOf(outer))
}

func TestWithDetail_AttachesValues(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "shortcut entry does not exist").
		WithDetail("path", `\\backup\archive`).
		WithDetail("entry", "archive (backup)")

	require.NotNil(t, err.Details)
	assert.Equal(t, `\\backup\archive`, err.Details["path"])
	assert.Equal(t, "archive (backup)", err.Details["entry"])
}
