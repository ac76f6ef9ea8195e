package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidArgument, "path contains a NUL byte")

	require.Equal(t, CodeInvalidArgument, err.Code())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, "path contains a NUL byte", err.Message())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[INVALID_ARGUMENT] path contains a NUL byte", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeTooManySymlinks, "more than %d links in %q", 40, "/a/b")
	require.Equal(t, "[TOO_MANY_SYMLINKS] more than 40 links in \"/a/b\"", err.Error())
}

func TestWrap(t *testing.T) {
	cause := &fs.PathError{Op: "mkdir", Path: "/x/y", Err: fs.ErrNotExist}
	err := Wrap(cause, CodeNotFound, "create_directory failed")

	require.Equal(t, CodeNotFound, err.Code())
	require.Equal(t, "create_directory failed", err.Message())
	require.Same(t, cause, err.Unwrap())
	require.True(t, stderrors.Is(err, fs.ErrNotExist))

	var pathErr *fs.PathError
	require.True(t, stderrors.As(err, &pathErr))
	require.Equal(t, "/x/y", pathErr.Path)
	require.Contains(t, err.Error(), "[NOT_FOUND] create_directory failed: mkdir /x/y")
}

func TestWrap_Nil(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeIOError, "ignored"))
	require.Nil(t, Wrapf(nil, CodeIOError, "ignored %d", 1))
	require.Nil(t, WrapWithContext(nil, CodeIOError, "ignored", map[string]interface{}{"a": 1}))
}

func TestWrap_PreservesClassification(t *testing.T) {
	inner := WithClassification(New(CodeNotFound, "gone"), ClassificationRetryable)
	outer := Wrap(inner, CodeUnknown, "outer")

	require.Equal(t, CodeUnknown, outer.Code())
	require.Equal(t, ClassificationRetryable, outer.Classification())
}

func TestWrapf(t *testing.T) {
	err := Wrapf(stderrors.New("EIO"), CodeIOError, "read of %s failed", "/dev/sda")
	require.Equal(t, "read of /dev/sda failed", err.Message())
	require.True(t, err.Classification().IsRetryable())
}

func TestWrapWithContext_CopiesMap(t *testing.T) {
	ctx := map[string]interface{}{"path1": "/a"}
	err := WrapWithContext(stderrors.New("boom"), CodeUnknown, "op failed", ctx)

	ctx["path1"] = "/mutated"
	require.Equal(t, "/a", err.Context()["path1"])

	got := err.Context()
	got["path1"] = "/also-mutated"
	require.Equal(t, "/a", err.Context()["path1"])
}
