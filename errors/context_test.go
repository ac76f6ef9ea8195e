package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	err := New(CodeAlreadyExists, "copy_file failed")
	err = WithContext(err, "operation", "copy_file")
	err = WithContext(err, "path1", "/a")

	ctx := err.Context()
	require.Equal(t, "copy_file", ctx["operation"])
	require.Equal(t, "/a", ctx["path1"])
	require.Equal(t, CodeAlreadyExists, err.Code())
}

func TestWithContext_Nil(t *testing.T) {
	require.Nil(t, WithContext(nil, "k", "v"))
	require.Nil(t, WithContextMap(nil, map[string]interface{}{"k": "v"}))
	require.Nil(t, WithClassification(nil, ClassificationRetryable))
}

func TestWithContext_StandardError(t *testing.T) {
	cause := stderrors.New("plain failure")
	err := WithContext(cause, "operation", "space")

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, "plain failure", err.Message())
	require.True(t, stderrors.Is(err, cause))
}

func TestWithContextMap_Overrides(t *testing.T) {
	err := WithContextMap(New(CodeNotFound, "missing"), map[string]interface{}{
		"path1": "/old",
		"path2": "/b",
	})
	err = WithContextMap(err, map[string]interface{}{"path1": "/new"})

	ctx := err.Context()
	require.Equal(t, "/new", ctx["path1"])
	require.Equal(t, "/b", ctx["path2"])
}

func TestWithClassification(t *testing.T) {
	err := WithContext(New(CodeIOError, "flaky"), "path1", "/dev/sdb")
	err = WithClassification(err, ClassificationPermanent)

	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, CodeIOError, err.Code())
	require.Equal(t, "/dev/sdb", err.Context()["path1"])
}
