package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Wrap wraps an error with a code and message while preserving the original
// error for errors.Is and errors.As.
//
// If err already is a PlatformError its classification is kept; otherwise
// the default classification for code is used. Returns nil if err is nil.
//
// Example:
//
//	if err := backend.Rename(from, to); err != nil {
//	    return errors.Wrap(err, backend.Code(err), "rename failed")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	if err == nil {
		return nil
	}
	return &platformError{
		code:           code,
		classification: inheritedClassification(err, code),
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single
// operation. The context map is copied.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeAlreadyExists, "copy_file failed", map[string]interface{}{
//	    "path1": from,
//	    "path2": to,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}
	var contextCopy map[string]interface{}
	if ctx != nil {
		contextCopy = maps.Clone(ctx)
	}
	return &platformError{
		code:           code,
		classification: inheritedClassification(err, code),
		message:        message,
		context:        contextCopy,
		cause:          err,
	}
}

func inheritedClassification(err error, code ErrorCode) ErrorClassification {
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		return platformErr.Classification()
	}
	return getDefaultClassification(code)
}
