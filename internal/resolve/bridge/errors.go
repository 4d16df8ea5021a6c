// Package bridge defines the contract shared by every backend implementation:
// the error taxonomy tool handlers report through, the Backend interface the
// router dispatches against, and the semantic validators both backends apply
// to tool arguments.
package bridge

import (
	"errors"
	"fmt"
)

// Kind classifies a tool-call failure. The set is closed: every error that
// crosses the Backend boundary carries exactly one of these kinds, and the
// protocol layer maps each kind to a stable JSON-RPC error code.
type Kind int

const (
	// KindInternal covers serialization or bridge failures and any foreign
	// error that escaped without classification.
	KindInternal Kind = iota

	// KindNotRunning means the host editor is not reachable or the backend
	// was never initialized.
	KindNotRunning

	// KindInvalidParameter means an argument failed schema validation or a
	// semantic constraint beyond the schema.
	KindInvalidParameter

	// KindNotFound means the tool name is unknown or a named entity
	// (project, timeline, clip, item, preset, node) does not exist.
	KindNotFound

	// KindNotSupported means the tool is known but this backend cannot
	// implement it.
	KindNotSupported

	// KindTimeout means a live call exceeded its deadline.
	KindTimeout

	// KindPermissionDenied means the host editor refused the operation.
	KindPermissionDenied
)

// String returns the snake_case label used in logs and error messages.
func (k Kind) String() string {
	switch k {
	case KindNotRunning:
		return "not_running"
	case KindInvalidParameter:
		return "invalid_parameter"
	case KindNotFound:
		return "not_found"
	case KindNotSupported:
		return "not_supported"
	case KindTimeout:
		return "timeout"
	case KindPermissionDenied:
		return "permission_denied"
	default:
		return "internal"
	}
}

// RPCCode maps the kind to its JSON-RPC error code: invalid params for
// caller mistakes, invalid request when the editor is unreachable, internal
// error for everything else.
func (k Kind) RPCCode() int {
	switch k {
	case KindInvalidParameter, KindNotFound:
		return -32602
	case KindNotRunning:
		return -32600
	default:
		return -32603
	}
}

// Error is the concrete error type carried across the Backend boundary.
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Kind returns the classification of this error.
func (e *Error) Kind() Kind { return e.kind }

// KindOf extracts the Kind from any error. Foreign errors classify as
// KindInternal. Callers must check err != nil first.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

// RPCCode maps any error to its JSON-RPC error code.
func RPCCode(err error) int {
	return KindOf(err).RPCCode()
}

// NotRunning reports that the host editor is not reachable.
func NotRunning() error {
	return &Error{kind: KindNotRunning, msg: "DaVinci Resolve is not running"}
}

// NotRunningf reports an unreachable editor with spawn or handshake detail.
func NotRunningf(format string, a ...any) error {
	return &Error{kind: KindNotRunning, msg: fmt.Sprintf(format, a...)}
}

// InvalidParameterf reports an argument that failed validation. The message
// names the offending parameter first.
func InvalidParameterf(param, format string, a ...any) error {
	return &Error{
		kind: KindInvalidParameter,
		msg:  fmt.Sprintf("invalid parameter %q: %s", param, fmt.Sprintf(format, a...)),
	}
}

// NotFoundf reports a missing tool or entity.
func NotFoundf(format string, a ...any) error {
	return &Error{kind: KindNotFound, msg: fmt.Sprintf(format, a...)}
}

// NotSupportedf reports an operation unavailable on this backend.
func NotSupportedf(format string, a ...any) error {
	return &Error{kind: KindNotSupported, msg: fmt.Sprintf(format, a...)}
}

// Timeoutf reports a live call that exceeded its deadline.
func Timeoutf(format string, a ...any) error {
	return &Error{kind: KindTimeout, msg: fmt.Sprintf(format, a...)}
}

// PermissionDeniedf reports an operation the host editor refused.
func PermissionDeniedf(format string, a ...any) error {
	return &Error{kind: KindPermissionDenied, msg: fmt.Sprintf(format, a...)}
}

// Internalf reports a serialization or bridge failure.
func Internalf(format string, a ...any) error {
	return &Error{kind: KindInternal, msg: fmt.Sprintf(format, a...)}
}

// FromRPC reconstructs a taxonomy error from a JSON-RPC error code and
// message received from the live bridge subprocess.
func FromRPC(code int, message string) error {
	switch code {
	case -32602:
		return &Error{kind: KindInvalidParameter, msg: message}
	case -32600:
		return &Error{kind: KindNotRunning, msg: message}
	default:
		return &Error{kind: KindInternal, msg: message}
	}
}
