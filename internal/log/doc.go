// Package log provides logging functionality built on top of the
// standard slog package.
//
// The RedactHomeHandler masks the user's home directory in logged
// attribute values, so verbose logs can be shared (e.g. attached to a
// bug report alongside the report artifact) without exposing the local
// user name or home layout.
//
// # Usage
//
//	handler := log.NewRedactHomeHandler(slog.NewTextHandler(os.Stderr, nil))
//	slog.SetDefault(slog.New(handler))
package log
