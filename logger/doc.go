// Package logger provides structured logging for the appkit runtime,
// backed by zerolog.
//
// A global logger is available through Init/GetGlobalLogger and the
// package-level Debug/Info/Warn/Error helpers; component-scoped loggers
// are derived with WithComponent.
package logger
