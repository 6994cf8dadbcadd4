// Package xlog is a thin github.com/rs/zerolog wrapper used by the one
// long-running operation in this module that benefits from leveled
// progress output: ris.IMM's sampling phase, matching this module's other
// algorithm packages, which never log.
//
// A disabled logger (the zero value) is the default so importing this
// module never forces a global logger or output stream onto a caller;
// ris.IMM.WithLogger opts a caller in explicitly.
package xlog
