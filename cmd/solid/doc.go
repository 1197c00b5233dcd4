// Command solid runs the SOLID examples and prints their console lines.
//
// Every example prints to stdout exactly the lines its variants produce, one
// per side effect. Everything else (which example is running, failures that a
// wrong approach shows on purpose) is logged to stderr with zerolog.
//
// Usage
//
//	solid [-config solid.yaml] [-principle srp,dip] [-approach wrong|right|all] [-list]
//
// Without -config, settings come from SOLID_ENV, SOLID_LOG_LEVEL,
// SOLID_LOG_FORMAT, SOLID_PRINCIPLES and SOLID_APPROACH. Flags override both.
//
// Exit codes: 0 when every failure was illustrative, 1 on an unexpected
// example error, 2 on usage or configuration errors.
package main
