// Package demo holds the pieces every SOLID example shares: the Printer that
// variants write their console lines to, the Catalog of runnable examples and
// the two error kinds the wrong approaches fail with on purpose.
package demo
