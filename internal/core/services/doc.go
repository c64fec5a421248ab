// Package services contains the core application services implementing
// the driving ports. Services hold no per-call state; a single instance
// serves concurrent callers.
package services
