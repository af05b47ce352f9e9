// Package dmy parses day-month-year dates of the form "07.11.2019".
//
// It backs fieldpath's optional date getter: wire it into an Accessor with
// fieldpath.WithDateParser(dmy.Parse). Day and month are validated against
// the real calendar and years of 1900 or earlier are rejected.
package dmy
