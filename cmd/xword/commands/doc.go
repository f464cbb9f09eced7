// Package commands defines the xword CLI.
//
// Commands
//
//   - convert  Convert an ipuz file to the legacy binary format
//   - check    Validate an ipuz file's structure and numbering
//
// Both commands operate on files already authored elsewhere; the CLI never
// collects puzzle content itself.
package commands
