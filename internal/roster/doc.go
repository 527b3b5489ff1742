// Package roster persists hostel registrations and layers the registration
// business rules over the SQLite-backed store. Presentation lives in the CLI;
// this package returns records and classified errors, never formatted output.
package roster
