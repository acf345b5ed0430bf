// Package sqlite provides the web conversion-state persistence adapter backed
// by SQLite.
//
// The store holds the social-proof counter ratchets and deadline-alert leads.
// Counter rows are derived display state and can be dropped without losing
// anything a visitor would notice; lead rows are the only data worth backing
// up.
package sqlite
