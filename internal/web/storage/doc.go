// Package storage defines the persistence contract for web conversion state:
// social-proof counter ratchets and deadline-alert leads.
package storage
