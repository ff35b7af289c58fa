// Package access maps user roles to capabilities.
//
// A Principal is resolved once per session and passed explicitly to every
// command that needs authorization. Write operations check a Capability,
// never an identity.
package access
