// Package kernel provides the shared value objects of the gestion domain model.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - ParseRef: normalization of loosely typed identifier arguments
//   - amount validators for decimal money values
//
// Zero values are invalid; construct through the provided functions.
package kernel
