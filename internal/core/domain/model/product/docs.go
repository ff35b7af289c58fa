// Package product models catalogue items together with their packaging stock
// counters (bottles, caps, labels).
package product
