// Package fabric defines the joint/interval data model for loaded
// Pretenst tensegrity structures.
package fabric
