// Package fixture pairs a marked type with its checked-in generated output,
// so the generated methods themselves run under test instead of only their
// source text.
package fixture

import "time"

//settergen:setters
type Order struct {
	// reference identifies the order in listings.
	reference string
	createdAt time.Time
	labels    []string
	total     int
}
