package widget

import "time"

//settergen:setters
type Widget struct {
	// name is the display name shown in listings.
	name      string
	createdAt time.Time
	tags      []string
}

//settergen:setters
type Crate struct {
	capacity int
	labels   []string
}

// helper is not marked and must not receive setters.
type helper struct {
	count int
}
