// Package domain contains the core entities of the enrollment tracker:
// students, courses and the enrollment pairs that link them. Entities
// reference each other by ID only; resolving those IDs is the job of the
// service layer, which owns the ID-keyed maps.
package domain
