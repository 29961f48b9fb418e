// Package service provides the enrollment service: the in-memory view of
// students, courses and their enrollment pairs, and every operation that
// reads or changes them. Changes are written to storage before memory is
// touched, so a failed write leaves the in-memory state as it was.
package service
