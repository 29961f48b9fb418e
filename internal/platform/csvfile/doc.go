// Package csvfile provides flat-file implementations of the storage
// interfaces defined in the internal/store package. Each record kind lives
// in its own comma-separated file with no header row and a positional schema:
//
//	students:    id,name,email
//	courses:     id,name,capacity
//	enrollments: studentId,courseId
//
// Fields containing commas or quotes are wrapped in double quotes, with
// embedded quotes doubled.
package csvfile
