// Package mocks provides shared mock implementations for testing.
//
// Mocks use function fields: set the field for the method under test and
// leave the rest nil to get the default return values.
//
//	svc := &mocks.MockEnrollmentService{
//	    EnrollFn: func(ctx context.Context, studentID, courseID string) error {
//	        return service.ErrCourseFull
//	    },
//	}
package mocks
