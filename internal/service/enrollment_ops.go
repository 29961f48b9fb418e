package service

import (
	"context"
	"errors"

	"github.com/phrazzld/rollcall/internal/domain"
	"github.com/phrazzld/rollcall/internal/events"
)

// Enroll appends the pair to the enrollment file and links both records.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, studentID, courseID string) error {
	student, err := s.lookupStudent(studentID)
	if err != nil {
		return err
	}
	course, err := s.lookupCourse(courseID)
	if err != nil {
		return err
	}

	if err := s.checkSeat(student, course); err != nil {
		s.logger.Debug("rejected enrollment",
			"reason", err.Error(),
			"student_id", student.ID,
			"course_id", course.ID)
		return err
	}

	pair := domain.Enrollment{StudentID: student.ID, CourseID: course.ID}
	if err := s.enrollments.Append(ctx, pair); err != nil {
		s.logStoreError("failed to save enrollment", err, "enrollment", pair.String())
		return NewEnrollmentServiceError("enroll", "failed to save enrollment", err)
	}

	s.link(student, course)

	s.logger.Info("student enrolled",
		"student_id", student.ID,
		"course_id", course.ID,
		"remaining", course.Remaining())
	s.emit(ctx, events.EnrollmentCreated, pair)

	return nil
}

// Drop removes the pair from the enrollment file and unlinks both records.
func (s *enrollmentServiceImpl) Drop(ctx context.Context, studentID, courseID string) error {
	student, err := s.lookupStudent(studentID)
	if err != nil {
		return err
	}
	course, err := s.lookupCourse(courseID)
	if err != nil {
		return err
	}

	if !course.Has(student.ID) {
		return ErrNotEnrolled
	}

	pair := domain.Enrollment{StudentID: student.ID, CourseID: course.ID}
	if _, err := s.enrollments.DeleteMatching(ctx, domain.Pair(student.ID, course.ID)); err != nil {
		s.logStoreError("failed to remove enrollment", err, "enrollment", pair.String())
		return NewEnrollmentServiceError("drop", "failed to remove enrollment", err)
	}

	s.unlink(student, course)

	s.logger.Info("student dropped", "student_id", student.ID, "course_id", course.ID)
	s.emit(ctx, events.EnrollmentDropped, pair)

	return nil
}

// MoveEnrollment removes the old pair and appends the new one. When the
// append fails the old pair is written back; if that also fails the student
// ends up enrolled in neither course and memory reflects that.
func (s *enrollmentServiceImpl) MoveEnrollment(ctx context.Context, studentID, fromCourseID, toCourseID string) error {
	student, err := s.lookupStudent(studentID)
	if err != nil {
		return err
	}
	from, err := s.lookupCourse(fromCourseID)
	if err != nil {
		return err
	}
	to, err := s.lookupCourse(toCourseID)
	if err != nil {
		return err
	}

	if from.ID == to.ID {
		return ErrSameCourse
	}
	if !from.Has(student.ID) {
		return ErrNotEnrolled
	}
	if err := s.checkSeat(student, to); err != nil {
		s.logger.Debug("rejected move",
			"reason", err.Error(),
			"student_id", student.ID,
			"from_course_id", from.ID,
			"to_course_id", to.ID)
		return err
	}

	oldPair := domain.Enrollment{StudentID: student.ID, CourseID: from.ID}
	newPair := domain.Enrollment{StudentID: student.ID, CourseID: to.ID}

	if _, err := s.enrollments.DeleteMatching(ctx, domain.Pair(student.ID, from.ID)); err != nil {
		s.logStoreError("failed to remove enrollment for move", err, "enrollment", oldPair.String())
		return NewEnrollmentServiceError("move_enrollment", "failed to remove old enrollment", err)
	}

	if err := s.enrollments.Append(ctx, newPair); err != nil {
		s.logStoreError("failed to save moved enrollment", err, "enrollment", newPair.String())

		if restoreErr := s.enrollments.Append(ctx, oldPair); restoreErr != nil {
			s.logger.Error("failed to restore enrollment after failed move",
				"error", restoreErr,
				"enrollment", oldPair.String())
			s.unlink(student, from)
			return NewEnrollmentServiceError("move_enrollment", "failed to save new enrollment",
				errors.Join(err, restoreErr))
		}
		return NewEnrollmentServiceError("move_enrollment", "failed to save new enrollment", err)
	}

	s.unlink(student, from)
	s.link(student, to)

	s.logger.Info("enrollment moved",
		"student_id", student.ID,
		"from_course_id", from.ID,
		"to_course_id", to.ID)
	s.emit(ctx, events.EnrollmentMoved, map[string]string{
		"student_id":     student.ID,
		"from_course_id": from.ID,
		"to_course_id":   to.ID,
	})

	return nil
}

// checkSeat reports why student cannot take a seat in course, if anything.
func (s *enrollmentServiceImpl) checkSeat(student *domain.Student, course *domain.Course) error {
	if course.Has(student.ID) || student.IsEnrolledIn(course.ID) {
		return ErrAlreadyEnrolled
	}
	if course.IsFull() {
		return ErrCourseFull
	}
	return nil
}

// link records the pair on both sides. checkSeat must have passed.
func (s *enrollmentServiceImpl) link(student *domain.Student, course *domain.Course) {
	if err := course.Enroll(student.ID); err != nil {
		s.logger.Error("failed to link enrollment", "error", err, "student_id", student.ID, "course_id", course.ID)
		return
	}
	student.AddCourse(course.ID)
}

func (s *enrollmentServiceImpl) unlink(student *domain.Student, course *domain.Course) {
	course.Drop(student.ID)
	student.RemoveCourse(course.ID)
}
