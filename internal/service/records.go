package service

import (
	"context"
	"strings"

	"github.com/phrazzld/rollcall/internal/domain"
	"github.com/phrazzld/rollcall/internal/events"
)

// AddStudent creates a student and appends it to the student file.
func (s *enrollmentServiceImpl) AddStudent(ctx context.Context, id, name, email string) (*domain.Student, error) {
	student, err := domain.NewStudent(id, name, email)
	if err != nil {
		s.logger.Debug("rejected invalid student", "error", err, "student_id", id)
		return nil, err
	}

	if _, exists := s.studentByID[student.ID]; exists {
		s.logger.Debug("attempted to add student with existing ID", "student_id", student.ID)
		return nil, ErrDuplicateStudent
	}

	if err := s.students.Append(ctx, *student); err != nil {
		s.logStoreError("failed to save student", err, "student_id", student.ID)
		return nil, NewEnrollmentServiceError("add_student", "failed to save student", err)
	}

	s.studentByID[student.ID] = student
	s.studentOrder = append(s.studentOrder, student.ID)

	s.logger.Info("student added", "student_id", student.ID)
	s.emit(ctx, events.StudentAdded, student)

	return student.Clone(), nil
}

// AddCourse creates a course and appends it to the course file.
func (s *enrollmentServiceImpl) AddCourse(ctx context.Context, id, name string, capacity int) (*domain.Course, error) {
	course, err := domain.NewCourse(id, name, capacity)
	if err != nil {
		s.logger.Debug("rejected invalid course", "error", err, "course_id", id)
		return nil, err
	}

	if _, exists := s.courseByID[course.ID]; exists {
		s.logger.Debug("attempted to add course with existing ID", "course_id", course.ID)
		return nil, ErrDuplicateCourse
	}

	if err := s.courses.Append(ctx, *course); err != nil {
		s.logStoreError("failed to save course", err, "course_id", course.ID)
		return nil, NewEnrollmentServiceError("add_course", "failed to save course", err)
	}

	s.courseByID[course.ID] = course
	s.courseOrder = append(s.courseOrder, course.ID)

	s.logger.Info("course added", "course_id", course.ID, "capacity", course.Capacity)
	s.emit(ctx, events.CourseAdded, course)

	return course.Clone(), nil
}

// UpdateStudent rewrites the student file with the new contact details.
// Nothing is written when the details do not change.
func (s *enrollmentServiceImpl) UpdateStudent(ctx context.Context, id, name, email string) (*domain.Student, error) {
	student, err := s.lookupStudent(id)
	if err != nil {
		return nil, err
	}

	contact := student.Contact
	if name = strings.TrimSpace(name); name != "" {
		contact.Name = name
	}
	if email = strings.TrimSpace(email); email != "" {
		contact.Email = email
	}
	if err := contact.Validate(); err != nil {
		s.logger.Debug("rejected invalid student update", "error", err, "student_id", student.ID)
		return nil, err
	}
	if contact == student.Contact {
		return student.Clone(), nil
	}

	updated := student.Clone()
	updated.Contact = contact

	if err := s.students.RewriteAll(ctx, s.studentRecords(updated)); err != nil {
		s.logStoreError("failed to update student", err, "student_id", student.ID)
		return nil, NewEnrollmentServiceError("update_student", "failed to save student", err)
	}

	student.Contact = contact

	s.logger.Info("student updated", "student_id", student.ID)
	s.emit(ctx, events.StudentUpdated, student)

	return student.Clone(), nil
}

// UpdateCourse rewrites the course file with the new name and capacity.
// The capacity may not drop below the number of enrolled students.
func (s *enrollmentServiceImpl) UpdateCourse(ctx context.Context, id, name string, capacity int) (*domain.Course, error) {
	course, err := s.lookupCourse(id)
	if err != nil {
		return nil, err
	}

	updated := course.Clone()
	if name = strings.TrimSpace(name); name != "" {
		updated.Name = name
	}
	if capacity != 0 {
		if err := updated.SetCapacity(capacity); err != nil {
			s.logger.Debug("rejected capacity change",
				"error", err,
				"course_id", course.ID,
				"capacity", capacity,
				"enrolled", len(course.StudentIDs))
			return nil, err
		}
	}
	if updated.Name == course.Name && updated.Capacity == course.Capacity {
		return updated, nil
	}

	if err := s.courses.RewriteAll(ctx, s.courseRecords(updated)); err != nil {
		s.logStoreError("failed to update course", err, "course_id", course.ID)
		return nil, NewEnrollmentServiceError("update_course", "failed to save course", err)
	}

	course.Name = updated.Name
	course.Capacity = updated.Capacity

	s.logger.Info("course updated", "course_id", course.ID, "capacity", course.Capacity)
	s.emit(ctx, events.CourseUpdated, course)

	return course.Clone(), nil
}

// DeleteStudent removes the student's enrollment pairs, then the student.
// If the pairs are gone but the student record cannot be removed, memory
// follows storage: the pairs are dropped and the student stays.
func (s *enrollmentServiceImpl) DeleteStudent(ctx context.Context, id string) error {
	student, err := s.lookupStudent(id)
	if err != nil {
		return err
	}

	removed, err := s.enrollments.DeleteMatching(ctx, domain.ForStudent(student.ID))
	if err != nil {
		s.logStoreError("failed to remove student enrollments", err, "student_id", student.ID)
		return NewEnrollmentServiceError("delete_student", "failed to remove enrollments", err)
	}

	for _, courseID := range student.CourseIDs {
		if course, ok := s.courseByID[courseID]; ok {
			course.Drop(student.ID)
		}
	}
	student.CourseIDs = nil

	if _, err := s.students.DeleteMatching(ctx, func(r domain.Student) bool { return r.ID == student.ID }); err != nil {
		s.logStoreError("failed to remove student", err, "student_id", student.ID, "enrollments_removed", removed)
		return NewEnrollmentServiceError("delete_student", "failed to remove student", err)
	}

	delete(s.studentByID, student.ID)
	s.studentOrder = removeID(s.studentOrder, student.ID)

	s.logger.Info("student deleted", "student_id", student.ID, "enrollments_removed", removed)
	s.emit(ctx, events.StudentDeleted, map[string]any{"id": student.ID, "enrollments_removed": removed})

	return nil
}

// DeleteCourse removes the course's enrollment pairs, then the course.
// Partial failures are handled as in DeleteStudent.
func (s *enrollmentServiceImpl) DeleteCourse(ctx context.Context, id string) error {
	course, err := s.lookupCourse(id)
	if err != nil {
		return err
	}

	removed, err := s.enrollments.DeleteMatching(ctx, domain.ForCourse(course.ID))
	if err != nil {
		s.logStoreError("failed to remove course enrollments", err, "course_id", course.ID)
		return NewEnrollmentServiceError("delete_course", "failed to remove enrollments", err)
	}

	for _, studentID := range course.StudentIDs {
		if student, ok := s.studentByID[studentID]; ok {
			student.RemoveCourse(course.ID)
		}
	}
	course.StudentIDs = nil

	if _, err := s.courses.DeleteMatching(ctx, func(r domain.Course) bool { return r.ID == course.ID }); err != nil {
		s.logStoreError("failed to remove course", err, "course_id", course.ID, "enrollments_removed", removed)
		return NewEnrollmentServiceError("delete_course", "failed to remove course", err)
	}

	delete(s.courseByID, course.ID)
	s.courseOrder = removeID(s.courseOrder, course.ID)

	s.logger.Info("course deleted", "course_id", course.ID, "enrollments_removed", removed)
	s.emit(ctx, events.CourseDeleted, map[string]any{"id": course.ID, "enrollments_removed": removed})

	return nil
}
