package cli

import (
	"context"
	"strconv"

	"github.com/phrazzld/rollcall/internal/platform/logger"
)

func (a *App) addStudent(ctx context.Context) error {
	a.section("Add New Student")

	var form studentForm
	if err := a.fill(
		field{"Enter Student ID: ", &form.ID},
		field{"Enter Student Name: ", &form.Name},
		field{"Enter Student Email: ", &form.Email},
	); err != nil {
		return err
	}
	if !a.valid(form) {
		return nil
	}

	if _, err := a.svc.AddStudent(ctx, form.ID, form.Name, form.Email); err != nil {
		a.fail(ctx, "add_student", err)
		return nil
	}
	a.println("Student added successfully.")
	return nil
}

func (a *App) addCourse(ctx context.Context) error {
	a.section("Add New Course")

	var form courseForm
	var capacity string
	if err := a.fill(
		field{"Enter Course ID: ", &form.ID},
		field{"Enter Course Name: ", &form.Name},
		field{"Enter Course Capacity: ", &capacity},
	); err != nil {
		return err
	}

	if capacity == "" {
		a.println("Error: Capacity is required.")
		return nil
	}
	n, err := strconv.Atoi(capacity)
	if err != nil {
		a.println("Error: Invalid capacity. Please enter a valid number.")
		return nil
	}
	form.Capacity = n
	if !a.valid(form) {
		return nil
	}

	if _, err := a.svc.AddCourse(ctx, form.ID, form.Name, form.Capacity); err != nil {
		a.fail(ctx, "add_course", err)
		return nil
	}
	a.println("Course added successfully.")
	return nil
}

func (a *App) enroll(ctx context.Context) error {
	a.section("Enroll Student in Course")

	var form enrollmentForm
	if err := a.fill(
		field{"Enter Student ID: ", &form.StudentID},
		field{"Enter Course ID: ", &form.CourseID},
	); err != nil {
		return err
	}
	if !a.valid(form) {
		return nil
	}

	if err := a.svc.Enroll(ctx, form.StudentID, form.CourseID); err != nil {
		a.fail(ctx, "enroll", err)
		return nil
	}
	a.println("Enrollment successful.")
	return nil
}

func (a *App) studentsInCourse(ctx context.Context) error {
	a.section("Display Students in a Course")

	var form courseIDForm
	if err := a.fill(field{"Enter Course ID: ", &form.ID}); err != nil {
		return err
	}
	if !a.valid(form) {
		return nil
	}

	roster, err := a.svc.StudentsInCourse(ctx, form.ID)
	if err != nil {
		a.fail(ctx, "students_in_course", err)
		return nil
	}
	if len(roster.Students) == 0 {
		a.printf("No students are enrolled in %s.\n", roster.Course.Name)
		return nil
	}
	a.printf("Students enrolled in %s:\n", roster.Course.Name)
	for _, s := range roster.Students {
		a.printf("- %s (ID: %s)\n", s.Name, s.ID)
	}
	return nil
}

func (a *App) coursesOfStudent(ctx context.Context) error {
	a.section("Display Courses of a Student")

	var form studentIDForm
	if err := a.fill(field{"Enter Student ID: ", &form.ID}); err != nil {
		return err
	}
	if !a.valid(form) {
		return nil
	}

	schedule, err := a.svc.CoursesOfStudent(ctx, form.ID)
	if err != nil {
		a.fail(ctx, "courses_of_student", err)
		return nil
	}
	if len(schedule.Courses) == 0 {
		a.printf("Student %s is not enrolled in any courses.\n", schedule.Student.Name)
		return nil
	}
	a.printf("Courses enrolled by %s:\n", schedule.Student.Name)
	for _, c := range schedule.Courses {
		a.printf("- %s (ID: %s)\n", c.Name, c.ID)
	}
	return nil
}

func (a *App) summary(ctx context.Context) error {
	a.println("")
	if err := WriteSummary(a.out, a.svc.Summary(ctx)); err != nil {
		logger.FromContextOrDefault(ctx, a.logger).Warn("failed to write summary", "error", err)
	}
	return nil
}

func (a *App) updateStudent(ctx context.Context) error {
	a.section("Update Student")

	var form studentUpdateForm
	if err := a.fill(
		field{"Enter Student ID: ", &form.ID},
		field{"Enter New Name (leave blank to keep): ", &form.Name},
		field{"Enter New Email (leave blank to keep): ", &form.Email},
	); err != nil {
		return err
	}
	if !a.valid(form) {
		return nil
	}

	student, err := a.svc.UpdateStudent(ctx, form.ID, form.Name, form.Email)
	if err != nil {
		a.fail(ctx, "update_student", err)
		return nil
	}
	a.printf("Student updated successfully: %s <%s>\n", student.Name, student.Email)
	return nil
}

func (a *App) updateCourse(ctx context.Context) error {
	a.section("Update Course")

	var form courseUpdateForm
	var capacity string
	if err := a.fill(
		field{"Enter Course ID: ", &form.ID},
		field{"Enter New Name (leave blank to keep): ", &form.Name},
		field{"Enter New Capacity (leave blank to keep): ", &capacity},
	); err != nil {
		return err
	}

	if capacity != "" {
		n, err := strconv.Atoi(capacity)
		if err != nil {
			a.println("Error: Invalid capacity. Please enter a valid number.")
			return nil
		}
		form.Capacity = &n
	}
	if !a.valid(form) {
		return nil
	}

	var newCapacity int
	if form.Capacity != nil {
		newCapacity = *form.Capacity
	}
	course, err := a.svc.UpdateCourse(ctx, form.ID, form.Name, newCapacity)
	if err != nil {
		a.fail(ctx, "update_course", err)
		return nil
	}
	a.printf("Course updated successfully: %s (%d/%d)\n", course.Name, len(course.StudentIDs), course.Capacity)
	return nil
}

func (a *App) moveEnrollment(ctx context.Context) error {
	a.section("Move Enrollment")

	var form moveForm
	if err := a.fill(
		field{"Enter Student ID: ", &form.StudentID},
		field{"Enter Current Course ID: ", &form.FromCourseID},
		field{"Enter New Course ID: ", &form.ToCourseID},
	); err != nil {
		return err
	}
	if !a.valid(form) {
		return nil
	}

	if err := a.svc.MoveEnrollment(ctx, form.StudentID, form.FromCourseID, form.ToCourseID); err != nil {
		a.fail(ctx, "move_enrollment", err)
		return nil
	}
	a.println("Enrollment moved successfully.")
	return nil
}

func (a *App) dropEnrollment(ctx context.Context) error {
	a.section("Drop Enrollment")

	var form enrollmentForm
	if err := a.fill(
		field{"Enter Student ID: ", &form.StudentID},
		field{"Enter Course ID: ", &form.CourseID},
	); err != nil {
		return err
	}
	if !a.valid(form) {
		return nil
	}

	if err := a.svc.Drop(ctx, form.StudentID, form.CourseID); err != nil {
		a.fail(ctx, "drop", err)
		return nil
	}
	a.println("Enrollment dropped successfully.")
	return nil
}

func (a *App) deleteStudent(ctx context.Context) error {
	a.section("Delete Student")

	var form studentIDForm
	if err := a.fill(field{"Enter Student ID: ", &form.ID}); err != nil {
		return err
	}
	if !a.valid(form) {
		return nil
	}

	ok, err := a.confirm("This also removes all of the student's enrollments. Continue? (y/N): ")
	if err != nil {
		return err
	}
	if !ok {
		a.println("Deletion cancelled.")
		return nil
	}

	if err := a.svc.DeleteStudent(ctx, form.ID); err != nil {
		a.fail(ctx, "delete_student", err)
		return nil
	}
	a.println("Student deleted successfully.")
	return nil
}

func (a *App) deleteCourse(ctx context.Context) error {
	a.section("Delete Course")

	var form courseIDForm
	if err := a.fill(field{"Enter Course ID: ", &form.ID}); err != nil {
		return err
	}
	if !a.valid(form) {
		return nil
	}

	ok, err := a.confirm("This also removes all enrollments in the course. Continue? (y/N): ")
	if err != nil {
		return err
	}
	if !ok {
		a.println("Deletion cancelled.")
		return nil
	}

	if err := a.svc.DeleteCourse(ctx, form.ID); err != nil {
		a.fail(ctx, "delete_course", err)
		return nil
	}
	a.println("Course deleted successfully.")
	return nil
}

func (a *App) listStudents(ctx context.Context) error {
	a.section("All Students")

	students := a.svc.ListStudents(ctx)
	if len(students) == 0 {
		a.println("No students found.")
		return nil
	}
	for _, s := range students {
		a.printf("- %s (ID: %s, Email: %s, Courses: %d)\n", s.Name, s.ID, s.Email, len(s.CourseIDs))
	}
	return nil
}

func (a *App) listCourses(ctx context.Context) error {
	a.section("All Courses")

	courses := a.svc.ListCourses(ctx)
	if len(courses) == 0 {
		a.println("No courses found.")
		return nil
	}
	for _, c := range courses {
		a.printf("- %s (ID: %s, Enrolled: %d/%d)\n", c.Name, c.ID, len(c.StudentIDs), c.Capacity)
	}
	return nil
}
