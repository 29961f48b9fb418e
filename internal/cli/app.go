package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/phrazzld/rollcall/internal/platform/logger"
	"github.com/phrazzld/rollcall/internal/service"
)

const (
	welcomeText  = "Welcome to the Student Enrollment Management System!"
	goodbyeText  = "Exiting the system. Goodbye!"
	choicePrompt = "Enter your choice: "

	// maxLineLength bounds a single answer; longer lines are discarded.
	maxLineLength = 64 * 1024
)

var errLineTooLong = errors.New("input line too long")

// MenuItem is one numbered entry of the main menu.
type MenuItem struct {
	Choice int
	Label  string
	Action func(ctx context.Context) error
}

// App is the console front end of the enrollment service.
type App struct {
	svc    service.EnrollmentService
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
	menu   []MenuItem
}

// New creates an App reading commands from in and writing to out.
// A nil logger falls back to slog.Default().
func New(svc service.EnrollmentService, in io.Reader, out io.Writer, l *slog.Logger) *App {
	if l == nil {
		l = slog.Default()
	}
	a := &App{
		svc:    svc,
		in:     bufio.NewReader(in),
		out:    out,
		logger: l.With("component", "cli"),
	}
	a.menu = a.buildMenu()
	return a
}

func (a *App) buildMenu() []MenuItem {
	return []MenuItem{
		{Choice: 1, Label: "Add Student", Action: a.addStudent},
		{Choice: 2, Label: "Add Course", Action: a.addCourse},
		{Choice: 3, Label: "Enroll Student in a Course", Action: a.enroll},
		{Choice: 4, Label: "Display Students in a Course", Action: a.studentsInCourse},
		{Choice: 5, Label: "Display Courses of a Student", Action: a.coursesOfStudent},
		{Choice: 6, Label: "Generate Summary Report", Action: a.summary},
		{Choice: 7, Label: "Update Student", Action: a.updateStudent},
		{Choice: 8, Label: "Update Course", Action: a.updateCourse},
		{Choice: 9, Label: "Move Enrollment", Action: a.moveEnrollment},
		{Choice: 10, Label: "Drop Enrollment", Action: a.dropEnrollment},
		{Choice: 11, Label: "Delete Student", Action: a.deleteStudent},
		{Choice: 12, Label: "Delete Course", Action: a.deleteCourse},
		{Choice: 13, Label: "List Students", Action: a.listStudents},
		{Choice: 14, Label: "List Courses", Action: a.listCourses},
	}
}

// Run shows the menu and dispatches choices until the user exits or the
// input ends. Both count as a normal quit and return nil; only a failure to
// read the input is returned.
func (a *App) Run(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, a.logger)
	a.println(welcomeText)

	for {
		a.printMenu()

		line, err := a.ask(choicePrompt)
		if err != nil && !errors.Is(err, errLineTooLong) {
			return a.quit(log, err)
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			a.println("Invalid input. Please enter a number corresponding to the menu options.")
			continue
		}
		if choice == 0 {
			a.println(goodbyeText)
			log.Debug("session ended", "reason", "exit")
			return nil
		}

		item, ok := a.lookup(choice)
		if !ok {
			a.println("Invalid choice. Please select a valid option from the menu.")
			continue
		}

		log.Debug("menu choice", "choice", choice, "action", item.Label)
		if err := item.Action(ctx); err != nil {
			if errors.Is(err, errLineTooLong) {
				a.println("Error: Input is too long.")
				continue
			}
			return a.quit(log, err)
		}
	}
}

// quit ends the loop. End of input is a normal quit.
func (a *App) quit(log *slog.Logger, err error) error {
	if errors.Is(err, io.EOF) {
		a.println("")
		a.println(goodbyeText)
		log.Debug("session ended", "reason", "end of input")
		return nil
	}
	log.Error("failed to read input", "error", err)
	return fmt.Errorf("failed to read input: %w", err)
}

func (a *App) lookup(choice int) (MenuItem, bool) {
	for _, item := range a.menu {
		if item.Choice == choice {
			return item, true
		}
	}
	return MenuItem{}, false
}

func (a *App) printMenu() {
	a.println("")
	a.println("----- Main Menu -----")
	for _, item := range a.menu {
		a.printf("%d. %s\n", item.Choice, item.Label)
	}
	a.println("0. Exit")
}

// ask prints prompt and returns the next trimmed input line.
// It returns io.EOF once the input is exhausted and errLineTooLong, after
// consuming the whole line, when the answer exceeds maxLineLength.
func (a *App) ask(prompt string) (string, error) {
	a.printf("%s", prompt)
	line, err := a.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) readLine() (string, error) {
	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := a.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (len(line) > 0 || tooLong) {
				break
			}
			return "", err
		}
		if !tooLong {
			if len(line)+len(chunk) > maxLineLength {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", errLineTooLong
	}
	return string(line), nil
}

type field struct {
	prompt string
	dst    *string
}

// fill asks for each field in turn.
func (a *App) fill(fields ...field) error {
	for _, f := range fields {
		value, err := a.ask(f.prompt)
		if err != nil {
			return err
		}
		*f.dst = value
	}
	return nil
}

// confirm asks a yes/no question; anything but y or yes means no.
func (a *App) confirm(prompt string) (bool, error) {
	answer, err := a.ask(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// valid runs the form through the validator and prints the first problem.
func (a *App) valid(form any) bool {
	if err := validate.Struct(form); err != nil {
		a.println(formMessage(err))
		return false
	}
	return true
}

// fail reports a rejected operation to the user.
func (a *App) fail(ctx context.Context, op string, err error) {
	logger.FromContextOrDefault(ctx, a.logger).Debug("operation rejected", "operation", op, "error", err)
	a.println(errorMessage(err))
}

func (a *App) section(title string) {
	a.println("")
	a.printf("--- %s ---\n", title)
}

func (a *App) println(s string) {
	_, _ = fmt.Fprintln(a.out, s)
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
