package command

import (
	"strings"
	"time"
)

// Command prefixes as typed by users in the chat.
const (
	StartPrefix      = "/start"
	AddTaskPrefix    = "/add_task"
	ViewTasksPrefix  = "/view_task"
	UpdateTaskPrefix = "/update_task"
	DeleteTaskPrefix = "/delete_task"
)

const (
	dateInputLayout   = "02.01.06"
	dateStorageLayout = "2006-01-02"
	timeInputLayout   = "15:04"
	timeStorageLayout = "15:04:05"
)

// ParseDate normalizes a ДД.ММ.ГГ date to YYYY-MM-DD. An already normalized
// date passes through unchanged, so normalization is idempotent.
func ParseDate(s string) (string, error) {
	if t, err := time.Parse(dateInputLayout, s); err == nil {
		return t.Format(dateStorageLayout), nil
	}
	if t, err := time.Parse(dateStorageLayout, s); err == nil {
		return t.Format(dateStorageLayout), nil
	}
	return "", ErrBadDate
}

// ParseTime normalizes a 24-hour ЧЧ:ММ time to HH:MM:SS. An already
// normalized time passes through unchanged.
func ParseTime(s string) (string, error) {
	if t, err := time.Parse(timeInputLayout, s); err == nil {
		return t.Format(timeStorageLayout), nil
	}
	if t, err := time.Parse(timeStorageLayout, s); err == nil {
		return t.Format(timeStorageLayout), nil
	}
	return "", ErrBadTime
}

// AddTask holds the parsed body of an /add_task command with the date and
// time already in storage form.
type AddTask struct {
	Name    string
	TimeEnd string
	DateEnd string
}

// ParseAddTask parses "/add_task <название>, <ЧЧ:ММ>, <ДД.ММ.ГГ>". Parts
// beyond the third are ignored, matching how users append trailing notes.
func ParseAddTask(text string) (AddTask, error) {
	body, ok := strings.CutPrefix(text, AddTaskPrefix+" ")
	if !ok {
		return AddTask{}, ErrMissingPrefix
	}

	parts := strings.Split(body, ",")
	if len(parts) < 3 {
		return AddTask{}, ErrMissingParameters
	}

	timeEnd, err := ParseTime(strings.TrimSpace(parts[1]))
	if err != nil {
		return AddTask{}, err
	}
	dateEnd, err := ParseDate(strings.TrimSpace(parts[2]))
	if err != nil {
		return AddTask{}, err
	}

	return AddTask{
		Name:    strings.TrimSpace(parts[0]),
		TimeEnd: timeEnd,
		DateEnd: dateEnd,
	}, nil
}

// UpdateTask holds the parsed body of an /update_task command. Label keeps
// the field label as the user typed it for echoing back in replies; Value is
// already normalized by the field's own rule.
type UpdateTask struct {
	Field    Field
	Label    string
	TaskName string
	Value    string
}

// ParseUpdateTask parses "/update_task <поле>, <название задачи>, <новое значение>".
func ParseUpdateTask(text string) (UpdateTask, error) {
	body := strings.TrimSpace(strings.TrimPrefix(text, UpdateTaskPrefix))

	parts := strings.Split(body, ",")
	if len(parts) < 3 {
		return UpdateTask{}, ErrMissingParameters
	}

	label := strings.TrimSpace(parts[0])
	field, err := ResolveField(label)
	if err != nil {
		return UpdateTask{}, err
	}
	value, err := field.Normalize(strings.TrimSpace(parts[2]))
	if err != nil {
		return UpdateTask{}, err
	}

	return UpdateTask{
		Field:    field,
		Label:    label,
		TaskName: strings.TrimSpace(parts[1]),
		Value:    value,
	}, nil
}

// ParseDeleteTask parses "/delete_task <название задачи>".
func ParseDeleteTask(text string) (string, error) {
	name := strings.TrimSpace(strings.TrimPrefix(text, DeleteTaskPrefix))
	if name == "" {
		return "", ErrMissingParameters
	}
	return name, nil
}
