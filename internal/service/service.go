package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"taskbot/internal/command"
	"taskbot/internal/db/task"
	"taskbot/internal/db/user"
)

// ProgressPending is the progress a freshly added task starts with.
const ProgressPending = "Pending"

// Canned replies. Store failures are reported with replyInternal only; the
// underlying error goes to the log, never to the chat.
const (
	replyInternal      = "Ошибка: Не удалось выполнить команду. Попробуйте позже."
	replyNoTasks       = "Задачи не найдены."
	replyBadDateOrTime = "Ошибка: Неверный формат даты или времени. Ожидается 'ДД.ММ.ГГ' и 'ЧЧ:ММ'."
	replyBadDate       = "Ошибка: Неверный формат даты. Ожидается 'ДД.ММ.ГГ'."
	replyBadTime       = "Ошибка: Неверный формат времени. Ожидается 'ЧЧ:ММ'."
	replyAddTaskUsage  = "Ошибка: Недостаточно параметров. Ожидается: 'Название, Время, Дата'."
	replyAddTaskPrefix = "Ошибка: Команда должна начинаться с '/add_task'."
	replyUpdateUsage   = "Ошибка: Неверный формат команды. Ожидается: <поле>, <название задачи>, <новое значение>.\n" +
		"Пример: /update_task прогресс, Сделать уроки, Completed"
	replyDeleteUsage = "Ошибка: Укажите название задачи. Пример: /delete_task Сделать уроки"
)

// Service turns chat commands into persistence calls. Every method returns a
// ready-to-send reply: parser and store errors never cross this boundary as
// error values.
type Service struct {
	log   zerolog.Logger
	users user.Repository
	tasks task.Repository
}

func New(log zerolog.Logger, users user.Repository, tasks task.Repository) *Service {
	return &Service{log: log, users: users, tasks: tasks}
}

// EnsureUserExists registers the handle unless it is already on file.
func (s *Service) EnsureUserExists(ctx context.Context, u user.User) string {
	created, err := s.users.Ensure(ctx, u)
	if err != nil {
		s.log.Error().Err(err).Str("handle", u.Handle).Msg("ensure user failed")
		return replyInternal
	}
	if created {
		return fmt.Sprintf("Пользователь %s создан.", u.Handle)
	}
	return fmt.Sprintf("Пользователь %s уже существует.", u.Handle)
}

// CreateTaskWithCheck registers the owner if needed, then inserts the task.
// It does not look for an existing task with the same name: repeated adds
// create duplicate rows, matching the store's lack of a task constraint.
func (s *Service) CreateTaskWithCheck(ctx context.Context, t task.Task) error {
	if _, err := s.users.Ensure(ctx, user.User{Handle: t.Owner}); err != nil {
		return err
	}
	return s.tasks.Create(ctx, t)
}

// AddTask parses an /add_task command and creates the task for handle,
// auto-registering the user on first contact.
func (s *Service) AddTask(ctx context.Context, handle, text string) string {
	parsed, err := command.ParseAddTask(text)
	switch {
	case errors.Is(err, command.ErrMissingPrefix):
		return replyAddTaskPrefix
	case errors.Is(err, command.ErrMissingParameters):
		return replyAddTaskUsage
	case errors.Is(err, command.ErrBadDate), errors.Is(err, command.ErrBadTime):
		return replyBadDateOrTime
	case err != nil:
		s.log.Error().Err(err).Str("handle", handle).Msg("parse add_task failed")
		return replyInternal
	}

	progress := ProgressPending
	t := task.Task{
		Name:     parsed.Name,
		Owner:    handle,
		DateEnd:  &parsed.DateEnd,
		TimeEnd:  &parsed.TimeEnd,
		Progress: &progress,
	}
	if err := s.CreateTaskWithCheck(ctx, t); err != nil {
		s.log.Error().Err(err).
			Str("handle", handle).
			Str("task", parsed.Name).
			Msg("create task failed")
		return replyInternal
	}

	return fmt.Sprintf("Задача '%s' успешно добавлена для пользователя '%s' с датой %s и временем %s.",
		parsed.Name, handle, parsed.DateEnd, parsed.TimeEnd)
}

// UpdateTask parses an /update_task command and applies the field change.
func (s *Service) UpdateTask(ctx context.Context, handle, text string) string {
	parsed, err := command.ParseUpdateTask(text)

	var unsupported *command.UnsupportedFieldError
	switch {
	case errors.As(err, &unsupported):
		return fmt.Sprintf("Ошибка: Поле '%s' не поддерживается для обновления.", unsupported.Label)
	case errors.Is(err, command.ErrMissingParameters):
		return replyUpdateUsage
	case errors.Is(err, command.ErrBadDate):
		return replyBadDate
	case errors.Is(err, command.ErrBadTime):
		return replyBadTime
	case err != nil:
		s.log.Error().Err(err).Str("handle", handle).Msg("parse update_task failed")
		return replyInternal
	}

	return s.UpdateTaskField(ctx, handle, parsed)
}

// UpdateTaskField writes one already-normalized field value and reports the
// outcome: success with the new value echoed back, or not-found when no row
// matched (name, handle).
func (s *Service) UpdateTaskField(ctx context.Context, handle string, upd command.UpdateTask) string {
	affected, err := s.tasks.UpdateField(ctx, upd.TaskName, handle, upd.Field.Column(), upd.Value)
	if err != nil {
		s.log.Error().Err(err).
			Str("handle", handle).
			Str("task", upd.TaskName).
			Msg("update task failed")
		return replyInternal
	}
	if affected == 0 {
		return fmt.Sprintf("Ошибка: Задача '%s' не найдена для пользователя '%s'.", upd.TaskName, handle)
	}
	return fmt.Sprintf("Поле '%s' успешно обновлено для задачи '%s'. Новое значение: %s.",
		upd.Label, upd.TaskName, upd.Value)
}

// ViewTasks renders the handle's tasks one line each, or every task when
// handle is empty.
func (s *Service) ViewTasks(ctx context.Context, handle string) string {
	tasks, err := s.tasks.List(ctx, handle)
	if err != nil {
		s.log.Error().Err(err).Str("handle", handle).Msg("list tasks failed")
		return replyInternal
	}
	if len(tasks) == 0 {
		return replyNoTasks
	}

	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, fmt.Sprintf("Задача: %s, Дата: %s, Время: %s, Прогресс: %s",
			t.Name, orDash(t.DateEnd), orDash(t.TimeEnd), orDash(t.Progress)))
	}
	return strings.Join(lines, "\n")
}

// DeleteTask parses a /delete_task command and removes the named task.
func (s *Service) DeleteTask(ctx context.Context, handle, text string) string {
	name, err := command.ParseDeleteTask(text)
	if err != nil {
		return replyDeleteUsage
	}

	deleted, err := s.tasks.Delete(ctx, name, handle)
	if err != nil {
		s.log.Error().Err(err).
			Str("handle", handle).
			Str("task", name).
			Msg("delete task failed")
		return replyInternal
	}
	if !deleted {
		return fmt.Sprintf("Ошибка: Задача '%s' не найдена для пользователя '%s'.", name, handle)
	}
	return fmt.Sprintf("Задача '%s' удалена.", name)
}

// DeleteUser removes the user row. Tasks owned by the handle stay behind;
// the store defines no cascade.
func (s *Service) DeleteUser(ctx context.Context, handle string) string {
	deleted, err := s.users.Delete(ctx, handle)
	if err != nil {
		s.log.Error().Err(err).Str("handle", handle).Msg("delete user failed")
		return replyInternal
	}
	if !deleted {
		return fmt.Sprintf("Ошибка: Пользователь %s не найден.", handle)
	}
	return fmt.Sprintf("Пользователь %s удалён.", handle)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
