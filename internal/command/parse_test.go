package command

import (
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"padded", "16.12.24", "2024-12-16", nil},
		{"new year", "01.01.25", "2025-01-01", nil},
		{"unpadded day and month", "1.1.25", "2025-01-01", nil},
		{"already normalized", "2025-01-01", "2025-01-01", nil},
		{"four digit year", "16.12.2024", "", ErrBadDate},
		{"slashes", "16/12/24", "", ErrBadDate},
		{"day out of range", "32.01.25", "", ErrBadDate},
		{"empty", "", "", ErrBadDate},
		{"garbage", "завтра", "", ErrBadDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseDate(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDateIdempotent(t *testing.T) {
	first, err := ParseDate("16.12.24")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	second, err := ParseDate(first)
	if err != nil {
		t.Fatalf("ParseDate(normalized) error = %v", err)
	}
	if second != first {
		t.Errorf("re-parsing normalized date changed it: %q -> %q", first, second)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"morning", "09:30", "09:30:00", nil},
		{"unpadded hour", "9:30", "09:30:00", nil},
		{"evening", "18:30", "18:30:00", nil},
		{"already normalized", "18:30:00", "18:30:00", nil},
		{"out of range", "25:61", "", ErrBadTime},
		{"dots", "18.30", "", ErrBadTime},
		{"empty", "", "", ErrBadTime},
		{"garbage", "вечером", "", ErrBadTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseTime(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTime(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAddTask(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    AddTask
		wantErr error
	}{
		{
			name:  "happy path",
			input: "/add_task Buy milk, 18:30, 01.01.25",
			want:  AddTask{Name: "Buy milk", TimeEnd: "18:30:00", DateEnd: "2025-01-01"},
		},
		{
			name:  "extra parts ignored",
			input: "/add_task Buy milk, 18:30, 01.01.25, срочно",
			want:  AddTask{Name: "Buy milk", TimeEnd: "18:30:00", DateEnd: "2025-01-01"},
		},
		{
			name:    "two parts",
			input:   "/add_task Buy milk, 18:30",
			wantErr: ErrMissingParameters,
		},
		{
			name:    "no space after command",
			input:   "/add_task",
			wantErr: ErrMissingPrefix,
		},
		{
			name:    "wrong command",
			input:   "/addtask Buy milk, 18:30, 01.01.25",
			wantErr: ErrMissingPrefix,
		},
		{
			name:    "bad time",
			input:   "/add_task Buy milk, вечером, 01.01.25",
			wantErr: ErrBadTime,
		},
		{
			name:    "bad date",
			input:   "/add_task Buy milk, 18:30, 2025.01.01",
			wantErr: ErrBadDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAddTask(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseAddTask(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAddTask(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseUpdateTask(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    UpdateTask
		wantErr error
	}{
		{
			name:  "progress",
			input: "/update_task прогресс, Buy milk, Completed",
			want:  UpdateTask{Field: FieldProgress, Label: "прогресс", TaskName: "Buy milk", Value: "Completed"},
		},
		{
			name:  "date is normalized",
			input: "/update_task дата, Buy milk, 16.12.24",
			want:  UpdateTask{Field: FieldDate, Label: "дата", TaskName: "Buy milk", Value: "2024-12-16"},
		},
		{
			name:  "time is normalized",
			input: "/update_task время, Buy milk, 9:30",
			want:  UpdateTask{Field: FieldTime, Label: "время", TaskName: "Buy milk", Value: "09:30:00"},
		},
		{
			name:  "rename",
			input: "/update_task название, Buy milk, Buy bread",
			want:  UpdateTask{Field: FieldName, Label: "название", TaskName: "Buy milk", Value: "Buy bread"},
		},
		{
			name:    "two parts",
			input:   "/update_task прогресс, Buy milk",
			wantErr: ErrMissingParameters,
		},
		{
			name:    "bad date value",
			input:   "/update_task дата, Buy milk, 16/12/24",
			wantErr: ErrBadDate,
		},
		{
			name:    "bad time value",
			input:   "/update_task время, Buy milk, поздно",
			wantErr: ErrBadTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUpdateTask(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseUpdateTask(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseUpdateTask(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseUpdateTaskUnsupportedField(t *testing.T) {
	_, err := ParseUpdateTask("/update_task owner, Buy milk, bob")

	var unsupported *UnsupportedFieldError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want UnsupportedFieldError", err)
	}
	if unsupported.Label != "owner" {
		t.Errorf("Label = %q, want %q", unsupported.Label, "owner")
	}
}

func TestParseDeleteTask(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"happy path", "/delete_task Buy milk", "Buy milk", nil},
		{"no name", "/delete_task", "", ErrMissingParameters},
		{"only spaces", "/delete_task   ", "", ErrMissingParameters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDeleteTask(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseDeleteTask(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDeleteTask(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
