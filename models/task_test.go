package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewTask_Defaults(t *testing.T) {
	due := time.Date(2024, time.March, 1, 17, 45, 0, 0, time.UTC)
	task := NewTask("1", "Buy milk", due, High)

	assert.False(t, task.IsCompleted, "new task should not be completed")
	assert.True(t, task.DueDate.Equal(date(2024, time.March, 1)), "DueDate = %v, want the calendar date only", task.DueDate)
	assert.Equal(t, "1", task.ID)
	assert.Equal(t, "Buy milk", task.Name)
}

func TestTask_Line(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want string
	}{
		{
			name: "pending",
			task: NewTask("1", "Buy milk", date(2024, time.March, 1), High),
			want: "1. [in progress] Buy milk | Due: 01.03.2024 | Priority: high",
		},
		{
			name: "completed",
			task: Task{ID: "7", Name: "Pay bills", DueDate: date(2024, time.February, 15), Priority: Low, IsCompleted: true},
			want: "7. [finish] Pay bills | Due: 15.02.2024 | Priority: low",
		},
		{
			name: "unrecognised priority keeps label",
			task: NewTask("x", "Walk", date(2025, time.December, 31), ParsePriority("urgent")),
			want: "x. [in progress] Walk | Due: 31.12.2025 | Priority: urgent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.Line())
		})
	}
}

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{input: "01.03.2024", want: date(2024, time.March, 1)},
		{input: " 29.02.2024 ", want: date(2024, time.February, 29)},
		{input: "01.01.0001", want: date(1, time.January, 1)},
		{input: "29.02.2023", wantErr: true},
		{input: "1.3.2024", wantErr: true},
		{input: "2024-03-01", wantErr: true},
		{input: "32.01.2024", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDueDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "ParseDueDate(%q) = %v, want %v", tt.input, got, tt.want)
		})
	}
}

func TestValidateStruct(t *testing.T) {
	type input struct {
		ID   string `validate:"required"`
		Name string `validate:"required"`
	}

	require.NoError(t, ValidateStruct(input{ID: "1", Name: "ok"}))

	err := ValidateStruct(input{ID: "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Validation failed on field 'input.Name': rule 'required'")

	err = ValidateStruct(input{})
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), "; "), "expected two joined failures")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"ID", "Name"}, verr.Fields)
}
