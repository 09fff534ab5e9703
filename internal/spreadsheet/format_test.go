package spreadsheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatters(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		format Formatter
		in     any
		want   string
	}{
		{name: "text nil", format: Text, in: nil, want: ""},
		{name: "text int", format: Text, in: 42, want: "42"},
		{name: "date time.Time", format: Date, in: ts, want: "05/03/2024"},
		{name: "date iso string", format: Date, in: "2024-03-05", want: "05/03/2024"},
		{name: "date garbage passes through", format: Date, in: "soon", want: "soon"},
		{name: "date zero", format: Date, in: time.Time{}, want: ""},
		{name: "datetime", format: DateTime, in: ts, want: "05/03/2024 14:30"},
		{name: "clock", format: Clock, in: ts, want: "14:30"},
		{name: "decimal float", format: Decimal(2), in: 1500.5, want: "1500.50"},
		{name: "decimal int64", format: Decimal(2), in: int64(7), want: "7.00"},
		{name: "decimal string", format: Decimal(1), in: "3.14159", want: "3.1"},
		{name: "decimal not a number", format: Decimal(2), in: "n/a", want: "n/a"},
		{name: "integer rounds", format: Integer, in: 4.6, want: "5"},
		{name: "integer int32", format: Integer, in: int32(12), want: "12"},
		{name: "enum known", format: Enum(taskStatusLabels), in: "done", want: "Hoàn thành"},
		{name: "enum unknown", format: Enum(taskStatusLabels), in: "archived", want: "archived"},
		{name: "bool true", format: Bool, in: true, want: "Có"},
		{name: "bool false", format: Bool, in: false, want: "Không"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format(tt.in))
		})
	}
}
