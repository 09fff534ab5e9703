package spreadsheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Formatter превращает значение поля в текст ячейки.
// Для nil и значений неподходящего типа форматтер не паникует.
type Formatter func(v any) string

// Text выводит значение как есть.
func Text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// Date выводит дату в формате dd/mm/yyyy.
func Date(v any) string {
	return formatTime(v, "02/01/2006")
}

// DateTime выводит дату и время в формате dd/mm/yyyy HH:MM.
func DateTime(v any) string {
	return formatTime(v, "02/01/2006 15:04")
}

// Clock выводит только время суток HH:MM.
func Clock(v any) string {
	return formatTime(v, "15:04")
}

// Integer выводит целое число без дробной части.
func Integer(v any) string {
	f, ok := toFloat(v)
	if !ok {
		return Text(v)
	}
	return strconv.FormatInt(int64(math.Round(f)), 10)
}

// Decimal возвращает форматтер числа с фиксированным количеством знаков после запятой.
func Decimal(precision int) Formatter {
	return func(v any) string {
		f, ok := toFloat(v)
		if !ok {
			return Text(v)
		}
		return strconv.FormatFloat(f, 'f', precision, 64)
	}
}

// Enum возвращает форматтер, подставляющий отображаемую метку значения.
// Неизвестное значение выводится как есть.
func Enum(labels map[string]string) Formatter {
	return func(v any) string {
		raw := Text(v)
		if label, ok := labels[raw]; ok {
			return label
		}
		return raw
	}
}

// Bool выводит Có/Không.
func Bool(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "Có"
		}
		return "Không"
	case nil:
		return ""
	default:
		return Text(v)
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"15:04:05",
	"15:04",
}

func formatTime(v any, layout string) string {
	switch val := v.(type) {
	case nil:
		return ""
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format(layout)
	case *time.Time:
		if val == nil || val.IsZero() {
			return ""
		}
		return val.Format(layout)
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return ""
		}
		for _, l := range timeLayouts {
			if t, err := time.Parse(l, s); err == nil {
				return t.Format(layout)
			}
		}
		return s
	default:
		return Text(v)
	}
}

func toFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
