package http

import "strings"

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field != field {
			continue
		}
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
