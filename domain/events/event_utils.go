package events

import "reflect"

// ExtractSessionID returns the SessionID field of an event, or "" if it has none
func ExtractSessionID(event Event) string {
	val := reflect.ValueOf(event)

	// If it's a pointer, get the underlying element
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return ""
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return ""
	}

	sessionID := val.FieldByName("SessionID")
	if sessionID.IsValid() && sessionID.Kind() == reflect.String {
		return sessionID.String()
	}

	return ""
}
