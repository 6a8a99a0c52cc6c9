// file: internals/features/school/profile/service/profile_service.go
package service

import (
	"errors"
	"fmt"

	"studentcrm_backend/internals/constants"
	"studentcrm_backend/internals/helpers/dbtime"
)

// ErrInvalidUpdates is returned when the body carries any key outside
// the self-service whitelist. The check is exhaustive on purpose: an
// unknown key rejects the whole request rather than being ignored.
var ErrInvalidUpdates = errors.New("Invalid updates!")

var profileFields = []string{"name", "gender", "contact", "date_of_birth"}

// AllowedProfileKeys returns the JSON keys a principal of the given
// role may send to the profile update endpoint.
func AllowedProfileKeys(role string) map[string]bool {
	var prefix string
	switch role {
	case constants.RoleStudent:
		prefix = "student_"
	case constants.RoleTeacher:
		prefix = "teacher_"
	default:
		return map[string]bool{}
	}
	allowed := make(map[string]bool, len(profileFields))
	for _, f := range profileFields {
		allowed[prefix+f] = true
	}
	return allowed
}

// FilterProfileUpdates validates the raw body keys against the role's
// whitelist and converts the values into a column update map. Role and
// credential fields can never pass through here.
func FilterProfileUpdates(role string, body map[string]interface{}) (map[string]interface{}, error) {
	allowed := AllowedProfileKeys(role)
	if len(allowed) == 0 {
		return nil, ErrInvalidUpdates
	}

	updates := make(map[string]interface{}, len(body))
	for key, raw := range body {
		if !allowed[key] {
			return nil, ErrInvalidUpdates
		}
		value, ok := raw.(string)
		if !ok || value == "" {
			return nil, fmt.Errorf("invalid value for %s", key)
		}
		switch {
		case key == "student_gender" || key == "teacher_gender":
			if value != "Male" && value != "Female" {
				return nil, fmt.Errorf("invalid value for %s", key)
			}
			updates[key] = value
		case key == "student_date_of_birth" || key == "teacher_date_of_birth":
			parsed, err := dbtime.ParseDate(value)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s", key)
			}
			updates[key] = parsed
		default:
			updates[key] = value
		}
	}
	return updates, nil
}
