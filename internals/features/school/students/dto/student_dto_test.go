// file: internals/features/school/students/dto/student_dto_test.go
package dto

import (
	"encoding/json"
	"testing"
)

func TestUpdateStudentRequestDetectsUsernameKey(t *testing.T) {
	// A username in the payload must be visible to the handler so it
	// can refuse the update before anything else runs.
	var req UpdateStudentRequest
	if err := json.Unmarshal([]byte(`{"student_username":"taken_x"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.StudentUsername == nil || *req.StudentUsername != "taken_x" {
		t.Errorf("StudentUsername = %v, want pointer to %q", req.StudentUsername, "taken_x")
	}

	var clean UpdateStudentRequest
	if err := json.Unmarshal([]byte(`{"student_name":"John"}`), &clean); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if clean.StudentUsername != nil {
		t.Errorf("StudentUsername = %v, want nil when the key is absent", clean.StudentUsername)
	}
}

func TestUpdateStudentRequestDistinguishesClearFromAbsent(t *testing.T) {
	var req UpdateStudentRequest
	if err := json.Unmarshal([]byte(`{"student_class_id":""}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.StudentClassID == nil || *req.StudentClassID != "" {
		t.Errorf("StudentClassID = %v, want pointer to empty string", req.StudentClassID)
	}

	var absent UpdateStudentRequest
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if absent.StudentClassID != nil {
		t.Errorf("StudentClassID = %v, want nil when the key is absent", absent.StudentClassID)
	}
}
