// file: internals/features/school/relations/service/relation_service_test.go
package service

import (
	"sort"
	"testing"

	"github.com/google/uuid"

	classModel "studentcrm_backend/internals/features/school/classes/model"
)

func TestDiffIDSets(t *testing.T) {
	a, b, c, d := uuid.NewString(), uuid.NewString(), uuid.NewString(), uuid.NewString()

	added, removed := DiffIDSets([]string{a, b, c}, []string{b, c, d})
	if len(added) != 1 || added[0] != d {
		t.Errorf("added = %v, want [%s]", added, d)
	}
	if len(removed) != 1 || removed[0] != a {
		t.Errorf("removed = %v, want [%s]", removed, a)
	}
}

func TestDiffIDSetsNoChange(t *testing.T) {
	a, b := uuid.NewString(), uuid.NewString()
	added, removed := DiffIDSets([]string{a, b}, []string{b, a})
	if len(added) != 0 || len(removed) != 0 {
		t.Errorf("same membership produced added=%v removed=%v", added, removed)
	}
}

func TestDiffIDSetsFromEmpty(t *testing.T) {
	a, b := uuid.NewString(), uuid.NewString()

	added, removed := DiffIDSets(nil, []string{a, b})
	sort.Strings(added)
	want := []string{a, b}
	sort.Strings(want)
	if len(added) != 2 || added[0] != want[0] || added[1] != want[1] {
		t.Errorf("added = %v, want %v", added, want)
	}
	if len(removed) != 0 {
		t.Errorf("removed = %v, want empty", removed)
	}

	added, removed = DiffIDSets([]string{a}, nil)
	if len(added) != 0 || len(removed) != 1 || removed[0] != a {
		t.Errorf("clearing the set: added=%v removed=%v", added, removed)
	}
}

func TestContainsID(t *testing.T) {
	a, b := uuid.NewString(), uuid.NewString()
	set := []string{a}
	if !ContainsID(set, a) {
		t.Error("member reported missing")
	}
	if ContainsID(set, b) {
		t.Error("non-member reported present")
	}
}

func TestSameIDRef(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	aCopy := a

	if !SameIDRef(nil, nil) {
		t.Error("nil/nil should match")
	}
	if SameIDRef(&a, nil) || SameIDRef(nil, &b) {
		t.Error("nil against a value should not match")
	}
	if !SameIDRef(&a, &aCopy) {
		t.Error("equal values should match")
	}
	if SameIDRef(&a, &b) {
		t.Error("different values should not match")
	}
}

func TestPlanClassUnlink(t *testing.T) {
	s1, s2 := uuid.New(), uuid.New()
	teacherID := uuid.New()
	class := &classModel.ClassModel{
		ClassStudentIDs: []string{s1.String(), s2.String()},
		ClassTeacherID:  &teacherID,
	}

	plan := PlanClassUnlink(class)
	if len(plan.StudentIDs) != 2 || plan.StudentIDs[0] != s1 || plan.StudentIDs[1] != s2 {
		t.Errorf("student refs to clear = %v, want [%s %s]", plan.StudentIDs, s1, s2)
	}
	if plan.TeacherID == nil || *plan.TeacherID != teacherID {
		t.Errorf("teacher ref to clear = %v, want %s", plan.TeacherID, teacherID)
	}
}

func TestPlanClassUnlinkWithoutTeacher(t *testing.T) {
	class := &classModel.ClassModel{
		ClassStudentIDs: []string{uuid.NewString()},
	}
	plan := PlanClassUnlink(class)
	if plan.TeacherID != nil {
		t.Errorf("unassigned class produced a teacher ref: %v", plan.TeacherID)
	}
	if len(plan.StudentIDs) != 1 {
		t.Errorf("student refs to clear = %v, want one entry", plan.StudentIDs)
	}
}

func TestPlanClassUnlinkSkipsBadIDs(t *testing.T) {
	good := uuid.New()
	class := &classModel.ClassModel{
		ClassStudentIDs: []string{"not-a-uuid", good.String()},
	}
	plan := PlanClassUnlink(class)
	if len(plan.StudentIDs) != 1 || plan.StudentIDs[0] != good {
		t.Errorf("student refs to clear = %v, want [%s]", plan.StudentIDs, good)
	}
}

func TestCanAccept(t *testing.T) {
	class := &classModel.ClassModel{
		ClassStudentLimit: 3,
		ClassStudentIDs:   []string{uuid.NewString(), uuid.NewString()},
	}
	if !CanAccept(class, 1) {
		t.Error("one free seat refused")
	}
	if CanAccept(class, 2) {
		t.Error("overflow accepted")
	}

	full := &classModel.ClassModel{
		ClassStudentLimit: 2,
		ClassStudentIDs:   []string{uuid.NewString(), uuid.NewString()},
	}
	if CanAccept(full, 1) {
		t.Error("full class accepted a student")
	}
	if !CanAccept(full, 0) {
		t.Error("zero additions should always fit")
	}
}
