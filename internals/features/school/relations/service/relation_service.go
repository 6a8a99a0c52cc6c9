// file: internals/features/school/relations/service/relation_service.go
//
// Keeps the reciprocal reference pairs between classes, teachers and students
// consistent after every mutation:
//
//	classes.class_teacher_id   <->  teachers.teacher_class_id
//	classes.class_student_ids  <->  students.student_class_id
//
// All writers here run AFTER the primary entity write and are idempotent, so
// a failed reciprocal write can be retried without corrupting either side.
// Failures are logged and never roll back the primary write (best-effort
// consistency, no cross-table transaction).
package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "studentcrm_backend/internals/features/school/classes/model"
)

type RelationService struct {
	DB *gorm.DB
}

func NewRelationService(db *gorm.DB) *RelationService {
	return &RelationService{DB: db}
}

/* =========================================================
   Pure set helpers
========================================================= */

// DiffIDSets computes the symmetric difference between the old and new
// member sets. IDs present in both are left out entirely: reciprocal
// updates must never touch unchanged members.
func DiffIDSets(oldIDs, newIDs []string) (added, removed []string) {
	oldSet := make(map[string]struct{}, len(oldIDs))
	for _, id := range oldIDs {
		oldSet[id] = struct{}{}
	}
	newSet := make(map[string]struct{}, len(newIDs))
	for _, id := range newIDs {
		newSet[id] = struct{}{}
	}

	for _, id := range newIDs {
		if _, ok := oldSet[id]; !ok {
			added = append(added, id)
		}
	}
	for _, id := range oldIDs {
		if _, ok := newSet[id]; !ok {
			removed = append(removed, id)
		}
	}
	return added, removed
}

// ContainsID reports whether the set holds the given id.
func ContainsID(set []string, id string) bool {
	for _, s := range set {
		if s == id {
			return true
		}
	}
	return false
}

// SameIDRef compares two optional references.
func SameIDRef(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// CanAccept reports whether the class can take n more students without
// exceeding its limit.
func CanAccept(class *classModel.ClassModel, n int) bool {
	return class.StudentCount()+n <= class.ClassStudentLimit
}

/* =========================================================
   Low-level reciprocal writers (idempotent)
========================================================= */

// AttachStudentToClass appends the student id to the class member set.
// The NOT(=ANY) guard makes the append atomic and duplicate-free, so
// concurrent or retried attaches cannot grow the set twice.
func (s *RelationService) AttachStudentToClass(classID, studentID uuid.UUID) error {
	return s.DB.Exec(
		`UPDATE classes
		    SET class_student_ids = array_append(class_student_ids, ?),
		        class_updated_at  = now()
		  WHERE class_id = ?
		    AND NOT (? = ANY (class_student_ids))`,
		studentID, classID, studentID,
	).Error
}

// DetachStudentFromClass removes the student id from the class member set.
func (s *RelationService) DetachStudentFromClass(classID, studentID uuid.UUID) error {
	return s.DB.Exec(
		`UPDATE classes
		    SET class_student_ids = array_remove(class_student_ids, ?::uuid),
		        class_updated_at  = now()
		  WHERE class_id = ?`,
		studentID, classID,
	).Error
}

// SetStudentClassRef points the student at a class (or nil to unassign).
func (s *RelationService) SetStudentClassRef(studentID uuid.UUID, classID *uuid.UUID) error {
	return s.DB.Exec(
		`UPDATE students
		    SET student_class_id   = ?,
		        student_updated_at = now()
		  WHERE student_id = ?`,
		classID, studentID,
	).Error
}

// SetTeacherClassRef points the teacher at a class (or nil to unassign).
func (s *RelationService) SetTeacherClassRef(teacherID uuid.UUID, classID *uuid.UUID) error {
	return s.DB.Exec(
		`UPDATE teachers
		    SET teacher_class_id   = ?,
		        teacher_updated_at = now()
		  WHERE teacher_id = ?`,
		classID, teacherID,
	).Error
}

// SetClassTeacherRef sets the class's teacher reference.
func (s *RelationService) SetClassTeacherRef(classID, teacherID uuid.UUID) error {
	return s.DB.Exec(
		`UPDATE classes
		    SET class_teacher_id = ?,
		        class_updated_at = now()
		  WHERE class_id = ?`,
		teacherID, classID,
	).Error
}

// ClearClassTeacherRef nulls the class's teacher reference, but only while
// it still points at the expected teacher (compare-and-null, retry safe).
func (s *RelationService) ClearClassTeacherRef(classID, teacherID uuid.UUID) error {
	return s.DB.Exec(
		`UPDATE classes
		    SET class_teacher_id = NULL,
		        class_updated_at = now()
		  WHERE class_id = ? AND class_teacher_id = ?`,
		classID, teacherID,
	).Error
}

/* =========================================================
   High-level reconciliation ops (called after primary writes)
========================================================= */

// SyncClassTeacher reconciles a class's teacher change: the old teacher (if
// any) loses its class ref, the new one (if any) gains it. A no-op when the
// reference did not change.
func (s *RelationService) SyncClassTeacher(classID uuid.UUID, oldTeacherID, newTeacherID *uuid.UUID) {
	if SameIDRef(oldTeacherID, newTeacherID) {
		return
	}
	if oldTeacherID != nil {
		if err := s.SetTeacherClassRef(*oldTeacherID, nil); err != nil {
			log.Printf("[ERROR] relations: clear class ref on old teacher %s: %v", oldTeacherID, err)
		}
	}
	if newTeacherID != nil {
		if err := s.SetTeacherClassRef(*newTeacherID, &classID); err != nil {
			log.Printf("[ERROR] relations: set class ref on new teacher %s: %v", newTeacherID, err)
		}
	}
}

// SyncClassStudents reconciles a replaced member set: students that entered
// the set get their class ref set, students that left get it cleared, and
// students present in both sets are untouched.
func (s *RelationService) SyncClassStudents(classID uuid.UUID, oldIDs, newIDs []string) {
	added, removed := DiffIDSets(oldIDs, newIDs)

	for _, id := range added {
		sid, err := uuid.Parse(id)
		if err != nil {
			log.Printf("[ERROR] relations: bad student id %q in new set: %v", id, err)
			continue
		}
		if err := s.SetStudentClassRef(sid, &classID); err != nil {
			log.Printf("[ERROR] relations: set class ref on student %s: %v", sid, err)
		}
	}
	for _, id := range removed {
		sid, err := uuid.Parse(id)
		if err != nil {
			log.Printf("[ERROR] relations: bad student id %q in old set: %v", id, err)
			continue
		}
		if err := s.SetStudentClassRef(sid, nil); err != nil {
			log.Printf("[ERROR] relations: clear class ref on student %s: %v", sid, err)
		}
	}
}

// UnlinkPlan is the set of inbound references a deleted class leaves
// behind: the member students whose class ref must be cleared and, if
// assigned, the teacher whose class ref must be cleared.
type UnlinkPlan struct {
	StudentIDs []uuid.UUID
	TeacherID  *uuid.UUID
}

// PlanClassUnlink decides which references a class deletion must clear.
// Unparseable member ids are dropped from the plan.
func PlanClassUnlink(class *classModel.ClassModel) UnlinkPlan {
	var plan UnlinkPlan
	for _, id := range class.ClassStudentIDs {
		sid, err := uuid.Parse(id)
		if err != nil {
			log.Printf("[ERROR] relations: bad student id %q on deleted class: %v", id, err)
			continue
		}
		plan.StudentIDs = append(plan.StudentIDs, sid)
	}
	plan.TeacherID = class.ClassTeacherID
	return plan
}

// UnlinkDeletedClass clears every reference into a class that was just
// deleted: each member student's class ref and the assigned teacher's
// class ref.
func (s *RelationService) UnlinkDeletedClass(class *classModel.ClassModel) {
	plan := PlanClassUnlink(class)
	for _, sid := range plan.StudentIDs {
		if err := s.SetStudentClassRef(sid, nil); err != nil {
			log.Printf("[ERROR] relations: clear class ref on student %s: %v", sid, err)
		}
	}
	if plan.TeacherID != nil {
		if err := s.SetTeacherClassRef(*plan.TeacherID, nil); err != nil {
			log.Printf("[ERROR] relations: clear class ref on teacher %s: %v", plan.TeacherID, err)
		}
	}
}

// MoveStudent reconciles a student's class membership change: remove from
// the old class's set, append to the new one. Unassign and first-assign are
// the nil cases.
func (s *RelationService) MoveStudent(studentID uuid.UUID, oldClassID, newClassID *uuid.UUID) {
	if SameIDRef(oldClassID, newClassID) {
		return
	}
	if oldClassID != nil {
		if err := s.DetachStudentFromClass(*oldClassID, studentID); err != nil {
			log.Printf("[ERROR] relations: detach student %s from class %s: %v", studentID, oldClassID, err)
		}
	}
	if newClassID != nil {
		if err := s.AttachStudentToClass(*newClassID, studentID); err != nil {
			log.Printf("[ERROR] relations: attach student %s to class %s: %v", studentID, newClassID, err)
		}
	}
}

// MoveTeacher reconciles a teacher's assignment change: the old class loses
// its teacher ref (only while it still points at this teacher), the new
// class gains it.
func (s *RelationService) MoveTeacher(teacherID uuid.UUID, oldClassID, newClassID *uuid.UUID) {
	if SameIDRef(oldClassID, newClassID) {
		return
	}
	if oldClassID != nil {
		if err := s.ClearClassTeacherRef(*oldClassID, teacherID); err != nil {
			log.Printf("[ERROR] relations: clear teacher ref on class %s: %v", oldClassID, err)
		}
	}
	if newClassID != nil {
		if err := s.SetClassTeacherRef(*newClassID, teacherID); err != nil {
			log.Printf("[ERROR] relations: set teacher ref on class %s: %v", newClassID, err)
		}
	}
}

// DetachDeletedStudent removes a deleted student from its class's set.
func (s *RelationService) DetachDeletedStudent(studentID uuid.UUID, classID *uuid.UUID) {
	if classID == nil {
		return
	}
	if err := s.DetachStudentFromClass(*classID, studentID); err != nil {
		log.Printf("[ERROR] relations: detach deleted student %s from class %s: %v", studentID, classID, err)
	}
}

// DetachDeletedTeacher clears the teacher ref on a deleted teacher's class.
func (s *RelationService) DetachDeletedTeacher(teacherID uuid.UUID, classID *uuid.UUID) {
	if classID == nil {
		return
	}
	if err := s.ClearClassTeacherRef(*classID, teacherID); err != nil {
		log.Printf("[ERROR] relations: clear teacher ref on class %s: %v", classID, err)
	}
}
