package constants

import "fmt"

const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

const (
	ErrOnlyTeachersCanAccess = "only teachers can access %s"
	ErrOnlyStudentsCanAccess = "only students can access %s"
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

var AllRoles = []string{
	RoleTeacher,
	RoleStudent,
}
