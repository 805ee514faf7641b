package directory

// Roles
const (
	RoleStudent    Role = "Student"
	RoleInstructor Role = "Instructor"
	RoleAdmin      Role = "Admin"
)

var AllRoles = []Role{RoleStudent, RoleInstructor, RoleAdmin}

type Role string

func (r Role) IsValid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Capabilities is the capability set of a role, computed once and consumed
// by both the query layer and any presentation layer, instead of re-deriving
// role checks in every consumer.
type Capabilities struct {
	CanEnroll            bool
	CanSubmit            bool
	CanGrade             bool
	CanManageCourses     bool
	CanManageMaterials   bool
	CanManageAssignments bool
	CanManageUsers       bool
	CanPostAnnouncements bool
	CanPostSystemWide    bool
	CanSeeAllUsers       bool
	CanSeeReports        bool
}

var roleCapabilities = map[Role]Capabilities{
	RoleStudent: {
		CanEnroll: true,
		CanSubmit: true,
	},
	RoleInstructor: {
		CanGrade:             true,
		CanManageMaterials:   true,
		CanManageAssignments: true,
		CanPostAnnouncements: true,
	},
	RoleAdmin: {
		CanManageCourses:     true,
		CanManageUsers:       true,
		CanPostAnnouncements: true,
		CanPostSystemWide:    true,
		CanSeeAllUsers:       true,
		CanSeeReports:        true,
	},
}

func (r Role) Capabilities() Capabilities {
	return roleCapabilities[r]
}
