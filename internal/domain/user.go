package domain

type Role string

const (
	RoleMember Role = "MEMBER"
	RoleStaff  Role = "STAFF"
)

type Permission string

const (
	PermViewAllBorrowings Permission = "borrowing:view_all"
	PermApproveBorrowing  Permission = "borrowing:approve"
	PermDeclineBorrowing  Permission = "borrowing:decline"
	PermMarkBorrowing     Permission = "borrowing:mark_borrowing"
	PermMarkReturned      Permission = "borrowing:mark_returned"
	PermManageCatalog     Permission = "catalog:manage"
)

var rolePermissions = map[Role][]Permission{
	RoleMember: {},
	RoleStaff: {
		PermViewAllBorrowings,
		PermApproveBorrowing,
		PermDeclineBorrowing,
		PermMarkBorrowing,
		PermMarkReturned,
		PermManageCatalog,
	},
}

type User struct {
	ID           int32  `json:"id"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	CreatedOn    string `json:"created_on"`
	UpdatedOn    string `json:"updated_on"`
}

// HasPermission reports whether the user's role grants the permission.
func (u *User) HasPermission(perm Permission) bool {
	for _, p := range rolePermissions[u.Role] {
		if p == perm {
			return true
		}
	}
	return false
}
