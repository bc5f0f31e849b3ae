package consts

type UserField string

const (
	UserFieldUsername UserField = "username"
	UserFieldEmail    UserField = "email"
)

const (
	RoleAdmin  = "admin"
	RoleAuthor = "author"
)

// ValidRole 判断角色取值是否合法。
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleAuthor
}
