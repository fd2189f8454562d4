package auth

// User is the domain entity. One user owns one catalog of ingredients
// and recipes; everything in the API is scoped to the owner.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
