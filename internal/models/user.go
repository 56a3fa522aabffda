package models

// User represents a household member.
// The user's id is assigned by the user registry and is not stored here.
type User struct {
	// Name is the display name of the user.
	Name string

	// Bills in insertion order. Indices shift down when a bill is removed.
	Bills []Bill

	// Payments in insertion order. Payments are never removed.
	Payments []Payment
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	c := &User{Name: u.Name}
	if len(u.Bills) > 0 {
		c.Bills = append([]Bill(nil), u.Bills...)
	}
	if len(u.Payments) > 0 {
		c.Payments = append([]Payment(nil), u.Payments...)
	}
	return c
}

// UserEntry pairs a registered user with its id.
type UserEntry struct {
	ID   int
	User User
}
