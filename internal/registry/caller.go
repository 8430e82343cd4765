package registry

// Caller is the identity handed to every registry operation. It is supplied
// by the authentication layer; the registry never authenticates credentials
// itself and only consumes the resolved id plus group names.
type Caller struct {
	ID     uint
	Email  string
	Groups []string
}

// Anonymous is the zero caller used for unauthenticated requests.
var Anonymous = Caller{}

func (c Caller) Authenticated() bool {
	return c.ID != 0
}

func (c Caller) HasGroup(name string) bool {
	for _, group := range c.Groups {
		if group == name {
			return true
		}
	}
	return false
}
