package ports

// Caller is the authenticated identity a request acts on behalf of.
type Caller struct {
	UserID  string
	IsAdmin bool
}

// CanAccess reports whether the caller may read or change userID's data.
func (c Caller) CanAccess(userID string) bool {
	return c.IsAdmin || (c.UserID != "" && c.UserID == userID)
}
