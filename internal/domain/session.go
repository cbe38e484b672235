package domain

// UserSession is the authenticated identity held by the client and persisted
// across launches.
type UserSession struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
}
