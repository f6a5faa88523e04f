package canvas

// Profile is the current-user record from /api/v1/users/self.
type Profile struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name"`
	SortableName string `json:"sortable_name"`
	AvatarURL    string `json:"avatar_url"`
	Email        string `json:"email"`
	LoginID      string `json:"login_id"`
}
