package models

// Default values written to a profile at registration time.
const (
	DefaultDisplayName = "New User"
	DefaultBio         = "This user has not written a bio yet."
)

// Profile is the one-to-one extension of a User. A profile row is created
// together with its user and removed by the cascade when the user is deleted.
type Profile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
}

// ProfileView is the profile as returned to the client, with the owning
// user's username joined in.
type ProfileView struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
}

// ProfilePatch carries a partial profile update. Nil fields are left
// untouched; only the present fields end up in the UPDATE statement.
type ProfilePatch struct {
	DisplayName *string `json:"displayName"`
	Bio         *string `json:"bio"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p ProfilePatch) IsEmpty() bool {
	return p.DisplayName == nil && p.Bio == nil
}
