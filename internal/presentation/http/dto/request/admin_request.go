package request

// LoginRequest exchanges the shared admin password for a token.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest rotates the shared admin password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// LockStateRequest sets the lock flag on a named resource.
type LockStateRequest struct {
	IsLocked *bool `json:"isLocked" binding:"required"`
}
