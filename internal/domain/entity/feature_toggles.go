package entity

// FeatureToggles is the backend-owned feature switch set. The service keeps
// an advisory snapshot loaded at startup and refreshed explicitly; the
// backend copy is the source of truth.
type FeatureToggles struct {
	CollectEmailAddresses  bool `json:"collectEmailAddresses"`
	PasswordProtectAdmin   bool `json:"passwordProtectAdmin"`
	ProtectPlantPassAccess bool `json:"protectPlantPassAccess"`
}
