package model

// Preferences are per-profile UI settings mirrored in the local store:
// the guest's manually-entered location, the dark mode flag and the
// temperature unit flag.  They have no remote representation.
type Preferences struct {
	GuestLocation string `json:"guest_location,omitempty"`
	DarkMode      bool   `json:"dark_mode"`
	UseFahrenheit bool   `json:"use_fahrenheit"`
}
