package types

// Settings is a partial update of the dataset header. Nil fields are left
// unchanged.
type Settings struct {
	StartDate    *string `json:"startDate,omitempty"`
	StartWeight  *string `json:"startWeight,omitempty"`
	TargetWeight *string `json:"targetWeight,omitempty"`
}
