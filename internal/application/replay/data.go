package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // UpJustPressed
}

// ReplayData contains all data needed to replay a game session.
// The simulation is deterministic at a fixed dt, so input is all that is stored.
type ReplayData struct {
	Version   string       `json:"version"`
	Level     int          `json:"level"` // index the run started at
	DT        float64      `json:"dt"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
