package dto

// UnlockStatusResponse reports the consistency-gate decision. Recomputed on
// every query, never stored.
type UnlockStatusResponse struct {
	Unlocked bool   `json:"unlocked"`
	Progress int    `json:"progress"`
	Target   int    `json:"target"`
	Message  string `json:"message"`
	Reason   string `json:"reason"`
}

// RecordInteractionResponse acknowledges an interaction write.
type RecordInteractionResponse struct {
	Recorded bool   `json:"recorded"`
	Date     string `json:"date"`
}
