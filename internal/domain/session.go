package domain

// Preferences is the guest's per-session tradeoff configuration. All fields
// are caller-validated at the edge: QuietVsAccess in [0,100] (100 = fully
// quiet-weighted), PremiumTolerance in [0,10] dollars.
type Preferences struct {
	QuietVsAccess    int
	AvoidElevator    bool
	PremiumTolerance int
}

// SignalDraft is one guest micro-feedback submission. Slider fields are 1..5.
// ImageURL is collected by the edge but has no Room attribute to land on, so
// it is dropped by the merge.
type SignalDraft struct {
	Quiet       int
	Love        int
	Convenience int
	Tag         string
	Note        string
	ImageURL    string
}

type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// MatchResult summarizes how well a room fits the guest's preferences.
// Score is 0..100; SuggestedDelta is a signed dollar adjustment to the
// nightly base rate, bounded below by -15 and above by PremiumTolerance.
type MatchResult struct {
	Score          int
	SuggestedDelta int
	Confidence     Confidence
}
