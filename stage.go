package iconfetcher

// Stage is a state of the fetch pipeline.
//
//	Idle → Downloading → Extracting → CopyingAndroid → CopyingIOS → CleaningUp → Done
//
// Failed is reachable from every non-terminal stage.
type Stage int

// Pipeline stages.
const (
	StageIdle Stage = iota
	StageDownloading
	StageExtracting
	StageCopyingAndroid
	StageCopyingIOS
	StageCleaningUp
	StageDone
	StageFailed
)

var stageNames = [...]string{
	StageIdle:           "idle",
	StageDownloading:    "downloading",
	StageExtracting:     "extracting",
	StageCopyingAndroid: "copying-android",
	StageCopyingIOS:     "copying-ios",
	StageCleaningUp:     "cleaning-up",
	StageDone:           "done",
	StageFailed:         "failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// IsTerminal reports whether no transition leaves s.
func (s Stage) IsTerminal() bool {
	return s == StageDone || s == StageFailed
}

// canTransition reports whether from → to is a legal pipeline transition.
// Platform stages may be skipped when a platform is disabled.
func canTransition(from, to Stage) bool {
	if from.IsTerminal() {
		return false
	}
	if to == StageFailed {
		return true
	}

	switch from {
	case StageIdle:
		return to == StageDownloading
	case StageDownloading:
		return to == StageExtracting
	case StageExtracting:
		return to == StageCopyingAndroid || to == StageCopyingIOS
	case StageCopyingAndroid:
		return to == StageCopyingIOS || to == StageCleaningUp
	case StageCopyingIOS:
		return to == StageCleaningUp
	case StageCleaningUp:
		return to == StageDone
	}
	return false
}
