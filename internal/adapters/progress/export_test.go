package progress

const (
	TwoSecs = twoSecs
	OneSec  = oneSec
)
