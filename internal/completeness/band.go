package completeness

// Band classifies a percentage for progress indicators.
type Band string

const (
	BandSuccess Band = "success"
	BandWarning Band = "warning"
	BandDanger  Band = "danger"
)

// BandFor maps a percentage to its band: >=80 success, >=50 warning, otherwise danger.
func BandFor(percent int) Band {
	switch {
	case percent >= 80:
		return BandSuccess
	case percent >= 50:
		return BandWarning
	default:
		return BandDanger
	}
}
