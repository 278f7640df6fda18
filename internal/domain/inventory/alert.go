package inventory

// AlertSeverity ranks how urgently a stock line needs restocking
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityWarning  AlertSeverity = "warning"
	SeverityNone     AlertSeverity = "none"
)

// AlertSeverity classifies the stock line: empty shelves are critical,
// anything under the reorder threshold is a warning.
func (s *Stock) AlertSeverity() AlertSeverity {
	switch {
	case s.IsOutOfStock():
		return SeverityCritical
	case s.IsLowStock():
		return SeverityWarning
	default:
		return SeverityNone
	}
}
