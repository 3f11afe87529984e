package footballdata

import (
	"strings"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/match"
)

// statusMap translates API-Football short status codes into internal match
// states. Codes absent from the table map to UPCOMING, the conservative
// choice: never assume a match completed on an unknown code.
var statusMap = map[string]string{
	// Not started.
	"TBD":  match.StatusUpcoming,
	"NS":   match.StatusUpcoming,
	"PST":  match.StatusUpcoming,
	"CANC": match.StatusUpcoming,

	// In play.
	"1H":   match.StatusLive,
	"HT":   match.StatusLive,
	"2H":   match.StatusLive,
	"ET":   match.StatusLive,
	"P":    match.StatusLive,
	"BT":   match.StatusLive,
	"LIVE": match.StatusLive,
	"INT":  match.StatusLive,

	// Finished.
	"FT":  match.StatusCompleted,
	"AET": match.StatusCompleted,
	"PEN": match.StatusCompleted,
	"AWD": match.StatusCompleted,
	"WO":  match.StatusCompleted,
}

// MapStatus converts an upstream short code to the internal vocabulary.
func MapStatus(code string) string {
	if status, ok := statusMap[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return status
	}
	return match.StatusUpcoming
}
