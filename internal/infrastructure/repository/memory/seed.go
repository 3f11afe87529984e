package memory

import (
	"fmt"
	"time"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/match"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/team"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/user"
)

// Kickoff times in the schedule below are Morocco local time (UTC+1).
var seedZone = time.FixedZone("UTC+1", 60*60)

// Host venues for the tournament.
var seedVenues = []string{
	"Prince Moulay Abdellah Stadium, Rabat",
	"Stade Mohammed V, Casablanca",
	"Grand Stade de Marrakech, Marrakesh",
	"Adrar Stadium, Agadir",
	"Complexe Sportif de Fès, Fez",
	"Ibn Batouta Stadium, Tangier",
}

// SeedTeams returns the 24 qualified sides, groups A through F.
func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "mar", Name: "Morocco", ShortName: "MAR", Country: "Morocco", Group: "A", FlagURL: "https://flagcdn.com/w160/ma.png"},
		{ID: "mli", Name: "Mali", ShortName: "MLI", Country: "Mali", Group: "A", FlagURL: "https://flagcdn.com/w160/ml.png"},
		{ID: "zam", Name: "Zambia", ShortName: "ZAM", Country: "Zambia", Group: "A", FlagURL: "https://flagcdn.com/w160/zm.png"},
		{ID: "com", Name: "Comoros", ShortName: "COM", Country: "Comoros", Group: "A", FlagURL: "https://flagcdn.com/w160/km.png"},
		{ID: "egy", Name: "Egypt", ShortName: "EGY", Country: "Egypt", Group: "B", FlagURL: "https://flagcdn.com/w160/eg.png"},
		{ID: "rsa", Name: "South Africa", ShortName: "RSA", Country: "South Africa", Group: "B", FlagURL: "https://flagcdn.com/w160/za.png"},
		{ID: "ang", Name: "Angola", ShortName: "ANG", Country: "Angola", Group: "B", FlagURL: "https://flagcdn.com/w160/ao.png"},
		{ID: "zim", Name: "Zimbabwe", ShortName: "ZIM", Country: "Zimbabwe", Group: "B", FlagURL: "https://flagcdn.com/w160/zw.png"},
		{ID: "ngr", Name: "Nigeria", ShortName: "NGR", Country: "Nigeria", Group: "C", FlagURL: "https://flagcdn.com/w160/ng.png"},
		{ID: "tun", Name: "Tunisia", ShortName: "TUN", Country: "Tunisia", Group: "C", FlagURL: "https://flagcdn.com/w160/tn.png"},
		{ID: "uga", Name: "Uganda", ShortName: "UGA", Country: "Uganda", Group: "C", FlagURL: "https://flagcdn.com/w160/ug.png"},
		{ID: "tan", Name: "Tanzania", ShortName: "TAN", Country: "Tanzania", Group: "C", FlagURL: "https://flagcdn.com/w160/tz.png"},
		{ID: "sen", Name: "Senegal", ShortName: "SEN", Country: "Senegal", Group: "D", FlagURL: "https://flagcdn.com/w160/sn.png"},
		{ID: "cod", Name: "DR Congo", ShortName: "COD", Country: "DR Congo", Group: "D", FlagURL: "https://flagcdn.com/w160/cd.png"},
		{ID: "ben", Name: "Benin", ShortName: "BEN", Country: "Benin", Group: "D", FlagURL: "https://flagcdn.com/w160/bj.png"},
		{ID: "bot", Name: "Botswana", ShortName: "BOT", Country: "Botswana", Group: "D", FlagURL: "https://flagcdn.com/w160/bw.png"},
		{ID: "alg", Name: "Algeria", ShortName: "ALG", Country: "Algeria", Group: "E", FlagURL: "https://flagcdn.com/w160/dz.png"},
		{ID: "bfa", Name: "Burkina Faso", ShortName: "BFA", Country: "Burkina Faso", Group: "E", FlagURL: "https://flagcdn.com/w160/bf.png"},
		{ID: "eqg", Name: "Equatorial Guinea", ShortName: "EQG", Country: "Equatorial Guinea", Group: "E", FlagURL: "https://flagcdn.com/w160/gq.png"},
		{ID: "sdn", Name: "Sudan", ShortName: "SDN", Country: "Sudan", Group: "E", FlagURL: "https://flagcdn.com/w160/sd.png"},
		{ID: "civ", Name: "Ivory Coast", ShortName: "CIV", Country: "Ivory Coast", Group: "F", FlagURL: "https://flagcdn.com/w160/ci.png"},
		{ID: "cmr", Name: "Cameroon", ShortName: "CMR", Country: "Cameroon", Group: "F", FlagURL: "https://flagcdn.com/w160/cm.png"},
		{ID: "gab", Name: "Gabon", ShortName: "GAB", Country: "Gabon", Group: "F", FlagURL: "https://flagcdn.com/w160/ga.png"},
		{ID: "moz", Name: "Mozambique", ShortName: "MOZ", Country: "Mozambique", Group: "F", FlagURL: "https://flagcdn.com/w160/mz.png"},
	}
}

type seedFixture struct {
	year  int
	month time.Month
	day   int
	hour  int
	min   int
	teamA string
	teamB string
	group string
	venue int
}

// Group stage schedule, three matchdays, Dec 21 2025 through Jan 1 2026.
var seedSchedule = []seedFixture{
	{2025, time.December, 21, 21, 0, "MAR", "COM", "A", 0},

	{2025, time.December, 22, 15, 0, "MLI", "ZAM", "A", 1},
	{2025, time.December, 22, 18, 0, "RSA", "ANG", "B", 2},
	{2025, time.December, 22, 21, 0, "EGY", "ZIM", "B", 3},

	{2025, time.December, 23, 13, 30, "COD", "BEN", "D", 4},
	{2025, time.December, 23, 16, 0, "SEN", "BOT", "D", 5},
	{2025, time.December, 23, 18, 30, "NGR", "TAN", "C", 4},
	{2025, time.December, 23, 21, 0, "TUN", "UGA", "C", 0},

	{2025, time.December, 24, 13, 30, "BFA", "EQG", "E", 1},
	{2025, time.December, 24, 16, 0, "ALG", "SDN", "E", 0},
	{2025, time.December, 24, 18, 30, "CIV", "MOZ", "F", 2},
	{2025, time.December, 24, 21, 0, "CMR", "GAB", "F", 3},

	{2025, time.December, 26, 13, 30, "ANG", "ZIM", "B", 2},
	{2025, time.December, 26, 16, 0, "EGY", "RSA", "B", 3},
	{2025, time.December, 26, 18, 30, "ZAM", "COM", "A", 1},
	{2025, time.December, 26, 21, 0, "MAR", "MLI", "A", 0},

	{2025, time.December, 27, 13, 30, "BEN", "BOT", "D", 0},
	{2025, time.December, 27, 16, 0, "SEN", "COD", "D", 5},
	{2025, time.December, 27, 18, 30, "TAN", "UGA", "C", 1},
	{2025, time.December, 27, 21, 0, "NGR", "TUN", "C", 4},

	{2025, time.December, 28, 13, 30, "EQG", "SDN", "E", 4},
	{2025, time.December, 28, 16, 0, "ALG", "BFA", "E", 0},
	{2025, time.December, 28, 18, 30, "GAB", "MOZ", "F", 3},
	{2025, time.December, 28, 21, 0, "CIV", "CMR", "F", 2},

	{2025, time.December, 30, 18, 0, "COM", "MLI", "A", 1},
	{2025, time.December, 30, 18, 0, "ZAM", "MAR", "A", 0},
	{2025, time.December, 30, 21, 0, "ZIM", "RSA", "B", 2},
	{2025, time.December, 30, 21, 0, "ANG", "EGY", "B", 3},

	{2025, time.December, 31, 18, 0, "UGA", "NGR", "C", 4},
	{2025, time.December, 31, 18, 0, "TAN", "TUN", "C", 0},
	{2025, time.December, 31, 21, 0, "BOT", "SEN", "D", 5},
	{2025, time.December, 31, 21, 0, "BEN", "COD", "D", 1},

	{2026, time.January, 1, 18, 0, "SDN", "BFA", "E", 4},
	{2026, time.January, 1, 18, 0, "EQG", "ALG", "E", 0},
	{2026, time.January, 1, 21, 0, "MOZ", "CIV", "F", 2},
	{2026, time.January, 1, 21, 0, "GAB", "CMR", "F", 3},
}

// SeedMatches builds the group stage schedule from the seeded teams.
func SeedMatches() []match.Match {
	byShort := make(map[string]team.Team)
	for _, t := range SeedTeams() {
		byShort[t.ShortName] = t
	}

	matches := make([]match.Match, 0, len(seedSchedule))
	for i, f := range seedSchedule {
		teamA := byShort[f.teamA]
		teamB := byShort[f.teamB]
		matches = append(matches, match.Match{
			ID:         fmt.Sprintf("afcon-%03d", i+1),
			TeamAID:    teamA.ID,
			TeamBID:    teamB.ID,
			TeamAName:  teamA.Name,
			TeamBName:  teamB.Name,
			TeamAShort: teamA.ShortName,
			TeamBShort: teamB.ShortName,
			MatchDate:  time.Date(f.year, f.month, f.day, f.hour, f.min, 0, 0, seedZone).UTC(),
			Venue:      seedVenues[f.venue],
			Stage:      "GROUP",
			GroupName:  f.group,
			Status:     match.StatusUpcoming,
		})
	}
	return matches
}

// SeedUsers returns an admin account plus a handful of demo players.
func SeedUsers() []user.User {
	return []user.User{
		{ID: "usr-admin", Username: "admin", IsAdmin: true},
		{ID: "usr-001", Username: "MoroccoFan"},
		{ID: "usr-002", Username: "EgyptLegend"},
		{ID: "usr-003", Username: "NigeriaEagle"},
		{ID: "usr-004", Username: "SenegalLion"},
		{ID: "usr-005", Username: "IvoryHero"},
	}
}
