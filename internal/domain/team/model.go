package team

// Team is one tournament side.
type Team struct {
	ID        string
	Name      string
	ShortName string
	Country   string
	Group     string
	FlagURL   string
}
