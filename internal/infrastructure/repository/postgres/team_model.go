package postgres

import "time"

type teamTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	ShortName string    `db:"short_name"`
	Country   string    `db:"country"`
	GroupName string    `db:"group_name"`
	FlagURL   string    `db:"flag_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
