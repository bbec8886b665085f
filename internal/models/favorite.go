// Favorite route, station and member model definitions

package models

import "time"

type Station struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Section is one undirected edge of the subway graph between two adjacent stations on a line.
type Section struct {
	LineID        int64 `json:"line_id"`
	UpStationID   int64 `json:"up_station_id"`
	DownStationID int64 `json:"down_station_id"`
	Distance      int   `json:"distance"`
}

// Favorite is a source/target station pair saved by one member.
type Favorite struct {
	ID        int64     `json:"id"`
	MemberID  string    `json:"member_id"`
	Source    Station   `json:"source"`
	Target    Station   `json:"target"`
	CreatedAt time.Time `json:"created_at"`
}

type Member struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}
