package models

// AthleteCard is an athlete entry in the discovery directory.
type AthleteCard struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Username     string   `json:"username"`
	Avatar       string   `json:"avatar"`
	Sport        string   `json:"sport"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	Level        string   `json:"level"`
	Followers    int      `json:"followers"`
	Achievements []string `json:"achievements"`
	Bio          string   `json:"bio"`
}

// ScoutCard is a scout or coach entry in the discovery directory.
type ScoutCard struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	Username           string `json:"username"`
	Avatar             string `json:"avatar"`
	Club               string `json:"club"`
	Specialization     string `json:"specialization"`
	Experience         string `json:"experience"`
	Location           string `json:"location"`
	AthletesDiscovered int    `json:"athletes_discovered"`
	Bio                string `json:"bio"`
}

// SearchFilter narrows a directory search. Empty or "all" values match everything.
type SearchFilter struct {
	Query    string `query:"q"`
	Sport    string `query:"sport"`
	Location string `query:"location"`
	Level    string `query:"level"`
}
