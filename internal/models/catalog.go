package models

// ProfileStats are the social counters shown on a profile header.
type ProfileStats struct {
	Followers    int `json:"followers" yaml:"followers"`
	Following    int `json:"following" yaml:"following"`
	Posts        int `json:"posts" yaml:"posts"`
	ProfileViews int `json:"profileViews" yaml:"profileViews"`
}

// Athlete is a demo author in the catalog together with its posts.
type Athlete struct {
	ID           string            `json:"id" yaml:"id"`
	Name         string            `json:"name" yaml:"name"`
	Username     string            `json:"username" yaml:"username"`
	Avatar       string            `json:"avatar" yaml:"avatar"`
	CoverImage   string            `json:"coverImage,omitempty" yaml:"coverImage,omitempty"`
	Sport        string            `json:"sport" yaml:"sport"`
	Position     string            `json:"position" yaml:"position"`
	Location     string            `json:"location,omitempty" yaml:"location,omitempty"`
	Level        string            `json:"level,omitempty" yaml:"level,omitempty"`
	JoinDate     string            `json:"joinDate,omitempty" yaml:"joinDate,omitempty"`
	Bio          string            `json:"bio,omitempty" yaml:"bio,omitempty"`
	Age          int               `json:"age,omitempty" yaml:"age,omitempty"`
	Height       string            `json:"height,omitempty" yaml:"height,omitempty"`
	Weight       string            `json:"weight,omitempty" yaml:"weight,omitempty"`
	Coach        string            `json:"coach,omitempty" yaml:"coach,omitempty"`
	Experience   string            `json:"experience,omitempty" yaml:"experience,omitempty"`
	CareerStart  string            `json:"careerStart,omitempty" yaml:"careerStart,omitempty"`
	StrongFoot   string            `json:"strongFoot,omitempty" yaml:"strongFoot,omitempty"`
	Fitness      string            `json:"fitness,omitempty" yaml:"fitness,omitempty"`
	Injuries     []string          `json:"injuries,omitempty" yaml:"injuries,omitempty"`
	Achievements []string          `json:"achievements,omitempty" yaml:"achievements,omitempty"`
	Clubs        []string          `json:"clubs,omitempty" yaml:"clubs,omitempty"`
	Stats        ProfileStats      `json:"stats" yaml:"stats"`
	GameStats    map[string]string `json:"gameStats,omitempty" yaml:"gameStats,omitempty"`
	Posts        []Post            `json:"posts" yaml:"posts"`
}

// Ref returns the display fields copied onto feed posts.
func (a Athlete) Ref() AuthorRef {
	return AuthorRef{
		ID:       a.ID,
		Name:     a.Name,
		Username: a.Username,
		Avatar:   a.Avatar,
		Sport:    a.Sport,
		Position: a.Position,
	}
}

// Catalog is the read-only demo dataset of authors and their posts.
type Catalog struct {
	Athletes []Athlete `json:"athletes" yaml:"athletes"`
}
