package seed

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gamechanger/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// Options control generated demo content.
type Options struct {
	Athletes        int
	PostsPerAthlete int
	// MaxDays bounds how far back generated posts are dated.
	MaxDays int
	// Seed makes generation reproducible; zero picks a time based seed.
	Seed int64
	// Now is the reference time posts are dated against; zero means time.Now.
	Now time.Time
}

var sportPositions = map[string][]string{
	"Football":   {"Forward", "Midfielder", "Defender", "Goalkeeper"},
	"Cricket":    {"Batsman", "Bowler", "All-rounder", "Wicket-keeper"},
	"Kabaddi":    {"Raider", "Defender", "All-rounder"},
	"Volleyball": {"Spiker", "Setter", "Libero", "Blocker"},
	"Athletics":  {"Sprinter", "Long Jump", "Javelin"},
}

var levels = []string{"District", "State", "National"}

// Factory builds fake catalog content with gofakeit.
type Factory struct {
	faker *gofakeit.Faker
	opts  Options
	// synthetic ID counters
	nextAthlete int
	nextPost    int
}

// NewFactory creates a Factory for the given options.
func NewFactory(opts Options) *Factory {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = 30
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	return &Factory{faker: gofakeit.New(seed), opts: opts, nextAthlete: 1, nextPost: 10000}
}

// BuildAthlete constructs a fake athlete with PostsPerAthlete posts.
func (f *Factory) BuildAthlete(overrides ...func(*models.Athlete)) models.Athlete {
	id := f.nextAthlete
	f.nextAthlete++

	sports := make([]string, 0, len(sportPositions))
	for sport := range sportPositions {
		sports = append(sports, sport)
	}
	// map order is random; sort to keep a fixed seed reproducible
	sort.Strings(sports)
	sport := f.faker.RandomString(sports)
	position := f.faker.RandomString(sportPositions[sport])

	first, last := f.faker.FirstName(), f.faker.LastName()
	handle := fmt.Sprintf("@%s_%s%d", strings.ToLower(first), strings.ToLower(sport), id)

	a := models.Athlete{
		ID:       fmt.Sprintf("fake-athlete-%d", id),
		Name:     first + " " + last,
		Username: handle,
		Avatar:   fmt.Sprintf("https://picsum.photos/seed/avatar-%d-%d/200/200", id, f.faker.Number(1, 1_000_000)),
		Sport:    sport,
		Position: position,
		Location: fmt.Sprintf("%s, %s", f.faker.City(), f.faker.State()),
		Level:    f.faker.RandomString(levels),
		JoinDate: f.faker.DateRange(f.opts.Now.AddDate(-3, 0, 0), f.opts.Now).Format("January 2006"),
		Bio:      f.faker.Sentence(10),
		Age:      f.faker.Number(14, 30),
		Achievements: []string{
			fmt.Sprintf("%s %s Champion %d", f.faker.City(), sport, f.faker.Number(2019, 2024)),
		},
		Stats: models.ProfileStats{
			Followers:    f.faker.Number(10, 5000),
			Following:    f.faker.Number(10, 500),
			ProfileViews: f.faker.Number(50, 10000),
		},
	}

	for i := 0; i < f.opts.PostsPerAthlete; i++ {
		a.Posts = append(a.Posts, f.BuildPost())
	}
	a.Stats.Posts = len(a.Posts)

	for _, override := range overrides {
		override(&a)
	}
	return a
}

// BuildPost constructs a fake post dated within MaxDays of the reference time.
// It carries both a real postedAt and the matching relative label.
func (f *Factory) BuildPost(overrides ...func(*models.Post)) models.Post {
	id := f.nextPost
	f.nextPost++

	age := time.Duration(f.faker.Number(1, f.opts.MaxDays*24*60)) * time.Minute
	postedAt := f.opts.Now.Add(-age).UTC().Truncate(time.Second)

	kind := models.MediaImage
	media := fmt.Sprintf("https://picsum.photos/seed/post-%d/800/800", id)
	if f.faker.Bool() {
		kind = models.MediaVideo
		media = fmt.Sprintf("/videos/generated_%d.mp4", id)
	}

	p := models.Post{
		ID:        id,
		Type:      kind,
		Content:   f.faker.Sentence(12),
		Media:     media,
		Likes:     f.faker.Number(0, 1000),
		Comments:  f.faker.Number(0, 200),
		Shares:    f.faker.Number(0, 100),
		Timestamp: RelativeLabel(age),
		PostedAt:  &postedAt,
	}

	for _, override := range overrides {
		override(&p)
	}
	return p
}

// BuildCatalog returns the demo catalog followed by Athletes generated athletes.
func (f *Factory) BuildCatalog() *models.Catalog {
	catalog := DemoCatalog()
	for i := 0; i < f.opts.Athletes; i++ {
		catalog.Athletes = append(catalog.Athletes, f.BuildAthlete())
	}
	return catalog
}

// RelativeLabel renders an age the way post timestamps are displayed,
// e.g. "5 minutes ago", "1 day ago".
func RelativeLabel(age time.Duration) string {
	type unit struct {
		name string
		size time.Duration
	}
	units := []unit{
		{"year", 365 * 24 * time.Hour},
		{"month", 30 * 24 * time.Hour},
		{"week", 7 * 24 * time.Hour},
		{"day", 24 * time.Hour},
		{"hour", time.Hour},
		{"minute", time.Minute},
	}
	for _, u := range units {
		if n := int(age / u.size); n >= 1 {
			if n == 1 {
				return "1 " + u.name + " ago"
			}
			return fmt.Sprintf("%d %ss ago", n, u.name)
		}
	}
	return "just now"
}
