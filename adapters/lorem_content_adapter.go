package adapters

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cloudcopper/cardlist/domain/cards"
	"github.com/cloudcopper/cardlist/domain/errors"
	"github.com/cloudcopper/cardlist/domain/models"
	"github.com/cloudcopper/cardlist/lib"
	"github.com/cloudcopper/cardlist/lib/random"
	"github.com/cloudcopper/cardlist/ports"
)

var (
	tlds          = []string{"com", "org", "net", "info", "io"}
	streetSuffix  = []string{"Street", "Avenue", "Road", "Lane", "Way", "Court"}
	suiteKinds    = []string{"Apt.", "Suite"}
	phoneFormats  = []string{"###-###-####", "(###) ###-####", "1-###-###-#### x####", "###.###.####"}
	numNameWords  = []int{2, 2}
	numCityWords  = []int{1, 2}
	numPhrase     = []int{3, 5}
	numBs         = []int{2, 4}
	dobYears      = []int{1950, 2005}
	zipcodeDigits = 5
)

// LoremContentProvider produces fake contextual cards, paragraphs
// and bounded integers from lorem ipsum words and seeded random source.
// It is safe for concurrent use.
type LoremContentProvider struct {
	log    ports.Logger
	mutex  sync.Mutex
	src    *random.Source
	closed bool
}

// NewLoremContentProvider returns provider seeded by seed.
// The zero seed means seed by current time.
func NewLoremContentProvider(log ports.Logger, seed int64) *LoremContentProvider {
	log = log.With(slog.String("entity", "LoremContentProvider"))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("created", slog.Int64("seed", seed))
	p := &LoremContentProvider{
		log: log,
		src: random.New(seed),
	}
	return p
}

// Close makes provider unavailable.
// Any later call fails with ErrDependencyUnavailable.
func (p *LoremContentProvider) Close() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.closed = true
}

func (p *LoremContentProvider) lock() error {
	p.mutex.Lock()
	if p.closed {
		p.mutex.Unlock()
		return fmt.Errorf("%w: content provider closed", errors.ErrDependencyUnavailable)
	}
	return nil
}

func (p *LoremContentProvider) ContextualCard() (models.Contextual, error) {
	if err := p.lock(); err != nil {
		return models.Contextual{}, err
	}
	defer p.mutex.Unlock()

	s := p.src
	first, last := lib.Capitalize(s.Word()), lib.Capitalize(s.Word())
	username := strings.ToLower(first) + random.ElementOf(s, []string{"", ".", "_"}) + strings.ToLower(last)
	if s.Intn(0, 1) == 1 {
		username += s.Digits(s.Intn(1, 3))
	}
	domain := strings.ReplaceAll(s.Words([]int{1, 2}), " ", "") + "." + random.ElementOf(s, tlds)

	c := models.Contextual{
		Name:     first + " " + last,
		Username: username,
		Avatar:   cards.ImageSrc(s.Intn(cards.ImageMin, cards.ImageMax)),
		Email:    strings.ToLower(first) + "." + strings.ToLower(last) + "@" + domain,
		Dob:      p.dob(),
		Phone:    p.phone(),
		Address: models.Address{
			Street:  lib.Capitalize(s.Words(numCityWords)) + " " + random.ElementOf(s, streetSuffix),
			Suite:   random.ElementOf(s, suiteKinds) + " " + s.Digits(s.Intn(2, 3)),
			City:    lib.Capitalize(s.Words(numCityWords)),
			Zipcode: s.Digits(zipcodeDigits),
			Geo: models.Geo{
				Lat: fmt.Sprintf("%.4f", s.Float(-90, 90)),
				Lng: fmt.Sprintf("%.4f", s.Float(-180, 180)),
			},
		},
		Website: domain,
		Company: models.Company{
			Name:        lib.Capitalize(s.Words(numNameWords)) + random.ElementOf(s, []string{" LLC", " Inc", " Group", ""}),
			CatchPhrase: lib.Capitalize(s.Words(numPhrase)),
			Bs:          s.Words(numBs),
		},
	}
	return c, nil
}

func (p *LoremContentProvider) Paragraph() (string, error) {
	if err := p.lock(); err != nil {
		return "", err
	}
	defer p.mutex.Unlock()
	return p.src.Paragraph(), nil
}

func (p *LoremContentProvider) Rand(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w: min %v is greater than max %v", errors.ErrInvalidArgument, min, max)
	}
	if err := p.lock(); err != nil {
		return 0, err
	}
	defer p.mutex.Unlock()
	return p.src.Intn(min, max), nil
}

// The dob returns random date of birth in form of RFC3339 date
func (p *LoremContentProvider) dob() string {
	s := p.src
	t := time.Date(s.Intn(dobYears[0], dobYears[1]), time.Month(s.Intn(1, 12)), s.Intn(1, 28), 0, 0, 0, 0, time.UTC)
	return t.Format(time.DateOnly)
}

// The phone returns phone number by random format,
// where each # replaced with random digit
func (p *LoremContentProvider) phone() string {
	s := p.src
	format := random.ElementOf(s, phoneFormats)
	b := strings.Builder{}
	for _, r := range format {
		if r == '#' {
			b.WriteString(s.Digits(1))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
