package lexicon

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Loader loads vocabulary lists and keeps them in memory, so a list given
// for several roles is read once
type Loader struct {
	normalize bool
	cache     *gocache.Cache
}

// NewLoader creates a loader; loaded lists expire after ttl
func NewLoader(normalize bool, ttl time.Duration) *Loader {
	return &Loader{
		normalize: normalize,
		cache:     gocache.New(ttl, 2*ttl),
	}
}

// Load returns the lexicon stored at path
func (l *Loader) Load(path string) (*Lexicon, error) {
	key := fmt.Sprintf("%s:%t", path, l.normalize)
	if val, found := l.cache.Get(key); found {
		return val.(*Lexicon), nil
	}
	lex, err := Load(path, l.normalize)
	if err != nil {
		return nil, err
	}
	l.cache.Set(key, lex, gocache.DefaultExpiration)
	return lex, nil
}

// LoadAll loads several lists in order
func (l *Loader) LoadAll(paths ...string) ([]*Lexicon, error) {
	lexicons := make([]*Lexicon, 0, len(paths))
	for _, p := range paths {
		lex, err := l.Load(p)
		if err != nil {
			return nil, fmt.Errorf("load vocabulary %s: %w", p, err)
		}
		lexicons = append(lexicons, lex)
	}
	return lexicons, nil
}
