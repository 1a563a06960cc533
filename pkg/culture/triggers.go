package culture

import (
	"embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/microsoft/Recognizers-Text-sub003/pkg/resolver"
)

//go:embed resources/*.yaml
var resourceFS embed.FS

// triggerResource mirrors the YAML layout of one culture's trigger file.
// Each key lists regular expressions for one trigger kind.
type triggerResource struct {
	Ago    []string `yaml:"ago"`
	Later  []string `yaml:"later"`
	In     []string `yaml:"in"`
	Within []string `yaml:"within"`
}

// loadTriggers parses and compiles every embedded resource exactly once.
// Resources are keyed by file stem, a lowercase culture or base-language
// code ("en", "es-mx").
var loadTriggers = sync.OnceValues(func() (map[string]resolver.TriggerSet, error) {
	entries, err := resourceFS.ReadDir("resources")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResource, err)
	}
	sets := make(map[string]resolver.TriggerSet, len(entries))
	for _, entry := range entries {
		raw, err := resourceFS.ReadFile("resources/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedResource, entry.Name(), err)
		}
		var res triggerResource
		if err := yaml.Unmarshal(raw, &res); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedResource, entry.Name(), err)
		}
		set, err := compileTriggers(res)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedResource, entry.Name(), err)
		}
		key := strings.ToLower(strings.TrimSuffix(entry.Name(), ".yaml"))
		sets[key] = set
	}
	return sets, nil
})

func compileTriggers(res triggerResource) (resolver.TriggerSet, error) {
	var set resolver.TriggerSet
	for _, group := range []struct {
		patterns []string
		dst      *[]*regexp.Regexp
	}{
		{res.Ago, &set.Ago},
		{res.Later, &set.Later},
		{res.In, &set.In},
		{res.Within, &set.Within},
	} {
		for _, pattern := range group.patterns {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return resolver.TriggerSet{}, err
			}
			*group.dst = append(*group.dst, re)
		}
	}
	return set, nil
}

// Triggers returns the compiled ago/later trigger patterns for a culture,
// falling back from the full tag to its base language. A culture with no
// resource even at the base language returns ErrUnsupportedCulture.
func Triggers(tag language.Tag) (resolver.TriggerSet, error) {
	sets, err := loadTriggers()
	if err != nil {
		return resolver.TriggerSet{}, err
	}
	if set, ok := sets[strings.ToLower(tag.String())]; ok {
		return set, nil
	}
	base, _ := tag.Base()
	if set, ok := sets[base.String()]; ok {
		return set, nil
	}
	return resolver.TriggerSet{}, fmt.Errorf("%w: no trigger resource for %q", ErrUnsupportedCulture, tag)
}
