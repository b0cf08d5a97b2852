package verify

import (
	"context"
	"net/http"
	"os"
	"sort"
	"sync"

	"github.com/g711ref/g711ref/internal/api"
	"github.com/g711ref/g711ref/internal/app"
	"github.com/g711ref/g711ref/pkg/g711"
	"github.com/g711ref/g711ref/pkg/oracle"
	"github.com/g711ref/g711ref/pkg/yaml"
	"github.com/rs/zerolog"
)

// Candidate - config item, builtin sets both directions
type Candidate struct {
	Law     g711.Law `yaml:"law"`
	Builtin string   `yaml:"builtin"`
	Encode  string   `yaml:"encode"`
	Decode  string   `yaml:"decode"`
}

func Init() {
	var cfg struct {
		Mod struct {
			Limit      int                  `yaml:"limit"`
			Report     string               `yaml:"report"`
			Candidates map[string]Candidate `yaml:"candidates"`
		} `yaml:"verify"`
	}

	cfg.Mod.Limit = 10

	app.LoadConfig(&cfg)

	log = app.GetLogger("verify")

	api.HandleFunc("api/verify", apiVerify)

	if len(cfg.Mod.Candidates) == 0 {
		return
	}

	Run(context.Background(), cfg.Mod.Candidates, cfg.Mod.Limit)

	if cfg.Mod.Report != "" {
		if err := WriteReport(cfg.Mod.Report); err != nil {
			log.Error().Err(err).Msg("[verify] write report")
		}
	}
}

var log zerolog.Logger

var reports []*oracle.Report
var failed bool
var mu sync.Mutex

// Run checks candidates in name order and stores reports
func Run(ctx context.Context, candidates map[string]Candidate, limit int) {
	names := make([]string, 0, len(candidates))
	for name := range candidates {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c := newCandidate(name, candidates[name])

		items, err := oracle.Verify(ctx, c, limit)
		if err != nil {
			log.Error().Err(err).Str("candidate", name).Msg("[verify]")
			setFailed()
			continue
		}

		for _, r := range items {
			logReport(r)
		}

		mu.Lock()
		reports = append(reports, items...)
		for _, r := range items {
			if !r.Passed() {
				failed = true
			}
		}
		mu.Unlock()
	}
}

// Failed - any candidate failed to load or has mismatches
func Failed() bool {
	mu.Lock()
	defer mu.Unlock()
	return failed
}

func Reports() []*oracle.Report {
	mu.Lock()
	defer mu.Unlock()
	return append([]*oracle.Report(nil), reports...)
}

func WriteReport(path string) error {
	b, err := yaml.Encode(Reports(), 2)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func newCandidate(name string, c Candidate) *oracle.Candidate {
	// builtin codec covers both directions
	if c.Builtin != "" {
		if c.Encode == "" {
			c.Encode = "builtin:" + c.Builtin
		}
		if c.Decode == "" {
			c.Decode = "builtin:" + c.Builtin
		}
	}
	return &oracle.Candidate{Name: name, Law: c.Law, Encode: c.Encode, Decode: c.Decode}
}

func logReport(r *oracle.Report) {
	var event *zerolog.Event

	switch {
	case r.Error != "":
		event = log.Error().Str("error", r.Error)
	case r.Total > 0:
		event = log.Warn().Int("mismatches", r.Total)
		for _, m := range r.Mismatches {
			log.Debug().Str("candidate", r.Candidate).Int("input", m.Input).
				Int("expected", m.Expected).Int("actual", m.Actual).Msg("[verify] mismatch")
		}
	default:
		event = log.Info()
	}

	event.Str("candidate", r.Candidate).Stringer("law", r.Law).Str("dir", string(r.Direction)).
		Int("checked", r.Checked).Stringer("crc", r.Actual).Msg("[verify]")
}

func setFailed() {
	mu.Lock()
	failed = true
	mu.Unlock()
}

func apiVerify(w http.ResponseWriter, r *http.Request) {
	api.ResponsePrettyJSON(w, Reports())
}
