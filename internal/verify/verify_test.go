package verify

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/g711ref/g711ref/pkg/g711"
	"github.com/g711ref/g711ref/pkg/oracle"
	"github.com/g711ref/g711ref/pkg/yaml"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func init() {
	log = zerolog.Nop()
}

func reset() {
	mu.Lock()
	reports = nil
	failed = false
	mu.Unlock()
}

func TestNewCandidate(t *testing.T) {
	c := newCandidate("zaf", Candidate{Law: g711.PCMA, Builtin: "zaf"})
	require.Equal(t, &oracle.Candidate{Name: "zaf", Law: g711.PCMA, Encode: "builtin:zaf", Decode: "builtin:zaf"}, c)

	// explicit source wins over builtin
	c = newCandidate("mix", Candidate{Builtin: "zaf", Decode: "file:decode.bin"})
	require.Equal(t, "builtin:zaf", c.Encode)
	require.Equal(t, "file:decode.bin", c.Decode)
}

func TestCandidateConfig(t *testing.T) {
	var cfg struct {
		Candidates map[string]Candidate `yaml:"candidates"`
	}
	err := yaml.Unmarshal([]byte(`
candidates:
  self:
    law: alaw
    builtin: reference
  tool:
    law: PCMU
    decode: exec:tool --decode
`), &cfg)
	require.Nil(t, err)
	require.Equal(t, Candidate{Law: g711.PCMA, Builtin: "reference"}, cfg.Candidates["self"])
	require.Equal(t, Candidate{Law: g711.PCMU, Decode: "exec:tool --decode"}, cfg.Candidates["tool"])
}

func TestRunPassed(t *testing.T) {
	reset()

	Run(context.Background(), map[string]Candidate{
		"pcmu": {Law: g711.PCMU, Builtin: "reference"},
		"pcma": {Law: g711.PCMA, Builtin: "reference"},
	}, 10)

	require.False(t, Failed())

	items := Reports()
	require.Len(t, items, 4)
	require.Equal(t, "pcma", items[0].Candidate) // name order
	require.Equal(t, oracle.DirectionEncode, items[0].Direction)
	require.Equal(t, "pcmu", items[3].Candidate)
	require.Equal(t, oracle.DirectionDecode, items[3].Direction)
}

func TestRunFailed(t *testing.T) {
	reset()

	Run(context.Background(), map[string]Candidate{
		"missing": {Law: g711.PCMA, Decode: "file:" + filepath.Join(t.TempDir(), "nope.bin")},
	}, 10)

	require.True(t, Failed())
	items := Reports()
	require.Len(t, items, 1)
	require.NotEmpty(t, items[0].Error)

	// candidate without sources is not a report, but still a failure
	reset()
	Run(context.Background(), map[string]Candidate{"empty": {}}, 10)
	require.True(t, Failed())
	require.Empty(t, Reports())
}

func TestWriteReport(t *testing.T) {
	reset()

	Run(context.Background(), map[string]Candidate{
		"self": {Law: g711.PCMA, Builtin: "reference"},
	}, 10)

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.Nil(t, WriteReport(path))

	b, err := os.ReadFile(path)
	require.Nil(t, err)
	require.Contains(t, string(b), "law: PCMA")
	require.Contains(t, string(b), "expected: A52E-AA")

	var items []*oracle.Report
	require.Nil(t, yaml.Unmarshal(b, &items))
	require.Equal(t, Reports(), items)
}

func TestAPIVerify(t *testing.T) {
	reset()

	Run(context.Background(), map[string]Candidate{
		"self": {Law: g711.PCMU, Encode: "builtin:reference"},
	}, 10)

	w := httptest.NewRecorder()
	apiVerify(w, httptest.NewRequest("GET", "/api/verify", nil))

	var items []*oracle.Report
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, "self", items[0].Candidate)
	require.Equal(t, g711.PCMU, items[0].Law)
	require.Equal(t, "583E-1B", items[0].Actual.String())
	require.True(t, items[0].Passed())
}
