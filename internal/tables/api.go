package tables

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/g711ref/g711ref/internal/api"
	"github.com/g711ref/g711ref/pkg/g711"
	"github.com/g711ref/g711ref/pkg/oracle"
)

type sampleCode struct {
	Law    g711.Law `json:"law"`
	Sample int16    `json:"sample"`
	Code   byte     `json:"code"`
}

func apiEncode(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	law, ok := parseLaw(w, query)
	if !ok {
		return
	}

	i, err := strconv.ParseInt(query.Get("sample"), 10, 16)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sample := int16(i)
	api.ResponseJSON(w, sampleCode{Law: law, Sample: sample, Code: law.Encode(sample)})
}

func apiDecode(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	law, ok := parseLaw(w, query)
	if !ok {
		return
	}

	// support decimal and hex: 213 or 0xD5
	i, err := strconv.ParseUint(query.Get("code"), 0, 8)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	code := byte(i)
	api.ResponseJSON(w, sampleCode{Law: law, Sample: law.Decode(code), Code: code})
}

func apiTable(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	law, ok := parseLaw(w, query)
	if !ok {
		return
	}

	encode, decode, err := oracle.Reference(law)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var b []byte

	dir := oracle.Direction(query.Get("dir"))
	switch dir {
	case "", oracle.DirectionEncode:
		dir = oracle.DirectionEncode
		b = encode.Bytes()
	case oracle.DirectionDecode:
		b = decode.Bytes()
	default:
		http.Error(w, "wrong dir: "+string(dir), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+Filename(law, dir)+`"`)
	w.Header().Set("X-Fingerprint", oracle.Sum(b).String())
	api.Response(w, b, api.MimeBinary)
}

var errNoLaw = errors.New("tables: law required")

func parseLaw(w http.ResponseWriter, query url.Values) (g711.Law, bool) {
	s := query.Get("law")
	if s == "" {
		http.Error(w, errNoLaw.Error(), http.StatusBadRequest)
		return 0, false
	}

	law, err := g711.ParseLaw(s)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return 0, false
	}

	return law, true
}
