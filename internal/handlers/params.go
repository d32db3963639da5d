package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// paramError reports a malformed or missing request parameter
type paramError struct {
	msg string
}

func (e *paramError) Error() string { return e.msg }

func invalidParam(format string, args ...any) error {
	return &paramError{msg: fmt.Sprintf(format, args...)}
}

func isParamError(err error) bool {
	var pe *paramError
	return errors.As(err, &pe)
}

// pathID parses the {id} URL parameter
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalidParam("invalid id: %q is not an integer", raw)
	}
	return id, nil
}

// params gives uniform access to request parameters supplied either in the
// query string or, for JSON requests, in the body. Query values win.
type params struct {
	query url.Values
	body  map[string]any
}

func readParams(r *http.Request) (*params, error) {
	p := &params{query: r.URL.Query()}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" || r.Body == nil || r.Body == http.NoBody {
		return p, nil
	}

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&p.body); err != nil && !errors.Is(err, io.EOF) {
		return nil, invalidParam("invalid JSON body: %v", err)
	}
	return p, nil
}

// Bounds on accepted decimals. Larger exponents make comparison and
// encoding cost grow with the exponent itself.
const (
	maxDecimalLength   = 64
	maxDecimalDigits   = 30
	maxDecimalExponent = 12
)

// lookup returns the raw value of key. Body values must be JSON numbers when
// number is set and JSON strings otherwise.
func (p *params) lookup(key string, number bool) (string, bool, error) {
	if values, ok := p.query[key]; ok && len(values) > 0 {
		return values[0], true, nil
	}
	v, ok := p.body[key]
	if !ok || v == nil {
		return "", false, nil
	}
	switch v := v.(type) {
	case string:
		if !number {
			return v, true, nil
		}
	case json.Number:
		if number {
			return v.String(), true, nil
		}
	}
	if number {
		return "", false, invalidParam("%s must be a number", key)
	}
	return "", false, invalidParam("%s must be a string", key)
}

func (p *params) optionalString(key string) (*string, error) {
	s, ok, err := p.lookup(key, false)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

func (p *params) requiredString(key string) (string, error) {
	s, err := p.optionalString(key)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", invalidParam("missing required parameter: %s", key)
	}
	return *s, nil
}

func (p *params) optionalDecimal(key string) (*decimal.Decimal, error) {
	raw, ok, err := p.lookup(key, true)
	if err != nil || !ok {
		return nil, err
	}
	raw = strings.TrimSpace(raw)
	if len(raw) > maxDecimalLength {
		return nil, invalidParam("%s is out of range", key)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, invalidParam("%s must be a number, got %q", key, raw)
	}
	if exp := d.Exponent(); exp < -maxDecimalExponent || exp > maxDecimalExponent ||
		len(d.Coefficient().String()) > maxDecimalDigits {
		return nil, invalidParam("%s is out of range, got %q", key, raw)
	}
	return &d, nil
}

func (p *params) requiredDecimal(key string) (decimal.Decimal, error) {
	d, err := p.optionalDecimal(key)
	if err != nil {
		return decimal.Zero, err
	}
	if d == nil {
		return decimal.Zero, invalidParam("missing required parameter: %s", key)
	}
	return *d, nil
}

// requiredIDs reads a list of integer ids. In the query string the list may
// be given as repeated keys, a comma separated value or a bracketed list,
// e.g. "product_ids=[1,2]". In a JSON body it is an array.
func (p *params) requiredIDs(key string) ([]int64, error) {
	var raw []string
	if values, ok := p.query[key]; ok {
		for _, v := range values {
			raw = append(raw, splitList(v)...)
		}
	} else if v, ok := p.body[key]; ok && v != nil {
		items, isList := v.([]any)
		if !isList {
			return nil, invalidParam("%s must be a list of integers", key)
		}
		for _, item := range items {
			n, isNumber := item.(json.Number)
			if !isNumber {
				return nil, invalidParam("%s must be a list of integers", key)
			}
			raw = append(raw, n.String())
		}
	} else {
		return nil, invalidParam("missing required parameter: %s", key)
	}

	ids := make([]int64, 0, len(raw))
	for _, s := range raw {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, invalidParam("%s must be a list of integers, got %q", key, s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func splitList(v string) []string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "[")
	v = strings.TrimSuffix(v, "]")

	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
