package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/projector/internal/domain"
	"gopkg.in/yaml.v3"
)

// Kind names one calculator.
type Kind string

const (
	KindCompound Kind = "compound"
	KindDrawdown Kind = "drawdown"
	KindFire     Kind = "fire"
	KindMortgage Kind = "mortgage"
	KindSuggest  Kind = "suggest"
)

// Kinds lists every calculator in display order.
var Kinds = []Kind{KindCompound, KindDrawdown, KindFire, KindMortgage, KindSuggest}

// ParseKind accepts a calculator name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrValidation, s)
}

// Request is one parsed calculator invocation. Exactly one params pointer
// is set, matching Kind.
type Request struct {
	Kind     Kind
	Compound *domain.CompoundParams
	Drawdown *domain.DrawdownParams
	Fire     *domain.FireParams
	Mortgage *domain.MortgageParams
	Suggest  *domain.SuggestParams
}

// Params returns the populated params struct.
func (r *Request) Params() any {
	switch r.Kind {
	case KindCompound:
		return r.Compound
	case KindDrawdown:
		return r.Drawdown
	case KindFire:
		return r.Fire
	case KindMortgage:
		return r.Mortgage
	case KindSuggest:
		return r.Suggest
	}
	return nil
}

// NewRequest returns a request of kind k holding that calculator's defaults.
func NewRequest(k Kind) (*Request, error) {
	r := &Request{Kind: k}
	switch k {
	case KindCompound:
		p := domain.DefaultCompoundParams()
		r.Compound = &p
	case KindDrawdown:
		p := domain.DefaultDrawdownParams()
		r.Drawdown = &p
	case KindFire:
		p := domain.DefaultFireParams()
		r.Fire = &p
	case KindMortgage:
		p := domain.DefaultMortgageParams()
		r.Mortgage = &p
	case KindSuggest:
		p := domain.DefaultSuggestParams()
		r.Suggest = &p
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrValidation, k)
	}
	return r, nil
}

// InputParser handles parsing of request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

type yamlEnvelope struct {
	Kind   string    `yaml:"kind"`
	Params yaml.Node `yaml:"params"`
}

type jsonEnvelope struct {
	Kind   string          `json:"kind"`
	Params json.RawMessage `json:"params"`
}

// LoadFromFile loads a request from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*Request, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	req, err := ip.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return req, nil
}

// Parse decodes a {kind, params} document. Params are decoded over the
// calculator defaults, so omitted fields keep their default values. JSON is
// only tried when the document is not valid YAML.
func (ip *InputParser) Parse(data []byte) (*Request, error) {
	var (
		req *Request
		err error
	)
	var env yamlEnvelope
	if yamlErr := yaml.Unmarshal(data, &env); yamlErr != nil {
		var jenv jsonEnvelope
		if jsonErr := json.Unmarshal(data, &jenv); jsonErr != nil {
			return nil, fmt.Errorf("failed to parse request as YAML (%v) or JSON: %w", yamlErr, jsonErr)
		}
		req, err = ip.build(jenv.Kind, func(v any) error {
			if len(jenv.Params) == 0 {
				return nil
			}
			return json.Unmarshal(jenv.Params, v)
		})
	} else {
		req, err = ip.build(env.Kind, func(v any) error {
			if env.Params.Kind == 0 {
				return nil
			}
			return env.Params.Decode(v)
		})
	}
	if err != nil {
		return nil, err
	}
	if err := ip.ValidateRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (ip *InputParser) build(kind string, decode func(any) error) (*Request, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}
	req, err := NewRequest(k)
	if err != nil {
		return nil, err
	}
	if err := decode(req.Params()); err != nil {
		return nil, fmt.Errorf("failed to decode %s params: %w", k, err)
	}
	return req, nil
}

// ValidateRequest validates the params for the request's kind
func (ip *InputParser) ValidateRequest(req *Request) error {
	var err error
	switch req.Kind {
	case KindCompound:
		err = ValidateCompound(req.Compound)
	case KindDrawdown:
		err = ValidateDrawdown(req.Drawdown)
	case KindFire:
		err = ValidateFire(req.Fire)
	case KindMortgage:
		err = ValidateMortgage(req.Mortgage)
	case KindSuggest:
		err = ValidateSuggest(req.Suggest)
	default:
		err = fmt.Errorf("%w: unknown kind %q", ErrValidation, req.Kind)
	}
	if err != nil {
		return fmt.Errorf("%s request validation failed: %w", req.Kind, err)
	}
	return nil
}
