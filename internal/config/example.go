package config

import (
	"fmt"
	"io"

	"github.com/rpgo/projector/internal/domain"
	"gopkg.in/yaml.v3"
)

type exampleDoc struct {
	Kind   Kind `yaml:"kind"`
	Params any  `yaml:"params"`
}

// ExampleRequest returns a populated request for kind, with the defaults
// plus the optional fields a user is most likely to set.
func ExampleRequest(k Kind) (*Request, error) {
	req, err := NewRequest(k)
	if err != nil {
		return nil, err
	}
	seed := int64(42)
	switch k {
	case KindCompound:
		target := 1_000_000.0
		req.Compound.Initial = 10_000
		req.Compound.Target = &target
		req.Compound.Seed = &seed
	case KindDrawdown:
		req.Drawdown.Seed = &seed
	case KindFire:
		req.Fire.InitialBalance = 50_000
		req.Fire.Seed = &seed
	case KindMortgage:
		req.Mortgage.MonthlyOverpayment = 200
		req.Mortgage.ExtraPayments = []domain.ExtraPayment{{Year: 2, Month: 0, Amount: 10_000}}
	case KindSuggest:
		req.Suggest.Target = 1_000_000
	}
	return req, nil
}

// WriteExample writes an example request file for kind as YAML.
func WriteExample(w io.Writer, k Kind) error {
	req, err := ExampleRequest(k)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "# Example %s request. Omitted params take their defaults.\n", k); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(exampleDoc{Kind: k, Params: req.Params()}); err != nil {
		return fmt.Errorf("failed to encode example: %w", err)
	}
	return enc.Close()
}
