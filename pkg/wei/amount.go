package wei

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// ErrOverflow is returned when an operation does not fit in 256 bits.
var ErrOverflow = errors.New("arithmetic overflow")

// EtherDecimals is the number of wei decimals in one ether.
const EtherDecimals = 18

var etherUnit = new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(EtherDecimals))

// Amount is an unsigned 256-bit wei value.
// It is stored and serialized as a base-10 string.
type Amount struct{ v uint256.Int }

func New(n uint64) Amount {
	var a Amount
	a.v.SetUint64(n)
	return a
}

// Parse reads a base-10 wei string.
func Parse(s string) (Amount, error) {
	var a Amount
	s = strings.TrimSpace(s)
	if s == "" {
		return a, errors.New("empty amount")
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return a, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	a.v.Set(v)
	return a, nil
}

// ParseEther reads a decimal ether string such as "0.105".
func ParseEther(s string) (Amount, error) {
	var a Amount
	s = strings.TrimSpace(s)
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > EtherDecimals {
		return a, fmt.Errorf("invalid ether amount %q: more than %d decimals", s, EtherDecimals)
	}
	w, err := uint256.FromDecimal(whole)
	if err != nil {
		return a, fmt.Errorf("invalid ether amount %q: %w", s, err)
	}
	scaled, overflow := new(uint256.Int).MulOverflow(w, etherUnit)
	if overflow {
		return a, ErrOverflow
	}
	if frac != "" {
		f, err := uint256.FromDecimal(frac + strings.Repeat("0", EtherDecimals-len(frac)))
		if err != nil {
			return a, fmt.Errorf("invalid ether amount %q: %w", s, err)
		}
		if _, overflow = scaled.AddOverflow(scaled, f); overflow {
			return a, ErrOverflow
		}
	}
	a.v.Set(scaled)
	return a, nil
}

// MustEther is ParseEther for constants; it panics on bad input.
func MustEther(s string) Amount {
	a, err := ParseEther(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) String() string { return a.v.Dec() }

func (a Amount) IsZero() bool { return a.v.IsZero() }

func (a Amount) Eq(b Amount) bool { return a.v.Eq(&b.v) }

// Add returns a+b or ErrOverflow.
func (a Amount) Add(b Amount) (Amount, error) {
	var out Amount
	if _, overflow := out.v.AddOverflow(&a.v, &b.v); overflow {
		return Amount{}, ErrOverflow
	}
	return out, nil
}

// MulDiv returns floor(a*num/den). The product must fit in 256 bits.
func (a Amount) MulDiv(num, den uint64) (Amount, error) {
	if den == 0 {
		return Amount{}, errors.New("division by zero")
	}
	var out Amount
	if _, overflow := out.v.MulOverflow(&a.v, uint256.NewInt(num)); overflow {
		return Amount{}, ErrOverflow
	}
	out.v.Div(&out.v, uint256.NewInt(den))
	return out, nil
}

// ---- encoding ----

func (a Amount) MarshalJSON() ([]byte, error) { return json.Marshal(a.String()) }

func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("amount must be a decimal string: %w", err)
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Amount) Value() (driver.Value, error) { return a.String(), nil }

func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case string:
		p, err := Parse(v)
		if err != nil {
			return err
		}
		*a = p
	case []byte:
		p, err := Parse(string(v))
		if err != nil {
			return err
		}
		*a = p
	case int64:
		if v < 0 {
			return fmt.Errorf("negative amount %d", v)
		}
		*a = New(uint64(v))
	case nil:
		*a = Amount{}
	default:
		return fmt.Errorf("can't scan %T into wei.Amount", src)
	}
	return nil
}
