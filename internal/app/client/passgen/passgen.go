// Package passgen generates random passwords and rates the strength of the
// generator settings.
package passgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

const (
	DefaultLength = 16
	MinLength     = 8
	MaxLength     = 32

	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lower   = "abcdefghijklmnopqrstuvwxyz"
	digits  = "0123456789"
	symbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

var ErrNoCharset = errors.New("выберите хотя бы один набор символов")

type Options struct {
	Length  int
	Upper   bool
	Lower   bool
	Digits  bool
	Symbols bool
}

// Default - все наборы символов, длина 16
func Default() Options {
	return Options{Length: DefaultLength, Upper: true, Lower: true, Digits: true, Symbols: true}
}

func (o Options) charset() string {
	var cs string
	if o.Upper {
		cs += upper
	}
	if o.Lower {
		cs += lower
	}
	if o.Digits {
		cs += digits
	}
	if o.Symbols {
		cs += symbols
	}
	return cs
}

// Generate строит пароль из crypto/rand
func Generate(o Options) (string, error) {
	return generate(rand.Reader, o)
}

func generate(r io.Reader, o Options) (string, error) {
	if o.Length < MinLength || o.Length > MaxLength {
		return "", fmt.Errorf("длина должна быть от %d до %d", MinLength, MaxLength)
	}
	cs := o.charset()
	if cs == "" {
		return "", ErrNoCharset
	}

	limit := big.NewInt(int64(len(cs)))
	out := make([]byte, o.Length)
	for i := range out {
		n, err := rand.Int(r, limit)
		if err != nil {
			return "", fmt.Errorf("ошибка генерации случайного числа: %w", err)
		}
		out[i] = cs[n.Int64()]
	}
	return string(out), nil
}

type Strength int

const (
	Weak Strength = iota
	Medium
	Strong
	VeryStrong
)

func (s Strength) String() string {
	switch s {
	case VeryStrong:
		return "Very Strong"
	case Strong:
		return "Strong"
	case Medium:
		return "Medium"
	default:
		return "Weak"
	}
}

// Score оценивает настройки генератора по шкале 0..115
func Score(o Options) int {
	score := 0
	if o.Length >= 12 {
		score += 25
	}
	if o.Length >= 16 {
		score += 10
	}
	if o.Upper {
		score += 20
	}
	if o.Lower {
		score += 20
	}
	if o.Digits {
		score += 15
	}
	if o.Symbols {
		score += 25
	}
	return score
}

func Rate(o Options) Strength {
	switch score := Score(o); {
	case score >= 85:
		return VeryStrong
	case score >= 70:
		return Strong
	case score >= 50:
		return Medium
	default:
		return Weak
	}
}
