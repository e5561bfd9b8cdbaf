// Package token generates quote tokens: short, uppercase, alphanumeric, typed by hand by suppliers.
package token

import (
	"crypto/rand"
	"errors"
	"fmt"

	"lpu_quotation/internal/usecase/interfaces"
)

const (
	alphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DefaultLength = 8
	// largest multiple of len(alphabet) below 256, to keep the draw uniform
	maxByte = 256 - 256%len(alphabet)
)

var ErrInvalidLength = errors.New("token length must be between 4 and 64")

type Generator struct {
	length int
}

var _ interfaces.ITokenGenerator = (*Generator)(nil)

func NewGenerator(length int) (*Generator, error) {
	if length < 4 || length > 64 {
		return nil, ErrInvalidLength
	}
	return &Generator{length: length}, nil
}

func (g *Generator) Generate() (string, error) {
	out := make([]byte, 0, g.length)
	buf := make([]byte, g.length*2)
	for len(out) < g.length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= maxByte {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == g.length {
				break
			}
		}
	}
	return string(out), nil
}
