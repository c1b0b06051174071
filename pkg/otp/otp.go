package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	codeMin = 100000
	codeMax = 999999
)

// Generator issues the one-time code stored on a registration record.
type Generator interface {
	RandomCode() (string, error)
}

// NumericGenerator samples a 6-digit code uniformly from [100000, 999999],
// so codes never carry a leading zero.
type NumericGenerator struct{}

func NewNumericGenerator() *NumericGenerator {
	return &NumericGenerator{}
}

func (g *NumericGenerator) RandomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", fmt.Errorf("otp random read failed: %w", err)
	}

	return fmt.Sprintf("%d", n.Int64()+codeMin), nil
}
