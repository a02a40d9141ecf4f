package stubs

import (
	"math"

	"github.com/brianvoe/gofakeit/v6"
)

// RandomID devolve um ID positivo; entidades rejeitam IDs negativos.
func RandomID() int64 {
	return int64(gofakeit.Number(1, math.MaxInt32))
}
