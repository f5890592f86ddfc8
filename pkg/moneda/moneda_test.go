package moneda_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/voese/voesesystem-api/pkg/moneda"
)

func TestFormato_SeparadorDeMiles(t *testing.T) {
	assert.Equal(t, "1.234.567", moneda.Formato(decimal.NewFromInt(1234567)))
	assert.Equal(t, "500.000", moneda.Formato(decimal.NewFromInt(500000)))
	assert.Equal(t, "999", moneda.Formato(decimal.NewFromInt(999)))
	assert.Equal(t, "0", moneda.Formato(decimal.Zero))
}

func TestFormato_RedondeaAlEntero(t *testing.T) {
	assert.Equal(t, "5.001", moneda.Formato(decimal.NewFromFloat(5000.6)))
	assert.Equal(t, "5.000", moneda.Formato(decimal.NewFromFloat(5000.4)))
}

func TestConSimbolo(t *testing.T) {
	assert.Equal(t, "₲ 100.000", moneda.ConSimbolo(decimal.NewFromInt(100000)))
}
