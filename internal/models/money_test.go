package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyMarshalFixedTwoDecimals(t *testing.T) {
	m := NewMoneyFromDecimal(decimal.NewFromFloat(12.5))
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `"12.50"` {
		t.Fatalf("expected \"12.50\", got=%s", string(b))
	}
}

func TestMoneyUnmarshalStringAndNumber(t *testing.T) {
	var fromString Money
	if err := json.Unmarshal([]byte(`"3.999"`), &fromString); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	if fromString.String() != "4.00" {
		t.Fatalf("expected rounding to 4.00, got=%s", fromString.String())
	}

	var fromNumber Money
	if err := json.Unmarshal([]byte(`7.1`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if fromNumber.String() != "7.10" {
		t.Fatalf("expected 7.10, got=%s", fromNumber.String())
	}
}
