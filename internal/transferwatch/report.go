package transferwatch

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// weiDecimals is the number of implied decimal places of a wei amount.
const weiDecimals = 18

var (
	ten           = big.NewInt(10)
	int128Modulus = new(big.Int).Lsh(big.NewInt(1), 128)
	int128Max     = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// toInt128 reinterprets the low 128 bits of v as a two's complement signed
// integer.
func toInt128(v *big.Int) *big.Int {
	r := new(big.Int).Mod(v, int128Modulus)
	if r.Cmp(int128Max) > 0 {
		r.Sub(r, int128Modulus)
	}
	return r
}

// normalize strips trailing fractional zeros so that 2.000 becomes 2.
func normalize(d decimal.Decimal) decimal.Decimal {
	var (
		coef = d.Coefficient()
		exp  = d.Exponent()
		q    = new(big.Int)
		r    = new(big.Int)
	)

	for exp < 0 && coef.Sign() != 0 {
		q.QuoRem(coef, ten, r)
		if r.Sign() != 0 {
			break
		}

		coef.Set(q)
		exp++
	}

	if coef.Sign() == 0 {
		exp = 0
	}

	return decimal.NewFromBigInt(coef, exp)
}

// ToEther converts a wei amount to an exact ether amount. The amount is
// first reinterpreted as a signed 128-bit integer, then scaled by 10^-18.
// A nil amount is zero.
func ToEther(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(toInt128(wei), -weiDecimals)
}

// Report decides whether tx is a reportable transfer for threshold.
//
// Transactions without a recipient are never reported, whatever their value.
// Otherwise the value in ether is compared to threshold with exact decimal
// arithmetic and a Transfer is returned when value >= threshold.
func Report(tx Transaction, threshold decimal.Decimal) (Transfer, bool) {
	if tx.To == nil {
		return Transfer{}, false
	}

	value := ToEther(tx.Value)
	if value.LessThan(threshold) {
		return Transfer{}, false
	}

	return Transfer{
		Hash:  tx.Hash,
		From:  tx.From,
		To:    *tx.To,
		Value: normalize(value),
	}, true
}
