package domain

import (
	"regexp"

	customError "github.com/segyhp/easy-service/pkg/errors"
)

type Product string

const (
	ProductCbrcrel Product = "Cbrcrel"
	ProductCcrcfi  Product = "Ccrcfi"
	ProductEpcfi   Product = "Epcfi"
)

var Products = []Product{ProductCbrcrel, ProductCcrcfi, ProductEpcfi}

var maxInstallments = map[Product]int{
	ProductCbrcrel: 24,
	ProductCcrcfi:  18,
	ProductEpcfi:   18,
}

var productPattern = regexp.MustCompile(`(?i)^\s*(?:(cbr(?:crel)?)|(ccr(?:cfi)?)|(ep(?:cfi)?))\s*$`)

// MaxInstallmentsOverall is the highest installment count any product accepts.
const MaxInstallmentsOverall = 24

// MaxDelayDays bounds the days in arrears typed on an exception proposal.
const MaxDelayDays = 999

// ParseProduct accepts the product name or its short form (cbr, ccr, ep), in any case.
func ParseProduct(s string) (Product, error) {
	match := productPattern.FindStringSubmatch(s)
	switch {
	case match == nil:
		return "", customError.NewValidationError("product", "Preencha o produto corretamente.")
	case match[1] != "":
		return ProductCbrcrel, nil
	case match[2] != "":
		return ProductCcrcfi, nil
	default:
		return ProductEpcfi, nil
	}
}

func (p Product) MaxInstallments() int {
	return maxInstallments[p]
}

// CheckInstallments fails when count exceeds what the product accepts.
func (p Product) CheckInstallments(count int) error {
	max := p.MaxInstallments()
	if count > max {
		return customError.WrapInstallmentsAboveProduct(string(p), max, count)
	}
	return nil
}
