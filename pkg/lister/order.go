// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package lister

import (
	"fmt"
	"math/big"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var numericName = regexp.MustCompile(`^\d+$`)

// Order sorts document file names: numeric names first from the highest
// number down, then the remaining names in ascending collation order.
type Order struct {
	collator *collate.Collator
}

// NewOrder creates an Order collating alphabetic names for locale
func NewOrder(locale language.Tag) *Order {
	return &Order{
		collator: collate.New(locale),
	}
}

// Sort orders names in place
func (o *Order) Sort(names []string) {
	slices.SortStableFunc(names, o.Compare)
}

// Compare compares two document file names. The result is negative when a
// sorts before b, positive when b sorts before a.
func (o *Order) Compare(a, b string) int {
	nameA, nameB := BaseName(a), BaseName(b)
	isNumA, isNumB := IsNumeric(nameA), IsNumeric(nameB)
	switch {
	case isNumA && !isNumB:
		return -1
	case !isNumA && isNumB:
		return 1
	case isNumA && isNumB:
		// descending, newest numbered content first
		if c := numberOf(nameB).Cmp(numberOf(nameA)); c != 0 {
			return c
		}
		return strings.Compare(nameA, nameB)
	}
	if c := o.collator.CompareString(nameA, nameB); c != 0 {
		return c
	}
	return strings.Compare(nameA, nameB)
}

// BaseName strips the first .md occurrence from a file name
func BaseName(name string) string {
	return strings.Replace(name, documentExt, "", 1)
}

// IsNumeric reports whether a base name consists of decimal digits only
func IsNumeric(name string) bool {
	return numericName.MatchString(name)
}

// numberOf parses a base name accepted by IsNumeric
func numberOf(name string) *big.Int {
	n, ok := new(big.Int).SetString(name, 10)
	if !ok {
		panic(fmt.Sprintf("%s is not a decimal number", name))
	}
	return n
}
