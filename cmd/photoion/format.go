package main

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/photoionization"
)

func formatFloat(v float64) string {
	if v == photoionization.NoValue {
		return "-"
	}

	return strconv.FormatFloat(v, 'g', 6, 64)
}

func formatKappas(ks []angular.Kappa) string {
	parts := make([]string, len(ks))
	for i, k := range ks {
		parts[i] = k.String()
	}

	return strings.Join(parts, " ")
}
