// Command photoion enumerates photoionization channels and lines and computes
// observables with the analytic hydrogenic model.
//
//	photoion channels --initial 0+ --final 1/2- --multipoles E1,M1
//	photoion lines   -c run.yaml
//	photoion compute -c run.yaml -v
package main

import (
	"os"

	"github.com/pterm/pterm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
