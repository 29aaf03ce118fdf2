package photoionization_test

import (
	"testing"

	"github.com/katalvlaran/photoion/defaults"
	"github.com/katalvlaran/photoion/photoionization"
	"github.com/katalvlaran/photoion/radiation"
)

var (
	sinkPartial []photoionization.PartialCrossSection
	sinkPar   photoionization.NondipoleParameters
)

func BenchmarkPartialCrossSections(b *testing.B) {
	tr := mixedTransitions[3]
	channels := evaluatedChannels(b, tr, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkPartial = photoionization.PartialCrossSections(tr.initial, tr.final, channels, 1, defaults.FineStructure)
	}
}

func BenchmarkForwardParameters(b *testing.B) {
	tr := mixedTransitions[3]
	channels := evaluatedChannels(b, tr, 2)
	s := mustSettings(b, photoionization.WithStokes(radiation.Stokes{P3: 1}))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkPar = photoionization.ForwardParameters(tr.initial, tr.final, channels, s)
	}
}
