package main

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"
)

// haltonSampler draws an Owen-scrambled Halton sequence mapped onto the
// target hyperrectangle. The scrambling consumes the supplied source, so two
// samplers built from equally seeded sources draw identical point sets.
type haltonSampler struct {
	h samplemv.Halton
}

// NewHaltonSampler returns the low-discrepancy Sampler over the given
// per-dimension bounds.
func NewHaltonSampler(bounds []r1.Interval, src rand.Source) Sampler {
	return &haltonSampler{h: samplemv.Halton{
		Kind: samplemv.Owen,
		Q:    distmv.NewUniform(bounds, src),
		Src:  src,
	}}
}

func (s *haltonSampler) Sample(batch *mat.Dense) {
	s.h.Sample(batch)
}

// uniformSampler draws each dimension independently uniform over the same
// bounds, with no joint low-discrepancy structure.
type uniformSampler struct {
	iid samplemv.IID
}

// NewUniformSampler returns the plain pseudo-random Sampler over the given
// per-dimension bounds.
func NewUniformSampler(bounds []r1.Interval, src rand.Source) Sampler {
	return &uniformSampler{iid: samplemv.IID{Dist: distmv.NewUniform(bounds, src)}}
}

func (s *uniformSampler) Sample(batch *mat.Dense) {
	s.iid.Sample(batch)
}
