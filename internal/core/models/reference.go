// Package models provides reference movement models and a registry that
// resolves them by name for the CLI and scripted sessions.
package models

import (
	"github.com/zeusync/levelcheck/internal/core/geometry"
	"github.com/zeusync/levelcheck/internal/core/level"
)

var (
	_ level.Model = Exact
	_ level.Model = OffByOne
	_ level.Model = Zero
)

// Exact predicts position + movement.
func Exact(position, movement []int) ([]int, error) {
	return geometry.Add(position, movement)
}

// OffByOne predicts position + movement + 1 in every component.
func OffByOne(position, movement []int) ([]int, error) {
	out, err := geometry.Add(position, movement)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i]++
	}
	return out, nil
}

// Zero ignores its input and predicts the origin.
func Zero(position, _ []int) ([]int, error) {
	return make([]int, len(position)), nil
}
