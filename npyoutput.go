// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package phase

import (
	"bufio"
	"os"

	"github.com/kshedden/gonpy"
)

// writeTargetMatrixNpy writes x as a markers×samples float64 .npy
// array, the same shape/flush/close sequence as pca.go's goPCA writer.
func writeTargetMatrixNpy(path string, x *TargetMatrix) error {
	out := make([]float64, len(x.Data))
	for i, v := range x.Data {
		out[i] = float64(v)
	}
	return writeNpy(path, x.Markers, x.N(), out)
}

// writeQualityNpy writes Typed and Imputed as two rows of a 2×markers
// float64 .npy array.
func writeQualityNpy(path string, q *QualityScores) error {
	cols := len(q.Typed)
	out := make([]float64, 2*cols)
	copy(out[:cols], q.Typed)
	copy(out[cols:], q.Imputed)
	return writeNpy(path, 2, cols, out)
}

func writeNpy(path string, rows, cols int, data []float64) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0777)
	if err != nil {
		return err
	}
	defer f.Close()
	bufw := bufio.NewWriter(f)
	npw, err := gonpy.NewWriter(nopCloser{bufw})
	if err != nil {
		return err
	}
	npw.Shape = []int{rows, cols}
	if err := npw.WriteFloat64(data); err != nil {
		return err
	}
	if err := bufw.Flush(); err != nil {
		return err
	}
	return f.Close()
}

type nopCloser struct {
	*bufio.Writer
}

func (nopCloser) Close() error { return nil }
