// SPDX-License-Identifier: MIT

package priority

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ahp/consistency"
	"github.com/katalvlaran/ahp/matrix"
	"github.com/katalvlaran/ahp/pairwise"
)

const (
	opSolve     = "Solve"
	opEigen     = "SolveEigen"
	opGeometric = "SolveGeometricMean"

	// imagTol bounds the imaginary part of an eigenvalue treated as real.
	imagTol = 1e-9
)

// estimate is the raw output of one method before consistency is attached.
type estimate struct {
	vector    []float64
	lambdaMax float64
	method    Method
}

// solver produces an estimate from a ratio table.
type solver func(a *matrix.Dense) (estimate, error)

// orElse returns a solver that runs s and, on failure, reports the error to
// onFail and runs next instead.
func (s solver) orElse(next solver, onFail func(error)) solver {
	return func(a *matrix.Dense) (estimate, error) {
		est, err := s(a)
		if err == nil {
			return est, nil
		}
		onFail(err)

		return next(a)
	}
}

// Solve computes the priority vector of m with the eigenvector method,
// falling back to the geometric mean on numeric failure.
//
// Behavior highlights:
//   - n ≤ 1 always uses the geometric path (the eigen problem is trivial).
//   - Weights are never clamped or renormalized beyond the L1 normalization.
//   - CR ≤ threshold sets Consistent.
//
// Errors:
//   - ErrNilMatrix; matrix errors when no method can handle the table
//     (for example a zero cell, which the geometric path cannot take a log of).
func Solve(m *pairwise.Matrix, opts ...Option) (Result, error) {
	if m == nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	var s solver
	switch {
	case o.method == MethodGeometricMean || m.Size() <= 1:
		s = geometricMean
	case o.method == MethodEigenvector:
		s = eigenvector
	default:
		s = solver(eigenvector).orElse(geometricMean, func(err error) {
			o.logger.Warn("numeric convergence: eigenvector failed, using geometric mean",
				"evaluator", m.EvaluatorID(),
				"criteria", m.Size(),
				"error", err)
			if o.onFallback != nil {
				o.onFallback(err)
			}
		})
	}

	est, err := s(m.Values())
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	return newResult(m.Criteria(), est, o), nil
}

// SolveEigen runs only the eigenvector method.
// Errors: ErrNilMatrix, ErrEigenFailed.
func SolveEigen(m *pairwise.Matrix, opts ...Option) (Result, error) {
	if m == nil {
		return Result{}, fmt.Errorf("%s: %w", opEigen, ErrNilMatrix)
	}
	est, err := eigenvector(m.Values())
	if err != nil {
		return Result{}, err
	}

	return newResult(m.Criteria(), est, gatherOptions(opts...)), nil
}

// SolveGeometricMean runs only the row geometric mean method.
// Errors: ErrNilMatrix; matrix errors for non-positive cells.
func SolveGeometricMean(m *pairwise.Matrix, opts ...Option) (Result, error) {
	if m == nil {
		return Result{}, fmt.Errorf("%s: %w", opGeometric, ErrNilMatrix)
	}
	est, err := geometricMean(m.Values())
	if err != nil {
		return Result{}, err
	}

	return newResult(m.Criteria(), est, gatherOptions(opts...)), nil
}

// eigenvector picks the eigenvalue with the largest real part and returns
// its right eigenvector as a distribution.
func eigenvector(a *matrix.Dense) (estimate, error) {
	n := a.Rows()
	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(n, n, a.RawData()), mat.EigenRight); !ok {
		return estimate{}, fmt.Errorf("%s: factorization did not converge: %w", opEigen, ErrEigenFailed)
	}

	values := eig.Values(nil)
	k := 0
	for i := 1; i < len(values); i++ {
		if real(values[i]) > real(values[k]) {
			k = i
		}
	}
	lambda := values[k]
	if math.Abs(imag(lambda)) > imagTol || math.IsNaN(real(lambda)) {
		return estimate{}, fmt.Errorf("%s: principal eigenvalue %v: %w", opEigen, lambda, ErrEigenFailed)
	}

	var vecs mat.CDense
	eig.VectorsTo(&vecs)
	v := make([]float64, n)
	for i := range v {
		v[i] = math.Abs(real(vecs.At(i, k)))
	}
	w, _, err := matrix.NormalizeL1(v)
	if err != nil {
		return estimate{}, fmt.Errorf("%s: %v: %w", opEigen, err, ErrEigenFailed)
	}

	return estimate{vector: w, lambdaMax: real(lambda), method: MethodEigenvector}, nil
}

// geometricMean normalizes the row geometric means and estimates λmax as
// mean((A·w)_i / w_i).
func geometricMean(a *matrix.Dense) (estimate, error) {
	g, err := matrix.RowGeometricMeans(a)
	if err != nil {
		return estimate{}, fmt.Errorf("%s: %w", opGeometric, err)
	}
	w, _, err := matrix.NormalizeL1(g)
	if err != nil {
		return estimate{}, fmt.Errorf("%s: %w", opGeometric, err)
	}
	aw, err := matrix.MatVec(a, w)
	if err != nil {
		return estimate{}, fmt.Errorf("%s: %w", opGeometric, err)
	}
	lambda, err := matrix.MeanRatio(aw, w)
	if err != nil {
		return estimate{}, fmt.Errorf("%s: %w", opGeometric, err)
	}

	return estimate{vector: w, lambdaMax: lambda, method: MethodGeometricMean}, nil
}

func newResult(criteria []string, est estimate, o solveOptions) Result {
	n := len(criteria)
	report := consistency.Check(est.lambdaMax, n, o.threshold)
	weights := make(map[string]float64, n)
	for i, c := range criteria {
		weights[c] = est.vector[i]
	}

	return Result{
		Criteria:   criteria,
		Weights:    weights,
		Vector:     est.vector,
		LambdaMax:  est.lambdaMax,
		CI:         report.CI,
		CR:         report.CR,
		Consistent: report.Consistent,
		Threshold:  o.threshold,
		Rank:       Rank(criteria, est.vector, o.eps),
		Method:     est.method,
	}
}

// Rank orders labels by descending weight. Weights closer than eps count as
// equal and keep their input order.
func Rank(labels []string, weights []float64, eps float64) []string {
	idx := make([]int, len(labels))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(x, y int) bool {
		return weights[idx[x]]-weights[idx[y]] > eps
	})
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = labels[i]
	}

	return out
}
