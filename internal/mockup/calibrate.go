package mockup

import (
	"fmt"
	"math/rand"

	"pod-studio/pkg/geometry"

	"gonum.org/v1/gonum/mat"
)

// Calibration maps print-surface inches to product-photo pixels.
type Calibration struct {
	Transform geometry.AffineTransform
	MeanError float64 // mean anchor reprojection error, photo pixels
}

// RANSAC parameters for the robust fit.
const (
	ransacIterations = 500
	ransacThreshold  = 3.0 // inlier reprojection distance, pixels
)

// Calibrate fits the inch-to-pixel transform for a template. With exactly
// the minimum anchors the fit is direct; with more it is RANSAC-wrapped
// so a mis-authored anchor cannot skew the whole surface.
func Calibrate(tpl *Template) (Calibration, error) {
	if err := tpl.Validate(); err != nil {
		return Calibration{}, err
	}

	src := make([]geometry.Point2D, len(tpl.Anchors))
	dst := make([]geometry.Point2D, len(tpl.Anchors))
	for i, a := range tpl.Anchors {
		src[i] = geometry.Point2D{X: a.InchX, Y: a.InchY}
		dst[i] = geometry.Point2D{X: a.PixelX, Y: a.PixelY}
	}

	var transform geometry.AffineTransform
	var err error
	if len(src) == MinAnchors {
		transform, err = fitAffineLeastSquares(src, dst)
	} else {
		transform, err = fitAffineRANSAC(src, dst, ransacIterations, ransacThreshold)
	}
	if err != nil {
		return Calibration{}, err
	}

	return Calibration{
		Transform: transform,
		MeanError: ReprojectionError(src, dst, transform),
	}, nil
}

// PhotoToInches maps a product-photo pixel back into print-surface
// inches, the direction used when authoring anchors from clicks on the
// photo. Fails for a degenerate calibration.
func (c Calibration) PhotoToInches(px, py float64) (geometry.Point2D, error) {
	inv, ok := c.Transform.Inverse()
	if !ok {
		return geometry.Point2D{}, fmt.Errorf("calibration transform is singular")
	}
	return inv.Apply(geometry.Point2D{X: px, Y: py}), nil
}

// ReprojectionError returns the mean distance between transformed source
// points and their expected destinations.
func ReprojectionError(src, dst []geometry.Point2D, transform geometry.AffineTransform) float64 {
	if len(src) == 0 || len(src) != len(dst) {
		return 0
	}
	var total float64
	for i := range src {
		total += transform.Apply(src[i]).Distance(dst[i])
	}
	return total / float64(len(src))
}

// fitAffineLeastSquares solves the overdetermined system
// [x', y'] = [a b tx; c d ty] * [x, y, 1] via QR decomposition.
func fitAffineLeastSquares(src, dst []geometry.Point2D) (geometry.AffineTransform, error) {
	n := len(src)
	if n < MinAnchors {
		return geometry.AffineTransform{}, fmt.Errorf("need at least %d points, got %d", MinAnchors, n)
	}

	A := mat.NewDense(n*2, 6, nil)
	B := mat.NewVecDense(n*2, nil)

	for i := 0; i < n; i++ {
		x, y := src[i].X, src[i].Y
		xp, yp := dst[i].X, dst[i].Y

		A.Set(i*2, 0, x)
		A.Set(i*2, 1, y)
		A.Set(i*2, 2, 1)
		B.SetVec(i*2, xp)

		A.Set(i*2+1, 3, x)
		A.Set(i*2+1, 4, y)
		A.Set(i*2+1, 5, 1)
		B.SetVec(i*2+1, yp)
	}

	var qr mat.QR
	qr.Factorize(A)

	var params mat.VecDense
	if err := qr.SolveVecTo(&params, false, B); err != nil {
		return geometry.AffineTransform{}, fmt.Errorf("calibration fit failed: %w", err)
	}

	return geometry.AffineTransform{
		A:  params.AtVec(0),
		B:  params.AtVec(1),
		TX: params.AtVec(2),
		C:  params.AtVec(3),
		D:  params.AtVec(4),
		TY: params.AtVec(5),
	}, nil
}

// fitAffineRANSAC samples minimal anchor sets, keeps the consensus with
// the most inliers, and refits on all inliers.
func fitAffineRANSAC(src, dst []geometry.Point2D, iterations int, threshold float64) (geometry.AffineTransform, error) {
	n := len(src)
	if n < MinAnchors {
		return geometry.AffineTransform{}, fmt.Errorf("need at least %d points, got %d", MinAnchors, n)
	}

	var bestInliers []int
	var bestTransform geometry.AffineTransform

	for iter := 0; iter < iterations; iter++ {
		indices := rand.Perm(n)[:MinAnchors]

		sample := make([]geometry.Point2D, MinAnchors)
		target := make([]geometry.Point2D, MinAnchors)
		for i, idx := range indices {
			sample[i] = src[idx]
			target[i] = dst[idx]
		}

		transform, err := fitAffineLeastSquares(sample, target)
		if err != nil {
			continue
		}

		var inliers []int
		for i := range src {
			if transform.Apply(src[i]).Distance(dst[i]) < threshold {
				inliers = append(inliers, i)
			}
		}

		if len(inliers) > len(bestInliers) {
			bestInliers = inliers
			bestTransform = transform
		}
	}

	if len(bestInliers) < MinAnchors {
		return geometry.AffineTransform{}, fmt.Errorf("calibration consensus failed: %d inliers", len(bestInliers))
	}

	inlierSrc := make([]geometry.Point2D, len(bestInliers))
	inlierDst := make([]geometry.Point2D, len(bestInliers))
	for i, idx := range bestInliers {
		inlierSrc[i] = src[idx]
		inlierDst[i] = dst[idx]
	}

	refit, err := fitAffineLeastSquares(inlierSrc, inlierDst)
	if err != nil {
		return bestTransform, nil
	}
	return refit, nil
}
