package grpf

import (
	"github.com/arl/assertgo"

	"github.com/EP-Guy/grpf/geom"
	"github.com/EP-Guy/grpf/tess"
)

// Result holds everything Grpf computes about a domain.
type Result struct {
	Zeros  []complex128
	Poles  []complex128
	Status Status
}

// PlotData holds the extra diagnostic information
// GrpfWithPlotData returns alongside the roots and poles: the final
// quadrant-tagged points, the phase-difference (ΔQ) tag of every edge
// inspected in the final iteration, the tessellation itself, and the
// BuildContext used during the run (its log and per-phase timers).
type PlotData struct {
	Points       []geom.Point
	PhaseDiffs   map[geom.Edge]int
	Tessellation *tess.Tessellation
	Context      *BuildContext
}

// Grpf is the entry point of spec.md §6: given f, an initial mesh of
// seed points (in the user's unscaled coordinates, as produced by
// mesh.RectangularDomain or mesh.DiskDomain) and Params, it returns the
// zeros and poles of f within the domain those seeds describe.
func Grpf(f Func, initialMesh []complex128, p Params) ([]complex128, []complex128, Status) {
	res, _ := run(f, initialMesh, p, false)
	return res.Zeros, res.Poles, res.Status
}

// GrpfWithPlotData is the diagnostic variant of Grpf: it additionally
// returns the final quadrant-tagged point list, the phase-difference
// tag of every edge inspected in the final iteration, a handle to the
// tessellation, and the BuildContext used during the run, for plotting
// and troubleshooting.
func GrpfWithPlotData(f Func, initialMesh []complex128, p Params) ([]complex128, []complex128, PlotData, Status) {
	res, pd := run(f, initialMesh, p, true)
	return res.Zeros, res.Poles, pd, res.Status
}

func run(f Func, initialMesh []complex128, p Params, keepPlotData bool) (Result, PlotData) {
	ctx := NewBuildContext(true)

	// onFailure builds the PlotData a failed run still owes the
	// Diagnostics variant: the BuildContext is the one piece of
	// information that exists even when a precondition failed.
	onFailure := func() PlotData {
		if !keepPlotData {
			return PlotData{}
		}
		return PlotData{Context: ctx}
	}

	warnStatus := p.Validate()
	if warnStatus&HintExceedsBudget != 0 {
		ctx.Warningf("tess_size_hint (%d) exceeds max_nodes (%d)", p.TessSizeHint, p.MaxNodes)
	}

	ctx.StartTimer(TimerScale)
	ctx.MinCoord, ctx.MaxCoord = tess.MinCoord, tess.MaxCoord
	st, ok := geom.NewScalingTransform(initialMesh, ctx.MinCoord, ctx.MaxCoord)
	ctx.StopTimer(TimerScale)
	if !ok {
		return Result{Status: StatusFailure | SeedsOutOfRange}, onFailure()
	}

	scaled := make([]complex128, len(initialMesh))
	for i, z := range initialMesh {
		scaled[i] = st.Forward(z)
		if !geom.InRange(scaled[i], ctx.MinCoord, ctx.MaxCoord) {
			return Result{Status: StatusFailure | SeedsOutOfRange}, onFailure()
		}
	}

	t := tess.NewTessellation(p.TessSizeHint)

	ctx.StartTimer(TimerTriangulate)
	added, err := t.Insert(scaled)
	ctx.StopTimer(TimerTriangulate)
	if err != nil {
		ctx.Errorf("initial triangulation failed: %v", err)
		return Result{Status: StatusFailure}, onFailure()
	}

	ctx.StartTimer(TimerQuadrantAssign)
	assignStatus := assignQuadrants(t, st, f, indicesOf(added), p.Multithreading)
	ctx.StopTimer(TimerQuadrantAssign)
	if assignStatus&Unclassifiable != 0 {
		return Result{Status: StatusFailure | Unclassifiable}, onFailure()
	}

	assert.True(allAssigned(t), "every point must carry a quadrant before candidate detection")

	var lastCandidates []geom.Edge

	for iter := 0; ; iter++ {
		ctx.StartTimer(TimerCandidateDetect)
		candidates := candidateEdges(t)
		ctx.StopTimer(TimerCandidateDetect)
		lastCandidates = candidates

		if len(candidates) == 0 {
			if iter == 0 {
				ctx.Progressf("no candidate edges after initial quadrant assignment")
				warnStatus |= NoCandidates
			}
			break
		}

		if iter >= p.MaxIterations {
			ctx.Warningf("refinement stopped: max_iterations (%d) reached", p.MaxIterations)
			warnStatus |= MaxIterations
			break
		}
		if t.NumPoints() >= p.MaxNodes {
			ctx.Warningf("refinement stopped: max_nodes (%d) reached", p.MaxNodes)
			warnStatus |= MaxNodesExceeded
			break
		}

		ctx.StartTimer(TimerRefine)
		newPts, converged := refinementStep(t, candidates, p.Tolerance, p.SkinnyTriangle)
		ctx.StopTimer(TimerRefine)
		if converged {
			break
		}
		if len(newPts) == 0 {
			// nothing left to emit even though edges exceed tolerance
			// (degenerate geometry): stop rather than loop forever.
			break
		}

		remaining := p.MaxNodes - t.NumPoints()
		if remaining < len(newPts) {
			newPts = newPts[:remaining]
		}

		ctx.StartTimer(TimerTriangulate)
		added, err = t.Insert(newPts)
		ctx.StopTimer(TimerTriangulate)
		if err != nil {
			ctx.Errorf("refinement triangulation failed: %v", err)
			break
		}

		ctx.StartTimer(TimerQuadrantAssign)
		assignStatus = assignQuadrants(t, st, f, indicesOf(added), p.Multithreading)
		ctx.StopTimer(TimerQuadrantAssign)
		if assignStatus&Unclassifiable != 0 {
			return Result{Status: StatusFailure | Unclassifiable}, onFailure()
		}

		assert.True(allAssigned(t), "every point must carry a quadrant before the next candidate-edge detection pass")
	}

	ctx.StartTimer(TimerContourExtract)
	contourEdges := extractContours(t.Triangles(), lastCandidates)
	ctx.StopTimer(TimerContourExtract)

	ctx.StartTimer(TimerRegionWalk)
	regions := walkRegions(t, contourEdges)
	ctx.StopTimer(TimerRegionWalk)

	ctx.StartTimer(TimerArgumentPrinciple)
	var zeros, poles []complex128
	for _, r := range regions {
		q, centroid := classifyRegion(t, r)
		switch {
		case q > 0:
			zeros = append(zeros, st.Inverse(centroid))
		case q < 0:
			poles = append(poles, st.Inverse(centroid))
		}
	}
	ctx.StopTimer(TimerArgumentPrinciple)

	status := StatusSuccess | warnStatus

	res := Result{Zeros: zeros, Poles: poles, Status: status}
	if !keepPlotData {
		return res, PlotData{}
	}

	diffs := make(map[geom.Edge]int, len(lastCandidates))
	for _, e := range lastCandidates {
		diffs[e] = t.Point(e.A).Quad.Diff(t.Point(e.B).Quad)
	}
	return res, PlotData{Points: t.Points(), PhaseDiffs: diffs, Tessellation: t, Context: ctx}
}

func indicesOf(pts []geom.Point) []int {
	idxs := make([]int, len(pts))
	for i, p := range pts {
		idxs[i] = p.Index
	}
	return idxs
}

func allAssigned(t *tess.Tessellation) bool {
	for _, p := range t.Points() {
		if p.Quad == geom.Unassigned {
			return false
		}
	}
	return true
}
