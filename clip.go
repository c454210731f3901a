package gosurf3d

// eyeVertex is a shaded vertex in eye space, the unit the near-plane clipper
// works on.
type eyeVertex struct {
	pos   Vector3
	color Color3
}

// clipNear clips a convex polygon against the plane z = -near and keeps the
// part in front of the eye. Points on the plane count as in front. Cut edges
// get a new vertex with linearly interpolated color.
func clipNear(poly []eyeVertex, near float64) []eyeVertex {
	if len(poly) == 0 {
		return nil
	}
	out := make([]eyeVertex, 0, len(poly)+1)
	prev := poly[len(poly)-1]
	prevIn := prev.pos.Z <= -near
	for _, cur := range poly {
		curIn := cur.pos.Z <= -near
		if curIn != prevIn {
			out = append(out, intersectNear(prev, cur, near))
		}
		if curIn {
			out = append(out, cur)
		}
		prev, prevIn = cur, curIn
	}
	return out
}

// intersectNear returns the point where segment a-b meets z = -near. A
// segment parallel to the plane returns a.
func intersectNear(a, b eyeVertex, near float64) eyeVertex {
	dz := b.pos.Z - a.pos.Z
	if dz == 0 {
		return a
	}
	t := (-near - a.pos.Z) / dz
	return eyeVertex{
		pos:   a.pos.Add(b.pos.Sub(a.pos).Scale(t)),
		color: a.color.Scale(1 - t).Add(b.color.Scale(t)),
	}
}
