package layer

import (
	"github.com/df-mc/biomegen/gen/biome"
	"github.com/df-mc/biomegen/gen/rand"
)

// mapVoronoi114 scatters the parent cells with a jitter drawn from the layer
// random and assigns every block to the nearest of the four surrounding
// points. Coordinates are offset by two blocks so that jitter is centred.
func mapVoronoi114(s *Stack, l *Layer, c Cache, x, z, w, h, y int) []biome.ID {
	px, pz := (x-2)>>2, (z-2)>>2
	pw, ph := ((x+w-3)>>2)-px+2, ((z+h-3)>>2)-pz+2
	p := s.fetch(c, l.Parent, px, pz, pw, ph, y)

	out := make([]biome.ID, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			bx, bz := x+i-2, z+j-2
			out[j*w+i] = voronoi114Cell(l, p, bx>>2, bz>>2, float64(bx&3), float64(bz&3))
		}
	}
	return out
}

func voronoi114Cell(l *Layer, p grid, cx, cz int, fx, fz float64) biome.ID {
	jitter := func(x, z int, ox, oz float64) (float64, float64) {
		r := l.cell(x<<2, z<<2)
		jx := (float64(r.NextInt(1024))/1024.0-0.5)*3.6 + ox
		jz := (float64(r.NextInt(1024))/1024.0-0.5)*3.6 + oz
		return jx, jz
	}
	dist := func(jx, jz float64) float64 {
		return (fz-jz)*(fz-jz) + (fx-jx)*(fx-jx)
	}
	d00 := dist(jitter(cx, cz, 0, 0))
	d10 := dist(jitter(cx+1, cz, 4, 0))
	d01 := dist(jitter(cx, cz+1, 0, 4))
	d11 := dist(jitter(cx+1, cz+1, 4, 4))

	switch {
	case d00 < d10 && d00 < d01 && d00 < d11:
		return p.at(cx, cz)
	case d10 < d00 && d10 < d01 && d10 < d11:
		return p.at(cx+1, cz)
	case d01 < d00 && d01 < d10 && d01 < d11:
		return p.at(cx, cz+1)
	}
	return p.at(cx+1, cz+1)
}

// mapVoronoi maps blocks to cells of the parent using jitter derived from the
// hashed world seed. The search covers the eight corners of the cube around
// the block, so two y slices of the parent are needed when it is 3D.
func mapVoronoi(s *Stack, l *Layer, c Cache, x, z, w, h, y int) []biome.ID {
	px, pz, py := (x-2)>>2, (z-2)>>2, (y-2)>>2
	pw, ph := ((x+w-3)>>2)-px+2, ((z+h-3)>>2)-pz+2
	lo := s.fetch(c, l.Parent, px, pz, pw, ph, py)
	hi := lo
	if s.layers[l.Parent].UsesY {
		hi = s.fetch(c, l.Parent, px, pz, pw, ph, py+1)
	}

	out := make([]biome.ID, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			ax, ay, az := VoronoiCell(s.sha, x+i, y, z+j)
			if ay == py {
				out[j*w+i] = lo.at(ax, az)
			} else {
				out[j*w+i] = hi.at(ax, az)
			}
		}
	}
	return out
}

// VoronoiCell returns the coordinates of the 1:4 cell the block at x, y, z is
// assigned to, given the hashed world seed sha.
func VoronoiCell(sha uint64, x, y, z int) (int, int, int) {
	x, y, z = x-2, y-2, z-2
	px, py, pz := x>>2, y>>2, z>>2
	dx, dy, dz := int64(x&3)*10240, int64(y&3)*10240, int64(z&3)*10240

	ax, ay, az := px, py, pz
	dmin := int64(-1)
	for i := 0; i < 8; i++ {
		bx, by, bz := (i>>2)&1, (i>>1)&1, i&1
		cx, cy, cz := px+bx, py+by, pz+bz
		rx, ry, rz := voronoiJitter(sha, cx, cy, cz)
		rx += dx - 40960*int64(bx)
		ry += dy - 40960*int64(by)
		rz += dz - 40960*int64(bz)
		d := rx*rx + ry*ry + rz*rz
		if dmin < 0 || d < dmin {
			dmin, ax, ay, az = d, cx, cy, cz
		}
	}
	return ax, ay, az
}

func voronoiJitter(sha uint64, x, y, z int) (int64, int64, int64) {
	ux, uy, uz := uint64(int64(x)), uint64(int64(y)), uint64(int64(z))
	s := sha
	for _, v := range [...]uint64{ux, uy, uz, ux, uy, uz} {
		s = rand.StepSeed(s, v)
	}
	jx := (int64((s>>24)&1023) - 512) * 36
	s = rand.StepSeed(s, sha)
	jy := (int64((s>>24)&1023) - 512) * 36
	s = rand.StepSeed(s, sha)
	jz := (int64((s>>24)&1023) - 512) * 36
	return jx, jy, jz
}
