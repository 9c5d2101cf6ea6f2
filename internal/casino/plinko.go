package casino

import (
	"math"

	"coin-casino/internal/rng"
)

const (
	bucketCount = 9

	boardWidth  = 400.0
	boardDrop   = 380.0
	pegRows     = 8
	pegSpacing  = 40.0
	pegRadius   = 5.0
	ballRadius  = 8.0
	gravity     = 0.5
	damping     = 0.7
	bounceSpeed = 4.0

	// Settlement must not depend on wall clock; the trajectory runs on
	// a fixed step budget and buckets wherever the ball is if it runs out.
	maxSteps = 10000
)

type peg struct {
	x, y float64
}

var pegs = boardPegs()

func boardPegs() []peg {
	var out []peg
	for row := 0; row < pegRows; row++ {
		inRow := row + 1
		for i := 0; i < inRow; i++ {
			out = append(out, peg{
				x: float64(i)*pegSpacing + boardWidth/2 - float64(inRow-1)*pegSpacing/2,
				y: float64(row)*pegSpacing + 50,
			})
		}
	}
	return out
}

// dropBall simulates one ball through the peg lattice and returns the
// bucket it lands in. The jitter on each bounce keeps paths from being
// deterministic; everything else is plain kinematics.
func dropBall(src rng.Source) int {
	x := boardWidth / 2
	y := 0.0
	vx, vy := 0.0, 0.0

	for step := 0; step < maxSteps; step++ {
		vy += gravity
		x += vx
		y += vy

		for _, p := range pegs {
			dx := x - p.x
			dy := y - p.y
			if math.Hypot(dx, dy) < pegRadius+ballRadius {
				angle := math.Atan2(dy, dx)
				x = p.x + math.Cos(angle)*(pegRadius+ballRadius)
				y = p.y + math.Sin(angle)*(pegRadius+ballRadius)

				jitter := src.Float64()*0.4 - 0.2
				vx = math.Cos(angle)*bounceSpeed + jitter
				vy = math.Sin(angle) * bounceSpeed * damping
			}
		}

		if x < ballRadius {
			x = ballRadius
			vx = -vx * damping
		} else if x > boardWidth-ballRadius {
			x = boardWidth - ballRadius
			vx = -vx * damping
		}

		if y > boardDrop {
			break
		}
	}

	bucket := int(x / (boardWidth / bucketCount))
	if bucket < 0 {
		bucket = 0
	}
	if bucket >= bucketCount {
		bucket = bucketCount - 1
	}
	return bucket
}
